package export

import (
	"fmt"
	"path/filepath"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
)

// Schema is the part of a generator export needs: its kind and template.
type Schema[A coreagg.Labeled] interface {
	Kind() coreagg.Kind
	Template(defaultVal float64) A
}

// Header is one CSV column; ID keys the record map, Title is printed.
type Header struct {
	ID    string
	Title string
}

// Fields returns the canonical column order of gen's aggregation kind: the
// sorted scalar field names of its zero template.
func Fields[A coreagg.Labeled](gen Schema[A]) []string {
	return gen.Template(0).FieldNames()
}

// StripLabels returns the values of Fields(gen) present in agg, in order.
// Absent fields are skipped, not zero-filled.
func StripLabels[A coreagg.Labeled](agg A, gen Schema[A]) []float64 {
	values := agg.Scalars()
	fields := Fields(gen)
	out := make([]float64, 0, len(fields))
	for _, name := range fields {
		if v, ok := values[name]; ok {
			out = append(out, v)
		}
	}
	return out
}

// CSVHeader uses each field name as both column id and title.
func CSVHeader[A coreagg.Labeled](gen Schema[A]) []Header {
	fields := Fields(gen)
	headers := make([]Header, len(fields))
	for i, name := range fields {
		headers[i] = Header{ID: name, Title: name}
	}
	return headers
}

// WriteToCSV writes aggs to <baseDir>/<fileName>.csv, one row per aggregation,
// and returns the file path. An empty fileName falls back to the kind.
func WriteToCSV[A coreagg.Labeled](gen Schema[A], fileName, baseDir string, aggs ...A) (string, error) {
	if fileName == "" {
		fileName = gen.Kind().String()
	}
	path := filepath.Join(baseDir, fileName+".csv")

	records := make([]map[string]float64, len(aggs))
	for i, agg := range aggs {
		records[i] = agg.Scalars()
	}

	w := NewCSVWriter(path, CSVHeader(gen))
	if err := w.WriteRecords(records); err != nil {
		return "", fmt.Errorf("export %s to %s: %w", gen.Kind(), path, err)
	}
	return path, nil
}

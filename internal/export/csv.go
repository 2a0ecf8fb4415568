package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CSVWriter writes label->value records under a fixed header. The first
// WriteRecords call truncates the file and writes the header row; later
// calls append.
type CSVWriter struct {
	path    string
	headers []Header
	started bool
}

func NewCSVWriter(path string, headers []Header) *CSVWriter {
	return &CSVWriter{path: path, headers: headers}
}

func (w *CSVWriter) Path() string { return w.path }

// WriteRecords writes one row per record in header order. A label missing
// from a record leaves its cell empty.
func (w *CSVWriter) WriteRecords(records []map[string]float64) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if !w.started {
		if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(w.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", w.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", w.path, cerr)
		}
	}()

	cw := csv.NewWriter(f)
	if !w.started {
		titles := make([]string, len(w.headers))
		for i, h := range w.headers {
			titles[i] = h.Title
		}
		if err := cw.Write(titles); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		w.started = true
	}

	row := make([]string, len(w.headers))
	for _, rec := range records {
		for i, h := range w.headers {
			v, ok := rec[h.ID]
			if !ok {
				row[i] = ""
				continue
			}
			row[i] = FormatValue(v)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatValue prints the shortest decimal text that parses back to v.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

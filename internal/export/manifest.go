package export

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
)

// Job is one export described in a manifest file.
type Job struct {
	Name        string
	Kind        coreagg.Kind
	IDs         []int64
	Normalized  bool
	FileName    string
	SkipMissing bool
	Fingerprint string // SHA-256 of the manifest file
}

// rawJob is the on-disk YAML shape.
type rawJob struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	IDs         []int64 `yaml:"ids"`
	Normalized  *bool   `yaml:"normalized"` // defaults to true
	FileName    string  `yaml:"file_name"`
	SkipMissing bool    `yaml:"skip_missing"`
}

// LoadManifest reads every *.yaml / *.yml file in dir, one job per file, and
// returns the jobs sorted by name. A missing directory yields no jobs.
func LoadManifest(dir string) ([]Job, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("export manifest dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("export manifest path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading export manifest dir: %w", err)
	}

	seen := make(map[string]struct{})
	var jobs []Job
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading export file %s: %w", path, err)
		}

		var raw rawJob
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing export file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // empty / comment-only file
		}

		kind, err := coreagg.ParseKind(raw.Kind)
		if err != nil {
			return nil, fmt.Errorf("export %q: %w", raw.Name, err)
		}
		if len(raw.IDs) == 0 {
			return nil, fmt.Errorf("export %q: ids must not be empty", raw.Name)
		}
		if _, dup := seen[raw.Name]; dup {
			return nil, fmt.Errorf("export %q: duplicate name (check multiple YAML files)", raw.Name)
		}
		seen[raw.Name] = struct{}{}

		normalized := true
		if raw.Normalized != nil {
			normalized = *raw.Normalized
		}
		fileName := raw.FileName
		if fileName == "" {
			fileName = raw.Name
		}

		jobs = append(jobs, Job{
			Name:        raw.Name,
			Kind:        kind,
			IDs:         raw.IDs,
			Normalized:  normalized,
			FileName:    fileName,
			SkipMissing: raw.SkipMissing,
			Fingerprint: fmt.Sprintf("%x", sha256.Sum256(data)),
		})
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })
	return jobs, nil
}

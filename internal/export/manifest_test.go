package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
)

func writeManifest(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "reviews.yaml", `
name: reviews_2024
kind: review
ids: [5, 6, 7]
skip_missing: true
`)
	writeManifest(t, dir, "albums.yml", `
name: albums_raw
kind: album
ids: [1]
normalized: false
file_name: albums
`)
	writeManifest(t, dir, "notes.txt", "ignored")
	writeManifest(t, dir, "empty.yaml", "# nothing here\n")

	jobs, err := LoadManifest(dir)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	require.Equal(t, "albums_raw", jobs[0].Name)
	require.Equal(t, coreagg.KindAlbum, jobs[0].Kind)
	require.False(t, jobs[0].Normalized)
	require.Equal(t, "albums", jobs[0].FileName)

	require.Equal(t, "reviews_2024", jobs[1].Name)
	require.Equal(t, []int64{5, 6, 7}, jobs[1].IDs)
	require.True(t, jobs[1].Normalized)
	require.True(t, jobs[1].SkipMissing)
	require.Equal(t, "reviews_2024", jobs[1].FileName)
	require.Len(t, jobs[1].Fingerprint, 64)
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown kind", body: "name: x\nkind: song\nids: [1]\n"},
		{name: "no ids", body: "name: x\nkind: track\n"},
		{name: "malformed", body: "name: [x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, "job.yaml", tt.body)
			_, err := LoadManifest(dir)
			require.Error(t, err)
		})
	}
}

func TestLoadManifest_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.yaml", "name: dup\nkind: track\nids: [1]\n")
	writeManifest(t, dir, "b.yaml", "name: dup\nkind: artist\nids: [2]\n")

	_, err := LoadManifest(dir)
	require.ErrorContains(t, err, "duplicate")
}

func TestLoadManifest_MissingDir(t *testing.T) {
	jobs, err := LoadManifest(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Empty(t, jobs)
}

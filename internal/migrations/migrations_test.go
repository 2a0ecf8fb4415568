package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(MigrationFiles, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestMigrationFiles_CreateRepositoryTables(t *testing.T) {
	data, err := fs.ReadFile(MigrationFiles, "000001_create_catalog_tables.up.sql")
	require.NoError(t, err)

	sql := string(data)
	for _, table := range []string{
		"artist", "spotify_genre", "artist_spotify_genres", "album", "track",
		"track_audio_features", "profile", "profile_favorite_artists", "review",
	} {
		require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}

func TestRollback_RejectsNonPositiveSteps(t *testing.T) {
	require.Error(t, Rollback(nil, 0))
}

package aggregation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldNamesMatchScalars(t *testing.T) {
	shapes := map[string]Labeled{
		"track":   TrackAggregation{},
		"artist":  ArtistAggregation{},
		"album":   AlbumAggregation{},
		"review":  ReviewAggregation{},
		"profile": ProfileAggregation{},
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			fields := shape.FieldNames()
			require.True(t, sort.StringsAreSorted(fields), "fields must be sorted: %v", fields)

			seen := make(map[string]bool, len(fields))
			for _, f := range fields {
				require.False(t, seen[f], "duplicate field %q", f)
				seen[f] = true
			}

			scalars := shape.Scalars()
			keys := make([]string, 0, len(scalars))
			for k := range scalars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			require.Equal(t, keys, fields)
		})
	}
}

func TestFieldCounts(t *testing.T) {
	require.Len(t, TrackFields, 15)
	require.Len(t, ArtistFields, 7)
	require.Len(t, AlbumFields, 11)
	require.Len(t, ReviewFields, 12)
	require.Len(t, ProfileFields, 2)
	require.Len(t, EncodedTrackFields, EncodedTrackLen)
}

func TestFieldNamesReturnsCopy(t *testing.T) {
	fields := TrackAggregation{}.FieldNames()
	fields[0] = "mutated"
	require.Equal(t, "acousticness", TrackFields[0])
}

package aggregation

import (
	"context"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
)

// Generator converts one entity kind into its aggregation.
//
// ConvertFromRaw is pure and fills nested children with templates.
// GenerateFromEntity loads missing relations, obtains nested children from
// child aggregators in raw mode, and normalizes the whole tree once when asked.
// Normalize must only ever be applied to a raw aggregation.
type Generator[E any, A any] interface {
	Kind() coreagg.Kind
	Template(defaultVal float64) A
	ConvertFromRaw(e E) (A, error)
	Normalize(a A) A
	GenerateFromEntity(ctx context.Context, e E, normalized bool, spotifyID string) (A, error)
}

// Embeddable is the capability of scalar-only kinds (track, artist, album)
// to be embedded in a parent as a fixed-width vector.
type Embeddable[A, F, C any] interface {
	Flatten(ctx context.Context, a A) (F, error)
	Encode(flat F) C
}

// Source yields an aggregation; *Aggregator is the production implementation.
type Source[A any] interface {
	Aggregate(ctx context.Context, normalized bool) (A, error)
}

// Children builds the aggregators a generator delegates nested kinds to.
type Children interface {
	Track(t *entity.Track) Source[coreagg.TrackAggregation]
	Artist(a *entity.Artist) Source[coreagg.ArtistAggregation]
	Album(a *entity.Album) Source[coreagg.AlbumAggregation]
	Review(r *entity.Review) Source[coreagg.ReviewAggregation]
}

// TrackResolver looks up tracks that are not stored locally.
type TrackResolver interface {
	Track(ctx context.Context, spotifyID string) (*entity.Track, error)
}

var (
	_ Embeddable[coreagg.TrackAggregation, coreagg.FlatTrack, coreagg.EncodedTrack]    = (*TrackGenerator)(nil)
	_ Embeddable[coreagg.ArtistAggregation, coreagg.FlatArtist, coreagg.EncodedArtist] = (*ArtistGenerator)(nil)
	_ Embeddable[coreagg.AlbumAggregation, coreagg.FlatAlbum, coreagg.EncodedAlbum]    = (*AlbumGenerator)(nil)

	_ Generator[*entity.Review, coreagg.ReviewAggregation]   = (*ReviewGenerator)(nil)
	_ Generator[*entity.Profile, coreagg.ProfileAggregation] = (*ProfileGenerator)(nil)
)

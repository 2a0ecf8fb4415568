package storage

import (
	"context"

	"github.com/mucritic/mucritic/internal/core/entity"
)

// AlbumFilter restricts which album may be joined onto a review.
type AlbumFilter struct {
	// RequireSpotifyID skips albums that were never matched in the Spotify catalog.
	RequireSpotifyID bool
	// SpotifyAlbumType, when set, keeps only albums of that catalog type.
	SpotifyAlbumType string
}

// RelationSpec tunes how relations are loaded by a Fetch call.
type RelationSpec struct {
	Album AlbumFilter
}

// QualifyingAlbums is the filter the review aggregation uses: full-length
// albums with a resolved Spotify identity.
var QualifyingAlbums = RelationSpec{
	Album: AlbumFilter{RequireSpotifyID: true, SpotifyAlbumType: "album"},
}

// Repository loads entities together with the relations their aggregation needs.
//
// Every Fetch returns errors.ErrNotFound (wrapped) when the root entity, or a
// required to-one relation matching rel does not exist. To-many relations are
// always returned as non-nil slices.
type Repository interface {
	// FetchTrack loads a track; Features is nil when no audio analysis is stored.
	FetchTrack(ctx context.Context, id int64) (*entity.Track, error)

	// FetchArtist loads an artist with Genres.
	FetchArtist(ctx context.Context, id int64) (*entity.Artist, error)

	// FetchAlbum loads an album with Artist (and its Genres) and Tracks.
	FetchAlbum(ctx context.Context, id int64) (*entity.Album, error)

	// FetchReview loads a review with its Album (filtered by rel.Album), the album's
	// Artist and Tracks.
	FetchReview(ctx context.Context, id int64, rel RelationSpec) (*entity.Review, error)

	// FetchProfile loads a profile with FavoriteArtists and Reviews. Reviews are
	// shallow: their Album is left unloaded.
	FetchProfile(ctx context.Context, id int64) (*entity.Profile, error)
}

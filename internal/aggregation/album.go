package aggregation

import (
	"context"
	"fmt"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/core/storage"
)

var (
	albumMarkets     = coreagg.Bound{Min: 0, Max: 185}
	albumCopyrights  = coreagg.Bound{Min: 0, Max: 5}
	albumIssues      = coreagg.Bound{Min: 0, Max: 50}
	albumLists       = coreagg.Bound{Min: 0, Max: 10000}
	albumOverallRank = coreagg.Bound{Min: 1, Max: 10000}
	albumPopularity  = coreagg.Bound{Min: 0, Max: 100}
	albumRating      = coreagg.Bound{Min: 0, Max: 5}
	albumRatings     = coreagg.Bound{Min: 0, Max: 50000}
	albumReleaseYear = coreagg.Bound{Min: 1900, Max: 2030}
	albumReviews     = coreagg.Bound{Min: 0, Max: 2000}
	albumYearRank    = coreagg.Bound{Min: 1, Max: 1000}
)

// AlbumGenerator aggregates an album with its artist and encoded tracks.
type AlbumGenerator struct {
	repo     storage.Repository
	children Children
	tracks   *TrackGenerator
	artists  *ArtistGenerator
}

func NewAlbumGenerator(repo storage.Repository, children Children, tracks *TrackGenerator, artists *ArtistGenerator) *AlbumGenerator {
	return &AlbumGenerator{repo: repo, children: children, tracks: tracks, artists: artists}
}

func (g *AlbumGenerator) Kind() coreagg.Kind { return coreagg.KindAlbum }

// Template has no tracks: there is nothing entity-specific to enumerate.
func (g *AlbumGenerator) Template(v float64) coreagg.AlbumAggregation {
	return coreagg.AlbumAggregation{
		AvailableMarkets: v,
		Copyrights:       v,
		Issues:           v,
		Lists:            v,
		OverallRank:      v,
		Popularity:       v,
		Rating:           v,
		Ratings:          v,
		ReleaseYear:      v,
		Reviews:          v,
		YearRank:         v,
		Artist:           g.artists.Template(v),
		Tracks:           []coreagg.EncodedTrack{},
	}
}

// ConvertFromRaw maps the album's own columns; Artist and Tracks are left as
// the zero template until GenerateFromEntity fills them.
func (g *AlbumGenerator) ConvertFromRaw(a *entity.Album) (coreagg.AlbumAggregation, error) {
	if a == nil {
		return coreagg.AlbumAggregation{}, fmt.Errorf("%w: nil album", coreerrors.ErrDataIntegrity)
	}
	if a.Artist == nil || a.Tracks == nil {
		return coreagg.AlbumAggregation{}, fmt.Errorf("%w: album %d relations not loaded", coreerrors.ErrDataIntegrity, a.ID)
	}
	agg := g.Template(0)
	agg.AvailableMarkets = float64(a.AvailableMarkets)
	agg.Copyrights = float64(a.Copyrights)
	agg.Issues = float64(a.Issues)
	agg.Lists = float64(a.Lists)
	agg.OverallRank = float64(a.OverallRank)
	agg.Popularity = float64(a.Popularity)
	agg.Rating = a.RatingRYM
	agg.Ratings = float64(a.Ratings)
	agg.ReleaseYear = float64(a.ReleaseYear)
	agg.Reviews = float64(a.Reviews)
	agg.YearRank = float64(a.YearRank)
	return agg, nil
}

func (g *AlbumGenerator) Normalize(a coreagg.AlbumAggregation) coreagg.AlbumAggregation {
	tracks := make([]coreagg.EncodedTrack, len(a.Tracks))
	for i, t := range a.Tracks {
		tracks[i] = g.tracks.NormalizeEncoded(t)
	}
	return coreagg.AlbumAggregation{
		AvailableMarkets: albumMarkets.Scale(a.AvailableMarkets),
		Copyrights:       albumCopyrights.Scale(a.Copyrights),
		Issues:           albumIssues.Scale(a.Issues),
		Lists:            albumLists.Scale(a.Lists),
		OverallRank:      albumOverallRank.Scale(a.OverallRank),
		Popularity:       albumPopularity.Scale(a.Popularity),
		Rating:           albumRating.Scale(a.Rating),
		Ratings:          albumRatings.Scale(a.Ratings),
		ReleaseYear:      albumReleaseYear.Scale(a.ReleaseYear),
		Reviews:          albumReviews.Scale(a.Reviews),
		YearRank:         albumYearRank.Scale(a.YearRank),
		Artist:           g.artists.Normalize(a.Artist),
		Tracks:           tracks,
	}
}

func (g *AlbumGenerator) GenerateFromEntity(ctx context.Context, a *entity.Album, normalized bool, _ string) (coreagg.AlbumAggregation, error) {
	if a == nil || a.Artist == nil || a.Tracks == nil {
		id, ok := a.EntityID()
		if !ok {
			return coreagg.AlbumAggregation{}, fmt.Errorf("%w: album relations not loaded and no id to fetch them", coreerrors.ErrDataIntegrity)
		}
		fetched, err := g.repo.FetchAlbum(ctx, id)
		if err != nil {
			return coreagg.AlbumAggregation{}, fmt.Errorf("fetch album %d: %w", id, err)
		}
		a = fetched
	}

	agg, err := g.ConvertFromRaw(a)
	if err != nil {
		return coreagg.AlbumAggregation{}, err
	}

	agg.Artist, err = g.children.Artist(a.Artist).Aggregate(ctx, false)
	if err != nil {
		return coreagg.AlbumAggregation{}, fmt.Errorf("album %d artist: %w", a.ID, err)
	}

	agg.Tracks = make([]coreagg.EncodedTrack, 0, len(a.Tracks))
	for i := range a.Tracks {
		track := &a.Tracks[i]
		ta, err := g.children.Track(track).Aggregate(ctx, false)
		if err != nil {
			return coreagg.AlbumAggregation{}, fmt.Errorf("album %d track %d: %w", a.ID, track.ID, err)
		}
		flat, err := g.tracks.Flatten(ctx, ta)
		if err != nil {
			return coreagg.AlbumAggregation{}, err
		}
		agg.Tracks = append(agg.Tracks, g.tracks.Encode(flat))
	}

	if normalized {
		agg = g.Normalize(agg)
	}
	return agg, nil
}

func (g *AlbumGenerator) Flatten(_ context.Context, a coreagg.AlbumAggregation) (coreagg.FlatAlbum, error) {
	return coreagg.FlattenAlbum(a), nil
}

func (g *AlbumGenerator) Encode(flat coreagg.FlatAlbum) coreagg.EncodedAlbum {
	return coreagg.EncodeAlbum(flat)
}

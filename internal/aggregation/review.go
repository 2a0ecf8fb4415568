package aggregation

import (
	"context"
	"fmt"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/core/storage"
)

// ReviewGenerator aggregates the reviewed album plus the reviewer's
// disagreement with the community rating.
type ReviewGenerator struct {
	repo     storage.Repository
	children Children
	albums   *AlbumGenerator
}

func NewReviewGenerator(repo storage.Repository, children Children, albums *AlbumGenerator) *ReviewGenerator {
	return &ReviewGenerator{repo: repo, children: children, albums: albums}
}

func (g *ReviewGenerator) Kind() coreagg.Kind { return coreagg.KindReview }

func (g *ReviewGenerator) Template(v float64) coreagg.ReviewAggregation {
	return coreagg.ReviewAggregation{
		AlbumAggregation: g.albums.Template(v),
		UserDisagreement: v,
	}
}

func (g *ReviewGenerator) ConvertFromRaw(r *entity.Review) (coreagg.ReviewAggregation, error) {
	if r == nil {
		return coreagg.ReviewAggregation{}, fmt.Errorf("%w: nil review", coreerrors.ErrDataIntegrity)
	}
	if r.Album == nil {
		return coreagg.ReviewAggregation{}, fmt.Errorf("%w: review %d album not loaded", coreerrors.ErrDataIntegrity, r.ID)
	}
	album, err := g.albums.ConvertFromRaw(r.Album)
	if err != nil {
		return coreagg.ReviewAggregation{}, err
	}
	return coreagg.ReviewAggregation{
		AlbumAggregation: album,
		UserDisagreement: coreagg.Disagreement(r.Score, r.Album.RatingRYM),
	}, nil
}

func (g *ReviewGenerator) Normalize(a coreagg.ReviewAggregation) coreagg.ReviewAggregation {
	return coreagg.ReviewAggregation{
		AlbumAggregation: g.albums.Normalize(a.AlbumAggregation),
		UserDisagreement: coreagg.ScaleDisagreement(a.UserDisagreement),
	}
}

// GenerateFromEntity loads the album when missing, restricted to albums with
// a Spotify match of type "album". A review without such an album yields
// errors.ErrNotFound.
func (g *ReviewGenerator) GenerateFromEntity(ctx context.Context, r *entity.Review, normalized bool, _ string) (coreagg.ReviewAggregation, error) {
	if r == nil {
		return coreagg.ReviewAggregation{}, fmt.Errorf("%w: nil review", coreerrors.ErrDataIntegrity)
	}
	if r.Album == nil {
		id, ok := r.EntityID()
		if !ok {
			return coreagg.ReviewAggregation{}, fmt.Errorf("%w: review album not loaded and no id to fetch it", coreerrors.ErrDataIntegrity)
		}
		fetched, err := g.repo.FetchReview(ctx, id, storage.QualifyingAlbums)
		if err != nil {
			return coreagg.ReviewAggregation{}, fmt.Errorf("fetch review %d: %w", id, err)
		}
		if fetched.Album == nil {
			return coreagg.ReviewAggregation{}, fmt.Errorf("review %d: qualifying album: %w", id, coreerrors.ErrNotFound)
		}
		r = fetched
	}

	album, err := g.children.Album(r.Album).Aggregate(ctx, false)
	if err != nil {
		return coreagg.ReviewAggregation{}, fmt.Errorf("review %d album: %w", r.ID, err)
	}

	agg := coreagg.ReviewAggregation{
		AlbumAggregation: album,
		UserDisagreement: coreagg.Disagreement(r.Score, r.Album.RatingRYM),
	}
	if normalized {
		agg = g.Normalize(agg)
	}
	return agg, nil
}

// Flatten lays the review out as its encoded album followed by userDisagreement.
func (g *ReviewGenerator) Flatten(_ context.Context, a coreagg.ReviewAggregation) (coreagg.FlatReview, error) {
	return coreagg.FlattenReview(a), nil
}

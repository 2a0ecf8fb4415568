package aggregation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/core/storage"
)

var profileAge = coreagg.Bound{Min: 0, Max: 100}

// ProfileGenerator aggregates a user with their favorite artists and reviews.
type ProfileGenerator struct {
	repo     storage.Repository
	children Children
	artists  *ArtistGenerator
	reviews  *ReviewGenerator
	logger   *slog.Logger
}

func NewProfileGenerator(repo storage.Repository, children Children, artists *ArtistGenerator, reviews *ReviewGenerator, logger *slog.Logger) *ProfileGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileGenerator{repo: repo, children: children, artists: artists, reviews: reviews, logger: logger}
}

func (g *ProfileGenerator) Kind() coreagg.Kind { return coreagg.KindProfile }

func (g *ProfileGenerator) Template(v float64) coreagg.ProfileAggregation {
	return coreagg.ProfileAggregation{
		Age:             v,
		Gender:          v,
		FavoriteArtists: []coreagg.ArtistAggregation{},
		Reviews:         []coreagg.ReviewAggregation{},
	}
}

func (g *ProfileGenerator) ConvertFromRaw(p *entity.Profile) (coreagg.ProfileAggregation, error) {
	if p == nil {
		return coreagg.ProfileAggregation{}, fmt.Errorf("%w: nil profile", coreerrors.ErrDataIntegrity)
	}
	if p.Reviews == nil || p.FavoriteArtists == nil {
		return coreagg.ProfileAggregation{}, fmt.Errorf("%w: profile %d relations not loaded", coreerrors.ErrDataIntegrity, p.ID)
	}
	agg := g.Template(0)
	agg.Age = float64(p.Age)
	agg.Gender = coreagg.Flag(p.Gender)
	return agg, nil
}

func (g *ProfileGenerator) Normalize(a coreagg.ProfileAggregation) coreagg.ProfileAggregation {
	artists := make([]coreagg.ArtistAggregation, len(a.FavoriteArtists))
	for i, artist := range a.FavoriteArtists {
		artists[i] = g.artists.Normalize(artist)
	}
	reviews := make([]coreagg.ReviewAggregation, len(a.Reviews))
	for i, review := range a.Reviews {
		reviews[i] = g.reviews.Normalize(review)
	}
	return coreagg.ProfileAggregation{
		Age:             profileAge.Scale(a.Age),
		Gender:          unitBound.Scale(a.Gender),
		FavoriteArtists: artists,
		Reviews:         reviews,
	}
}

// GenerateFromEntity skips reviews whose album has no qualifying Spotify
// match; any other child failure aborts the profile.
func (g *ProfileGenerator) GenerateFromEntity(ctx context.Context, p *entity.Profile, normalized bool, _ string) (coreagg.ProfileAggregation, error) {
	if p == nil || p.Reviews == nil || p.FavoriteArtists == nil {
		id, ok := p.EntityID()
		if !ok {
			return coreagg.ProfileAggregation{}, fmt.Errorf("%w: profile relations not loaded and no id to fetch them", coreerrors.ErrDataIntegrity)
		}
		fetched, err := g.repo.FetchProfile(ctx, id)
		if err != nil {
			return coreagg.ProfileAggregation{}, fmt.Errorf("fetch profile %d: %w", id, err)
		}
		p = fetched
	}

	agg, err := g.ConvertFromRaw(p)
	if err != nil {
		return coreagg.ProfileAggregation{}, err
	}

	for i := range p.FavoriteArtists {
		artist := &p.FavoriteArtists[i]
		a, err := g.children.Artist(artist).Aggregate(ctx, false)
		if err != nil {
			return coreagg.ProfileAggregation{}, fmt.Errorf("profile %d favorite artist %d: %w", p.ID, artist.ID, err)
		}
		agg.FavoriteArtists = append(agg.FavoriteArtists, a)
	}

	skipped := 0
	for i := range p.Reviews {
		review := &p.Reviews[i]
		r, err := g.children.Review(review).Aggregate(ctx, false)
		if errors.Is(err, coreerrors.ErrNotFound) {
			skipped++
			g.logger.Debug("[Aggregator] Skipping review without qualifying album",
				"profile_id", p.ID,
				"review_id", review.ID,
			)
			continue
		}
		if err != nil {
			return coreagg.ProfileAggregation{}, fmt.Errorf("profile %d review %d: %w", p.ID, review.ID, err)
		}
		agg.Reviews = append(agg.Reviews, r)
	}
	if skipped > 0 {
		g.logger.Info("[Aggregator] Profile reviews skipped",
			"profile_id", p.ID,
			"skipped", skipped,
			"kept", len(agg.Reviews),
		)
	}

	if normalized {
		agg = g.Normalize(agg)
	}
	return agg, nil
}

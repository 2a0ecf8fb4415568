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
	artistDiscography = coreagg.Bound{Min: 0, Max: 100}
	artistLists       = coreagg.Bound{Min: 0, Max: 5000}
	artistMembers     = coreagg.Bound{Min: 0, Max: 20}
	artistShows       = coreagg.Bound{Min: 0, Max: 2000}
	artistPopularity  = coreagg.Bound{Min: 0, Max: 100}
	unitBound         = coreagg.Bound{Min: 0, Max: 1}
)

// ArtistGenerator aggregates an artist's chart data and genre mix.
type ArtistGenerator struct {
	repo storage.Repository
}

func NewArtistGenerator(repo storage.Repository) *ArtistGenerator {
	return &ArtistGenerator{repo: repo}
}

func (g *ArtistGenerator) Kind() coreagg.Kind { return coreagg.KindArtist }

func (g *ArtistGenerator) Template(v float64) coreagg.ArtistAggregation {
	genres := make([]float64, coreagg.GenreFamilyCount)
	for i := range genres {
		genres[i] = v
	}
	return coreagg.ArtistAggregation{
		Active:          v,
		DiscographySize: v,
		Lists:           v,
		Members:         v,
		Popularity:      v,
		Shows:           v,
		SoloPerformer:   v,
		Genres:          genres,
	}
}

func (g *ArtistGenerator) ConvertFromRaw(a *entity.Artist) (coreagg.ArtistAggregation, error) {
	if a == nil {
		return coreagg.ArtistAggregation{}, fmt.Errorf("%w: nil artist", coreerrors.ErrDataIntegrity)
	}
	if a.Genres == nil {
		return coreagg.ArtistAggregation{}, fmt.Errorf("%w: artist %d genres not loaded", coreerrors.ErrDataIntegrity, a.ID)
	}
	names := make([]string, len(a.Genres))
	for i, genre := range a.Genres {
		names[i] = genre.Name
	}
	return coreagg.ArtistAggregation{
		Active:          coreagg.Flag(a.Active),
		DiscographySize: float64(a.DiscographySize),
		Lists:           float64(a.Lists),
		Members:         float64(a.Members),
		Popularity:      float64(a.Popularity),
		Shows:           float64(a.Shows),
		SoloPerformer:   coreagg.Flag(a.SoloPerformer),
		Genres:          coreagg.GenreShares(names),
	}, nil
}

// Normalize rescales the scalars. Genre shares are already fractions.
func (g *ArtistGenerator) Normalize(a coreagg.ArtistAggregation) coreagg.ArtistAggregation {
	genres := make([]float64, len(a.Genres))
	copy(genres, a.Genres)
	return coreagg.ArtistAggregation{
		Active:          unitBound.Scale(a.Active),
		DiscographySize: artistDiscography.Scale(a.DiscographySize),
		Lists:           artistLists.Scale(a.Lists),
		Members:         artistMembers.Scale(a.Members),
		Popularity:      artistPopularity.Scale(a.Popularity),
		Shows:           artistShows.Scale(a.Shows),
		SoloPerformer:   unitBound.Scale(a.SoloPerformer),
		Genres:          genres,
	}
}

func (g *ArtistGenerator) GenerateFromEntity(ctx context.Context, a *entity.Artist, normalized bool, _ string) (coreagg.ArtistAggregation, error) {
	if a == nil || a.Genres == nil {
		id, ok := a.EntityID()
		if !ok {
			return coreagg.ArtistAggregation{}, fmt.Errorf("%w: artist genres not loaded and no id to fetch them", coreerrors.ErrDataIntegrity)
		}
		fetched, err := g.repo.FetchArtist(ctx, id)
		if err != nil {
			return coreagg.ArtistAggregation{}, fmt.Errorf("fetch artist %d: %w", id, err)
		}
		a = fetched
	}

	agg, err := g.ConvertFromRaw(a)
	if err != nil {
		return coreagg.ArtistAggregation{}, err
	}
	if normalized {
		agg = g.Normalize(agg)
	}
	return agg, nil
}

func (g *ArtistGenerator) Flatten(_ context.Context, a coreagg.ArtistAggregation) (coreagg.FlatArtist, error) {
	return coreagg.FlattenArtist(a), nil
}

func (g *ArtistGenerator) Encode(flat coreagg.FlatArtist) coreagg.EncodedArtist {
	return coreagg.EncodeArtist(flat)
}

package aggregation

import (
	"context"
	"fmt"

	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/core/storage"
)

// trackBounds rescale raw track values onto [0,1]. Spotify's own 0..1
// features use the unit bound, which only clamps.
var trackBounds = map[string]coreagg.Bound{
	"acousticness":     {Min: 0, Max: 1},
	"danceability":     {Min: 0, Max: 1},
	"duration":         {Min: 0, Max: 600000}, // ms, 10 minutes
	"energy":           {Min: 0, Max: 1},
	"explicit":         {Min: 0, Max: 1},
	"instrumentalness": {Min: 0, Max: 1},
	"liveness":         {Min: 0, Max: 1},
	"loudness":         {Min: -60, Max: 0}, // dB
	"mode":             {Min: 0, Max: 1},
	"popularity":       {Min: 0, Max: 100},
	"speechiness":      {Min: 0, Max: 1},
	"tempo":            {Min: 0, Max: 250}, // BPM
	"timeSignature":    {Min: 0, Max: 7},
	"trackNumber":      {Min: 1, Max: 30},
	"valence":          {Min: 0, Max: 1},
}

// TrackGenerator aggregates Spotify audio features. Tracks without stored
// features are resolved through the catalog when a Spotify id is known.
type TrackGenerator struct {
	repo    storage.Repository
	catalog TrackResolver // may be nil
}

func NewTrackGenerator(repo storage.Repository, catalog TrackResolver) *TrackGenerator {
	return &TrackGenerator{repo: repo, catalog: catalog}
}

func (g *TrackGenerator) Kind() coreagg.Kind { return coreagg.KindTrack }

// HasCatalog reports whether tracks can be resolved by Spotify id alone.
func (g *TrackGenerator) HasCatalog() bool { return g.catalog != nil }

func (g *TrackGenerator) Template(v float64) coreagg.TrackAggregation {
	return coreagg.TrackAggregation{
		Acousticness:     v,
		Danceability:     v,
		Duration:         v,
		Energy:           v,
		Explicit:         v,
		Instrumentalness: v,
		Liveness:         v,
		Loudness:         v,
		Mode:             v,
		Popularity:       v,
		Speechiness:      v,
		Tempo:            v,
		TimeSignature:    v,
		TrackNumber:      v,
		Valence:          v,
	}
}

func (g *TrackGenerator) ConvertFromRaw(t *entity.Track) (coreagg.TrackAggregation, error) {
	if t == nil {
		return coreagg.TrackAggregation{}, fmt.Errorf("%w: nil track", coreerrors.ErrDataIntegrity)
	}
	f := t.Features
	if f == nil {
		return coreagg.TrackAggregation{}, fmt.Errorf("%w: track %d has no audio features", coreerrors.ErrDataIntegrity, t.ID)
	}
	return coreagg.TrackAggregation{
		Acousticness:     f.Acousticness,
		Danceability:     f.Danceability,
		Duration:         float64(t.Duration),
		Energy:           f.Energy,
		Explicit:         coreagg.Flag(t.Explicit),
		Instrumentalness: f.Instrumentalness,
		Liveness:         f.Liveness,
		Loudness:         f.Loudness,
		Mode:             float64(f.Mode),
		Popularity:       float64(t.Popularity),
		Speechiness:      f.Speechiness,
		Tempo:            f.Tempo,
		TimeSignature:    float64(f.TimeSignature),
		TrackNumber:      float64(t.TrackNumber),
		Valence:          f.Valence,
	}, nil
}

func (g *TrackGenerator) Normalize(a coreagg.TrackAggregation) coreagg.TrackAggregation {
	s := func(name string, v float64) float64 { return trackBounds[name].Scale(v) }
	return coreagg.TrackAggregation{
		Acousticness:     s("acousticness", a.Acousticness),
		Danceability:     s("danceability", a.Danceability),
		Duration:         s("duration", a.Duration),
		Energy:           s("energy", a.Energy),
		Explicit:         s("explicit", a.Explicit),
		Instrumentalness: s("instrumentalness", a.Instrumentalness),
		Liveness:         s("liveness", a.Liveness),
		Loudness:         s("loudness", a.Loudness),
		Mode:             s("mode", a.Mode),
		Popularity:       s("popularity", a.Popularity),
		Speechiness:      s("speechiness", a.Speechiness),
		Tempo:            s("tempo", a.Tempo),
		TimeSignature:    s("timeSignature", a.TimeSignature),
		TrackNumber:      s("trackNumber", a.TrackNumber),
		Valence:          s("valence", a.Valence),
	}
}

// NormalizeEncoded applies the track scaling to an already encoded vector.
func (g *TrackGenerator) NormalizeEncoded(e coreagg.EncodedTrack) coreagg.EncodedTrack {
	var out coreagg.EncodedTrack
	for i, name := range coreagg.EncodedTrackFields {
		out[i] = trackBounds[name].Scale(e[i])
	}
	return out
}

func (g *TrackGenerator) GenerateFromEntity(ctx context.Context, t *entity.Track, normalized bool, spotifyID string) (coreagg.TrackAggregation, error) {
	resolved, err := g.Resolve(ctx, t, spotifyID)
	if err != nil {
		return coreagg.TrackAggregation{}, err
	}
	agg, err := g.ConvertFromRaw(resolved)
	if err != nil {
		return coreagg.TrackAggregation{}, err
	}
	if normalized {
		agg = g.Normalize(agg)
	}
	return agg, nil
}

// Resolve returns a track with audio features. A track that already carries
// features is returned as is. Otherwise the Spotify id (the argument, else the
// entity's own) is looked up in the catalog; without one, a stored track is
// re-fetched from the repository. The input entity is never modified.
func (g *TrackGenerator) Resolve(ctx context.Context, t *entity.Track, spotifyID string) (*entity.Track, error) {
	if t != nil && t.Features != nil {
		return t, nil
	}

	if spotifyID == "" && t != nil {
		spotifyID = t.SpotifyID
	}
	if spotifyID != "" && g.catalog != nil {
		found, err := g.catalog.Track(ctx, spotifyID)
		if err != nil {
			return nil, fmt.Errorf("resolve track %q: %w", spotifyID, err)
		}
		if t == nil {
			return found, nil
		}
		merged := *t
		merged.Features = found.Features
		if merged.SpotifyID == "" {
			merged.SpotifyID = found.SpotifyID
		}
		return &merged, nil
	}

	if id, ok := t.EntityID(); ok {
		fetched, err := g.repo.FetchTrack(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch track %d: %w", id, err)
		}
		if fetched.Features == nil {
			return nil, fmt.Errorf("%w: track %d has no audio features and no spotify id", coreerrors.ErrDataIntegrity, id)
		}
		return fetched, nil
	}

	return nil, fmt.Errorf("%w: track has no audio features and nothing to resolve them from", coreerrors.ErrDataIntegrity)
}

// FlattenEntity resolves t (looking it up when needed) and returns its flat vector.
func (g *TrackGenerator) FlattenEntity(ctx context.Context, t *entity.Track, spotifyID string, normalized bool) (coreagg.FlatTrack, error) {
	agg, err := g.GenerateFromEntity(ctx, t, normalized, spotifyID)
	if err != nil {
		return coreagg.FlatTrack{}, err
	}
	return g.Flatten(ctx, agg)
}

func (g *TrackGenerator) Flatten(_ context.Context, a coreagg.TrackAggregation) (coreagg.FlatTrack, error) {
	return coreagg.FlattenTrack(a), nil
}

func (g *TrackGenerator) Encode(flat coreagg.FlatTrack) coreagg.EncodedTrack {
	return coreagg.EncodeTrack(flat)
}

package aggregation

import (
	"log/slog"

	"github.com/mucritic/mucritic/internal/cache"
	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	"github.com/mucritic/mucritic/internal/core/storage"
)

// Engine wires the per-kind generators together and hands out aggregators
// that share one cache gateway. It is the Children factory every composite
// generator receives.
type Engine struct {
	Tracks   *TrackGenerator
	Artists  *ArtistGenerator
	Albums   *AlbumGenerator
	Reviews  *ReviewGenerator
	Profiles *ProfileGenerator

	cache   cache.Gateway
	metrics *Metrics
	logger  *slog.Logger
}

// EngineConfig holds the collaborators of an Engine. Catalog, Cache and
// Metrics are optional.
type EngineConfig struct {
	Repository storage.Repository
	Catalog    TrackResolver
	Cache      cache.Gateway
	Metrics    *Metrics
	Logger     *slog.Logger
}

func NewEngine(cfg EngineConfig) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{cache: cfg.Cache, metrics: cfg.Metrics, logger: logger}
	e.Tracks = NewTrackGenerator(cfg.Repository, cfg.Catalog)
	e.Artists = NewArtistGenerator(cfg.Repository)
	e.Albums = NewAlbumGenerator(cfg.Repository, e, e.Tracks, e.Artists)
	e.Reviews = NewReviewGenerator(cfg.Repository, e, e.Albums)
	e.Profiles = NewProfileGenerator(cfg.Repository, e, e.Artists, e.Reviews, logger)
	return e
}

func (e *Engine) options(extra []Option) []Option {
	return append([]Option{WithMetrics(e.metrics), WithLogger(e.logger)}, extra...)
}

func (e *Engine) TrackAggregator(t *entity.Track, opts ...Option) *Aggregator[*entity.Track, coreagg.TrackAggregation] {
	return NewAggregator(t, Generator[*entity.Track, coreagg.TrackAggregation](e.Tracks), e.cache, e.options(opts)...)
}

func (e *Engine) ArtistAggregator(a *entity.Artist, opts ...Option) *Aggregator[*entity.Artist, coreagg.ArtistAggregation] {
	return NewAggregator(a, Generator[*entity.Artist, coreagg.ArtistAggregation](e.Artists), e.cache, e.options(opts)...)
}

func (e *Engine) AlbumAggregator(a *entity.Album, opts ...Option) *Aggregator[*entity.Album, coreagg.AlbumAggregation] {
	return NewAggregator(a, Generator[*entity.Album, coreagg.AlbumAggregation](e.Albums), e.cache, e.options(opts)...)
}

func (e *Engine) ReviewAggregator(r *entity.Review, opts ...Option) *Aggregator[*entity.Review, coreagg.ReviewAggregation] {
	return NewAggregator(r, Generator[*entity.Review, coreagg.ReviewAggregation](e.Reviews), e.cache, e.options(opts)...)
}

func (e *Engine) ProfileAggregator(p *entity.Profile, opts ...Option) *Aggregator[*entity.Profile, coreagg.ProfileAggregation] {
	return NewAggregator(p, Generator[*entity.Profile, coreagg.ProfileAggregation](e.Profiles), e.cache, e.options(opts)...)
}

func (e *Engine) Track(t *entity.Track) Source[coreagg.TrackAggregation] {
	return e.TrackAggregator(t)
}

func (e *Engine) Artist(a *entity.Artist) Source[coreagg.ArtistAggregation] {
	return e.ArtistAggregator(a)
}

func (e *Engine) Album(a *entity.Album) Source[coreagg.AlbumAggregation] {
	return e.AlbumAggregator(a)
}

func (e *Engine) Review(r *entity.Review) Source[coreagg.ReviewAggregation] {
	return e.ReviewAggregator(r)
}

package aggregation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mucritic/mucritic/internal/cache"
	"github.com/mucritic/mucritic/internal/core/entity"
)

const normalizedSuffix = "_normalized"

// Aggregator binds one entity to its generator and memoizes the result in
// the cache gateway. It performs at most one cache read and one cache write
// per Aggregate call and does not serialize concurrent callers for a key.
type Aggregator[E entity.Identifiable, A any] struct {
	entity    E
	gen       Generator[E, A]
	cache     cache.Gateway
	spotifyID string
	metrics   *Metrics
	logger    *slog.Logger
}

// Option customizes an Aggregator.
type Option func(*options)

type options struct {
	spotifyID string
	metrics   *Metrics
	logger    *slog.Logger
}

// WithSpotifyID sets the catalog id used when a track must be looked up.
func WithSpotifyID(id string) Option {
	return func(o *options) { o.spotifyID = id }
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewAggregator binds e to gen. A nil gateway disables caching.
func NewAggregator[E entity.Identifiable, A any](e E, gen Generator[E, A], gw cache.Gateway, opts ...Option) *Aggregator[E, A] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Aggregator[E, A]{
		entity:    e,
		gen:       gen,
		cache:     gw,
		spotifyID: o.spotifyID,
		metrics:   o.metrics,
		logger:    o.logger,
	}
}

// CacheKey returns "<kind>_<id>", suffixed with "_normalized" for normalized
// results. ok is false when the entity has no id; such results are never cached.
func (a *Aggregator[E, A]) CacheKey(normalized bool) (string, bool) {
	id, ok := a.entity.EntityID()
	if !ok {
		return "", false
	}
	key := fmt.Sprintf("%s_%d", a.gen.Kind(), id)
	if normalized {
		key += normalizedSuffix
	}
	return key, true
}

// Aggregate returns the cached aggregation when present, otherwise generates
// and caches it. Cache failures never fail the call.
func (a *Aggregator[E, A]) Aggregate(ctx context.Context, normalized bool) (A, error) {
	kind := a.gen.Kind().String()
	key, cacheable := a.CacheKey(normalized)
	cacheable = cacheable && a.cache != nil

	if cacheable {
		cached, hit, err := cache.GetObject[A](ctx, a.cache, key)
		switch {
		case err != nil:
			a.metrics.cacheError(kind, "get")
			a.logger.Warn("[Aggregator] Cache read failed, regenerating", "key", key, "error", err)
		case hit:
			a.metrics.hit(kind)
			return cached, nil
		default:
			a.metrics.miss(kind)
		}
	}

	start := time.Now()
	agg, err := a.gen.GenerateFromEntity(ctx, a.entity, normalized, a.spotifyID)
	if err != nil {
		var zero A
		return zero, fmt.Errorf("generate %s aggregation: %w", kind, err)
	}
	a.metrics.observe(kind, normalized, time.Since(start).Seconds())

	if cacheable {
		if err := cache.SetObject(ctx, a.cache, key, agg); err != nil {
			a.metrics.cacheError(kind, "set")
			a.logger.Warn("[Aggregator] Cache write failed", "key", key, "error", err)
		}
	}
	return agg, nil
}

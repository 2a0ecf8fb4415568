package aggregation

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mucritic/mucritic/internal/cache"
	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	cachemocks "github.com/mucritic/mucritic/internal/mocks/cache"
)

// countingGenerator records how often generation runs.
type countingGenerator struct {
	calls int
	err   error
}

func (g *countingGenerator) Kind() coreagg.Kind { return coreagg.KindTrack }

func (g *countingGenerator) Template(v float64) coreagg.TrackAggregation {
	return NewTrackGenerator(nil, nil).Template(v)
}

func (g *countingGenerator) ConvertFromRaw(t *entity.Track) (coreagg.TrackAggregation, error) {
	return NewTrackGenerator(nil, nil).ConvertFromRaw(t)
}

func (g *countingGenerator) Normalize(a coreagg.TrackAggregation) coreagg.TrackAggregation {
	return NewTrackGenerator(nil, nil).Normalize(a)
}

func (g *countingGenerator) GenerateFromEntity(_ context.Context, t *entity.Track, normalized bool, _ string) (coreagg.TrackAggregation, error) {
	g.calls++
	if g.err != nil {
		return coreagg.TrackAggregation{}, g.err
	}
	agg := coreagg.TrackAggregation{Energy: 0.1 + float64(g.calls)/3, Tempo: 120.5}
	if normalized {
		agg.Tempo = 0.482
	}
	return agg, nil
}

func TestAggregator_CacheKey(t *testing.T) {
	gen := &countingGenerator{}

	tests := []struct {
		name       string
		track      *entity.Track
		normalized bool
		wantKey    string
		wantOK     bool
	}{
		{name: "nil entity", track: nil, wantOK: false},
		{name: "no id", track: &entity.Track{SpotifyID: "abc"}, normalized: true, wantOK: false},
		{name: "raw", track: &entity.Track{ID: 5}, wantKey: "track_5", wantOK: true},
		{name: "normalized", track: &entity.Track{ID: 5}, normalized: true, wantKey: "track_5_normalized", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator[*entity.Track, coreagg.TrackAggregation](tt.track, gen, nil)
			key, ok := agg.CacheKey(tt.normalized)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantKey, key)
		})
	}
}

func TestAggregator_CacheKeyDistinguishesKindAndMode(t *testing.T) {
	e := NewEngine(EngineConfig{})

	raw, _ := e.AlbumAggregator(&entity.Album{ID: 7}).CacheKey(false)
	norm, _ := e.AlbumAggregator(&entity.Album{ID: 7}).CacheKey(true)
	again, _ := e.AlbumAggregator(&entity.Album{ID: 7}).CacheKey(true)
	artist, _ := e.ArtistAggregator(&entity.Artist{ID: 7}).CacheKey(true)

	require.Equal(t, "album_7", raw)
	require.Equal(t, "album_7_normalized", norm)
	require.Equal(t, norm, again)
	require.NotEqual(t, raw, norm)
	require.Equal(t, "artist_7_normalized", artist)
}

func TestAggregator_SecondCallIsCacheHit(t *testing.T) {
	ctx := context.Background()
	gen := &countingGenerator{}
	gw := cache.NewMemoryGateway(16)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	agg := NewAggregator[*entity.Track, coreagg.TrackAggregation](&entity.Track{ID: 3}, gen, gw, WithMetrics(metrics))

	first, err := agg.Aggregate(ctx, true)
	require.NoError(t, err)
	second, err := agg.Aggregate(ctx, true)
	require.NoError(t, err)

	require.Equal(t, 1, gen.calls)
	require.Equal(t, first, second)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheMisses.WithLabelValues("track")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.cacheHits.WithLabelValues("track")))

	// raw and normalized results are cached independently
	raw, err := agg.Aggregate(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, gen.calls)
	require.Equal(t, 120.5, raw.Tempo)
	require.Equal(t, 2, gw.Len())
}

func TestAggregator_NoIDNeverTouchesCache(t *testing.T) {
	ctx := context.Background()
	gen := &countingGenerator{}
	gw := cachemocks.NewGateway(t) // any call fails the test

	agg := NewAggregator[*entity.Track, coreagg.TrackAggregation](&entity.Track{SpotifyID: "abc"}, gen, gw)

	for i := 0; i < 2; i++ {
		out, err := agg.Aggregate(ctx, true)
		require.NoError(t, err)
		require.Equal(t, 0.482, out.Tempo)
	}
	require.Equal(t, 2, gen.calls)
}

func TestAggregator_CacheFailuresDegrade(t *testing.T) {
	ctx := context.Background()
	gen := &countingGenerator{}
	gw := cachemocks.NewGateway(t)
	unavailable := errors.New("dial tcp: connection refused")

	gw.EXPECT().Get(mock.Anything, "track_9").Return(nil, false, unavailable).Once()
	gw.EXPECT().Set(mock.Anything, "track_9", mock.Anything).Return(unavailable).Once()

	agg := NewAggregator[*entity.Track, coreagg.TrackAggregation](&entity.Track{ID: 9}, gen, gw)
	out, err := agg.Aggregate(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 120.5, out.Tempo)
	require.Equal(t, 1, gen.calls)
}

func TestAggregator_CorruptEntryRegenerates(t *testing.T) {
	ctx := context.Background()
	gen := &countingGenerator{}
	gw := cache.NewMemoryGateway(4)
	require.NoError(t, gw.Set(ctx, "track_4", []byte("not json")))

	agg := NewAggregator[*entity.Track, coreagg.TrackAggregation](&entity.Track{ID: 4}, gen, gw)
	_, err := agg.Aggregate(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)

	// the regenerated value replaced the corrupt entry
	_, err = agg.Aggregate(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)
}

func TestAggregator_GeneratorErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	gen := &countingGenerator{err: errors.New("boom")}
	gw := cache.NewMemoryGateway(4)

	agg := NewAggregator[*entity.Track, coreagg.TrackAggregation](&entity.Track{ID: 1}, gen, gw)
	_, err := agg.Aggregate(ctx, true)
	require.ErrorContains(t, err, "boom")
	require.Zero(t, gw.Len())
}

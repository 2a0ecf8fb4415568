package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*RedisGateway, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	gw, err := NewRedisGateway(RedisOptions{Addr: mr.Addr(), TTL: ttl})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	return gw, mr
}

func TestRedisGateway_GetSet(t *testing.T) {
	ctx := context.Background()
	gw, mr := newTestRedis(t, 0)

	_, ok, err := gw.Get(ctx, "artist_7")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, gw.Set(ctx, "artist_7", []byte(`{"active":1}`)))
	got, ok, err := gw.Get(ctx, "artist_7")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"active":1}`, string(got))

	stored, err := mr.Get("artist_7")
	require.NoError(t, err)
	require.Equal(t, `{"active":1}`, stored)
	require.Zero(t, mr.TTL("artist_7"))
}

func TestRedisGateway_TTL(t *testing.T) {
	ctx := context.Background()
	gw, mr := newTestRedis(t, time.Minute)

	require.NoError(t, gw.Set(ctx, "track_1_normalized", []byte("x")))
	require.Equal(t, time.Minute, mr.TTL("track_1_normalized"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := gw.Get(ctx, "track_1_normalized")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisGateway_Unavailable(t *testing.T) {
	ctx := context.Background()
	gw, mr := newTestRedis(t, 0)
	require.NoError(t, gw.Ping(ctx))

	mr.Close()

	_, _, err := gw.Get(ctx, "k")
	require.True(t, errors.Is(err, coreerrors.ErrCacheUnavailable))
	err = gw.Set(ctx, "k", []byte("v"))
	require.True(t, errors.Is(err, coreerrors.ErrCacheUnavailable))
	require.True(t, errors.Is(gw.Ping(ctx), coreerrors.ErrCacheUnavailable))
}

func TestNewRedisGateway_ConnectFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisGateway(RedisOptions{Addr: addr, DialTimeout: 100 * time.Millisecond})
	require.Error(t, err)
	require.True(t, errors.Is(err, coreerrors.ErrCacheUnavailable))
}

func TestNewRedisGateway_RequiresAddr(t *testing.T) {
	_, err := NewRedisGateway(RedisOptions{})
	require.Error(t, err)
}

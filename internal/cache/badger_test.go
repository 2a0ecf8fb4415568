package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
)

func TestBadgerGateway_InMemory(t *testing.T) {
	ctx := context.Background()
	gw, err := OpenBadgerGateway(BadgerOptions{InMemory: true})
	require.NoError(t, err)

	_, ok, err := gw.Get(ctx, "review_2")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, gw.Set(ctx, "review_2", []byte("payload")))
	got, ok, err := gw.Get(ctx, "review_2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("payload"), got)

	require.NoError(t, gw.Ping(ctx))
	require.NoError(t, gw.Close())
	require.True(t, errors.Is(gw.Ping(ctx), coreerrors.ErrCacheUnavailable))
}

func TestBadgerGateway_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")

	gw, err := OpenBadgerGateway(BadgerOptions{Path: dir})
	require.NoError(t, err)
	require.NoError(t, gw.Set(ctx, "profile_9", []byte("p")))
	require.NoError(t, gw.Close())

	gw, err = OpenBadgerGateway(BadgerOptions{Path: dir})
	require.NoError(t, err)
	defer gw.Close()

	got, ok, err := gw.Get(ctx, "profile_9")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("p"), got)
}

func TestOpenBadgerGateway_RequiresPath(t *testing.T) {
	_, err := OpenBadgerGateway(BadgerOptions{})
	require.Error(t, err)
}

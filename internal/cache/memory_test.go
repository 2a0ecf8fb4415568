package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGateway_GetSet(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(4)

	_, ok, err := gw.Get(ctx, "track_1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, gw.Set(ctx, "track_1", []byte("a")))
	got, ok, err := gw.Get(ctx, "track_1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("a"), got)

	require.NoError(t, gw.Set(ctx, "track_1", []byte("b")))
	got, _, _ = gw.Get(ctx, "track_1")
	require.Equal(t, []byte("b"), got)
	require.Equal(t, 1, gw.Len())
}

func TestMemoryGateway_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(2)

	require.NoError(t, gw.Set(ctx, "a", []byte("1")))
	require.NoError(t, gw.Set(ctx, "b", []byte("2")))

	// touch a so b becomes the eviction candidate
	_, ok, _ := gw.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, gw.Set(ctx, "c", []byte("3")))
	require.Equal(t, 2, gw.Len())

	_, ok, _ = gw.Get(ctx, "b")
	require.False(t, ok)
	_, ok, _ = gw.Get(ctx, "a")
	require.True(t, ok)
	_, ok, _ = gw.Get(ctx, "c")
	require.True(t, ok)
}

func TestMemoryGateway_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	gw := NewMemoryGateway(1)

	value := []byte("abc")
	require.NoError(t, gw.Set(ctx, "k", value))
	value[0] = 'x'

	got, _, _ := gw.Get(ctx, "k")
	require.Equal(t, []byte("abc"), got)
	got[1] = 'y'

	again, _, _ := gw.Get(ctx, "k")
	require.Equal(t, []byte("abc"), again)
}

func TestObjectHelpers(t *testing.T) {
	type payload struct {
		Energy float64 `json:"energy"`
		Tracks []int   `json:"tracks"`
	}
	ctx := context.Background()
	gw := NewMemoryGateway(8)

	_, ok, err := GetObject[payload](ctx, gw, "album_3")
	require.NoError(t, err)
	require.False(t, ok)

	in := payload{Energy: 0.125, Tracks: []int{1, 2}}
	require.NoError(t, SetObject(ctx, gw, "album_3", in))

	out, ok, err := GetObject[payload](ctx, gw, "album_3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, out)

	require.NoError(t, gw.Set(ctx, "broken", []byte("{not json")))
	_, ok, err = GetObject[payload](ctx, gw, "broken")
	require.Error(t, err)
	require.False(t, ok)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Options{Backend: "memcached"})
	require.Error(t, err)
}

func TestOpen_Memory(t *testing.T) {
	gw, err := Open(Options{Backend: BackendMemory, MemoryCapacity: 3})
	require.NoError(t, err)
	require.IsType(t, &MemoryGateway{}, gw)
	require.NoError(t, gw.Ping(context.Background()))
}

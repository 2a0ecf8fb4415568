package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/platform/breaker"
)

func newSpotifyStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Track(t *testing.T) {
	var auth atomic.Value
	srv := newSpotifyStub(t, func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/tracks/4uLU6hMCjMI75M1A2tKUQC":
			_, _ = w.Write([]byte(`{"id":"4uLU6hMCjMI75M1A2tKUQC","name":"Never Gonna Give You Up","track_number":1,"explicit":false,"duration_ms":213573,"popularity":78}`))
		case "/v1/audio-features/4uLU6hMCjMI75M1A2tKUQC":
			_, _ = w.Write([]byte(`{"acousticness":0.135,"danceability":0.727,"energy":0.939,"instrumentalness":0,"liveness":0.151,"loudness":-11.855,"mode":1,"speechiness":0.0369,"tempo":113.309,"time_signature":4,"valence":0.916}`))
		default:
			http.NotFound(w, r)
		}
	})

	c, err := NewClient(Options{BaseURL: srv.URL, Token: "secret"})
	require.NoError(t, err)

	track, err := c.Track(context.Background(), "4uLU6hMCjMI75M1A2tKUQC")
	require.NoError(t, err)
	require.Equal(t, "Bearer secret", auth.Load())

	require.Zero(t, track.ID)
	require.Equal(t, "4uLU6hMCjMI75M1A2tKUQC", track.SpotifyID)
	require.Equal(t, "Never Gonna Give You Up", track.Name)
	require.Equal(t, 1, track.TrackNumber)
	require.Equal(t, 213573, track.Duration)
	require.Equal(t, 78, track.Popularity)
	require.NotNil(t, track.Features)
	require.Equal(t, 0.939, track.Features.Energy)
	require.Equal(t, -11.855, track.Features.Loudness)
	require.Equal(t, 1, track.Features.Mode)
	require.Equal(t, 4, track.Features.TimeSignature)
}

func TestClient_TrackErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		id      string
	}{
		{
			name:    "empty id",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			id:      " ",
		},
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) },
			id:      "missing",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			id: "abc",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":`))
			},
			id: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newSpotifyStub(t, tt.handler)
			c, err := NewClient(Options{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = c.Track(context.Background(), tt.id)
			require.Error(t, err)
			require.True(t, errors.Is(err, coreerrors.ErrExternalLookup))
		})
	}
}

func TestClient_BreakerIgnoresClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := newSpotifyStub(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	})

	c, err := NewClient(Options{
		BaseURL: srv.URL,
		Breaker: breaker.Config{FailureThreshold: 1, Timeout: time.Hour},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Track(context.Background(), "missing")
		require.True(t, errors.Is(err, coreerrors.ErrExternalLookup))
	}
	require.Equal(t, int32(3), hits.Load())
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := newSpotifyStub(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c, err := NewClient(Options{
		BaseURL: srv.URL,
		Breaker: breaker.Config{FailureThreshold: 2, Timeout: time.Hour},
	})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := c.Track(context.Background(), "abc")
		require.True(t, errors.Is(err, coreerrors.ErrExternalLookup))
	}
	require.Equal(t, int32(2), hits.Load())
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	srv := newSpotifyStub(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	c, err := NewClient(Options{BaseURL: srv.URL, RequestsPerSecond: 0.001, Burst: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// burst token covers the first request only
	_, err = c.Track(ctx, "abc")
	require.Error(t, err)
	require.True(t, errors.Is(err, coreerrors.ErrExternalLookup))
}

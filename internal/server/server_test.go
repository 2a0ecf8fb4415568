package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok(context.Context) error { return nil }

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]HealthChecker
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name:           "all dependencies reachable",
			checks:         map[string]HealthChecker{"database": pingFunc(ok), "cache": pingFunc(ok)},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]string{"status": "healthy", "database": "connected", "cache": "connected"},
		},
		{
			name: "cache down",
			checks: map[string]HealthChecker{
				"database": pingFunc(ok),
				"cache":    pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }),
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   map[string]string{"status": "unhealthy", "database": "connected", "cache": "unreachable"},
		},
		{
			name:           "no checks",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]string{"status": "healthy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{Addr: ":0", Mode: "release", Checks: tt.checks})

			w := httptest.NewRecorder()
			s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "mucritic_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	s := New(Options{Addr: ":0", Gatherer: reg})
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "mucritic_test_total 1"))
}

func TestServer_NoMetricsWithoutGatherer(t *testing.T) {
	s := New(Options{Addr: ":0"})
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

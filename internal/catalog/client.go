package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/mucritic/mucritic/internal/core/entity"
	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/platform/breaker"
)

const (
	DefaultBaseURL = "https://api.spotify.com"

	maxBodySize = 1 << 20
)

// Options configures the catalog client.
type Options struct {
	BaseURL           string
	Token             string
	RequestsPerSecond float64 // <= 0 disables rate limiting
	Burst             int
	Timeout           time.Duration
	Breaker           breaker.Config
	HTTPClient        *http.Client // overrides Timeout when set
}

// Client resolves track metadata and audio features from the Spotify Web API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[any]
}

// NewClient builds a client from opts.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", opts.BaseURL, err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	bcfg := opts.Breaker
	if bcfg.Name == "" {
		bcfg.Name = "catalog"
	}

	return &Client{
		baseURL: base,
		token:   opts.Token,
		http:    hc,
		limiter: limiter,
		cb:      breaker.New(bcfg),
	}, nil
}

type trackResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TrackNumber int    `json:"track_number"`
	Explicit    bool   `json:"explicit"`
	DurationMS  int    `json:"duration_ms"`
	Popularity  int    `json:"popularity"`
}

type audioFeaturesResponse struct {
	Acousticness     float64 `json:"acousticness"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
	Valence          float64 `json:"valence"`
}

// Track fetches the track and its audio features. The returned entity has
// no database id. Every failure wraps errors.ErrExternalLookup.
func (c *Client) Track(ctx context.Context, spotifyID string) (*entity.Track, error) {
	spotifyID = strings.TrimSpace(spotifyID)
	if spotifyID == "" {
		return nil, fmt.Errorf("%w: empty spotify id", coreerrors.ErrExternalLookup)
	}
	escaped := url.PathEscape(spotifyID)

	var info trackResponse
	if err := c.get(ctx, "/v1/tracks/"+escaped, &info); err != nil {
		return nil, err
	}
	var features audioFeaturesResponse
	if err := c.get(ctx, "/v1/audio-features/"+escaped, &features); err != nil {
		return nil, err
	}

	slog.Debug("[Catalog] Resolved track", "spotify_id", spotifyID, "name", info.Name)
	return &entity.Track{
		SpotifyID:   spotifyID,
		Name:        info.Name,
		TrackNumber: info.TrackNumber,
		Explicit:    info.Explicit,
		Duration:    info.DurationMS,
		Popularity:  info.Popularity,
		Features: &entity.AudioFeatures{
			Acousticness:     features.Acousticness,
			Danceability:     features.Danceability,
			Energy:           features.Energy,
			Instrumentalness: features.Instrumentalness,
			Liveness:         features.Liveness,
			Loudness:         features.Loudness,
			Mode:             features.Mode,
			Speechiness:      features.Speechiness,
			Tempo:            features.Tempo,
			TimeSignature:    features.TimeSignature,
			Valence:          features.Valence,
		},
	}, nil
}

// statusError is a non-2xx answer. 4xx answers do not count against the breaker.
type statusError struct {
	path   string
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.path, e.status, e.body)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limit wait: %w", coreerrors.ErrExternalLookup, err)
		}
	}

	res, err := c.cb.Execute(func() (any, error) {
		body, err := c.do(ctx, path)
		var se *statusError
		if errors.As(err, &se) && se.status < http.StatusInternalServerError {
			return se, nil
		}
		return body, err
	})
	if err != nil {
		if breaker.IsRejection(err) {
			slog.Warn("[Catalog] Request rejected by circuit breaker", "path", path)
		}
		return fmt.Errorf("%w: %w", coreerrors.ErrExternalLookup, err)
	}
	if se, ok := res.(*statusError); ok {
		return fmt.Errorf("%w: %w", coreerrors.ErrExternalLookup, se)
	}

	if err := json.Unmarshal(res.([]byte), out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", coreerrors.ErrExternalLookup, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{path: path, status: resp.StatusCode, body: strings.TrimSpace(string(data))}
	}
	return data, nil
}

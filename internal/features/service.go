package features

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mucritic/mucritic/internal/aggregation"
	coreagg "github.com/mucritic/mucritic/internal/core/aggregation"
	"github.com/mucritic/mucritic/internal/core/entity"
	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/core/storage"
	"github.com/mucritic/mucritic/internal/export"
)

// ErrInvalidRequest marks caller mistakes that should return HTTP 400.
var ErrInvalidRequest = errors.New("invalid request")

const defaultWorkers = 4

// Result is one aggregation together with its unlabeled vector.
type Result struct {
	Kind        coreagg.Kind    `json:"kind"`
	ID          int64           `json:"id"`
	Normalized  bool            `json:"normalized"`
	Fields      []string        `json:"fields"`
	Values      []float64       `json:"values"`
	Aggregation coreagg.Labeled `json:"aggregation"`
}

// ExportRequest selects the entities written to one CSV file.
type ExportRequest struct {
	Kind        coreagg.Kind `json:"kind"`
	IDs         []int64      `json:"ids"`
	Normalized  bool         `json:"normalized"`
	FileName    string       `json:"file_name"`
	SkipMissing bool         `json:"skip_missing"`
}

type ExportResult struct {
	RunID   string  `json:"run_id"`
	Path    string  `json:"path"`
	Rows    int     `json:"rows"`
	Skipped []int64 `json:"skipped"`
}

// kindHandler erases the entity and aggregation types of one kind.
type kindHandler struct {
	fields    func() []string
	aggregate func(ctx context.Context, id int64, normalized bool) (coreagg.Labeled, []float64, error)
	write     func(fileName, baseDir string, aggs []coreagg.Labeled) (string, error)
}

func newKindHandler[E entity.Identifiable, A coreagg.Labeled](
	gen export.Schema[A],
	fetch func(ctx context.Context, id int64) (E, error),
	build func(E) *aggregation.Aggregator[E, A],
) kindHandler {
	return kindHandler{
		fields: func() []string { return export.Fields(gen) },
		aggregate: func(ctx context.Context, id int64, normalized bool) (coreagg.Labeled, []float64, error) {
			e, err := fetch(ctx, id)
			if err != nil {
				return nil, nil, err
			}
			agg, err := build(e).Aggregate(ctx, normalized)
			if err != nil {
				return nil, nil, err
			}
			return agg, export.StripLabels(agg, gen), nil
		},
		write: func(fileName, baseDir string, aggs []coreagg.Labeled) (string, error) {
			typed := make([]A, 0, len(aggs))
			for _, a := range aggs {
				v, ok := a.(A)
				if !ok {
					return "", fmt.Errorf("export %s: unexpected aggregation type %T", gen.Kind(), a)
				}
				typed = append(typed, v)
			}
			return export.WriteToCSV(gen, fileName, baseDir, typed...)
		},
	}
}

// Config holds the collaborators of a Service.
type Config struct {
	Engine     *aggregation.Engine
	Repository storage.Repository
	ExportDir  string
	Workers    int // concurrent aggregations per export; <= 0 uses the default
	Logger     *slog.Logger
}

// Service loads entities by id, aggregates them and exports vectors.
type Service struct {
	engine    *aggregation.Engine
	handlers  map[coreagg.Kind]kindHandler
	exportDir string
	workers   int
	logger    *slog.Logger
}

func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	e, repo := cfg.Engine, cfg.Repository
	handlers := map[coreagg.Kind]kindHandler{
		coreagg.KindTrack: newKindHandler[*entity.Track, coreagg.TrackAggregation](
			e.Tracks, repo.FetchTrack,
			func(t *entity.Track) *aggregation.Aggregator[*entity.Track, coreagg.TrackAggregation] {
				return e.TrackAggregator(t)
			},
		),
		coreagg.KindArtist: newKindHandler[*entity.Artist, coreagg.ArtistAggregation](
			e.Artists, repo.FetchArtist,
			func(a *entity.Artist) *aggregation.Aggregator[*entity.Artist, coreagg.ArtistAggregation] {
				return e.ArtistAggregator(a)
			},
		),
		coreagg.KindAlbum: newKindHandler[*entity.Album, coreagg.AlbumAggregation](
			e.Albums, repo.FetchAlbum,
			func(a *entity.Album) *aggregation.Aggregator[*entity.Album, coreagg.AlbumAggregation] {
				return e.AlbumAggregator(a)
			},
		),
		coreagg.KindReview: newKindHandler[*entity.Review, coreagg.ReviewAggregation](
			e.Reviews,
			func(ctx context.Context, id int64) (*entity.Review, error) {
				return repo.FetchReview(ctx, id, storage.QualifyingAlbums)
			},
			func(r *entity.Review) *aggregation.Aggregator[*entity.Review, coreagg.ReviewAggregation] {
				return e.ReviewAggregator(r)
			},
		),
		coreagg.KindProfile: newKindHandler[*entity.Profile, coreagg.ProfileAggregation](
			e.Profiles, repo.FetchProfile,
			func(p *entity.Profile) *aggregation.Aggregator[*entity.Profile, coreagg.ProfileAggregation] {
				return e.ProfileAggregator(p)
			},
		),
	}

	return &Service{
		engine:    e,
		handlers:  handlers,
		exportDir: cfg.ExportDir,
		workers:   workers,
		logger:    logger,
	}
}

func (s *Service) handler(kind coreagg.Kind) (kindHandler, error) {
	h, ok := s.handlers[kind]
	if !ok {
		return kindHandler{}, fmt.Errorf("%w: %q", coreerrors.ErrUnknownKind, kind)
	}
	return h, nil
}

// Fields returns the column order of kind.
func (s *Service) Fields(kind coreagg.Kind) ([]string, error) {
	h, err := s.handler(kind)
	if err != nil {
		return nil, err
	}
	return h.fields(), nil
}

// Aggregate fetches the entity kind/id with its relations and aggregates it.
func (s *Service) Aggregate(ctx context.Context, kind coreagg.Kind, id int64, normalized bool) (*Result, error) {
	h, err := s.handler(kind)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRequest, id)
	}

	agg, values, err := h.aggregate(ctx, id, normalized)
	if err != nil {
		return nil, err
	}
	return &Result{
		Kind:        kind,
		ID:          id,
		Normalized:  normalized,
		Fields:      h.fields(),
		Values:      values,
		Aggregation: agg,
	}, nil
}

// AggregateCatalogTrack aggregates a track known only by its Spotify id. The
// result has no id and is never cached.
func (s *Service) AggregateCatalogTrack(ctx context.Context, spotifyID string, normalized bool) (*Result, error) {
	spotifyID = strings.TrimSpace(spotifyID)
	if spotifyID == "" {
		return nil, fmt.Errorf("%w: spotify id is required", ErrInvalidRequest)
	}
	if !s.engine.Tracks.HasCatalog() {
		return nil, fmt.Errorf("%w: catalog lookups are disabled", coreerrors.ErrExternalLookup)
	}

	agg, err := s.engine.TrackAggregator(nil, aggregation.WithSpotifyID(spotifyID)).Aggregate(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return &Result{
		Kind:        coreagg.KindTrack,
		Normalized:  normalized,
		Fields:      export.Fields[coreagg.TrackAggregation](s.engine.Tracks),
		Values:      export.StripLabels[coreagg.TrackAggregation](agg, s.engine.Tracks),
		Aggregation: agg,
	}, nil
}

// Export aggregates req.IDs with bounded concurrency and writes them, in input
// order, to one CSV file under the export directory. With SkipMissing set,
// ids that are not found are reported instead of failing the run.
func (s *Service) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	h, err := s.handler(req.Kind)
	if err != nil {
		return nil, err
	}
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", ErrInvalidRequest)
	}
	for _, id := range req.IDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRequest, id)
		}
	}

	runID := uuid.New().String()
	logger := s.logger.With("run_id", runID, "kind", req.Kind)
	start := time.Now()
	logger.Info("[Export] Run started", "ids", len(req.IDs), "normalized", req.Normalized)

	aggs := make([]coreagg.Labeled, len(req.IDs))
	missing := make([]bool, len(req.IDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, id := range req.IDs {
		g.Go(func() error {
			agg, _, err := h.aggregate(gctx, id, req.Normalized)
			if err != nil {
				if req.SkipMissing && errors.Is(err, coreerrors.ErrNotFound) {
					missing[i] = true
					logger.Warn("[Export] Skipping missing entity", "id", id, "error", err)
					return nil
				}
				return fmt.Errorf("aggregate %s %d: %w", req.Kind, id, err)
			}
			aggs[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("[Export] Run failed", "error", err)
		return nil, err
	}

	rows := make([]coreagg.Labeled, 0, len(aggs))
	skipped := []int64{}
	for i, agg := range aggs {
		if missing[i] {
			skipped = append(skipped, req.IDs[i])
			continue
		}
		rows = append(rows, agg)
	}

	path, err := h.write(req.FileName, s.exportDir, rows)
	if err != nil {
		logger.Error("[Export] Write failed", "error", err)
		return nil, err
	}

	logger.Info("[Export] Run completed",
		"path", path,
		"rows", len(rows),
		"skipped", len(skipped),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &ExportResult{RunID: runID, Path: path, Rows: len(rows), Skipped: skipped}, nil
}

// RunManifest runs every export job found in dir, in name order. The first
// failing job stops the run.
func (s *Service) RunManifest(ctx context.Context, dir string) ([]ExportResult, error) {
	jobs, err := export.LoadManifest(dir)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		s.logger.Warn("[Export] No manifest jobs found", "dir", dir)
		return nil, nil
	}

	results := make([]ExportResult, 0, len(jobs))
	for _, job := range jobs {
		res, err := s.Export(ctx, ExportRequest{
			Kind:        job.Kind,
			IDs:         job.IDs,
			Normalized:  job.Normalized,
			FileName:    job.FileName,
			SkipMissing: job.SkipMissing,
		})
		if err != nil {
			return results, fmt.Errorf("manifest job %q: %w", job.Name, err)
		}
		s.logger.Info("[Export] Manifest job completed",
			"job", job.Name,
			"fingerprint", job.Fingerprint,
			"run_id", res.RunID,
		)
		results = append(results, *res)
	}
	return results, nil
}

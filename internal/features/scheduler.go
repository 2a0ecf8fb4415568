package features

import (
	"context"
	"log/slog"
	"time"
)

type manifestRunner interface {
	RunManifest(ctx context.Context, dir string) ([]ExportResult, error)
}

// Scheduler re-runs the export manifests in a directory on a fixed interval.
// A failed run is logged and retried on the next tick.
type Scheduler struct {
	interval time.Duration
	dir      string
	runner   manifestRunner
}

func NewScheduler(interval time.Duration, dir string, runner manifestRunner) *Scheduler {
	return &Scheduler{interval: interval, dir: dir, runner: runner}
}

// Start runs the manifests once immediately, then on every tick until ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting manifest export scheduler",
		"interval", s.interval,
		"dir", s.dir,
	)

	s.runOnce(ctx)
	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()
	results, err := s.runner.RunManifest(ctx, s.dir)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.Error("[Scheduler] Manifest export failed",
			"error", err,
			"completed_jobs", len(results),
		)
		return
	}

	rows := 0
	for _, r := range results {
		rows += r.Rows
	}
	slog.Info("[Scheduler] Manifest export completed",
		"jobs", len(results),
		"rows", rows,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

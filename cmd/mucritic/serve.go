package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mucritic/mucritic/internal/features"
	"github.com/mucritic/mucritic/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the aggregation HTTP API",
	Long: `Serve aggregations and exports over HTTP.

Routes:
  GET  /health
  GET  /metrics
  GET  /v1/aggregations/:kind/:id?normalized=true|false
  GET  /v1/fields/:kind
  GET  /v1/catalog/tracks/:spotify_id?normalized=true|false
  POST /v1/exports`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := server.New(server.Options{
		Addr:          fmtAddr(cfg.Server.Host, cfg.Server.Port),
		Mode:          cfg.Server.Mode,
		MaxBodySizeMB: cfg.Server.MaxBodySizeMB,
		Checks: map[string]server.HealthChecker{
			"database": a.repo,
			"cache":    a.cache,
		},
		Gatherer: a.registry,
	})
	a.service.RegisterRoutes(srv.Engine)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Export.ScheduleInterval > 0 {
		scheduler := features.NewScheduler(cfg.Export.ScheduleInterval, cfg.Export.ManifestDir, a.service)
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("[Scheduler] Stopped with error", "error", err)
			}
		}()
	} else {
		slog.Info("[Scheduler] Manifest export scheduler disabled by config")
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}
	slog.Info("Shutdown complete")
	return nil
}

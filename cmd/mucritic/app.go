package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mucritic/mucritic/internal/aggregation"
	"github.com/mucritic/mucritic/internal/cache"
	"github.com/mucritic/mucritic/internal/catalog"
	corecfg "github.com/mucritic/mucritic/internal/core/config"
	"github.com/mucritic/mucritic/internal/core/storage/postgres"
	"github.com/mucritic/mucritic/internal/features"
	"github.com/mucritic/mucritic/internal/migrations"
	"github.com/mucritic/mucritic/internal/platform/breaker"
)

// app holds the wired collaborators shared by every command.
type app struct {
	cfg      *corecfg.Config
	repo     *postgres.Adapter
	cache    cache.Gateway
	registry *prometheus.Registry
	engine   *aggregation.Engine
	service  *features.Service
}

func newApp(cfg *corecfg.Config) (*app, error) {
	db, err := postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := migrations.RunMigrations(db, cfg.Database.AutoMigrate); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	repo, err := postgres.FromDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	gw, err := cache.Open(cacheOptions(cfg))
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	slog.Info("[Cache] Gateway ready", "backend", cfg.Cache.Backend, "ttl", cfg.Cache.TTL)

	var resolver aggregation.TrackResolver
	if cfg.Catalog.Enabled {
		client, err := catalog.NewClient(catalogOptions(cfg))
		if err != nil {
			gw.Close()
			repo.Close()
			return nil, fmt.Errorf("failed to create catalog client: %w", err)
		}
		resolver = client
		slog.Info("[Catalog] Spotify lookups enabled",
			"base_url", cfg.Catalog.BaseURL,
			"requests_per_second", cfg.Catalog.RequestsPerSecond,
		)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	engine := aggregation.NewEngine(aggregation.EngineConfig{
		Repository: repo,
		Catalog:    resolver,
		Cache:      gw,
		Metrics:    aggregation.NewMetrics(registry),
		Logger:     slog.Default(),
	})

	svc := features.NewService(features.Config{
		Engine:     engine,
		Repository: repo,
		ExportDir:  cfg.Export.BaseDir,
		Workers:    cfg.Export.Workers,
		Logger:     slog.Default(),
	})

	return &app{
		cfg:      cfg,
		repo:     repo,
		cache:    gw,
		registry: registry,
		engine:   engine,
		service:  svc,
	}, nil
}

func (a *app) Close() {
	if err := a.cache.Close(); err != nil {
		slog.Warn("[Cache] Close failed", "error", err)
	}
	if err := a.repo.Close(); err != nil {
		slog.Warn("[Postgres] Close failed", "error", err)
	}
}

func breakerConfig(name string, c corecfg.BreakerConfig) breaker.Config {
	return breaker.Config{
		Name:             name,
		MaxRequests:      c.MaxRequests,
		Interval:         c.Interval,
		Timeout:          c.Timeout,
		FailureThreshold: c.FailureThreshold,
	}
}

func cacheOptions(cfg *corecfg.Config) cache.Options {
	c := cfg.Cache
	return cache.Options{
		Backend: c.Backend,
		TTL:     c.TTL,
		Redis: cache.RedisOptions{
			Addr:        c.Redis.Addr,
			Password:    c.Redis.Password,
			DB:          c.Redis.DB,
			DialTimeout: c.Redis.DialTimeout,
		},
		Badger: cache.BadgerOptions{
			Path:     c.Badger.Path,
			InMemory: c.Badger.InMemory,
			Logger:   slog.Default(),
		},
		MemoryCapacity: c.Memory.Capacity,
		Breaker:        breakerConfig("cache-"+c.Backend, c.Breaker),
		DisableBreaker: !c.Breaker.Enabled,
	}
}

func catalogOptions(cfg *corecfg.Config) catalog.Options {
	c := cfg.Catalog
	return catalog.Options{
		BaseURL:           c.BaseURL,
		Token:             c.Token,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
		Timeout:           c.Timeout,
		Breaker:           breakerConfig("catalog", c.Breaker),
	}
}

// openDB is used by commands that only need a raw connection.
func openDB(cfg *corecfg.Config) (*sql.DB, error) {
	return postgres.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
)

// BadgerOptions configures the embedded on-disk cache.
type BadgerOptions struct {
	Path     string
	InMemory bool
	TTL      time.Duration
	Logger   *slog.Logger // nil silences badger's own logging
}

// BadgerGateway persists aggregations in a local Badger database, so repeated
// offline export runs on one machine reuse earlier work without a Redis server.
type BadgerGateway struct {
	db  *badger.DB
	ttl time.Duration
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadgerGateway opens (or creates) the database described by opts.
func OpenBadgerGateway(opts BadgerOptions) (*BadgerGateway, error) {
	if !opts.InMemory && opts.Path == "" {
		return nil, errors.New("badger path is required for a persistent cache")
	}

	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create cache directory %s: %w", opts.Path, err)
		}
		bopts = badger.DefaultOptions(opts.Path)
	}
	bopts = bopts.WithNumVersionsToKeep(1)

	if opts.Logger != nil {
		bopts = bopts.WithLogger(&badgerLogger{logger: opts.Logger})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}

	slog.Info("[Cache] Badger gateway opened", "path", opts.Path, "in_memory", opts.InMemory, "ttl", opts.TTL)
	return &BadgerGateway{db: db, ttl: opts.TTL}, nil
}

func (g *BadgerGateway) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger get %q: %w: %w", key, coreerrors.ErrCacheUnavailable, err)
	}
	return value, true, nil
}

func (g *BadgerGateway) Set(_ context.Context, key string, value []byte) error {
	err := g.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if g.ttl > 0 {
			entry = entry.WithTTL(g.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w: %w", key, coreerrors.ErrCacheUnavailable, err)
	}
	return nil
}

func (g *BadgerGateway) Ping(context.Context) error {
	if g.db.IsClosed() {
		return fmt.Errorf("badger: %w: database closed", coreerrors.ErrCacheUnavailable)
	}
	return nil
}

func (g *BadgerGateway) Close() error {
	return g.db.Close()
}

package cache

import (
	"context"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
	"github.com/mucritic/mucritic/internal/platform/breaker"
)

// BreakerGateway fails fast with ErrCacheUnavailable while the wrapped
// gateway keeps erroring, so an unreachable cache does not add a network
// timeout to every aggregation.
type BreakerGateway struct {
	next Gateway
	cb   *gobreaker.CircuitBreaker[any]
}

type lookup struct {
	value []byte
	ok    bool
}

// WithBreaker wraps next with a circuit breaker.
func WithBreaker(next Gateway, cfg breaker.Config) *BreakerGateway {
	if cfg.Name == "" {
		cfg.Name = "cache"
	}
	return &BreakerGateway{next: next, cb: breaker.New(cfg)}
}

func (g *BreakerGateway) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := g.cb.Execute(func() (any, error) {
		value, ok, err := g.next.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return lookup{value: value, ok: ok}, nil
	})
	if err != nil {
		return nil, false, g.wrap(err)
	}
	l := res.(lookup)
	return l.value, l.ok, nil
}

func (g *BreakerGateway) Set(ctx context.Context, key string, value []byte) error {
	_, err := g.cb.Execute(func() (any, error) {
		return nil, g.next.Set(ctx, key, value)
	})
	return g.wrap(err)
}

func (g *BreakerGateway) Ping(ctx context.Context) error {
	return g.next.Ping(ctx)
}

func (g *BreakerGateway) Close() error {
	return g.next.Close()
}

// State reports the breaker state for health output.
func (g *BreakerGateway) State() string {
	return g.cb.State().String()
}

func (g *BreakerGateway) wrap(err error) error {
	if err == nil {
		return nil
	}
	if breaker.IsRejection(err) {
		return fmt.Errorf("cache breaker: %w: %w", coreerrors.ErrCacheUnavailable, err)
	}
	return err
}

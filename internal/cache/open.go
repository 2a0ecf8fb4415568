package cache

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mucritic/mucritic/internal/platform/breaker"
)

// Backend names accepted by Open.
const (
	BackendRedis  = "redis"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend        string
	TTL            time.Duration
	Redis          RedisOptions
	Badger         BadgerOptions
	MemoryCapacity int

	// Breaker wraps remote backends; a zero FailureThreshold keeps the default.
	Breaker        breaker.Config
	DisableBreaker bool
}

// Open builds the configured gateway. Redis is wrapped in a circuit breaker
// unless DisableBreaker is set; local backends are not.
func Open(opts Options) (Gateway, error) {
	switch opts.Backend {
	case BackendRedis:
		ropts := opts.Redis
		if ropts.TTL == 0 {
			ropts.TTL = opts.TTL
		}
		gw, err := NewRedisGateway(ropts)
		if err != nil {
			return nil, err
		}
		if opts.DisableBreaker {
			return gw, nil
		}
		bcfg := opts.Breaker
		if bcfg.Name == "" {
			bcfg.Name = "cache-redis"
		}
		return WithBreaker(gw, bcfg), nil

	case BackendBadger:
		bopts := opts.Badger
		if bopts.TTL == 0 {
			bopts.TTL = opts.TTL
		}
		return OpenBadgerGateway(bopts)

	case BackendMemory, "":
		slog.Info("[Cache] Using in-memory gateway", "capacity", opts.MemoryCapacity)
		return NewMemoryGateway(opts.MemoryCapacity), nil

	default:
		return nil, fmt.Errorf("unsupported cache backend %q", opts.Backend)
	}
}

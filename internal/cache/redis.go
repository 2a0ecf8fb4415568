package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	coreerrors "github.com/mucritic/mucritic/internal/core/errors"
)

const redisConnectTimeout = 5 * time.Second

// RedisOptions configures the shared Redis cache.
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	TTL         time.Duration // 0 keeps entries until evicted by Redis
}

// RedisGateway stores aggregations in Redis.
type RedisGateway struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisGateway connects to Redis and verifies the connection with a PING.
func NewRedisGateway(opts RedisOptions) (*RedisGateway, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = redisConnectTimeout
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w: %w", coreerrors.ErrCacheUnavailable, err)
	}

	slog.Info("[Cache] Redis gateway connected", "addr", opts.Addr, "db", opts.DB, "ttl", opts.TTL)
	return NewRedisGatewayFromClient(rdb, opts.TTL), nil
}

// NewRedisGatewayFromClient wraps an existing client.
func NewRedisGatewayFromClient(rdb *goredis.Client, ttl time.Duration) *RedisGateway {
	return &RedisGateway{rdb: rdb, ttl: ttl}
}

func (g *RedisGateway) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := g.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w: %w", key, coreerrors.ErrCacheUnavailable, err)
	}
	return val, true, nil
}

func (g *RedisGateway) Set(ctx context.Context, key string, value []byte) error {
	if err := g.rdb.Set(ctx, key, value, g.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w: %w", key, coreerrors.ErrCacheUnavailable, err)
	}
	return nil
}

func (g *RedisGateway) Ping(ctx context.Context) error {
	if err := g.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w: %w", coreerrors.ErrCacheUnavailable, err)
	}
	return nil
}

func (g *RedisGateway) Close() error {
	return g.rdb.Close()
}

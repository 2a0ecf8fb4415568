package cache

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// Gateway is a best-effort key-value store for computed aggregations.
// Implementations wrap connectivity failures with errors.ErrCacheUnavailable.
type Gateway interface {
	// Get returns the stored value; ok is false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// GetObject reads key and decodes it into T.
func GetObject[T any](ctx context.Context, g Gateway, key string) (T, bool, error) {
	var out T
	raw, ok, err := g.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode cached value %q: %w", key, err)
	}
	return out, true, nil
}

// SetObject encodes value and stores it under key.
func SetObject[T any](ctx context.Context, g Gateway, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}
	return g.Set(ctx, key, raw)
}

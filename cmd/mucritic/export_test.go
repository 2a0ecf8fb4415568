package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	corecfg "github.com/mucritic/mucritic/internal/core/config"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs(" 3, 1,,2 ")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, ids)

	_, err = parseIDs("1,x")
	require.ErrorContains(t, err, `invalid id "x"`)

	_, err = parseIDs("")
	require.ErrorContains(t, err, "--ids is required")
}

func TestCacheOptions(t *testing.T) {
	cfg, err := corecfg.Load("")
	require.NoError(t, err)
	cfg.Cache.Backend = "redis"
	cfg.Cache.Breaker.Enabled = false

	opts := cacheOptions(cfg)
	require.Equal(t, "redis", opts.Backend)
	require.Equal(t, cfg.Cache.TTL, opts.TTL)
	require.Equal(t, "localhost:6379", opts.Redis.Addr)
	require.Equal(t, "cache-redis", opts.Breaker.Name)
	require.True(t, opts.DisableBreaker)

	copts := catalogOptions(cfg)
	require.Equal(t, "catalog", copts.Breaker.Name)
	require.Equal(t, cfg.Catalog.Timeout, copts.Timeout)
}

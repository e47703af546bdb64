package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newCacheClient(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetCache(ctx, rdb, "k", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	found, err := GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)

	require.NoError(t, DeleteCache(ctx, rdb, "k"))
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheMiss(t *testing.T) {
	ctx := context.Background()
	rdb := newCacheClient(t)

	var got string
	found, err := GetCache(ctx, rdb, "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheNilClient(t *testing.T) {
	ctx := context.Background()

	// a nil client disables caching without errors
	require.NoError(t, SetCache(ctx, nil, "k", "v", time.Minute))
	require.NoError(t, DeleteCache(ctx, nil, "k"))

	var got string
	found, err := GetCache(ctx, nil, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(mr.Addr(), "", 0)
}

func TestCacheSetGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, cache.Set(ctx, "products:1", payload{Name: "Servo Arm", Price: 10}))

	data, err := cache.Get(ctx, "products:1")
	require.NoError(t, err)

	var got payload
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Servo Arm", got.Name)
	assert.Equal(t, 10.0, got.Price)
}

func TestCacheGet_Miss(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "products:missing")
	assert.Error(t, err)
}

func TestCacheDeleteByPrefix(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "products:1", "a"))
	require.NoError(t, cache.Set(ctx, "products:list", "b"))
	require.NoError(t, cache.Set(ctx, "jobs:list", "c"))

	require.NoError(t, cache.DeleteByPrefix(ctx, "products:"))

	_, err := cache.Get(ctx, "products:1")
	assert.Error(t, err)
	_, err = cache.Get(ctx, "products:list")
	assert.Error(t, err)

	data, err := cache.Get(ctx, "jobs:list")
	require.NoError(t, err)
	assert.Equal(t, `"c"`, string(data))
}

func TestCachePing(t *testing.T) {
	cache := newTestCache(t)
	assert.NoError(t, cache.Ping(context.Background()))
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*redisQueryCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewQueryCache(client).(*redisQueryCache), mr
}

type feedPage struct {
	IDs []string `json:"ids"`
}

func TestQueryCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var miss feedPage
	hit, err := c.Get(ctx, "listings:all:abc", &miss)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "listings:all:abc", feedPage{IDs: []string{"a", "b"}}, time.Minute))

	var got feedPage
	hit, err = c.Get(ctx, "listings:all:abc", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, got.IDs)

	mr.FastForward(2 * time.Minute)
	hit, err = c.Get(ctx, "listings:all:abc", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestQueryCache_InvalidatePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "listings:all:1", 1, time.Hour))
	require.NoError(t, c.Set(ctx, "listings:all:2", 2, time.Hour))
	require.NoError(t, c.Set(ctx, "geocode:fwd:x", 3, time.Hour))

	require.NoError(t, c.InvalidatePrefix(ctx, "listings:all"))

	assert.False(t, mr.Exists("listings:all:1"))
	assert.False(t, mr.Exists("listings:all:2"))
	assert.True(t, mr.Exists("geocode:fwd:x"))

	require.NoError(t, c.InvalidatePrefix(ctx, "nothing"))
}

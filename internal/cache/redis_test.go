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

type cachedPost struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var out cachedPost
	assert.False(t, GetJSON(context.Background(), PostKey(42), &out))
}

func TestSetJSONRoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	SetJSON(ctx, PostKey(1), cachedPost{ID: 1, Title: "Hello"}, PostTTL)

	var out cachedPost
	require.True(t, GetJSON(ctx, PostKey(1), &out))
	assert.Equal(t, uint(1), out.ID)
	assert.Equal(t, "Hello", out.Title)
}

func TestInvalidatePost(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	SetJSON(ctx, PostKey(7), cachedPost{ID: 7}, PostTTL)
	SetJSON(ctx, PostSlugKey("hello-world"), cachedPost{ID: 7}, PostTTL)
	SetJSON(ctx, StatsKey(), map[string]int{"published": 3}, StatsTTL)

	InvalidatePost(ctx, 7, "hello-world")

	assert.False(t, mr.Exists(PostKey(7)))
	assert.False(t, mr.Exists(PostSlugKey("hello-world")))
	assert.False(t, mr.Exists(StatsKey()))
}

func TestNilClientIsSafe(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	SetJSON(ctx, PostKey(1), cachedPost{ID: 1}, time.Minute)
	var out cachedPost
	assert.False(t, GetJSON(ctx, PostKey(1), &out))
	Invalidate(ctx, PostKey(1))
}

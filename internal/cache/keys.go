package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix     = "post:%d"
	PostSlugKeyPrefix = "post:slug:%s"
	StatsKeyName      = "blog:stats"
	FrontPageKeyName  = "blog:posts:front"
)

const (
	PostTTL  = 30 * time.Minute
	StatsTTL = 5 * time.Minute
	ListTTL  = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func PostSlugKey(slug string) string {
	return fmt.Sprintf(PostSlugKeyPrefix, slug)
}

func StatsKey() string {
	return StatsKeyName
}

// FrontPageKey caches the default anonymous post listing.
func FrontPageKey() string {
	return FrontPageKeyName
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops both lookup paths for a post plus the cached stats
// and front-page listing, which both reflect post writes.
func InvalidatePost(ctx context.Context, postID uint, slug string) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostSlugKey(slug))
	Invalidate(ctx, StatsKey())
	Invalidate(ctx, FrontPageKey())
}

// InvalidateTaxonomy drops the aggregates touched by category and tag
// writes: stats count them, and the front-page listing preloads them.
func InvalidateTaxonomy(ctx context.Context) {
	Invalidate(ctx, StatsKey())
	Invalidate(ctx, FrontPageKey())
}

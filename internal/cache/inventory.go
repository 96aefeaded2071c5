package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	CategorySlugPrefix = "category:%s"
	UsernamePrefix     = "user:name:%s"
	HomeFeedPagePrefix = "feed:home:p%d"
)

const (
	CategoryTTL = 10 * time.Minute
	UserTTL     = 5 * time.Minute
	FeedTTL     = 1 * time.Minute
)

func CategoryKey(slug string) string {
	return fmt.Sprintf(CategorySlugPrefix, slug)
}

func UsernameKey(username string) string {
	return fmt.Sprintf(UsernamePrefix, username)
}

func HomeFeedKey(page int) string {
	return fmt.Sprintf(HomeFeedPagePrefix, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateCategory(ctx context.Context, slug string) {
	Invalidate(ctx, CategoryKey(slug))
}

func InvalidateUsername(ctx context.Context, username string) {
	Invalidate(ctx, UsernameKey(username))
}

// InvalidateHomeFeed drops the cached first feed page. Only the first page
// is ever cached, so a single delete suffices.
func InvalidateHomeFeed(ctx context.Context) {
	Invalidate(ctx, HomeFeedKey(1))
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"careerline.app/studio/internal/model"
)

const keyPrefix = "careerline:page:"

// redisKV is the slice of redis.Cmdable the page cache uses.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// PageCache stores rendered public pages as JSON under careerline:page:<slug>.
type PageCache struct {
	client redisKV
	ttl    time.Duration
}

func NewPageCache(client redisKV, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

func Key(slug string) string {
	return keyPrefix + slug
}

func (c *PageCache) Get(ctx context.Context, slug string) (*model.PublicPage, bool, error) {
	raw, err := c.client.Get(ctx, Key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading page cache: %w", err)
	}

	var page model.PublicPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, false, fmt.Errorf("decoding cached page: %w", err)
	}
	return &page, true, nil
}

func (c *PageCache) Set(ctx context.Context, slug string, page *model.PublicPage) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encoding page: %w", err)
	}
	if err := c.client.Set(ctx, Key(slug), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing page cache: %w", err)
	}
	return nil
}

func (c *PageCache) Invalidate(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, Key(slug)).Err(); err != nil {
		return fmt.Errorf("invalidating page cache: %w", err)
	}
	return nil
}

// Disabled is used when PAGE_CACHE_TTL_SECONDS is zero. Every read misses.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (*model.PublicPage, bool, error) { return nil, false, nil }
func (Disabled) Set(context.Context, string, *model.PublicPage) error         { return nil }
func (Disabled) Invalidate(context.Context, string) error                     { return nil }

package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

const menuCacheKey = "menu:visible"

// RedisMenuCache keeps the customer-facing menu listing hot. It is strictly
// an accelerator: every error path reads as a cache miss.
type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	data, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *RedisMenuCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuCacheKey, data, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}

var _ service.MenuCache = (*RedisMenuCache)(nil)

package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin wrapper over redis used for the treatment catalog. A nil
// *Cache is a no-op so the API keeps working when redis is unreachable.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil
	}

	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, value, ttl)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, keys...)
}

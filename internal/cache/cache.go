package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin optional layer over redis. A nil *Cache (no REDIS_ADDR
// configured) degrades every call to a miss, so handlers never branch on
// whether caching is enabled.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable at %s, caching disabled: %v", addr, err)
		return nil
	}

	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("cache get %s: %v", key, err)
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, val string, ttl time.Duration) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache delete: %v", err)
	}
}

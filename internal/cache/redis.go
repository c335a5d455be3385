package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort JSON cache over Redis. When no Redis URL is
// configured, or the connection fails, every method degrades to a miss so
// callers never branch on whether caching is available.
type Cache struct {
	client  *redis.Client
	enabled bool
}

// New connects to Redis if redisURL is non-empty. Connection problems
// disable the cache rather than failing startup.
func New(redisURL string) *Cache {
	if redisURL == "" {
		log.Println("Redis URL not provided, caching disabled")
		return &Cache{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v, caching disabled", err)
		return &Cache{}
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v, caching disabled", err)
		client.Close()
		return &Cache{}
	}

	log.Println("Redis cache initialized successfully")
	return &Cache{client: client, enabled: true}
}

func (c *Cache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c == nil || !c.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil || !c.enabled {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil || !c.enabled {
		return nil
	}

	return c.client.Del(ctx, key).Err()
}

package rdx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key for the cached landing-page event summaries. Busted on every event
// write, repopulated on the next landing read.
const HomeEventsKey = "home:events"

// Cache is a thin JSON wrapper over the shared Redis connection.
type Cache struct {
	Conn *redis.Client
}

func New(addr string) *Cache {
	return &Cache{
		Conn: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// GetJSON reads key into dest. The bool reports whether the key was present.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.Conn.Set(ctx, key, data, ttl).Err()
}

// Del removes keys; a cache miss afterwards is the expected outcome, so
// errors here are returned for logging only.
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.Conn.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	return c.Conn.Close()
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func keyDate(date string) string { return "picks:date:" + date }

func (c *Cache) GetPicks(ctx context.Context, date string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyDate(date)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetPicks(ctx context.Context, date string, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keyDate(date), b, ttl).Err()
}

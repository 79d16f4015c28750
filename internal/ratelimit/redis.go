package ratelimit

import (
	"context"
	"time"

	"github.com/Domenick1991/airline-records/config"
	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter backed by redis. One key per caller per
// window; the first increment sets the window expiry.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewLimiter(cfg config.RedisConfig, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the caller identified by key may proceed.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Incr(ctx, windowKey(key)).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		_ = l.client.Expire(ctx, windowKey(key), l.window).Err()
	}
	return count <= int64(l.limit), nil
}

func (l *Limiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

func windowKey(key string) string {
	return "ratelimit:" + key
}

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const keyPrefix = "portfolio:contact:"

// incrWindow counts one hit and makes sure the key carries a TTL. Running both
// in one script keeps a failed expiry from leaving a counter that never resets.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

// FixedWindow allows limit actions per key in each window, counted in Redis so
// every server instance shares the budget.
type FixedWindow struct {
	rdb    redis.Scripter
	limit  int64
	window time.Duration
}

var _ service.Limiter = (*FixedWindow)(nil)

func NewFixedWindow(rdb redis.Scripter, limit int64, window time.Duration) *FixedWindow {
	return &FixedWindow{rdb: rdb, limit: limit, window: window}
}

func (l *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}
	k := keyPrefix + key

	n, err := incrWindow.Run(ctx, l.rdb, []string{k}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to count contact attempt: %w", err)
	}
	return n <= l.limit, nil
}

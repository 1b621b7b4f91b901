package readiness

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisChecker probes a Redis server.
type RedisChecker struct {
	Addr     string // host:port
	Password string
	DB       int
}

// Name implements Checker.
func (c *RedisChecker) Name() string { return "redis" }

// Check pings the server.
func (c *RedisChecker) Check(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

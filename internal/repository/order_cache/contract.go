//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_cache_test
package order_cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"logistics/pkg/logger"
)

type cacheLogger interface {
	Warn(msg string, fields ...logger.Field)
}

type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

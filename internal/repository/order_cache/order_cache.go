package order_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

const (
	keyPrefix = "order:"
	// надгробие под ключом заказа: Set его не перезаписывает, Get считает промахом
	tombstone = "-"
)

// Cache хранит заказы в Redis в JSON. Ошибки чтения и записи логируются и
// считаются промахом; ошибку вызывающему возвращает только Invalidate.
type Cache struct {
	client client
	log    cacheLogger
	ttl    time.Duration
}

func New(log cacheLogger, client client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context, id int64) (*entities.Order, bool) {
	data, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("order cache get failed",
				logger.NewField("order", id),
				logger.NewField("error", err),
			)
		}
		return nil, false
	}
	if string(data) == tombstone {
		return nil, false
	}

	var cached orderCache
	if err := json.Unmarshal(data, &cached); err != nil {
		c.log.Warn("order cache entry is corrupted",
			logger.NewField("order", id),
			logger.NewField("error", err),
		)
		return nil, false
	}

	return cached.toDomain(), true
}

func (c *Cache) Set(ctx context.Context, order *entities.Order) {
	if order == nil {
		return
	}

	data, err := json.Marshal(fromDomain(order))
	if err != nil {
		c.log.Warn("order cache encode failed",
			logger.NewField("order", order.ID),
			logger.NewField("error", err),
		)
		return
	}

	// SET NX: чтение, начатое до удаления или смены статуса, не затрет надгробие
	err = c.client.SetNX(ctx, key(order.ID), data, c.ttl).Err()
	if err != nil {
		c.log.Warn("order cache set failed",
			logger.NewField("order", order.ID),
			logger.NewField("error", err),
		)
	}
}

// Invalidate заменяет записи ids надгробиями на один TTL, чтобы параллельное
// чтение не вернуло в кеш устаревший заказ. Вызывается внутри транзакции,
// меняющей заказы: ошибка отменяет изменение.
func (c *Cache) Invalidate(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		err := c.client.Set(ctx, key(id), tombstone, c.ttl).Err()
		if err != nil {
			return fmt.Errorf("invalidate cached order %d: %w", id, err)
		}
	}
	return nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

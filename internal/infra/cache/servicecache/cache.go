package servicecache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

// Кеш каталога услуг поверх Redis. Каталог маленький и читается на каждый
// запрос слотов, поэтому кешируется целиком одним снапшотом.
// Кеш fail-open: любая ошибка Redis деградирует в чтение из хранилища.

const catalogKey = "salon:services:catalog"

// Loader источник каталога при промахе кеша (репозиторий услуг)
type Loader interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Cache кеширующая обёртка над каталогом услуг
type Cache struct {
	rdb    *redis.Client
	loader Loader
	ttl    time.Duration
	logger Logger
}

// New создает кеш каталога. При nil rdb (Redis выключен в конфигурации)
// все чтения идут напрямую в loader.
func New(rdb *redis.Client, loader Loader, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		rdb:    rdb,
		loader: loader,
		ttl:    ttl,
		logger: logger,
	}
}

// List возвращает каталог услуг: из Redis, либо из хранилища с
// репопуляцией кеша
func (c *Cache) List(ctx context.Context) ([]*domain.Service, error) {
	if c.rdb == nil {
		return c.loader.List(ctx)
	}

	payload, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err == nil {
		var services []*domain.Service
		if err := json.Unmarshal(payload, &services); err == nil {
			c.logger.Debug("servicecache: catalog hit, %d services", len(services))
			return services, nil
		}
		// Битый снапшот перезапишем свежими данными
		c.logger.Warn("servicecache: corrupted catalog snapshot, reloading")
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("servicecache: redis get failed, falling back to storage: %v", err)
	}

	services, err := c.loader.List(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, services)
	return services, nil
}

// Invalidate сбрасывает снапшот каталога. Вызывается при создании и
// удалении услуги.
func (c *Cache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warn("servicecache: failed to invalidate catalog: %v", err)
	}
}

func (c *Cache) store(ctx context.Context, services []*domain.Service) {
	payload, err := json.Marshal(services)
	if err != nil {
		c.logger.Warn("servicecache: failed to marshal catalog: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("servicecache: failed to store catalog: %v", err)
	}
}

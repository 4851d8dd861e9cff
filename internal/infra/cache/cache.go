// Package cache реализует read-through кеш результатов чтения поверх Redis.
//
// Кеш не является источником истины: любая ошибка чтения (недоступность
// Redis, битый payload) трактуется как промах, и вызывающая сторона
// пересчитывает ответ из хранилища. Инвалидация грубая: любая мутация
// удаляет оба семейства ключей через курсорный SCAN.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL время жизни записей обоих семейств ключей
const DefaultTTL = 300 * time.Second

// scanBatchSize размер страницы курсорного SCAN при инвалидации
const scanBatchSize = 100

// Cache кеш результатов чтения поверх Redis
type Cache struct {
	client *redis.Client
	log    Logger
}

// New создает новый кеш поверх готового Redis-клиента
func New(client *redis.Client, log Logger) *Cache {
	return &Cache{
		client: client,
		log:    log,
	}
}

// Get читает и десериализует значение по ключу.
// Возвращает false при промахе, а также при любой ошибке Redis или
// некорректном payload - чтение всегда может продолжиться мимо кеша.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("cache: Get %s failed, treating as miss: %v", key, err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("cache: Get %s - malformed payload, treating as miss: %v", key, err)
		return false
	}

	return true
}

// Set сериализует и сохраняет значение с TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache: Set %s: %w", key, err)
	}

	return nil
}

// InvalidateAll удаляет все ключи обоих семейств (списки и доступность).
// Вызывается после каждой мутации бронирований.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	for _, prefix := range []string{ListingKeyPrefix, AvailabilityKeyPrefix} {
		if err := c.scanDelete(ctx, prefix+"*"); err != nil {
			return err
		}
	}
	return nil
}

// scanDelete удаляет все ключи по паттерну через курсорный SCAN.
// SCAN вместо KEYS: не блокирует Redis на больших keyspace.
// Итерация продолжается, пока курсор не вернется в 0; найденные ключи
// удаляются пачками по мере обхода.
func (c *Cache) scanDelete(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("%w: scan %s: %v", ErrInvalidate, pattern, err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: del %s: %v", ErrInvalidate, pattern, err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

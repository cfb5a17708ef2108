package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mallofcayman/catalog-api/internal/application/ports"
)

var _ ports.SelectionCache = (*RedisSelectionCache)(nil)

const (
	redisKeyPrefix     = "catalog:selection:"
	redisScanBatchSize = 200
)

// RedisSelectionCache caché compartida entre réplicas del servicio.
// La versión del snapshot forma parte de la clave, así que un cambio de categorías nunca lee datos viejos.
type RedisSelectionCache struct {
	rdb       *redis.Client
	scanCount int64
}

// NewRedisSelectionCache construye el adaptador sobre un cliente existente.
func NewRedisSelectionCache(rdb *redis.Client) *RedisSelectionCache {
	return &RedisSelectionCache{rdb: rdb, scanCount: redisScanBatchSize}
}

// RedisKey clave de una selección: catalog:selection:<version>:<nombre normalizado>.
func RedisKey(version, name string) string {
	return redisKeyPrefix + version + ":" + strings.TrimSpace(name)
}

// Get implementa ports.SelectionCache.
func (c *RedisSelectionCache) Get(ctx context.Context, version, name string) ([]string, bool, error) {
	raw, err := c.rdb.Get(ctx, RedisKey(version, name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("redis decode: %w", err)
	}
	return ids, true, nil
}

// Set implementa ports.SelectionCache.
func (c *RedisSelectionCache) Set(ctx context.Context, version, name string, ids []string, ttl time.Duration) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := c.rdb.Set(ctx, RedisKey(version, name), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate borra todas las claves del prefijo usando SCAN (no bloquea Redis como KEYS).
func (c *RedisSelectionCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, redisKeyPrefix+"*", c.scanCount).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

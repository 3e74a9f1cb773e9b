package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

const listKey = "catalog:cakes"

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetList(ctx context.Context) ([]domain.Cake, error) {
	data, err := r.client.Get(ctx, listKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cakes []domain.Cake
	if err := json.Unmarshal(data, &cakes); err != nil {
		return nil, fmt.Errorf("unmarshal cakes failed: %w", err)
	}
	return cakes, nil
}

func (r *RedisCache) SetList(ctx context.Context, cakes []domain.Cake) error {
	data, err := json.Marshal(cakes)
	if err != nil {
		return fmt.Errorf("marshal cakes failed: %w", err)
	}

	// Jitter spreads expiry so concurrent misses don't pile up.
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, listKey, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, listKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

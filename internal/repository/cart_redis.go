package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aquarium-storefront/internal/model"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

type redisCartRepoImpl struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCartRepository keeps each cart as one JSON document under cart:<session>.
func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) CartRepository {
	return &redisCartRepoImpl{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *redisCartRepoImpl) Get(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	data, err := r.rdb.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}

	return items, nil
}

func (r *redisCartRepoImpl) Save(ctx context.Context, sessionID string, items []model.CartItem) error {
	key := cartKeyPrefix + sessionID
	if len(items) == 0 {
		return r.rdb.Del(ctx, key).Err()
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", sessionID, err)
	}

	return r.rdb.Set(ctx, key, data, r.ttl).Err()
}

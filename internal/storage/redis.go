package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

const redisPrefix = "handoff:"

// RedisStore keeps handoff slots in Redis so several service instances can
// share them.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewRedisStore wraps a connected client.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Put stores pub as JSON with the slot TTL.
func (s *RedisStore) Put(ctx context.Context, slot Slot, pub models.Publication) (string, error) {
	data, err := json.Marshal(pub)
	if err != nil {
		return "", fmt.Errorf("encode handoff: %w", err)
	}
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, redisPrefix+key(slot, token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store handoff: %w", err)
	}
	return token, nil
}

// Take reads and deletes the slot atomically.
func (s *RedisStore) Take(ctx context.Context, slot Slot, token string) (models.Publication, error) {
	data, err := s.rdb.GetDel(ctx, redisPrefix+key(slot, token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Publication{}, ErrSlotEmpty
	}
	if err != nil {
		return models.Publication{}, fmt.Errorf("read handoff: %w", err)
	}
	var pub models.Publication
	if err := json.Unmarshal(data, &pub); err != nil {
		return models.Publication{}, fmt.Errorf("decode handoff: %w", err)
	}
	return pub, nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"debitcard/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key has no cached value.
var ErrCacheMiss = errors.New("cache miss")

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Card caching

func (s *CacheService) SetCard(ctx context.Context, card *models.DebitCard) error {
	if card == nil {
		return errors.New("cannot cache nil card")
	}
	return s.Set(ctx, s.GenerateKey("card", "id", card.ID), card)
}

func (s *CacheService) GetCard(ctx context.Context, cardID string) (*models.DebitCard, error) {
	var card models.DebitCard
	if err := s.Get(ctx, s.GenerateKey("card", "id", cardID), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *CacheService) InvalidateCard(ctx context.Context, cardID string) error {
	return s.Delete(ctx, s.GenerateKey("card", "id", cardID))
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aquasentinel/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache keys
const (
	KeyMetricsAll     = "metrics:all"
	KeyPredictionsAll = "predictions:all"

	tutorialKeyPrefix = "tutorial:seen:"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetTutorialSeen возвращает флаг просмотра туториала.
// Отсутствие ключа означает, что туториал ещё не показывали.
func (r *cacheRepository) GetTutorialSeen(ctx context.Context, clientID string) (bool, error) {
	val, err := r.client.Get(ctx, tutorialKeyPrefix+clientID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		r.logger.Error("Failed to get tutorial flag", zap.String("client_id", clientID), zap.Error(err))
		return false, fmt.Errorf("cache get error: %w", err)
	}

	return val == "1", nil
}

// SetTutorialSeen сохраняет флаг просмотра туториала без TTL
func (r *cacheRepository) SetTutorialSeen(ctx context.Context, clientID string, seen bool) error {
	val := "0"
	if seen {
		val = "1"
	}

	err := r.client.Set(ctx, tutorialKeyPrefix+clientID, val, 0).Err()
	if err != nil {
		r.logger.Error("Failed to set tutorial flag", zap.String("client_id", clientID), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

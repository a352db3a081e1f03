package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetTutorialSeen возвращает флаг просмотра туториала для клиента
	GetTutorialSeen(ctx context.Context, clientID string) (bool, error)

	// SetTutorialSeen сохраняет флаг просмотра туториала
	SetTutorialSeen(ctx context.Context, clientID string, seen bool) error
}

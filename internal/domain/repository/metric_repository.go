package repository

import (
	"context"

	"github.com/aquasentinel/internal/domain"
)

// MetricRepository определяет методы для работы с показателями мониторинга
type MetricRepository interface {
	// GetAll возвращает все показатели, новые первыми
	GetAll(ctx context.Context) ([]*domain.PollutionMetric, error)

	// GetByID возвращает показатели точки по ID
	GetByID(ctx context.Context, id string) (*domain.PollutionMetric, error)
}

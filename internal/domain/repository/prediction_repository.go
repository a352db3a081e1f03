package repository

import (
	"context"

	"github.com/aquasentinel/internal/domain"
)

// PredictionRepository определяет методы для работы с прогнозами риска
type PredictionRepository interface {
	// GetAll возвращает все прогнозы, новые первыми
	GetAll(ctx context.Context) ([]*domain.AIPrediction, error)
}

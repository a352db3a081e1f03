package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aquasentinel/internal/classify"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/repository/cache"
	"github.com/aquasentinel/internal/usecase/dto"
	"go.uber.org/zap"
)

// PredictionUseCase отдаёт готовые прогнозы риска со стилями отображения.
// Сами прогнозы вычисляет внешняя задача, здесь только презентация.
type PredictionUseCase struct {
	predictionRepo repository.PredictionRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewPredictionUseCase(
	predictionRepo repository.PredictionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PredictionUseCase {
	return &PredictionUseCase{
		predictionRepo: predictionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

// GetPredictions возвращает прогнозы, новые первыми, с кешированием
func (uc *PredictionUseCase) GetPredictions(ctx context.Context) (*dto.PredictionsResponse, error) {
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cache.KeyPredictionsAll); err == nil && data != nil {
			var cached dto.PredictionsResponse
			if err := json.Unmarshal(data, &cached); err != nil {
				uc.logger.Warn("Failed to unmarshal cached predictions", zap.Error(err))
			} else {
				return &cached, nil
			}
		}
	}

	predictions, err := uc.predictionRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to get predictions", zap.Error(err))
		return nil, err
	}

	views := make([]dto.PredictionView, 0, len(predictions))
	for _, p := range predictions {
		views = append(views, dto.PredictionView{
			AIPrediction: *p,
			Display:      classify.PredictionRiskStyle(p.RiskLevel),
		})
	}

	resp := &dto.PredictionsResponse{
		Predictions: views,
		Total:       len(views),
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cache.KeyPredictionsAll, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache predictions", zap.Error(err))
			}
		}
	}

	return resp, nil
}

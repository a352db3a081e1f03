package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aquasentinel/internal/classify"
	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/repository/cache"
	"github.com/aquasentinel/internal/usecase/dto"
	"go.uber.org/zap"
)

// MetricUseCase отдаёт показатели мониторинга, дополненные
// отображаемыми атрибутами (полоса риска, цвет маркера, бейджи)
type MetricUseCase struct {
	metricRepo repository.MetricRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewMetricUseCase(
	metricRepo repository.MetricRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MetricUseCase {
	return &MetricUseCase{
		metricRepo: metricRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// GetMetrics возвращает все показатели, новые первыми, с кешированием
func (uc *MetricUseCase) GetMetrics(ctx context.Context) (*dto.MetricsResponse, error) {
	// Try cache first; cache errors degrade to a database read
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cache.KeyMetricsAll); err == nil && data != nil {
			var cached dto.MetricsResponse
			if err := json.Unmarshal(data, &cached); err != nil {
				uc.logger.Warn("Failed to unmarshal cached metrics", zap.Error(err))
			} else {
				return &cached, nil
			}
		}
	}

	metrics, err := uc.metricRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to get pollution metrics", zap.Error(err))
		return nil, err
	}

	views := make([]dto.MetricView, 0, len(metrics))
	for _, m := range metrics {
		views = append(views, buildMetricView(m))
	}

	resp := &dto.MetricsResponse{
		Metrics: views,
		Total:   len(views),
	}

	// Best-effort cache fill
	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cache.KeyMetricsAll, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache metrics", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// GetMetric возвращает показатели одной точки с отображаемыми атрибутами
func (uc *MetricUseCase) GetMetric(ctx context.Context, id string) (*dto.MetricView, error) {
	metric, err := uc.metricRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get pollution metric", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	view := buildMetricView(metric)
	return &view, nil
}

func buildMetricView(m *domain.PollutionMetric) dto.MetricView {
	return dto.MetricView{
		PollutionMetric: *m,
		Display: dto.MetricDisplay{
			RiskBand:     classify.BandForDensity(m.PlasticDensityIndex),
			MarkerColor:  classify.ColorForDensity(m.PlasticDensityIndex),
			ClarityBadge: classify.ClarityBadge(m.WaterClarityLevel),
			TrendIcon:    classify.TrendIcon(m.PollutionTrend),
		},
	}
}

package postgres

import (
	"context"
	"database/sql"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type metricRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewMetricRepository(db *DB) repository.MetricRepository {
	return &metricRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *metricRepository) GetAll(ctx context.Context) ([]*domain.PollutionMetric, error) {
	query := `
		SELECT
			id, location_lat, location_lng, location_name,
			plastic_density_index, water_clarity_level, microplastic_count,
			pollution_trend, last_updated, created_at
		FROM pollution_metrics
		ORDER BY created_at DESC
	`

	var metrics []*domain.PollutionMetric
	if err := r.db.SelectContext(ctx, &metrics, query); err != nil {
		r.logger.Error("Failed to get pollution metrics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return metrics, nil
}

func (r *metricRepository) GetByID(ctx context.Context, id string) (*domain.PollutionMetric, error) {
	query := `
		SELECT
			id, location_lat, location_lng, location_name,
			plastic_density_index, water_clarity_level, microplastic_count,
			pollution_trend, last_updated, created_at
		FROM pollution_metrics
		WHERE id = $1
	`

	var metric domain.PollutionMetric
	err := r.db.GetContext(ctx, &metric, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrMetricNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get pollution metric by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &metric, nil
}

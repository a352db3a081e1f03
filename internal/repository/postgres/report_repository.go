package postgres

import (
	"context"
	"database/sql"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reportRepository) GetRecent(ctx context.Context, limit int) ([]*domain.PollutionReport, error) {
	query := `
		SELECT
			id, location_lat, location_lng, category, description,
			plastic_density_index, water_clarity_level, reported_by,
			status, created_at
		FROM pollution_reports
		ORDER BY created_at DESC
		LIMIT $1
	`

	var reports []*domain.PollutionReport
	if err := r.db.SelectContext(ctx, &reports, query, limit); err != nil {
		r.logger.Error("Failed to get recent reports", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reports, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.PollutionReport, error) {
	query := `
		SELECT
			id, location_lat, location_lng, category, description,
			plastic_density_index, water_clarity_level, reported_by,
			status, created_at
		FROM pollution_reports
		WHERE id = $1
	`

	var report domain.PollutionReport
	err := r.db.GetContext(ctx, &report, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReportNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get report by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &report, nil
}

func (r *reportRepository) Insert(ctx context.Context, report *domain.PollutionReport) (*domain.PollutionReport, error) {
	query := `
		INSERT INTO pollution_reports (
			id, location_lat, location_lng, category, description,
			plastic_density_index, water_clarity_level, reported_by, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING
			id, location_lat, location_lng, category, description,
			plastic_density_index, water_clarity_level, reported_by,
			status, created_at
	`

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	var stored domain.PollutionReport
	err := r.db.GetContext(ctx, &stored, query,
		report.ID,
		report.LocationLat,
		report.LocationLng,
		report.Category,
		report.Description,
		report.PlasticDensityIndex,
		report.WaterClarityLevel,
		report.ReportedBy,
		report.Status,
	)
	if err != nil {
		r.logger.Error("Failed to insert report", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &stored, nil
}

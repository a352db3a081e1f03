package postgres

import (
	"context"
	"encoding/json"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type predictionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPredictionRepository(db *DB) repository.PredictionRepository {
	return &predictionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *predictionRepository) GetAll(ctx context.Context) ([]*domain.AIPrediction, error) {
	query := `
		SELECT
			id, location_lat, location_lng, risk_level, prediction_text,
			confidence_score, factors, valid_until, created_at
		FROM ai_predictions
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get predictions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var predictions []*domain.AIPrediction
	for rows.Next() {
		var p domain.AIPrediction
		var factorsJSON []byte

		err := rows.Scan(
			&p.ID, &p.LocationLat, &p.LocationLng, &p.RiskLevel,
			&p.PredictionText, &p.ConfidenceScore, &factorsJSON,
			&p.ValidUntil, &p.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan prediction", zap.Error(err))
			continue
		}

		// Unmarshal factors JSON if present
		if len(factorsJSON) > 0 {
			if err := json.Unmarshal(factorsJSON, &p.Factors); err != nil {
				r.logger.Warn("Failed to unmarshal prediction factors",
					zap.String("id", p.ID), zap.Error(err))
			}
		}

		predictions = append(predictions, &p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate predictions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return predictions, nil
}

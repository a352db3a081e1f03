package postgres

import (
	"context"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type organizationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrganizationRepository(db *DB) repository.OrganizationRepository {
	return &organizationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *organizationRepository) GetAll(ctx context.Context, types []string) ([]*domain.Organization, error) {
	query := `
		SELECT
			id, name, type, location_lat, location_lng, address,
			phone, email, website, created_at
		FROM organizations
	`

	args := []interface{}{}
	if len(types) > 0 {
		query += " WHERE type = ANY($1)"
		args = append(args, pq.Array(types))
	}
	query += " ORDER BY name"

	var orgs []*domain.Organization
	if err := r.db.SelectContext(ctx, &orgs, query, args...); err != nil {
		r.logger.Error("Failed to get organizations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return orgs, nil
}

package repository

import (
	"context"

	"github.com/aquasentinel/internal/domain"
)

// OrganizationRepository определяет методы для работы с организациями
type OrganizationRepository interface {
	// GetAll возвращает организации, отсортированные по имени.
	// types фильтрует по типам организаций, пустой срез - без фильтра.
	GetAll(ctx context.Context, types []string) ([]*domain.Organization, error)
}

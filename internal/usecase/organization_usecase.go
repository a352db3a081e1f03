package usecase

import (
	"context"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/usecase/dto"
	"go.uber.org/zap"
)

// OrganizationUseCase отдаёт организации с расстоянием от пользователя.
// Без координат клиента (отказ в геолокации) используются координаты
// по умолчанию - мягкий сбой, ошибки наружу нет.
type OrganizationUseCase struct {
	orgRepo    repository.OrganizationRepository
	logger     *zap.Logger
	defaultLat float64
	defaultLng float64
}

func NewOrganizationUseCase(
	orgRepo repository.OrganizationRepository,
	logger *zap.Logger,
	defaultLat, defaultLng float64,
) *OrganizationUseCase {
	return &OrganizationUseCase{
		orgRepo:    orgRepo,
		logger:     logger,
		defaultLat: defaultLat,
		defaultLng: defaultLng,
	}
}

// GetOrganizations возвращает организации по имени с округлённым
// расстоянием до точки пользователя
func (uc *OrganizationUseCase) GetOrganizations(ctx context.Context, req dto.OrganizationsRequest) (*dto.OrganizationsResponse, error) {
	var types []string
	if req.Type != "" && req.Type != "All" {
		types = []string{req.Type}
	}

	orgs, err := uc.orgRepo.GetAll(ctx, types)
	if err != nil {
		uc.logger.Error("Failed to get organizations", zap.Error(err))
		return nil, err
	}

	origin := uc.resolveUserPoint(req.Lat, req.Lng)

	views := make([]dto.OrganizationView, 0, len(orgs))
	for _, org := range orgs {
		views = append(views, dto.OrganizationView{
			Organization: *org,
			DistanceKm:   utils.DistanceKm(origin.Lat, origin.Lng, org.LocationLat, org.LocationLng),
		})
	}

	return &dto.OrganizationsResponse{
		Organizations: views,
		Total:         len(views),
	}, nil
}

// resolveUserPoint выбирает точку пользователя: переданные координаты,
// если они валидны, иначе координаты по умолчанию
func (uc *OrganizationUseCase) resolveUserPoint(lat, lng *float64) domain.Point {
	if lat != nil && lng != nil && utils.ValidateCoordinates(*lat, *lng) {
		return domain.Point{Lat: *lat, Lng: *lng}
	}
	return domain.Point{Lat: uc.defaultLat, Lng: uc.defaultLng}
}

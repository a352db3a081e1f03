package usecase

import (
	"context"
	"strings"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/pkg/errors"
	"github.com/aquasentinel/internal/pkg/utils"
	"github.com/aquasentinel/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultReportsLimit = 10
	maxReportsLimit     = 100

	anonymousReporter = "Anonymous"
)

// ReportUseCase проверяет и нормализует пользовательские отчёты
// перед передачей в хранилище
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// SubmitReport проверяет отчёт, нормализует его и сохраняет.
// Частичные записи не создаются: либо полная нормализованная запись,
// либо ошибка валидации.
func (uc *ReportUseCase) SubmitReport(ctx context.Context, req dto.SubmitReportRequest) (*domain.PollutionReport, error) {
	// Coordinates must be finite and in range
	if !utils.ValidateCoordinates(req.LocationLat, req.LocationLng) {
		return nil, errors.ErrInvalidLocation
	}

	// Category must be one of the enumerated values
	if !domain.ValidCategory(req.Category) {
		return nil, errors.ErrInvalidCategory
	}

	// Density originates from a bounded UI slider, but the contract
	// must hold even if the slider is bypassed: clamp instead of reject
	density := req.PlasticDensityIndex
	if density < 0 {
		density = 0
	}
	if density > 100 {
		density = 100
	}

	reportedBy := strings.TrimSpace(req.ReportedBy)
	if reportedBy == "" {
		reportedBy = anonymousReporter
	}

	report := &domain.PollutionReport{
		LocationLat:         req.LocationLat,
		LocationLng:         req.LocationLng,
		Category:            req.Category,
		Description:         req.Description,
		PlasticDensityIndex: density,
		WaterClarityLevel:   req.WaterClarityLevel,
		ReportedBy:          reportedBy,
		// Status is forced regardless of any caller-supplied value,
		// transitions happen only in the external verification workflow
		Status: domain.StatusNew,
	}

	stored, err := uc.reportRepo.Insert(ctx, report)
	if err != nil {
		uc.logger.Error("Failed to insert report", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Report submitted",
		zap.String("id", stored.ID),
		zap.String("category", stored.Category),
		zap.Int("density", stored.PlasticDensityIndex),
	)

	// Best-effort notification, submission succeeds even if the stream is down
	if uc.streamRepo != nil {
		event := &domain.ReportSubmittedEvent{
			ReportID:            stored.ID,
			LocationLat:         stored.LocationLat,
			LocationLng:         stored.LocationLng,
			Category:            stored.Category,
			PlasticDensityIndex: stored.PlasticDensityIndex,
			ReportedBy:          stored.ReportedBy,
		}
		if err := uc.streamRepo.PublishReportSubmitted(ctx, event); err != nil {
			uc.logger.Warn("Failed to publish report event",
				zap.String("id", stored.ID), zap.Error(err))
		}
	}

	return stored, nil
}

// GetRecentReports возвращает последние отчёты, новые первыми
func (uc *ReportUseCase) GetRecentReports(ctx context.Context, limit int) ([]*domain.PollutionReport, error) {
	if limit <= 0 {
		limit = defaultReportsLimit
	}
	if limit > maxReportsLimit {
		limit = maxReportsLimit
	}

	reports, err := uc.reportRepo.GetRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to get recent reports", zap.Error(err))
		return nil, err
	}

	return reports, nil
}

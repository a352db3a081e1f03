package repository

import (
	"context"

	"github.com/aquasentinel/internal/domain"
)

// ReportRepository определяет методы для работы с пользовательскими отчётами
type ReportRepository interface {
	// GetRecent возвращает последние отчёты, новые первыми
	GetRecent(ctx context.Context, limit int) ([]*domain.PollutionReport, error)

	// GetByID возвращает отчёт по ID
	GetByID(ctx context.Context, id string) (*domain.PollutionReport, error)

	// Insert сохраняет новый отчёт и возвращает сохранённую запись
	Insert(ctx context.Context, report *domain.PollutionReport) (*domain.PollutionReport, error)
}

package repository

import (
	"context"

	"github.com/aquasentinel/internal/domain"
)

// StreamMessage - сообщение из стрима с ID для подтверждения
type StreamMessage struct {
	ID    string
	Event *domain.ReportSubmittedEvent
}

// StreamRepository определяет методы для работы с очередью событий
type StreamRepository interface {
	// PublishReportSubmitted публикует событие о новом отчёте
	PublishReportSubmitted(ctx context.Context, event *domain.ReportSubmittedEvent) error

	// ReadReportSubmitted читает пачку событий для consumer group,
	// блокируясь не дольше таймаута чтения
	ReadReportSubmitted(ctx context.Context, group, consumer string, count int64) ([]StreamMessage, error)

	// AckReportSubmitted подтверждает обработку сообщения
	AckReportSubmitted(ctx context.Context, group, messageID string) error

	// EnsureGroup создаёт consumer group, если её ещё нет
	EnsureGroup(ctx context.Context, group string) error
}

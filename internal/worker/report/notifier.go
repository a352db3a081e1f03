package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aquasentinel/internal/classify"
	"github.com/aquasentinel/internal/domain/repository"
	"github.com/aquasentinel/internal/repository/cache"
	"github.com/aquasentinel/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 10                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// NotificationWorker обрабатывает события о новых отчётах загрязнения
type NotificationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	maxRetries   int
}

// NewNotificationWorker создает новый NotificationWorker
func NewNotificationWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *NotificationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &NotificationWorker{
		BaseWorker:   worker.NewBaseWorker("report-notification", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *NotificationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting NotificationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.EnsureGroup(ctx, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает пачку событий и обрабатывает каждое.
// Возвращает количество прочитанных сообщений.
func (w *NotificationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ReadReportSubmitted(ctx, w.ConsumerGroup(), w.consumerName, maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to read report events: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		if err := w.handleWithRetries(ctx, msg); err != nil {
			logger.Error("Giving up on report event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}

		// ACK в любом случае, чтобы сообщение не застревало в pending
		if err := w.streamRepo.AckReportSubmitted(ctx, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// handleWithRetries обрабатывает событие с повторами при ошибке
func (w *NotificationWorker) handleWithRetries(ctx context.Context, msg repository.StreamMessage) error {
	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if lastErr = w.handle(ctx, msg); lastErr == nil {
			return nil
		}

		w.Logger().Warn("Failed to handle report event, retrying",
			zap.String("message_id", msg.ID),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}
	return lastErr
}

// handle логирует новый отчёт и сбрасывает кэш метрик,
// чтобы следующая выдача карты учитывала свежие данные
func (w *NotificationWorker) handle(ctx context.Context, msg repository.StreamMessage) error {
	event := msg.Event
	if event == nil {
		return fmt.Errorf("message %s has no event payload", msg.ID)
	}

	logger := w.Logger()
	band := classify.BandForDensity(event.PlasticDensityIndex)

	logger.Info("New pollution report submitted",
		zap.String("report_id", event.ReportID),
		zap.String("category", event.Category),
		zap.Float64("lat", event.LocationLat),
		zap.Float64("lng", event.LocationLng),
		zap.Int("plastic_density_index", event.PlasticDensityIndex),
		zap.String("risk_band", string(band)),
		zap.String("reported_by", event.ReportedBy))

	if band == classify.BandCritical {
		logger.Warn("Critical pollution level reported",
			zap.String("report_id", event.ReportID),
			zap.Int("plastic_density_index", event.PlasticDensityIndex))
	}

	if err := w.cacheRepo.Delete(ctx, cache.KeyMetricsAll); err != nil {
		return fmt.Errorf("failed to invalidate metrics cache: %w", err)
	}

	return nil
}

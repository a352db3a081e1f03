package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aquasentinel/internal/domain"
	"github.com/aquasentinel/internal/domain/repository"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const payloadField = "payload"

type streamRepository struct {
	client      *goredis.Client
	logger      *zap.Logger
	readTimeout time.Duration
}

// NewStreamRepository создаёт репозиторий для очереди событий отчётов
func NewStreamRepository(client *goredis.Client, logger *zap.Logger, readTimeout time.Duration) repository.StreamRepository {
	return &streamRepository{
		client:      client,
		logger:      logger,
		readTimeout: readTimeout,
	}
}

func (r *streamRepository) PublishReportSubmitted(ctx context.Context, event *domain.ReportSubmittedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal report event: %w", err)
	}

	err = r.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: domain.StreamReportsSubmitted,
		Values: map[string]interface{}{payloadField: data},
	}).Err()
	if err != nil {
		r.logger.Error("Failed to publish report event",
			zap.String("report_id", event.ReportID), zap.Error(err))
		return fmt.Errorf("xadd: %w", err)
	}

	r.logger.Debug("Report event published", zap.String("report_id", event.ReportID))
	return nil
}

func (r *streamRepository) ReadReportSubmitted(ctx context.Context, group, consumer string, count int64) ([]repository.StreamMessage, error) {
	streams, err := r.client.XReadGroup(ctx, &goredis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{domain.StreamReportsSubmitted, ">"},
		Count:    count,
		Block:    r.readTimeout,
	}).Result()
	if err == goredis.Nil {
		return nil, nil // No new messages
	}
	if err != nil {
		return nil, fmt.Errorf("xreadgroup: %w", err)
	}

	var messages []repository.StreamMessage
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			raw, ok := msg.Values[payloadField].(string)
			if !ok {
				r.logger.Warn("Stream message without payload", zap.String("id", msg.ID))
				continue
			}

			var event domain.ReportSubmittedEvent
			if err := json.Unmarshal([]byte(raw), &event); err != nil {
				r.logger.Warn("Failed to unmarshal report event",
					zap.String("id", msg.ID), zap.Error(err))
				continue
			}

			messages = append(messages, repository.StreamMessage{
				ID:    msg.ID,
				Event: &event,
			})
		}
	}

	return messages, nil
}

func (r *streamRepository) AckReportSubmitted(ctx context.Context, group, messageID string) error {
	if err := r.client.XAck(ctx, domain.StreamReportsSubmitted, group, messageID).Err(); err != nil {
		return fmt.Errorf("xack: %w", err)
	}
	return nil
}

func (r *streamRepository) EnsureGroup(ctx context.Context, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, domain.StreamReportsSubmitted, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("xgroup create: %w", err)
	}
	return nil
}

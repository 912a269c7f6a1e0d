package events

import (
	"context"
	"log/slog"

	"field-booking/internal/usecase/shared"
)

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event shared.Event) error {
	p.logger.Info("event",
		"id", event.ID,
		"kind", string(event.Kind),
		"aggregate_id", event.AggregateID,
		"resource_id", event.ResourceID,
		"payload", string(event.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }

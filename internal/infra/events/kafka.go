package events

import (
	"context"
	"fmt"
	"log/slog"

	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const (
	headerEventID   = "event-id"
	headerEventKind = "event-kind"
	headerAggregate = "aggregate-id"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher keys messages by resource id so one resource's events stay
// on one partition in commit order.
type KafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}
	return newKafkaPublisher(writer, logger), nil
}

func newKafkaPublisher(w messageWriter, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event shared.Event) error {
	msg := kafka.Message{
		Key:   []byte(event.ResourceID.String()),
		Value: event.Payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(event.ID.String())},
			{Key: headerEventKind, Value: []byte(event.Kind)},
			{Key: headerAggregate, Value: []byte(event.AggregateID.String())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to publish %s", event.Kind)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

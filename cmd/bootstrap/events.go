package bootstrap

import (
	"context"
	"log/slog"

	"field-booking/internal/infra/events"
	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

type closingPublisher interface {
	shared.EventPublisher
	Close() error
}

// NewEventPublisher falls back to logging events when no brokers are configured.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	var pub closingPublisher
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no kafka brokers configured, booking events will be logged only")
		pub = events.NewLogPublisher(logger)
	} else {
		kp, err := events.NewKafkaPublisher(cfg.Kafka, logger)
		if err != nil {
			return nil, err
		}
		pub = kp
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

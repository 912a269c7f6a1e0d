package worker

import (
	"context"
	"log/slog"

	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/commands"
)

func NewHoldSweeper(holds commands.HoldCommands, cfg config.Config, logger *slog.Logger) *Loop {
	return &Loop{
		Name:     "hold-sweeper",
		Interval: cfg.Booking.HoldSweepInterval,
		Logger:   logger,
		Tick: func(ctx context.Context) error {
			_, err := holds.SweepExpired(ctx)
			return err
		},
	}
}

func NewOutboxPublisher(relay *commands.OutboxRelay, cfg config.Config, logger *slog.Logger) *Loop {
	return &Loop{
		Name:     "outbox-relay",
		Interval: cfg.Kafka.OutboxInterval,
		Logger:   logger,
		Tick: func(ctx context.Context) error {
			n, err := relay.RunOnce(ctx)
			if n > 0 {
				logger.Info("outbox events published", "count", n)
			}
			return err
		},
	}
}

package commands

import (
	"context"
	"log/slog"

	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"
)

// OutboxRelay moves committed booking events to the publisher.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	clock       clock.Clock
	batchSize   int
	maxAttempts int
	logger      *slog.Logger
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   cfg.Kafka.OutboxBatch,
		maxAttempts: cfg.Kafka.MaxAttempts,
		logger:      logger,
	}
}

// RunOnce publishes one batch in commit order. It stops at the first publish
// failure so later events never overtake an earlier one.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		pending, err := tx.Outbox().ClaimPending(ctx, tx.DB(), r.batchSize, r.maxAttempts)
		if err != nil {
			return err
		}

		for _, ev := range pending {
			if perr := r.publisher.Publish(ctx, ev); perr != nil {
				r.logger.Warn("event publish failed",
					"event_id", ev.ID,
					"kind", string(ev.Kind),
					"attempts", ev.Attempts+1,
					"error", perr.Error())
				return tx.Outbox().MarkFailed(ctx, tx.DB(), ev.ID, perr.Error())
			}
			if err := tx.Outbox().MarkPublished(ctx, tx.DB(), ev.ID, r.clock.Now()); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return published, nil
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"field-booking/internal/domain/actor"
	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/ptr"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcquireHoldInput struct {
	ResourceID uuid.UUID
	Window     booking.TimeWindow
	Owner      string
}

type AcquireHoldResult struct {
	HoldID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Units     int
}

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/commands/hold.go -package=commandsmock

type HoldCommands interface {
	Acquire(ctx context.Context, act actor.Actor, in AcquireHoldInput) (*AcquireHoldResult, error)
	Release(ctx context.Context, act actor.Actor, token string) error
	SweepExpired(ctx context.Context) (int64, error)
}

type holdCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func NewHoldCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) HoldCommands {
	return &holdCommandsImpl{
		uow:    uow,
		clock:  clk,
		ttl:    cfg.Booking.HoldTTL,
		logger: logger,
	}
}

// Acquire registers a hold under the resource lock, so overlapping acquires
// on one resource are serialized and at most one of them sees a free slot.
func (c *holdCommandsImpl) Acquire(ctx context.Context, act actor.Actor, in AcquireHoldInput) (*AcquireHoldResult, error) {
	owner := in.Owner
	if owner == "" {
		owner = act.ID.String()
	}

	var result *AcquireHoldResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockBookable(ctx, tx, in.ResourceID, in.Window)
		if err != nil {
			return err
		}

		units, err := in.Window.Units(res.Unit())
		if err != nil {
			return err
		}

		now := c.clock.Now()
		occ, err := tx.Reads().Occupancy(ctx, []uuid.UUID{in.ResourceID}, in.Window, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if r := availability.Evaluate(in.ResourceID, in.Window, occ, now, availability.Options{}); !r.Available {
			return booking.NewConflict(in.ResourceID, in.Window, booking.ReasonOccupied, r.Conflicts)
		}

		h, err := hold.New(in.ResourceID, in.Window, owner, now, c.ttl)
		if err != nil {
			return err
		}
		if _, err := tx.Holds().Create(ctx, tx.DB(), h); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		p := eventPayload{ResourceID: in.ResourceID, HoldID: ptr.To(h.ID()), State: h.State().String(), ExpiresAt: ptr.To(h.ExpiresAt()), Actor: act.ID}
		windowPayload(&p, in.Window)
		if err := enqueue(ctx, tx, shared.EventHoldAcquired, h.ID(), p, now); err != nil {
			return err
		}

		result = &AcquireHoldResult{
			HoldID:    h.ID(),
			Token:     h.Token(),
			ExpiresAt: h.ExpiresAt(),
			Units:     units,
		}
		return nil
	})
	if err != nil {
		return nil, contention(err, in.ResourceID, in.Window)
	}

	c.logger.Info("hold acquired",
		"hold_id", result.HoldID,
		"resource_id", in.ResourceID,
		"window", in.Window.String(),
		"expires_at", result.ExpiresAt)
	return result, nil
}

// Release never fails for an unknown or already-terminal token.
func (c *holdCommandsImpl) Release(ctx context.Context, act actor.Actor, token string) error {
	if token == "" {
		return nil
	}

	h, err := c.uow.CommandReads().HoldByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if h.State().IsTerminal() {
		return nil
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Resources().LockForUpdate(ctx, tx.DB(), h.ResourceID()); err != nil {
			return mapNotFound(err, "resource")
		}

		// Re-read under the lock; a finalize may have consumed it meanwhile.
		current, err := tx.Reads().HoldByToken(ctx, token)
		if err != nil {
			return mapNotFound(err, "hold")
		}

		from := current.State()
		now := c.clock.Now()
		if !current.Release(now) {
			return nil
		}
		ok, err := tx.Holds().Transition(ctx, tx.DB(), current, from)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !ok {
			return nil
		}
		if current.State() != hold.StateReleased {
			// Lapsed before the release arrived; recorded like a sweep, without an event.
			c.logger.Info("hold expired on release", "hold_id", current.ID())
			return nil
		}

		p := eventPayload{ResourceID: current.ResourceID(), HoldID: ptr.To(current.ID()), State: current.State().String(), Actor: act.ID}
		windowPayload(&p, current.Window())
		if err := enqueue(ctx, tx, shared.EventHoldReleased, current.ID(), p, now); err != nil {
			return err
		}

		c.logger.Info("hold released", "hold_id", current.ID())
		return nil
	})
}

// SweepExpired flips overdue active holds to expired. Availability never
// depends on it having run.
func (c *holdCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Holds().ExpireOverdue(ctx, tx.DB(), c.clock.Now())
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if n > 0 {
		c.logger.Info("expired overdue holds", "count", n)
	}
	return n, nil
}

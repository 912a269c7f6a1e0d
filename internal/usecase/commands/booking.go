package commands

import (
	"context"
	"log/slog"

	"field-booking/internal/domain/actor"
	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/ptr"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCustomerRequired = errs.New("customer id is required for staff bookings")

type FinalizeInput struct {
	ResourceID uuid.UUID
	CustomerID *uuid.UUID
	Window     booking.TimeWindow
	Channel    booking.Channel
	HoldToken  string
}

type FinalizeResult struct {
	BookingID uuid.UUID
	Quote     booking.Quote
	HoldID    *uuid.UUID
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	Finalize(ctx context.Context, act actor.Actor, in FinalizeInput) (*FinalizeResult, error)
	Cancel(ctx context.Context, act actor.Actor, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Finalize re-checks occupancy and writes the booking in one transaction under
// the resource lock. A supplied hold is consumed there, never trusted.
func (c *bookingCommandsImpl) Finalize(ctx context.Context, act actor.Actor, in FinalizeInput) (*FinalizeResult, error) {
	customerID, ok := act.CustomerFor(in.CustomerID)
	if !ok {
		if act.IsStaff() {
			return nil, ErrCustomerRequired
		}
		return nil, errs.Mark(errs.New("customers may only book for themselves"), errs.ErrForbidden)
	}
	if !in.Channel.IsValid() {
		return nil, booking.ErrInvalidChannel
	}

	var result *FinalizeResult
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

		var consumed *hold.Hold
		var from hold.State
		if in.HoldToken != "" {
			consumed, err = tx.Reads().HoldByToken(ctx, in.HoldToken)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return booking.WrapConflict(
						errs.Mark(errs.New("unknown hold token"), errs.ErrHoldNotActive),
						in.ResourceID, in.Window, booking.ReasonHoldRejected)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			from = consumed.State()
			if err := consumed.Consume(now, in.ResourceID, in.Window); err != nil {
				return booking.WrapConflict(err, in.ResourceID, in.Window, booking.ReasonHoldRejected)
			}
		}

		occ, err := tx.Reads().Occupancy(ctx, []uuid.UUID{in.ResourceID}, in.Window, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		opts := availability.Options{}
		if consumed != nil {
			opts.ExcludeHold = consumed.ID()
		}
		if r := availability.Evaluate(in.ResourceID, in.Window, occ, now, opts); !r.Available {
			return booking.NewConflict(in.ResourceID, in.Window, booking.ReasonOccupied, r.Conflicts)
		}

		tier := booking.Classify(in.Window.Date(), in.Window.Start())
		key := booking.RateKey{ResourceTypeID: res.Type().ID(), Tier: tier}
		perUnit, err := tx.Reads().RateFor(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.NewRateNotFound(key)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		quote := booking.NewQuote(tier, units, perUnit)

		var holdID *uuid.UUID
		if consumed != nil {
			holdID = ptr.To(consumed.ID())
		}
		b, err := booking.New(booking.NewParams{
			ResourceID: in.ResourceID,
			CustomerID: customerID,
			Window:     in.Window,
			Channel:    in.Channel,
			CreatedBy:  act.ID,
			TotalPrice: quote.Total,
			HoldID:     holdID,
			Now:        now,
		})
		if err != nil {
			return err
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.WrapConflict(err, in.ResourceID, in.Window, booking.ReasonOccupied)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if consumed != nil {
			moved, err := tx.Holds().Transition(ctx, tx.DB(), consumed, from)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if !moved {
				return booking.WrapConflict(
					errs.Mark(errs.New("hold changed state concurrently"), errs.ErrHoldNotActive),
					in.ResourceID, in.Window, booking.ReasonHoldRejected)
			}
		}

		p := eventPayload{
			ResourceID: in.ResourceID,
			BookingID:  ptr.To(b.ID()),
			HoldID:     holdID,
			CustomerID: ptr.To(customerID),
			TotalPrice: ptr.To(quote.Total.Amount()),
			State:      b.Status().String(),
			Actor:      act.ID,
		}
		windowPayload(&p, in.Window)
		if err := enqueue(ctx, tx, shared.EventBookingConfirmed, b.ID(), p, now); err != nil {
			return err
		}

		result = &FinalizeResult{
			BookingID: b.ID(),
			Quote:     quote,
			HoldID:    holdID,
		}
		return nil
	})
	if err != nil {
		return nil, contention(err, in.ResourceID, in.Window)
	}

	c.logger.Info("booking confirmed",
		"booking_id", result.BookingID,
		"resource_id", in.ResourceID,
		"window", in.Window.String(),
		"total_price", result.Quote.Total.Amount(),
		"hold_consumed", result.HoldID != nil)
	return result, nil
}

// Cancel is idempotent. Customers may cancel only their own bookings.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, act actor.Actor, bookingID uuid.UUID) error {
	existing, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		return mapNotFound(err, "booking")
	}
	if !act.IsStaff() && existing.CustomerID() != act.ID {
		return errs.Mark(errs.New("booking belongs to another customer"), errs.ErrForbidden)
	}
	if !existing.IsConfirmed() {
		return nil
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Resources().LockForUpdate(ctx, tx.DB(), existing.ResourceID()); err != nil {
			return mapNotFound(err, "resource")
		}

		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return mapNotFound(err, "booking")
		}

		now := c.clock.Now()
		if !b.Cancel(now) {
			return nil
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return mapNotFound(err, "booking")
		}

		p := eventPayload{
			ResourceID: b.ResourceID(),
			BookingID:  ptr.To(b.ID()),
			CustomerID: ptr.To(b.CustomerID()),
			State:      b.Status().String(),
			Actor:      act.ID,
		}
		windowPayload(&p, b.Window())
		if err := enqueue(ctx, tx, shared.EventBookingCanceled, b.ID(), p, now); err != nil {
			return err
		}

		c.logger.Info("booking canceled", "booking_id", b.ID(), "resource_id", b.ResourceID())
		return nil
	})
}

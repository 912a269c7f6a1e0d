package commands

import (
	"context"
	"encoding/json"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/resource"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// lockBookable takes the resource row lock and rejects resources that are not
// open for booking.
func lockBookable(ctx context.Context, tx shared.Tx, resourceID uuid.UUID, window booking.TimeWindow) (*resource.Resource, error) {
	snap, err := tx.Resources().LockForUpdate(ctx, tx.DB(), resourceID)
	if err != nil {
		return nil, mapNotFound(err, "resource")
	}

	res, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Wrap(err, "invalid stored resource")
	}
	if !res.IsBookable() {
		return nil, booking.NewConflict(resourceID, window, booking.ReasonResourceUnavailable, nil)
	}
	return res, nil
}

func mapNotFound(err error, what string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrapf(err, "%s not found", what), errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// contention turns exhausted storage retries into SlotUnavailable.
func contention(err error, resourceID uuid.UUID, window booking.TimeWindow) error {
	if errs.Is(err, shared.ErrMaxRetriesExceeded) {
		return booking.WrapConflict(err, resourceID, window, booking.ReasonContention)
	}
	return err
}

type eventPayload struct {
	ResourceID uuid.UUID  `json:"resource_id"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	HoldID     *uuid.UUID `json:"hold_id,omitempty"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Date       string     `json:"date"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	TotalPrice *int64     `json:"total_price,omitempty"`
	State      string     `json:"state,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Actor      uuid.UUID  `json:"actor"`
}

func enqueue(ctx context.Context, tx shared.Tx, kind shared.EventKind, aggregateID uuid.UUID, p eventPayload, now time.Time) error {
	body, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "failed to encode event payload")
	}
	err = tx.Outbox().Enqueue(ctx, tx.DB(), shared.Event{
		ID:          uuid.New(),
		Kind:        kind,
		AggregateID: aggregateID,
		ResourceID:  p.ResourceID,
		Payload:     body,
		OccurredAt:  now,
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func windowPayload(p *eventPayload, w booking.TimeWindow) {
	p.Date = w.Date().String()
	p.Start = w.Start().String()
	p.End = w.End().String()
}

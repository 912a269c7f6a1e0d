package queries

import (
	"context"
	"time"

	"field-booking/internal/domain/actor"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, act actor.Actor, customerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// Hide existence from other customers.
	if !act.IsStaff() && view.CustomerID != act.ID {
		return nil, errs.Mark(errs.Newf("booking %s not found", id), errs.ErrNotFound)
	}
	return view, nil
}

// ListByCustomer pages newest first on (created_at, id).
func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, act actor.Actor, customerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if !act.IsStaff() && customerID != act.ID {
		return nil, nil, errs.Mark(errs.New("cannot list another customer's bookings"), errs.ErrForbidden)
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByCustomerFirstPage(ctx, customerID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindByCustomerKeyset(ctx, customerID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

package shared

import (
	"context"
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

var ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot shared by every read inside fn
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Resources() ResourceLocker
	Bookings() BookingRepository
	Holds() HoldRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	ResourcesByIDs(ctx context.Context, ids []uuid.UUID) ([]*ResourceSnapshot, error)
	RateFor(ctx context.Context, key booking.RateKey) (booking.Money, error)
	Occupancy(ctx context.Context, resourceIDs []uuid.UUID, window booking.TimeWindow, now time.Time) (availability.Occupancy, error)
	HoldByToken(ctx context.Context, token string) (*hold.Hold, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

// ResourceLocker takes the per-resource exclusive lock every mutation of a
// resource's occupancy runs under.
type ResourceLocker interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*ResourceSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type HoldRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) (uuid.UUID, error)
	// Transition persists h's current state only if the stored state is still from.
	Transition(ctx context.Context, tx sqlc.DBTX, h *hold.Hold, from hold.State) (bool, error)
	ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, event Event) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, batchSize, maxAttempts int) ([]Event, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string) error
}

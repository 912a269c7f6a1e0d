package shared

import (
	"context"
	"time"

	"field-booking/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceSnapshot struct {
	ID          uuid.UUID
	Name        string
	Status      string
	TypeID      uuid.UUID
	TypeName    string
	UnitMinutes int
}

func (s *ResourceSnapshot) ToDomain() (*resource.Resource, error) {
	kind, err := resource.NewType(s.TypeID, s.TypeName, s.UnitMinutes)
	if err != nil {
		return nil, err
	}
	return resource.Reconstruct(s.ID, s.Name, kind, s.Status)
}

type EventKind string

const (
	EventBookingConfirmed EventKind = "booking.confirmed"
	EventBookingCanceled  EventKind = "booking.canceled"
	EventHoldAcquired     EventKind = "hold.acquired"
	EventHoldReleased     EventKind = "hold.released"
)

// Event is an outbox row. Payload is JSON.
type Event struct {
	ID          uuid.UUID
	Kind        EventKind
	AggregateID uuid.UUID
	ResourceID  uuid.UUID
	Payload     []byte
	OccurredAt  time.Time
	Attempts    int
}

//go:generate mockgen -source=types.go -destination=../../../tests/mock/shared/types.go -package=sharedmock

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

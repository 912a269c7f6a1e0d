package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidChannel  = errors.New("invalid booking channel")
	ErrMissingCustomer = errors.New("customer id is required")
	ErrMissingActor    = errors.New("created-by actor is required")
)

type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	customerID uuid.UUID
	window     TimeWindow
	channel    Channel
	createdBy  uuid.UUID
	totalPrice Money
	status     Status
	holdID     *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

type NewParams struct {
	ResourceID uuid.UUID
	CustomerID uuid.UUID
	Window     TimeWindow
	Channel    Channel
	CreatedBy  uuid.UUID
	TotalPrice Money
	HoldID     *uuid.UUID
	Now        time.Time
}

// New creates a confirmed booking. Only the finalizer should call it.
func New(p NewParams) (*Booking, error) {
	if p.CustomerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if p.CreatedBy == uuid.Nil {
		return nil, ErrMissingActor
	}
	if !p.Channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	return &Booking{
		id:         uuid.New(),
		resourceID: p.ResourceID,
		customerID: p.CustomerID,
		window:     p.Window,
		channel:    p.Channel,
		createdBy:  p.CreatedBy,
		totalPrice: p.TotalPrice,
		status:     StatusConfirmed,
		holdID:     p.HoldID,
		createdAt:  p.Now,
		updatedAt:  p.Now,
	}, nil
}

type ReconstructParams struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	CustomerID uuid.UUID
	Window     TimeWindow
	Channel    string
	CreatedBy  uuid.UUID
	TotalPrice int64
	Status     string
	HoldID     *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func Reconstruct(p ReconstructParams) (*Booking, error) {
	st := Status(p.Status)
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}
	ch := Channel(p.Channel)
	if !ch.IsValid() {
		return nil, ErrInvalidChannel
	}
	price, err := NewMoney(p.TotalPrice)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:         p.ID,
		resourceID: p.ResourceID,
		customerID: p.CustomerID,
		window:     p.Window,
		channel:    ch,
		createdBy:  p.CreatedBy,
		totalPrice: price,
		status:     st,
		holdID:     p.HoldID,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}, nil
}

// Cancel frees the slot. It reports false when the booking was already canceled.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCanceled {
		return false
	}
	b.status = StatusCanceled
	b.updatedAt = now
	return true
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) BusySlot() BusySlot {
	return BusySlot{
		ResourceID: b.resourceID,
		Window:     b.window,
		Source:     SourceBooking,
		RefID:      b.id,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ResourceID() uuid.UUID { return b.resourceID }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) Window() TimeWindow    { return b.window }
func (b *Booking) Channel() Channel      { return b.channel }
func (b *Booking) CreatedBy() uuid.UUID  { return b.createdBy }
func (b *Booking) TotalPrice() Money     { return b.totalPrice }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) HoldID() *uuid.UUID    { return b.holdID }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

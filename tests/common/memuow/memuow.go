//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for command and query
// tests. Within runs one transaction at a time and rolls back on error.
package memuow

import (
	"context"
	"sort"
	"sync"
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type holdRow struct {
	id         uuid.UUID
	token      string
	resourceID uuid.UUID
	window     booking.TimeWindow
	owner      string
	createdAt  time.Time
	expiresAt  time.Time
	state      hold.State
	updatedAt  time.Time
}

type bookingRow struct {
	id         uuid.UUID
	resourceID uuid.UUID
	customerID uuid.UUID
	window     booking.TimeWindow
	channel    booking.Channel
	createdBy  uuid.UUID
	totalPrice int64
	status     booking.Status
	holdID     *uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

type outboxRow struct {
	event       shared.Event
	publishedAt *time.Time
	lastError   string
}

type state struct {
	resources map[uuid.UUID]shared.ResourceSnapshot
	rates     map[booking.RateKey]int64
	holds     map[uuid.UUID]holdRow
	bookings  map[uuid.UUID]bookingRow
	outbox    []outboxRow
}

func (s state) clone() state {
	c := state{
		resources: make(map[uuid.UUID]shared.ResourceSnapshot, len(s.resources)),
		rates:     make(map[booking.RateKey]int64, len(s.rates)),
		holds:     make(map[uuid.UUID]holdRow, len(s.holds)),
		bookings:  make(map[uuid.UUID]bookingRow, len(s.bookings)),
		outbox:    make([]outboxRow, len(s.outbox)),
	}
	for k, v := range s.resources {
		c.resources[k] = v
	}
	for k, v := range s.rates {
		c.rates[k] = v
	}
	for k, v := range s.holds {
		c.holds[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	copy(c.outbox, s.outbox)
	return c
}

// Store holds every table behind one mutex. Its zero value is not usable.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data state

	// WithinErr, when set, is returned by Within without running fn.
	WithinErr error
	// Commits counts successful Within calls.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{data: state{}.clone()}
}

func (s *Store) AddResource(snap shared.ResourceSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.resources[snap.ID] = snap
}

func (s *Store) SetRate(key booking.RateKey, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.rates[key] = amount
}

// SetFullRateCard prices every tier of typeID at amount.
func (s *Store) SetFullRateCard(typeID uuid.UUID, amount int64) {
	for _, d := range booking.DayTypes() {
		for _, b := range booking.TimeBands() {
			s.SetRate(booking.RateKey{ResourceTypeID: typeID, Tier: booking.Tier{Day: d, Band: b}}, amount)
		}
	}
}

func (s *Store) PutHold(h *hold.Hold) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.holds[h.ID()] = holdToRow(h)
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bookings[b.ID()] = bookingToRow(b)
}

func (s *Store) Hold(id uuid.UUID) (*hold.Hold, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.holds[id]
	if !ok {
		return nil, false
	}
	return r.toDomain(), true
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.bookings[id]
	if !ok {
		return nil, false
	}
	return r.toDomain(), true
}

func (s *Store) ConfirmedBookings(resourceID uuid.UUID) []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*booking.Booking
	for _, r := range s.data.bookings {
		if r.resourceID == resourceID && r.status == booking.StatusConfirmed {
			out = append(out, r.toDomain())
		}
	}
	return out
}

func (s *Store) Events() []shared.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.Event, 0, len(s.data.outbox))
	for _, r := range s.data.outbox {
		out = append(out, r.event)
	}
	return out
}

func (s *Store) EventsOfKind(kind shared.EventKind) []shared.Event {
	var out []shared.Event
	for _, ev := range s.Events() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// Published reports whether the outbox row id has been marked published.
func (s *Store) Published(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.data.outbox {
		if r.event.ID == id {
			return r.publishedAt != nil
		}
	}
	return false
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if s.WithinErr != nil {
		return s.WithinErr
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	saved := s.data.clone()
	s.mu.Unlock()

	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.mu.Lock()
		s.data = saved
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.Commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return fn(ctx, s.CommandReads())
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memReads{s: s}
}

type memTx struct {
	s *Store
}

func (t *memTx) Resources() shared.ResourceLocker   { return memLocker(*t) }
func (t *memTx) Bookings() shared.BookingRepository { return memBookings(*t) }
func (t *memTx) Holds() shared.HoldRepository       { return memHolds(*t) }
func (t *memTx) Outbox() shared.OutboxRepository    { return memOutbox(*t) }
func (t *memTx) Reads() shared.CommandReads         { return &memReads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                      { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memLocker memTx

func (l memLocker) LockForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	snap, ok := l.s.data.resources[id]
	if !ok {
		return nil, notFound("resource")
	}
	return &snap, nil
}

type memBookings memTx

// Create rejects a confirmed overlap the way the exclusion constraint does.
func (r memBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.bookings {
		if existing.resourceID == b.ResourceID() && existing.status == booking.StatusConfirmed && existing.window.Overlaps(b.Window()) {
			return uuid.Nil, infra.WrapRepoErr("booking overlaps", nil, infra.KindConflict)
		}
	}
	r.s.data.bookings[b.ID()] = bookingToRow(b)
	return b.ID(), nil
}

func (r memBookings) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.data.bookings[b.ID()]
	if !ok {
		return notFound("booking")
	}
	row.status = b.Status()
	row.updatedAt = b.UpdatedAt()
	r.s.data.bookings[b.ID()] = row
	return nil
}

type memHolds memTx

func (r memHolds) Create(_ context.Context, _ sqlc.DBTX, h *hold.Hold) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.holds[h.ID()] = holdToRow(h)
	return h.ID(), nil
}

func (r memHolds) Transition(_ context.Context, _ sqlc.DBTX, h *hold.Hold, from hold.State) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.data.holds[h.ID()]
	if !ok || row.state != from {
		return false, nil
	}
	row.state = h.State()
	row.updatedAt = h.UpdatedAt()
	r.s.data.holds[h.ID()] = row
	return true, nil
}

func (r memHolds) ExpireOverdue(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, row := range r.s.data.holds {
		if row.state == hold.StateActive && !now.Before(row.expiresAt) {
			row.state = hold.StateExpired
			row.updatedAt = now
			r.s.data.holds[id] = row
			n++
		}
	}
	return n, nil
}

type memOutbox memTx

func (o memOutbox) Enqueue(_ context.Context, _ sqlc.DBTX, event shared.Event) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	o.s.data.outbox = append(o.s.data.outbox, outboxRow{event: event})
	return nil
}

func (o memOutbox) ClaimPending(_ context.Context, _ sqlc.DBTX, batchSize, maxAttempts int) ([]shared.Event, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var out []shared.Event
	for _, r := range o.s.data.outbox {
		if len(out) == batchSize {
			break
		}
		if r.publishedAt == nil && r.event.Attempts < maxAttempts {
			out = append(out, r.event)
		}
	}
	return out, nil
}

func (o memOutbox) MarkPublished(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	for i := range o.s.data.outbox {
		if o.s.data.outbox[i].event.ID == id {
			o.s.data.outbox[i].publishedAt = &at
			return nil
		}
	}
	return notFound("event")
}

func (o memOutbox) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, reason string) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	for i := range o.s.data.outbox {
		if o.s.data.outbox[i].event.ID == id {
			o.s.data.outbox[i].event.Attempts++
			o.s.data.outbox[i].lastError = reason
			return nil
		}
	}
	return notFound("event")
}

type memReads struct {
	s *Store
}

func (r *memReads) ResourceByID(_ context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap, ok := r.s.data.resources[id]
	if !ok {
		return nil, notFound("resource")
	}
	return &snap, nil
}

func (r *memReads) ResourcesByIDs(_ context.Context, ids []uuid.UUID) ([]*shared.ResourceSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*shared.ResourceSnapshot
	for _, id := range ids {
		if snap, ok := r.s.data.resources[id]; ok {
			out = append(out, &snap)
		}
	}
	return out, nil
}

func (r *memReads) RateFor(_ context.Context, key booking.RateKey) (booking.Money, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	amount, ok := r.s.data.rates[key]
	if !ok {
		return booking.Money{}, notFound("rate")
	}
	return booking.NewMoney(amount)
}

func (r *memReads) Occupancy(_ context.Context, resourceIDs []uuid.UUID, window booking.TimeWindow, now time.Time) (availability.Occupancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[uuid.UUID]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		wanted[id] = true
	}

	var occ availability.Occupancy
	for _, row := range r.s.data.bookings {
		if wanted[row.resourceID] && row.status == booking.StatusConfirmed && row.window.Overlaps(window) {
			occ.Bookings = append(occ.Bookings, row.toDomain().BusySlot())
		}
	}
	for _, row := range r.s.data.holds {
		if wanted[row.resourceID] && row.state == hold.StateActive && now.Before(row.expiresAt) && row.window.Overlaps(window) {
			occ.Holds = append(occ.Holds, row.toDomain())
		}
	}
	sort.Slice(occ.Bookings, func(i, j int) bool { return occ.Bookings[i].Window.Start() < occ.Bookings[j].Window.Start() })
	return occ, nil
}

func (r *memReads) HoldByToken(_ context.Context, token string) (*hold.Hold, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.data.holds {
		if row.token == token {
			return row.toDomain(), nil
		}
	}
	return nil, notFound("hold")
}

func (r *memReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.data.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return row.toDomain(), nil
}

func holdToRow(h *hold.Hold) holdRow {
	return holdRow{
		id:         h.ID(),
		token:      h.Token(),
		resourceID: h.ResourceID(),
		window:     h.Window(),
		owner:      h.Owner(),
		createdAt:  h.CreatedAt(),
		expiresAt:  h.ExpiresAt(),
		state:      h.State(),
		updatedAt:  h.UpdatedAt(),
	}
}

func (r holdRow) toDomain() *hold.Hold {
	h, err := hold.Reconstruct(hold.ReconstructParams{
		ID:         r.id,
		Token:      r.token,
		ResourceID: r.resourceID,
		Window:     r.window,
		Owner:      r.owner,
		CreatedAt:  r.createdAt,
		ExpiresAt:  r.expiresAt,
		State:      string(r.state),
		UpdatedAt:  r.updatedAt,
	})
	if err != nil {
		panic(err)
	}
	return h
}

func bookingToRow(b *booking.Booking) bookingRow {
	return bookingRow{
		id:         b.ID(),
		resourceID: b.ResourceID(),
		customerID: b.CustomerID(),
		window:     b.Window(),
		channel:    b.Channel(),
		createdBy:  b.CreatedBy(),
		totalPrice: b.TotalPrice().Amount(),
		status:     b.Status(),
		holdID:     b.HoldID(),
		createdAt:  b.CreatedAt(),
		updatedAt:  b.UpdatedAt(),
	}
}

func (r bookingRow) toDomain() *booking.Booking {
	b, err := booking.Reconstruct(booking.ReconstructParams{
		ID:         r.id,
		ResourceID: r.resourceID,
		CustomerID: r.customerID,
		Window:     r.window,
		Channel:    string(r.channel),
		CreatedBy:  r.createdBy,
		TotalPrice: r.totalPrice,
		Status:     string(r.status),
		HoldID:     r.holdID,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
	})
	if err != nil {
		panic(err)
	}
	return b
}

package hold

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyOwner   = errors.New("hold owner cannot be empty")
	ErrOwnerTooLong = errors.New("hold owner is too long (max 255 characters)")
	ErrInvalidTTL   = errors.New("hold ttl must be positive")
	ErrInvalidState = errors.New("invalid hold state")
	ErrEmptyToken   = errors.New("hold token cannot be empty")
)

const (
	MaxOwnerLength = 255

	ReasonMismatch  = "mismatch"
	ReasonExpired   = "expired"
	ReasonNotActive = "not_active"
)

// StateError describes why a hold could not be consumed.
type StateError struct {
	HoldID uuid.UUID
	State  State
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("hold %s cannot be consumed: %s (state %s)", e.HoldID, e.Reason, e.State)
}

// Hold is a short-lived provisional claim on a resource window.
type Hold struct {
	id         uuid.UUID
	token      string
	resourceID uuid.UUID
	window     booking.TimeWindow
	owner      string
	createdAt  time.Time
	expiresAt  time.Time
	state      State
	updatedAt  time.Time
}

func New(resourceID uuid.UUID, window booking.TimeWindow, owner string, now time.Time, ttl time.Duration) (*Hold, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if len(owner) > MaxOwnerLength {
		return nil, ErrOwnerTooLong
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	return &Hold{
		id:         uuid.New(),
		token:      token,
		resourceID: resourceID,
		window:     window,
		owner:      owner,
		createdAt:  now,
		expiresAt:  now.Add(ttl),
		state:      StateActive,
		updatedAt:  now,
	}, nil
}

type ReconstructParams struct {
	ID         uuid.UUID
	Token      string
	ResourceID uuid.UUID
	Window     booking.TimeWindow
	Owner      string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	State      string
	UpdatedAt  time.Time
}

func Reconstruct(p ReconstructParams) (*Hold, error) {
	st := State(p.State)
	if !st.IsValid() {
		return nil, ErrInvalidState
	}
	if p.Token == "" {
		return nil, ErrEmptyToken
	}
	return &Hold{
		id:         p.ID,
		token:      p.Token,
		resourceID: p.ResourceID,
		window:     p.Window,
		owner:      p.Owner,
		createdAt:  p.CreatedAt,
		expiresAt:  p.ExpiresAt,
		state:      st,
		updatedAt:  p.UpdatedAt,
	}, nil
}

// IsOccupying is a pure predicate on time; it holds even when no sweep has
// flipped an overdue hold to expired.
func (h *Hold) IsOccupying(now time.Time) bool {
	return h.state == StateActive && now.Before(h.expiresAt)
}

// EffectiveState folds the expiry predicate into the stored state.
func (h *Hold) EffectiveState(now time.Time) State {
	if h.state == StateActive && !now.Before(h.expiresAt) {
		return StateExpired
	}
	return h.state
}

// Consume validates the hold against the window being finalized and marks it
// consumed. On error the hold is left untouched.
func (h *Hold) Consume(now time.Time, resourceID uuid.UUID, window booking.TimeWindow) error {
	switch h.EffectiveState(now) {
	case StateActive:
	case StateExpired:
		return errs.Mark(&StateError{HoldID: h.id, State: StateExpired, Reason: ReasonExpired}, errs.ErrHoldExpired)
	default:
		return errs.Mark(&StateError{HoldID: h.id, State: h.state, Reason: ReasonNotActive}, errs.ErrHoldNotActive)
	}
	if h.resourceID != resourceID || !h.window.Equal(window) {
		return errs.Mark(&StateError{HoldID: h.id, State: h.state, Reason: ReasonMismatch}, errs.ErrHoldNotActive)
	}
	h.state = StateConsumed
	h.updatedAt = now
	return nil
}

// Release reports whether the stored state changed. Releasing a terminal
// hold is a no-op; an overdue active hold is recorded as expired instead.
func (h *Hold) Release(now time.Time) bool {
	switch h.EffectiveState(now) {
	case StateActive:
		h.state = StateReleased
	case StateExpired:
		if h.state == StateExpired {
			return false
		}
		h.state = StateExpired
	default:
		return false
	}
	h.updatedAt = now
	return true
}

func (h *Hold) BusySlot() booking.BusySlot {
	expiresAt := h.expiresAt
	return booking.BusySlot{
		ResourceID: h.resourceID,
		Window:     h.window,
		Source:     booking.SourceHold,
		RefID:      h.id,
		ExpiresAt:  &expiresAt,
	}
}

func (h *Hold) ID() uuid.UUID              { return h.id }
func (h *Hold) Token() string              { return h.token }
func (h *Hold) ResourceID() uuid.UUID      { return h.resourceID }
func (h *Hold) Window() booking.TimeWindow { return h.window }
func (h *Hold) Owner() string              { return h.owner }
func (h *Hold) CreatedAt() time.Time       { return h.createdAt }
func (h *Hold) ExpiresAt() time.Time       { return h.expiresAt }
func (h *Hold) State() State               { return h.state }
func (h *Hold) UpdatedAt() time.Time       { return h.updatedAt }

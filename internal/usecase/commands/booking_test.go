//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"field-booking/internal/domain/actor"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/shared"
	"field-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	fx       fixture
	commands commands.BookingCommands
	holds    commands.HoldCommands
	customer actor.Actor
	staff    actor.Actor
	ctx      context.Context
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.fx = newFixture()
	s.commands = commands.NewBookingCommands(s.fx.store, s.fx.clock, discardLogger())
	cfg := config.Config{Booking: config.BookingConfig{HoldTTL: 5 * time.Minute}}
	s.holds = commands.NewHoldCommands(s.fx.store, s.fx.clock, cfg, discardLogger())
	s.customer = actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
	s.staff = actor.Actor{ID: uuid.New(), Role: actor.RoleStaff}
	s.ctx = context.Background()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) input(startAt, endAt string) commands.FinalizeInput {
	return commands.FinalizeInput{
		ResourceID: s.fx.resource.ID,
		Window:     builder.MustWindow(builder.DefaultDate, startAt, endAt),
		Channel:    booking.ChannelOnline,
	}
}

// ================================================================================
// TestFinalize
// ================================================================================

func (s *BookingCommandsTestSuite) TestFinalize() {
	s.Run("success: prices by tier and persists a confirmed booking", func() {
		s.fx.store.SetRate(booking.RateKey{
			ResourceTypeID: s.fx.resource.TypeID,
			Tier:           booking.Tier{Day: booking.Weekday, Band: booking.Evening},
		}, 120000)

		res, err := s.commands.Finalize(s.ctx, s.customer, s.input("18:00", "20:00"))
		s.Require().NoError(err)
		s.Equal(2, res.Quote.Units)
		s.Equal(booking.Tier{Day: booking.Weekday, Band: booking.Evening}, res.Quote.Tier)
		s.Equal(int64(240000), res.Quote.Total.Amount())
		s.Nil(res.HoldID)

		b, ok := s.fx.store.Booking(res.BookingID)
		s.Require().True(ok)
		s.Equal(s.customer.ID, b.CustomerID())
		s.Equal(s.customer.ID, b.CreatedBy())
		s.Equal(booking.StatusConfirmed, b.Status())
		s.Equal(int64(240000), b.TotalPrice().Amount())

		events := s.fx.store.EventsOfKind(shared.EventBookingConfirmed)
		s.Require().Len(events, 1)
		var payload map[string]any
		s.Require().NoError(json.Unmarshal(events[0].Payload, &payload))
		s.Equal("18:00", payload["start"])
		s.Equal(float64(240000), payload["total_price"])
	})

	s.Run("error: overlapping window is unavailable", func() {
		_, err := s.commands.Finalize(s.ctx, s.customer, s.input("19:00", "21:00"))
		s.True(errs.Is(err, errs.ErrSlotUnavailable))
		var ce *booking.ConflictError
		s.Require().True(errs.As(err, &ce))
		s.Require().Len(ce.Conflicts, 1)
		s.Equal(booking.SourceBooking, ce.Conflicts[0].Source)
	})

	s.Run("success: back to back booking at the end boundary", func() {
		_, err := s.commands.Finalize(s.ctx, s.customer, s.input("20:00", "21:00"))
		s.NoError(err)
	})

	s.Run("error: rollback leaves no partial writes", func() {
		before := len(s.fx.store.Events())
		_, err := s.commands.Finalize(s.ctx, s.customer, s.input("18:00", "18:30"))
		s.True(errs.Is(err, errs.ErrUnitMismatch))
		s.Len(s.fx.store.Events(), before)
	})
}

func (s *BookingCommandsTestSuite) TestFinalize_Errors() {
	s.Run("rate missing", func() {
		other := builder.NewResourceBuilder()
		s.fx.store.AddResource(*other.BuildSnapshot())

		_, err := s.commands.Finalize(s.ctx, s.customer, commands.FinalizeInput{
			ResourceID: other.ID,
			Window:     builder.MustWindow(builder.DefaultDate, "08:00", "09:00"),
			Channel:    booking.ChannelOnline,
		})
		s.True(errs.Is(err, errs.ErrRateNotFound))
		var rn *booking.RateNotFoundError
		s.Require().True(errs.As(err, &rn))
		s.Equal(other.TypeID, rn.Key.ResourceTypeID)
		s.Equal(booking.Morning, rn.Key.Tier.Band)
		s.Empty(s.fx.store.ConfirmedBookings(other.ID))
	})

	s.Run("customer booking for someone else", func() {
		in := s.input("08:00", "09:00")
		someone := uuid.New()
		in.CustomerID = &someone
		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("staff must name a customer", func() {
		_, err := s.commands.Finalize(s.ctx, s.staff, s.input("08:00", "09:00"))
		s.ErrorIs(err, commands.ErrCustomerRequired)
	})

	s.Run("unknown channel", func() {
		in := s.input("08:00", "09:00")
		in.Channel = "phone"
		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.ErrorIs(err, booking.ErrInvalidChannel)
	})

	s.Run("unknown resource", func() {
		in := s.input("08:00", "09:00")
		in.ResourceID = uuid.New()
		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("exhausted retries surface as contention", func() {
		s.fx.store.WithinErr = errs.Wrap(shared.ErrMaxRetriesExceeded, "serialization failure")
		defer func() { s.fx.store.WithinErr = nil }()

		_, err := s.commands.Finalize(s.ctx, s.customer, s.input("08:00", "09:00"))
		var ce *booking.ConflictError
		s.Require().True(errs.As(err, &ce))
		s.Equal(booking.ReasonContention, ce.Reason)
	})
}

func (s *BookingCommandsTestSuite) TestFinalize_StaffBooksForCustomer() {
	customerID := uuid.New()
	in := s.input("08:00", "09:00")
	in.CustomerID = &customerID
	in.Channel = booking.ChannelInPerson

	res, err := s.commands.Finalize(s.ctx, s.staff, in)
	s.Require().NoError(err)

	b, _ := s.fx.store.Booking(res.BookingID)
	s.Equal(customerID, b.CustomerID())
	s.Equal(s.staff.ID, b.CreatedBy())
	s.Equal(booking.ChannelInPerson, b.Channel())
}

// ================================================================================
// Finalize with a hold
// ================================================================================

func (s *BookingCommandsTestSuite) acquire(startAt, endAt string) *commands.AcquireHoldResult {
	res, err := s.holds.Acquire(s.ctx, s.staff, commands.AcquireHoldInput{
		ResourceID: s.fx.resource.ID,
		Window:     builder.MustWindow(builder.DefaultDate, startAt, endAt),
		Owner:      "desk",
	})
	s.Require().NoError(err)
	return res
}

func (s *BookingCommandsTestSuite) TestFinalize_WithHold() {
	s.Run("success: consumes the hold", func() {
		h := s.acquire("18:00", "19:00")
		in := s.input("18:00", "19:00")
		in.HoldToken = h.Token

		res, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.Require().NoError(err)
		s.Require().NotNil(res.HoldID)
		s.Equal(h.HoldID, *res.HoldID)

		stored, _ := s.fx.store.Hold(h.HoldID)
		s.Equal(hold.StateConsumed, stored.State())
	})

	s.Run("error: a consumed hold cannot be used twice", func() {
		h := s.acquire("20:00", "21:00")
		in := s.input("20:00", "21:00")
		in.HoldToken = h.Token
		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.Require().NoError(err)

		_, err = s.commands.Finalize(s.ctx, s.customer, in)
		s.True(errs.Is(err, errs.ErrSlotUnavailable))
		s.True(errs.Is(err, errs.ErrHoldNotActive))
	})

	s.Run("error: expired hold is rejected and nothing is written", func() {
		h := s.acquire("08:00", "09:00")
		s.fx.clock.Add(5 * time.Minute)
		in := s.input("08:00", "09:00")
		in.HoldToken = h.Token

		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.True(errs.Is(err, errs.ErrHoldExpired))
		var se *hold.StateError
		s.Require().True(errs.As(err, &se))
		s.Equal(hold.ReasonExpired, se.Reason)

		stored, _ := s.fx.store.Hold(h.HoldID)
		s.Equal(hold.StateActive, stored.State())
	})

	s.Run("error: hold for another window is rejected", func() {
		h := s.acquire("10:00", "11:00")
		in := s.input("10:00", "12:00")
		in.HoldToken = h.Token

		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		var se *hold.StateError
		s.Require().True(errs.As(err, &se))
		s.Equal(hold.ReasonMismatch, se.Reason)
	})

	s.Run("error: unknown token", func() {
		in := s.input("13:00", "14:00")
		in.HoldToken = "tok_nope"
		_, err := s.commands.Finalize(s.ctx, s.customer, in)
		s.True(errs.Is(err, errs.ErrHoldNotActive))
	})

	s.Run("error: someone else's active hold blocks a finalize without its token", func() {
		s.acquire("15:00", "16:00")
		_, err := s.commands.Finalize(s.ctx, s.customer, s.input("15:00", "16:00"))
		var ce *booking.ConflictError
		s.Require().True(errs.As(err, &ce))
		s.Require().Len(ce.Conflicts, 1)
		s.Equal(booking.SourceHold, ce.Conflicts[0].Source)
	})
}

// N concurrent finalizes for one window produce exactly one booking.
func (s *BookingCommandsTestSuite) TestFinalize_ConcurrentSameWindow() {
	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			caller := actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
			_, err := s.commands.Finalize(s.ctx, caller, s.input("18:00", "19:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.Is(err, errs.ErrSlotUnavailable):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(n-1, conflicts)
	s.Len(s.fx.store.ConfirmedBookings(s.fx.resource.ID), 1)
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancel() {
	res, err := s.commands.Finalize(s.ctx, s.customer, s.input("18:00", "19:00"))
	s.Require().NoError(err)

	s.Run("error: other customers may not cancel", func() {
		intruder := actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
		err := s.commands.Cancel(s.ctx, intruder, res.BookingID)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("success: owner cancels and the window frees up", func() {
		s.Require().NoError(s.commands.Cancel(s.ctx, s.customer, res.BookingID))
		b, _ := s.fx.store.Booking(res.BookingID)
		s.Equal(booking.StatusCanceled, b.Status())
		s.Len(s.fx.store.EventsOfKind(shared.EventBookingCanceled), 1)

		_, err := s.commands.Finalize(s.ctx, s.customer, s.input("18:00", "19:00"))
		s.NoError(err)
	})

	s.Run("success: canceling twice is a no-op", func() {
		s.NoError(s.commands.Cancel(s.ctx, s.staff, res.BookingID))
		s.Len(s.fx.store.EventsOfKind(shared.EventBookingCanceled), 1)
	})

	s.Run("error: unknown booking", func() {
		err := s.commands.Cancel(s.ctx, s.staff, uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

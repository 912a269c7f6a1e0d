//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"field-booking/internal/domain/actor"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/domain/resource"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/shared"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var start = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture is a store with one bookable hourly pitch priced at 100000 per unit.
type fixture struct {
	store    *memuow.Store
	clock    *clock.MockClock
	resource *builder.ResourceBuilder
}

func newFixture() fixture {
	store := memuow.New()
	res := builder.NewResourceBuilder()
	store.AddResource(*res.BuildSnapshot())
	store.SetFullRateCard(res.TypeID, 100000)
	return fixture{store: store, clock: clock.NewMockClock(start), resource: res}
}

type HoldCommandsTestSuite struct {
	suite.Suite
	fx       fixture
	commands commands.HoldCommands
	staff    actor.Actor
	ctx      context.Context
}

func (s *HoldCommandsTestSuite) SetupTest() {
	s.fx = newFixture()
	cfg := config.Config{Booking: config.BookingConfig{HoldTTL: 5 * time.Minute}}
	s.commands = commands.NewHoldCommands(s.fx.store, s.fx.clock, cfg, discardLogger())
	s.staff = actor.Actor{ID: uuid.New(), Role: actor.RoleStaff}
	s.ctx = context.Background()
}

func TestHoldCommandsSuite(t *testing.T) {
	suite.Run(t, new(HoldCommandsTestSuite))
}

func (s *HoldCommandsTestSuite) acquire(startAt, endAt string) (*commands.AcquireHoldResult, error) {
	return s.commands.Acquire(s.ctx, s.staff, commands.AcquireHoldInput{
		ResourceID: s.fx.resource.ID,
		Window:     builder.MustWindow(builder.DefaultDate, startAt, endAt),
		Owner:      "desk",
	})
}

func (s *HoldCommandsTestSuite) TestAcquire() {
	s.Run("success: registers an active hold with ttl", func() {
		res, err := s.acquire("18:00", "20:00")
		s.Require().NoError(err)
		s.Equal(2, res.Units)
		s.Equal(start.Add(5*time.Minute), res.ExpiresAt)
		s.NotEmpty(res.Token)

		h, ok := s.fx.store.Hold(res.HoldID)
		s.Require().True(ok)
		s.Equal(hold.StateActive, h.State())
		s.Equal("desk", h.Owner())
		s.Len(s.fx.store.EventsOfKind(shared.EventHoldAcquired), 1)
	})

	s.Run("error: overlapping active hold blocks a second acquire", func() {
		_, err := s.acquire("19:00", "20:00")
		s.True(errs.Is(err, errs.ErrSlotUnavailable))

		var ce *booking.ConflictError
		s.Require().True(errs.As(err, &ce))
		s.Equal(booking.ReasonOccupied, ce.Reason)
		s.Require().Len(ce.Conflicts, 1)
		s.Equal(booking.SourceHold, ce.Conflicts[0].Source)
	})

	s.Run("success: adjacent window is free", func() {
		_, err := s.acquire("20:00", "21:00")
		s.NoError(err)
	})

	s.Run("success: an expired hold no longer blocks even before any sweep", func() {
		s.fx.clock.Add(5 * time.Minute)
		_, err := s.acquire("18:00", "19:00")
		s.NoError(err)
	})
}

func (s *HoldCommandsTestSuite) TestAcquire_Errors() {
	s.Run("unit mismatch", func() {
		_, err := s.acquire("18:00", "18:45")
		s.True(errs.Is(err, errs.ErrUnitMismatch))
	})

	s.Run("owner defaults to the actor id", func() {
		res, err := s.commands.Acquire(s.ctx, s.staff, commands.AcquireHoldInput{
			ResourceID: s.fx.resource.ID,
			Window:     builder.MustWindow(builder.DefaultDate, "08:00", "09:00"),
		})
		s.Require().NoError(err)
		h, _ := s.fx.store.Hold(res.HoldID)
		s.Equal(s.staff.ID.String(), h.Owner())
	})

	s.Run("unknown resource", func() {
		_, err := s.commands.Acquire(s.ctx, s.staff, commands.AcquireHoldInput{
			ResourceID: uuid.New(),
			Window:     builder.MustWindow(builder.DefaultDate, "08:00", "09:00"),
		})
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("resource under maintenance", func() {
		closed := builder.NewResourceBuilder().With(func(r *builder.ResourceBuilder) {
			r.Status = string(resource.StatusMaintenance)
		})
		s.fx.store.AddResource(*closed.BuildSnapshot())

		_, err := s.commands.Acquire(s.ctx, s.staff, commands.AcquireHoldInput{
			ResourceID: closed.ID,
			Window:     builder.MustWindow(builder.DefaultDate, "08:00", "09:00"),
		})
		var ce *booking.ConflictError
		s.Require().True(errs.As(err, &ce))
		s.Equal(booking.ReasonResourceUnavailable, ce.Reason)
	})

	s.Run("exhausted retries surface as contention", func() {
		s.fx.store.WithinErr = errs.Wrap(shared.ErrMaxRetriesExceeded, "serialization failure")
		defer func() { s.fx.store.WithinErr = nil }()

		_, err := s.acquire("10:00", "11:00")
		var ce *booking.ConflictError
		s.Require().True(errs.As(err, &ce))
		s.Equal(booking.ReasonContention, ce.Reason)
		s.True(errs.Is(err, errs.ErrSlotUnavailable))
	})
}

func (s *HoldCommandsTestSuite) TestRelease() {
	res, err := s.acquire("18:00", "19:00")
	s.Require().NoError(err)

	s.Require().NoError(s.commands.Release(s.ctx, s.staff, res.Token))
	h, _ := s.fx.store.Hold(res.HoldID)
	s.Equal(hold.StateReleased, h.State())
	s.Len(s.fx.store.EventsOfKind(shared.EventHoldReleased), 1)

	s.Run("window is free again", func() {
		_, err := s.acquire("18:00", "19:00")
		s.NoError(err)
	})

	s.Run("releasing twice is a no-op", func() {
		s.NoError(s.commands.Release(s.ctx, s.staff, res.Token))
		s.Len(s.fx.store.EventsOfKind(shared.EventHoldReleased), 1)
	})

	s.Run("unknown and empty tokens are a no-op", func() {
		s.NoError(s.commands.Release(s.ctx, s.staff, "tok_missing"))
		s.NoError(s.commands.Release(s.ctx, s.staff, ""))
	})
}

func (s *HoldCommandsTestSuite) TestRelease_OverdueIsRecordedExpired() {
	res, err := s.acquire("18:00", "19:00")
	s.Require().NoError(err)

	s.fx.clock.Add(10 * time.Minute)
	s.Require().NoError(s.commands.Release(s.ctx, s.staff, res.Token))

	h, _ := s.fx.store.Hold(res.HoldID)
	s.Equal(hold.StateExpired, h.State())
	s.Empty(s.fx.store.EventsOfKind(shared.EventHoldReleased))
}

func (s *HoldCommandsTestSuite) TestSweepExpired() {
	first, err := s.acquire("08:00", "09:00")
	s.Require().NoError(err)
	s.fx.clock.Add(3 * time.Minute)
	second, err := s.acquire("10:00", "11:00")
	s.Require().NoError(err)

	s.fx.clock.Add(3 * time.Minute)
	n, err := s.commands.SweepExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	h1, _ := s.fx.store.Hold(first.HoldID)
	h2, _ := s.fx.store.Hold(second.HoldID)
	s.Equal(hold.StateExpired, h1.State())
	s.Equal(hold.StateActive, h2.State())

	n, err = s.commands.SweepExpired(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}

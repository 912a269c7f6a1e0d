//go:build unit

package queries_test

import (
	"context"
	"testing"

	"field-booking/internal/domain/booking"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/queries"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingQueries(t *testing.T) {
	ctx := context.Background()
	store := memuow.New()
	q := queries.NewPricingQueries(store)

	pitch := builder.NewResourceBuilder().With(func(r *builder.ResourceBuilder) { r.UnitMinutes = 90 })
	store.AddResource(*pitch.BuildSnapshot())
	weekendMorning := booking.Tier{Day: booking.Weekend, Band: booking.Morning}
	weekdayEvening := booking.Tier{Day: booking.Weekday, Band: booking.Evening}
	store.SetRate(booking.RateKey{ResourceTypeID: pitch.TypeID, Tier: weekendMorning}, 150000)
	store.SetRate(booking.RateKey{ResourceTypeID: pitch.TypeID, Tier: weekdayEvening}, 120000)

	t.Run("GetPrice", func(t *testing.T) {
		view, err := q.GetPrice(ctx, pitch.TypeID, weekendMorning)
		require.NoError(t, err)
		assert.Equal(t, int64(150000), view.PricePerUnit)
		assert.Equal(t, "weekend", view.DayType)

		_, err = q.GetPrice(ctx, pitch.TypeID, booking.Tier{Day: booking.Weekday, Band: booking.Morning})
		assert.True(t, errs.Is(err, errs.ErrRateNotFound))
	})

	t.Run("Quote classifies by start and multiplies units", func(t *testing.T) {
		// Saturday; the window starts in the morning band and runs past noon.
		view, err := q.Quote(ctx, pitch.ID, builder.MustWindow("2025-03-08", "10:30", "13:30"))
		require.NoError(t, err)
		assert.Equal(t, 2, view.Units)
		assert.Equal(t, 90, view.UnitMinutes)
		assert.Equal(t, "weekend", view.DayType)
		assert.Equal(t, "morning", view.TimeBand)
		assert.Equal(t, int64(300000), view.TotalPrice)

		view, err = q.Quote(ctx, pitch.ID, builder.MustWindow(builder.DefaultDate, "18:00", "19:30"))
		require.NoError(t, err)
		assert.Equal(t, int64(120000), view.TotalPrice)
	})

	t.Run("Quote errors", func(t *testing.T) {
		_, err := q.Quote(ctx, pitch.ID, builder.MustWindow(builder.DefaultDate, "18:00", "19:00"))
		assert.True(t, errs.Is(err, errs.ErrUnitMismatch))

		_, err = q.Quote(ctx, pitch.ID, builder.MustWindow(builder.DefaultDate, "09:00", "10:30"))
		assert.True(t, errs.Is(err, errs.ErrRateNotFound))

		_, err = q.Quote(ctx, uuid.New(), builder.MustWindow(builder.DefaultDate, "09:00", "10:30"))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-booking/internal/infra"
	"field-booking/internal/infra/readstore"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/tests/common/builder"
	readstoremock "field-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Booking aggregate reads
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        func() sqlc.Bookings
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking restored",
			row:  func() sqlc.Bookings { return builder.NewBookingBuilder().BuildInfra() },
		},
		{
			name:       "error: booking not found",
			row:        func() sqlc.Bookings { return sqlc.Bookings{} },
			dbErr:      pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			row:        func() sqlc.Bookings { return sqlc.Bookings{} },
			dbErr:      errors.New("connection refused"),
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: unknown stored status",
			row: func() sqlc.Bookings {
				row := builder.NewBookingBuilder().BuildInfra()
				row.Status = "archived"
				return row
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBookingReadStore(mockQueries)

			row := tc.row()
			mockQueries.EXPECT().GetBookingByID(ctx, mockDB, gomock.Any()).Return(row, tc.dbErr)

			b, err := store.FindByID(ctx, mockDB, row.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, b.ID())
			assert.Equal(t, "18:00", b.Window().Start().String())
			assert.Equal(t, row.TotalPrice, b.TotalPrice().Amount())
		})
	}
}

// =============================================================================
// Booking views
// =============================================================================

func TestBookingViewStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: view formatted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingViewStore(mockQueries, mockDB)

		holdID := uuid.New()
		src := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.HoldID = &holdID
		})
		row := src.BuildInfra()
		mockQueries.EXPECT().GetBookingViewByID(ctx, mockDB, row.ID).Return(sqlc.GetBookingViewByIDRow{
			ID:           row.ID,
			ResourceID:   row.ResourceID,
			ResourceName: src.ResourceName,
			CustomerID:   row.CustomerID,
			BookingDate:  row.BookingDate,
			StartMinute:  row.StartMinute,
			EndMinute:    row.EndMinute,
			Channel:      row.Channel,
			CreatedBy:    row.CreatedBy,
			TotalPrice:   row.TotalPrice,
			HoldID:       row.HoldID,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		}, nil)

		view, err := store.FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, builder.DefaultDate, view.Date)
		assert.Equal(t, builder.DefaultStart, view.Start)
		assert.Equal(t, builder.DefaultEnd, view.End)
		assert.Equal(t, "Pitch 1", view.ResourceName)
		require.NotNil(t, view.HoldID)
		assert.Equal(t, holdID, *view.HoldID)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingViewStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetBookingViewByID(ctx, mockDB, gomock.Any()).Return(sqlc.GetBookingViewByIDRow{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestBookingViewStore_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	lastCreatedAt := time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC)
	lastID := uuid.New()

	listRow := sqlc.ListBookingsByCustomerKeysetRow{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Pitch 2",
		BookingDate:  pgconv.DateToPgtype(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)),
		StartMinute:  9 * 60,
		EndMinute:    10*60 + 30,
		Channel:      "staff",
		TotalPrice:   90000,
		Status:       "canceled",
		CreatedAt:    pgconv.TimeToPgtype(lastCreatedAt.Add(-time.Hour)),
	}

	t.Run("success: first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingViewStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingsByCustomerFirstPage(ctx, mockDB, sqlc.ListBookingsByCustomerFirstPageParams{
			CustomerID: customerID,
			Limit:      21,
		}).Return([]sqlc.ListBookingsByCustomerFirstPageRow{sqlc.ListBookingsByCustomerFirstPageRow(listRow)}, nil)

		items, err := store.FindByCustomerFirstPage(ctx, customerID, 21)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "2025-03-15", items[0].Date)
		assert.Equal(t, "09:00", items[0].Start)
		assert.Equal(t, "10:30", items[0].End)
		assert.Equal(t, "canceled", items[0].Status)
	})

	t.Run("success: keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingViewStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingsByCustomerKeyset(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingsByCustomerKeysetParams) ([]sqlc.ListBookingsByCustomerKeysetRow, error) {
				assert.Equal(t, customerID, arg.CustomerID)
				assert.Equal(t, lastID, arg.ID)
				assert.Equal(t, lastCreatedAt, pgconv.TimeFromPgtype(arg.CreatedAt))
				assert.Equal(t, int32(11), arg.RowLimit)
				return []sqlc.ListBookingsByCustomerKeysetRow{listRow}, nil
			})

		items, err := store.FindByCustomerKeyset(ctx, customerID, lastCreatedAt, lastID, 11)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, listRow.ID, items[0].ID)
	})

	t.Run("error: keyset query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBookingViewStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListBookingsByCustomerKeyset(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))

		items, err := store.FindByCustomerKeyset(ctx, customerID, lastCreatedAt, lastID, 11)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, items)
	})
}

package readstore

import (
	"context"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
}

// BookingReadStore loads booking aggregates for the command side.
type BookingReadStore struct {
	queries BookingReadQueries
}

func NewBookingReadStore(queries BookingReadQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking", err)
	}
	return b, nil
}

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingsByCustomerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerFirstPageParams) ([]sqlc.ListBookingsByCustomerFirstPageRow, error)
	ListBookingsByCustomerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerKeysetParams) ([]sqlc.ListBookingsByCustomerKeysetRow, error)
}

// BookingViewStore serves the query side directly from the pool.
type BookingViewStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingViewStore(queries BookingViewQueries, db sqlc.DBTX) *BookingViewStore {
	return &BookingViewStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingViewStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:           row.ID,
		ResourceID:   row.ResourceID,
		ResourceName: row.ResourceName,
		CustomerID:   row.CustomerID,
		Date:         formatDate(row.BookingDate),
		Start:        booking.Minutes(row.StartMinute).String(),
		End:          booking.Minutes(row.EndMinute).String(),
		Channel:      row.Channel,
		CreatedBy:    row.CreatedBy,
		TotalPrice:   row.TotalPrice,
		HoldID:       pgconv.UUIDPtrFromPgtype(row.HoldID),
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingViewStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByCustomerFirstPage(ctx, r.db, sqlc.ListBookingsByCustomerFirstPageParams{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by customer", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(sqlc.ListBookingsByCustomerKeysetRow(row))
	}
	return result, nil
}

func (r *BookingViewStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByCustomerKeyset(ctx, r.db, sqlc.ListBookingsByCustomerKeysetParams{
		CustomerID: customerID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer keyset", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItem(row)
	}
	return result, nil
}

func toBookingListItem(row sqlc.ListBookingsByCustomerKeysetRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           row.ID,
		ResourceID:   row.ResourceID,
		ResourceName: row.ResourceName,
		Date:         formatDate(row.BookingDate),
		Start:        booking.Minutes(row.StartMinute).String(),
		End:          booking.Minutes(row.EndMinute).String(),
		Channel:      row.Channel,
		TotalPrice:   row.TotalPrice,
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func formatDate(d pgtype.Date) string {
	return booking.DateOf(pgconv.DateFromPgtype(d)).String()
}

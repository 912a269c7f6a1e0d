package readstore

import (
	"context"
	"time"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=occupancy.go -destination=../../../tests/mock/readstore/occupancy.go -package=readstoremock

type OccupancyReadQueries interface {
	ListBusySlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBusySlotsParams) ([]sqlc.ListBusySlotsRow, error)
	ListActiveHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveHoldsParams) ([]sqlc.Holds, error)
}

type OccupancyReadStore struct {
	queries OccupancyReadQueries
}

func NewOccupancyReadStore(queries OccupancyReadQueries) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
	}
}

// Load reads confirmed bookings and unexpired active holds overlapping window
// on any of resourceIDs. Both reads use db, so inside a snapshot transaction
// they see the same state.
func (r *OccupancyReadStore) Load(ctx context.Context, db sqlc.DBTX, resourceIDs []uuid.UUID, window booking.TimeWindow, now time.Time) (availability.Occupancy, error) {
	date, start, end := converter.WindowToInfra(window)

	slotRows, err := r.queries.ListBusySlots(ctx, db, sqlc.ListBusySlotsParams{
		ResourceIds: resourceIDs,
		BookingDate: date,
		EndMinute:   end,
		StartMinute: start,
	})
	if err != nil {
		return availability.Occupancy{}, infra.WrapRepoErr("failed to list busy slots", err)
	}

	holdRows, err := r.queries.ListActiveHolds(ctx, db, sqlc.ListActiveHoldsParams{
		ResourceIds: resourceIDs,
		BookingDate: date,
		Now:         pgconv.TimeToPgtype(now),
		EndMinute:   end,
		StartMinute: start,
	})
	if err != nil {
		return availability.Occupancy{}, infra.WrapRepoErr("failed to list active holds", err)
	}

	occ := availability.Occupancy{
		Bookings: make([]booking.BusySlot, 0, len(slotRows)),
		Holds:    make([]*hold.Hold, 0, len(holdRows)),
	}
	for _, row := range slotRows {
		w, err := converter.WindowFromRow(row.BookingDate, row.StartMinute, row.EndMinute)
		if err != nil {
			return availability.Occupancy{}, infra.WrapRepoErr("invalid stored booking window", err)
		}
		occ.Bookings = append(occ.Bookings, booking.BusySlot{
			ResourceID: row.ResourceID,
			Window:     w,
			Source:     booking.SourceBooking,
			RefID:      row.ID,
		})
	}
	for _, row := range holdRows {
		h, err := converter.HoldFromRow(row)
		if err != nil {
			return availability.Occupancy{}, infra.WrapRepoErr("invalid stored hold", err)
		}
		occ.Holds = append(occ.Holds, h)
	}
	return occ, nil
}

package converter

import (
	"field-booking/internal/domain/hold"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

func HoldToInfra(h *hold.Hold) sqlc.CreateHoldParams {
	date, start, end := WindowToInfra(h.Window())
	return sqlc.CreateHoldParams{
		ID:          h.ID(),
		Token:       h.Token(),
		ResourceID:  h.ResourceID(),
		BookingDate: date,
		StartMinute: start,
		EndMinute:   end,
		Owner:       h.Owner(),
		State:       h.State().String(),
		CreatedAt:   pgconv.TimeToPgtype(h.CreatedAt()),
		ExpiresAt:   pgconv.TimeToPgtype(h.ExpiresAt()),
		UpdatedAt:   pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HoldFromRow(row sqlc.Holds) (*hold.Hold, error) {
	window, err := WindowFromRow(row.BookingDate, row.StartMinute, row.EndMinute)
	if err != nil {
		return nil, err
	}
	return hold.Reconstruct(hold.ReconstructParams{
		ID:         row.ID,
		Token:      row.Token,
		ResourceID: row.ResourceID,
		Window:     window,
		Owner:      row.Owner,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
		State:      row.State,
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

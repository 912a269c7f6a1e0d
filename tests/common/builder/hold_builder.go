//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/hold"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	ID         uuid.UUID
	Token      string
	ResourceID uuid.UUID
	Date       string
	Start      string
	End        string
	Owner      string
	State      hold.State
	CreatedAt  time.Time
	TTL        time.Duration
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		ID:         uuid.New(),
		Token:      "tok_" + uuid.NewString(),
		ResourceID: uuid.New(),
		Date:       DefaultDate,
		Start:      DefaultStart,
		End:        DefaultEnd,
		Owner:      "front-desk",
		State:      hold.StateActive,
		CreatedAt:  time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC),
		TTL:        5 * time.Minute,
	}
}

func (h *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(h)
	return h
}

func (h *HoldBuilder) BuildDomain() *hold.Hold {
	hd, err := hold.Reconstruct(hold.ReconstructParams{
		ID:         h.ID,
		Token:      h.Token,
		ResourceID: h.ResourceID,
		Window:     MustWindow(h.Date, h.Start, h.End),
		Owner:      h.Owner,
		CreatedAt:  h.CreatedAt,
		ExpiresAt:  h.CreatedAt.Add(h.TTL),
		State:      string(h.State),
		UpdatedAt:  h.CreatedAt,
	})
	if err != nil {
		panic(err)
	}
	return hd
}

func (h *HoldBuilder) BuildInfra() sqlc.Holds {
	date, start, end := converter.WindowToInfra(MustWindow(h.Date, h.Start, h.End))
	return sqlc.Holds{
		ID:          h.ID,
		Token:       h.Token,
		ResourceID:  h.ResourceID,
		BookingDate: date,
		StartMinute: start,
		EndMinute:   end,
		Owner:       h.Owner,
		State:       string(h.State),
		CreatedAt:   pgconv.TimeToPgtype(h.CreatedAt),
		ExpiresAt:   pgconv.TimeToPgtype(h.CreatedAt.Add(h.TTL)),
		UpdatedAt:   pgconv.TimeToPgtype(h.CreatedAt),
	}
}

func (h *HoldBuilder) BuildAcquireRequestDTO() reqdto.AcquireHoldRequest {
	return reqdto.AcquireHoldRequest{
		ResourceID:   h.ResourceID,
		WindowFields: reqdto.WindowFields{Date: h.Date, Start: h.Start, End: h.End},
		Owner:        h.Owner,
	}
}

package queries

import (
	"context"

	"field-booking/internal/domain/availability"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/resource"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const ReasonUnknownResource = "unknown_resource"

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

type AvailabilityQueries interface {
	Check(ctx context.Context, resourceID uuid.UUID, window booking.TimeWindow) (*AvailabilityView, error)
	CheckBulk(ctx context.Context, resourceIDs []uuid.UUID, window booking.TimeWindow) (*BulkAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, clock: clk}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, resourceID uuid.UUID, window booking.TimeWindow) (*AvailabilityView, error) {
	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		snap, err := reads.ResourceByID(ctx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != string(resource.StatusAvailable) {
			view = &AvailabilityView{ResourceID: resourceID, Reason: booking.ReasonResourceUnavailable, Conflicts: []BusySlotView{}}
			return nil
		}

		now := q.clock.Now()
		occ, err := reads.Occupancy(ctx, []uuid.UUID{resourceID}, window, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view = toAvailabilityView(availability.Evaluate(resourceID, window, occ, now, availability.Options{}))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// CheckBulk evaluates every candidate against one read-only snapshot.
// Unknown and non-bookable resources are reported but never free.
func (q *availabilityQueriesImpl) CheckBulk(ctx context.Context, resourceIDs []uuid.UUID, window booking.TimeWindow) (*BulkAvailabilityView, error) {
	ids := dedupe(resourceIDs)
	out := &BulkAvailabilityView{
		Date:    window.Date().String(),
		Start:   window.Start().String(),
		End:     window.End().String(),
		Free:    []uuid.UUID{},
		Results: make([]AvailabilityView, 0, len(ids)),
	}
	if len(ids) == 0 {
		return out, nil
	}

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		snaps, err := reads.ResourcesByIDs(ctx, ids)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		status := make(map[uuid.UUID]string, len(snaps))
		bookable := make([]uuid.UUID, 0, len(snaps))
		for _, s := range snaps {
			status[s.ID] = s.Status
			if s.Status == string(resource.StatusAvailable) {
				bookable = append(bookable, s.ID)
			}
		}

		now := q.clock.Now()
		var occ availability.Occupancy
		if len(bookable) > 0 {
			occ, err = reads.Occupancy(ctx, bookable, window, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		for _, id := range ids {
			st, known := status[id]
			switch {
			case !known:
				out.Results = append(out.Results, AvailabilityView{ResourceID: id, Reason: ReasonUnknownResource, Conflicts: []BusySlotView{}})
			case st != string(resource.StatusAvailable):
				out.Results = append(out.Results, AvailabilityView{ResourceID: id, Reason: booking.ReasonResourceUnavailable, Conflicts: []BusySlotView{}})
			default:
				v := toAvailabilityView(availability.Evaluate(id, window, occ, now, availability.Options{}))
				out.Results = append(out.Results, *v)
				if v.Available {
					out.Free = append(out.Free, id)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toAvailabilityView(r availability.Result) *AvailabilityView {
	v := &AvailabilityView{
		ResourceID: r.ResourceID,
		Available:  r.Available,
		Conflicts:  ToBusySlotViews(r.Conflicts),
	}
	if !r.Available {
		v.Reason = booking.ReasonOccupied
	}
	return v
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

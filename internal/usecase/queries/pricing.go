package queries

import (
	"context"

	"field-booking/internal/domain/booking"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

type PricingQueries interface {
	GetPrice(ctx context.Context, resourceTypeID uuid.UUID, tier booking.Tier) (*RateView, error)
	Quote(ctx context.Context, resourceID uuid.UUID, window booking.TimeWindow) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPricingQueries(uow shared.UnitOfWork) PricingQueries {
	return &pricingQueriesImpl{uow: uow}
}

func (q *pricingQueriesImpl) GetPrice(ctx context.Context, resourceTypeID uuid.UUID, tier booking.Tier) (*RateView, error) {
	price, err := lookupRate(ctx, q.uow.CommandReads(), booking.RateKey{ResourceTypeID: resourceTypeID, Tier: tier})
	if err != nil {
		return nil, err
	}
	return &RateView{
		ResourceTypeID: resourceTypeID,
		DayType:        tier.Day.String(),
		TimeBand:       tier.Band.String(),
		PricePerUnit:   price.Amount(),
	}, nil
}

// Quote prices a window without touching occupancy.
func (q *pricingQueriesImpl) Quote(ctx context.Context, resourceID uuid.UUID, window booking.TimeWindow) (*QuoteView, error) {
	var view *QuoteView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		snap, err := reads.ResourceByID(ctx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		res, err := snap.ToDomain()
		if err != nil {
			return errs.Wrap(err, "invalid stored resource")
		}

		units, err := window.Units(res.Unit())
		if err != nil {
			return err
		}

		tier := booking.Classify(window.Date(), window.Start())
		perUnit, err := lookupRate(ctx, reads, booking.RateKey{ResourceTypeID: res.Type().ID(), Tier: tier})
		if err != nil {
			return err
		}

		quote := booking.NewQuote(tier, units, perUnit)
		view = &QuoteView{
			ResourceID:   resourceID,
			Units:        quote.Units,
			UnitMinutes:  res.Unit().Minutes(),
			DayType:      tier.Day.String(),
			TimeBand:     tier.Band.String(),
			PricePerUnit: quote.PerUnit.Amount(),
			TotalPrice:   quote.Total.Amount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func lookupRate(ctx context.Context, reads shared.CommandReads, key booking.RateKey) (booking.Money, error) {
	price, err := reads.RateFor(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Money{}, booking.NewRateNotFound(key)
		}
		return booking.Money{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return price, nil
}

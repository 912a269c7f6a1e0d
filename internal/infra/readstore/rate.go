package readstore

import (
	"context"

	"field-booking/internal/domain/booking"
	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=rate.go -destination=../../../tests/mock/readstore/rate.go -package=readstoremock

type RateReadQueries interface {
	GetRate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRateParams) (int64, error)
}

type RateReadStore struct {
	queries RateReadQueries
}

func NewRateReadStore(queries RateReadQueries) *RateReadStore {
	return &RateReadStore{
		queries: queries,
	}
}

// FindPrice never defaults: a missing rate card entry is KindNotFound.
func (r *RateReadStore) FindPrice(ctx context.Context, db sqlc.DBTX, key booking.RateKey) (booking.Money, error) {
	price, err := r.queries.GetRate(ctx, db, sqlc.GetRateParams{
		ResourceTypeID: key.ResourceTypeID,
		DayType:        key.Tier.Day.String(),
		TimeBand:       key.Tier.Band.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Money{}, infra.WrapRepoErr("rate not found", err, infra.KindNotFound)
		}
		return booking.Money{}, infra.WrapRepoErr("failed to get rate", err)
	}

	money, err := booking.NewMoney(price)
	if err != nil {
		return booking.Money{}, infra.WrapRepoErr("invalid stored rate", err)
	}
	return money, nil
}

package readstore

import (
	"context"

	"field-booking/internal/domain/hold"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/readstore/hold.go -package=readstoremock

type HoldReadQueries interface {
	GetHoldByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Holds, error)
}

type HoldReadStore struct {
	queries HoldReadQueries
}

func NewHoldReadStore(queries HoldReadQueries) *HoldReadStore {
	return &HoldReadStore{
		queries: queries,
	}
}

func (r *HoldReadStore) FindByToken(ctx context.Context, db sqlc.DBTX, token string) (*hold.Hold, error) {
	row, err := r.queries.GetHoldByToken(ctx, db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hold by token", err)
	}

	h, err := converter.HoldFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored hold", err)
	}
	return h, nil
}

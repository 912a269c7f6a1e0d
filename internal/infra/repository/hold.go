package repository

import (
	"context"
	"time"

	"field-booking/internal/domain/hold"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/repository/hold.go -package=repositorymock

type HoldWriteQueries interface {
	CreateHold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldParams) (uuid.UUID, error)
	TransitionHold(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionHoldParams) (int64, error)
	ExpireOverdueHolds(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type HoldRepository struct {
	queries HoldWriteQueries
}

func NewHoldRepository(queries HoldWriteQueries) *HoldRepository {
	return &HoldRepository{
		queries: queries,
	}
}

func (r *HoldRepository) Create(ctx context.Context, tx sqlc.DBTX, h *hold.Hold) (uuid.UUID, error) {
	id, err := r.queries.CreateHold(ctx, tx, converter.HoldToInfra(h))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hold", err)
	}
	return id, nil
}

// Transition is a compare-and-set on the stored state. A false result means
// another writer moved the hold first.
func (r *HoldRepository) Transition(ctx context.Context, tx sqlc.DBTX, h *hold.Hold, from hold.State) (bool, error) {
	n, err := r.queries.TransitionHold(ctx, tx, sqlc.TransitionHoldParams{
		ToState:   h.State().String(),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
		ID:        h.ID(),
		FromState: from.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition hold", err)
	}
	return n == 1, nil
}

func (r *HoldRepository) ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.ExpireOverdueHolds(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue holds", err)
	}
	return n, nil
}

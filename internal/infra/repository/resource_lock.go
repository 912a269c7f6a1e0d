package repository

import (
	"context"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=resource_lock.go -destination=../../../tests/mock/repository/resource_lock.go -package=repositorymock

type ResourceLockQueries interface {
	LockResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockResourceByIDRow, error)
}

type ResourceLocker struct {
	queries ResourceLockQueries
}

func NewResourceLocker(queries ResourceLockQueries) *ResourceLocker {
	return &ResourceLocker{
		queries: queries,
	}
}

// LockForUpdate holds the resource row lock until tx ends.
func (r *ResourceLocker) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	row, err := r.queries.LockResourceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}

	return &shared.ResourceSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		Status:      row.Status,
		TypeID:      row.ResourceTypeID,
		TypeName:    row.ResourceTypeName,
		UnitMinutes: int(row.UnitMinutes),
	}, nil
}

package readstore

import (
	"context"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/readstore/resource.go -package=readstoremock

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetResourceByIDRow, error)
	GetResourcesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.GetResourcesByIDsRow, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
}

func NewResourceReadStore(queries ResourceReadQueries) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	row, err := r.queries.GetResourceByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
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

// FindByIDs silently skips unknown ids.
func (r *ResourceReadStore) FindByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]*shared.ResourceSnapshot, error) {
	rows, err := r.queries.GetResourcesByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resources by IDs", err)
	}

	result := make([]*shared.ResourceSnapshot, len(rows))
	for i, row := range rows {
		result[i] = &shared.ResourceSnapshot{
			ID:          row.ID,
			Name:        row.Name,
			Status:      row.Status,
			TypeID:      row.ResourceTypeID,
			TypeName:    row.ResourceTypeName,
			UnitMinutes: int(row.UnitMinutes),
		}
	}

	return result, nil
}

//go:build unit || e2e

package builder

import (
	"field-booking/internal/domain/resource"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID          uuid.UUID
	Name        string
	Status      string
	TypeID      uuid.UUID
	TypeName    string
	UnitMinutes int
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:          uuid.New(),
		Name:        "Pitch 1",
		Status:      string(resource.StatusAvailable),
		TypeID:      uuid.New(),
		TypeName:    "five-a-side",
		UnitMinutes: 60,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) BuildSnapshot() *shared.ResourceSnapshot {
	return &shared.ResourceSnapshot{
		ID:          r.ID,
		Name:        r.Name,
		Status:      r.Status,
		TypeID:      r.TypeID,
		TypeName:    r.TypeName,
		UnitMinutes: r.UnitMinutes,
	}
}

func (r *ResourceBuilder) BuildLockRow() sqlc.LockResourceByIDRow {
	return sqlc.LockResourceByIDRow{
		ID:               r.ID,
		Name:             r.Name,
		Status:           r.Status,
		ResourceTypeID:   r.TypeID,
		ResourceTypeName: r.TypeName,
		UnitMinutes:      int32(r.UnitMinutes), // #nosec G115 -- test data
	}
}

func (r *ResourceBuilder) BuildRow() sqlc.GetResourceByIDRow {
	return sqlc.GetResourceByIDRow(r.BuildLockRow())
}

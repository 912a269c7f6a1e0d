package resource

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidStatus       = errors.New("invalid resource status")
)

const (
	MaxResourceNameLength = 255
)

type Type struct {
	id   uuid.UUID
	name string
	unit Unit
}

func NewType(id uuid.UUID, name string, unitMinutes int) (Type, error) {
	unit, err := NewUnit(unitMinutes)
	if err != nil {
		return Type{}, err
	}
	return Type{id: id, name: strings.TrimSpace(name), unit: unit}, nil
}

func (t Type) ID() uuid.UUID { return t.id }
func (t Type) Name() string  { return t.name }
func (t Type) Unit() Unit    { return t.unit }

// Resource is reference data owned by facility management. The booking core
// only reads it and gates on its status.
type Resource struct {
	id     uuid.UUID
	name   string
	kind   Type
	status Status
}

func Reconstruct(id uuid.UUID, name string, kind Type, status string) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	st := Status(status)
	if !st.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Resource{
		id:     id,
		name:   strings.TrimSpace(name),
		kind:   kind,
		status: st,
	}, nil
}

// IsBookable reports whether new holds or bookings may target the resource.
func (r *Resource) IsBookable() bool {
	return r.status == StatusAvailable
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID  { return r.id }
func (r *Resource) Name() string   { return r.name }
func (r *Resource) Type() Type     { return r.kind }
func (r *Resource) Unit() Unit     { return r.kind.unit }
func (r *Resource) Status() Status { return r.status }

package actor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff:
		return true
	default:
		return false
	}
}

// Actor is the authenticated caller of a core operation. It is passed
// explicitly into every mutating call.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// CustomerFor resolves which customer a booking is for. Customers book for
// themselves; staff must name the customer.
func (a Actor) CustomerFor(requested *uuid.UUID) (uuid.UUID, bool) {
	switch a.Role {
	case RoleCustomer:
		if requested == nil || *requested == a.ID {
			return a.ID, true
		}
		return uuid.Nil, false
	case RoleStaff:
		if requested == nil || *requested == uuid.Nil {
			return uuid.Nil, false
		}
		return *requested, true
	default:
		return uuid.Nil, false
	}
}

//go:build unit

package actor_test

import (
	"testing"

	"field-booking/internal/domain/actor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActor_CustomerFor(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name      string
		actor     actor.Actor
		requested *uuid.UUID
		want      uuid.UUID
		wantOK    bool
	}{
		{name: "customer books for self implicitly", actor: actor.Actor{ID: self, Role: actor.RoleCustomer}, want: self, wantOK: true},
		{name: "customer names self", actor: actor.Actor{ID: self, Role: actor.RoleCustomer}, requested: &self, want: self, wantOK: true},
		{name: "customer cannot book for another", actor: actor.Actor{ID: self, Role: actor.RoleCustomer}, requested: &other},
		{name: "staff books for named customer", actor: actor.Actor{ID: self, Role: actor.RoleStaff}, requested: &other, want: other, wantOK: true},
		{name: "staff must name a customer", actor: actor.Actor{ID: self, Role: actor.RoleStaff}},
		{name: "unknown role", actor: actor.Actor{ID: self, Role: "guest"}, requested: &self},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.actor.CustomerFor(tt.requested)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRole(t *testing.T) {
	r, err := actor.NewRole("staff")
	assert.NoError(t, err)
	assert.True(t, r.IsValid())

	_, err = actor.NewRole("admin")
	assert.ErrorIs(t, err, actor.ErrInvalidRole)
}

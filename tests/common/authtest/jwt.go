//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"field-booking/internal/domain/actor"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, a actor.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(a, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, a actor.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(a, -time.Minute)
	require.NoError(t, err)
	return token
}

func Customer() actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
}

func Staff() actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: actor.RoleStaff}
}

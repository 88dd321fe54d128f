//go:build unit || e2e

package authtest

import (
	"testing"

	"raffle-draw/internal/domain/user"
	"raffle-draw/internal/pkg/config"
	"raffle-draw/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, id user.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(id)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, id user.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -h.cfg.Duration).GenerateToken(id)
	require.NoError(t, err)
	return token
}

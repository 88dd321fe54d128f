//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"raffle-draw/internal/domain/user"
	"raffle-draw/internal/pkg/jwt"
	"raffle-draw/internal/usecase"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)

	t.Run("round trips the identity", func(t *testing.T) {
		want := user.Identity{ID: "admin-1", Name: "Admin", Role: user.RoleAdmin}
		token, err := svc.GenerateToken(want)
		require.NoError(t, err)

		got, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.True(t, got.IsAdmin())
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(user.Identity{ID: "c", Role: user.RoleCaller})
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(user.Identity{ID: "c", Role: user.RoleCaller})
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := jwt.Claims{
			Role: "superuser",
			RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "c",
				ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

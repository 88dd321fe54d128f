//go:build unit

package api_test

import (
	"raffle-draw/internal/domain/user"
	"raffle-draw/internal/handler/middleware"
	"raffle-draw/internal/pkg/errs"
	usecasemock "raffle-draw/tests/mock/usecase"

	"go.uber.org/mock/gomock"
)

const (
	callerToken = "caller-token"
	adminToken  = "admin-token"
)

var (
	caller = user.Identity{ID: "caller-1", Name: "Caller One", Role: user.RoleCaller}
	admin  = user.Identity{ID: "admin-1", Name: "Admin", Role: user.RoleAdmin}
)

// newAuth wires the real middleware to a validator that knows two tokens.
func newAuth(ctrl *gomock.Controller) *middleware.AuthMiddleware {
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (user.Identity, error) {
		switch token {
		case callerToken:
			return caller, nil
		case adminToken:
			return admin, nil
		}
		return user.Identity{}, errs.New("invalid token")
	}).AnyTimes()
	return middleware.NewAuthMiddleware(validator)
}

package components

import (
	"raffle-draw/internal/handler"
	"raffle-draw/internal/handler/api"
	"raffle-draw/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDrawHandler,
		api.NewVerificationHandler,
		api.NewAdminHandler,
		api.NewStatusHandler,
		middleware.NewAuthMiddleware,
		func(draw *api.DrawHandler, verification *api.VerificationHandler, admin *api.AdminHandler, status *api.StatusHandler) handler.Handlers {
			return handler.Handlers{
				Draw:         draw,
				Verification: verification,
				Admin:        admin,
				Status:       status,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)

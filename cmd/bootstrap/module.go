package bootstrap

import (
	"raffle-draw/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule builds everything except the HTTP server and the queue worker.
// The one-shot CLI commands run on it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.ProviderModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.QueueModule,
	components.HandlerModule,
)

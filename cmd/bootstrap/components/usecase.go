package components

import (
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/usecase"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/queries"
	"raffle-draw/internal/usecase/queue"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDuplicateGuard,
		commands.NewVerificationCommands,
		commands.NewDrawCoordinator,
		fx.Annotate(
			func(d commands.DrawCommands) commands.DrawCommands { return d },
			fx.As(new(queue.Executor)),
		),
		commands.NewSubmissionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVerificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

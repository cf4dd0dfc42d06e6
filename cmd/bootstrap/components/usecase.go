package components

import (
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"
	"foodshare/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDonationCommands,
		commands.NewOrderCommands,
		NewPerishableCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDonationQueries,
		queries.NewOrderQueries,
		queries.NewPerishableQueries,
	),
)

func NewPerishableCommands(
	uow shared.UnitOfWork,
	estimator commands.ExpiryEstimator,
	publisher commands.NotificationPublisher,
	clk clock.Clock,
	cfg config.Config,
) commands.PerishableCommands {
	return commands.NewPerishableCommands(uow, estimator, publisher, clk, cfg.Estimator.FallbackHours)
}

package bootstrap

import (
	"context"

	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/worker"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(runSweeper),
)

func NewSweeper(cmds commands.PerishableCommands, clk clock.Clock, cfg config.Config) *worker.Sweeper {
	return worker.NewSweeper(cmds, clk, cfg.Sweeper.Interval)
}

func runSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}

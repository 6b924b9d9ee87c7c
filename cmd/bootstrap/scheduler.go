package bootstrap

import (
	"context"
	"log/slog"

	"coffee-verifier/internal/infra/scheduler"
	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartSweeper),
)

func StartSweeper(lc fx.Lifecycle, cfg config.Config, resolver commands.StatusResolver) {
	if !cfg.Sweep.Enabled {
		slog.Info("pending request sweeper disabled")
		return
	}

	sweeper := scheduler.NewSweeper(resolver, scheduler.SweeperConfig{
		Schedule:  cfg.Sweep.Schedule,
		BatchSize: cfg.Sweep.BatchSize,
	})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}

package bootstrap

import (
	"coffee-verifier/internal/infra/monitoring"
	"coffee-verifier/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			monitoring.NewRecorder,
			fx.As(new(commands.Metrics)),
		),
	),
)

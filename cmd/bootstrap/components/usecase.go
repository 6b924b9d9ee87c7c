package components

import (
	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/pkg/clock"
	"coffee-verifier/internal/pkg/config"
	"coffee-verifier/internal/pkg/idgen"
	"coffee-verifier/internal/pkg/random"
	"coffee-verifier/internal/usecase/commands"
	"coffee-verifier/internal/usecase/queries"
	"coffee-verifier/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		random.New,
		fx.As(new(verification.Randomizer)),
	),
	fx.Annotate(
		func(cfg config.Config) (*idgen.SnowflakeGenerator, error) {
			return idgen.NewSnowflakeGenerator(cfg.ID.Node)
		},
		fx.As(new(idgen.Generator)),
	),
	func(cfg config.Config) verification.StatusPolicy {
		return verification.StatusPolicy{
			PendingWindow:      cfg.Verification.PendingWindow,
			ForceAfter:         cfg.Verification.ForceAfter,
			FailureProbability: cfg.Verification.FailureProbability,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			oracle commands.OracleClient,
			job commands.OracleJob,
			ids idgen.Generator,
			clk clock.Clock,
			metrics commands.Metrics,
			cfg config.Config,
		) commands.VerificationCommands {
			return commands.NewVerificationCommands(uow, oracle, job, ids, clk, metrics, cfg.Verification.EstimatedCompletion)
		},
		commands.NewStatusResolver,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBatchQueries,
	),
)

package components

import (
	"coffee-verifier/internal/infra/readstore"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/infra/uow"
	"coffee-verifier/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Batch
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BatchReadQueries)),
		),
		fx.Annotate(
			readstore.NewBatchReadStore,
			fx.As(new(queries.BatchReadStore)),
		),
		// Verification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VerificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewVerificationReadStore,
			fx.As(new(queries.VerificationReadStore)),
		),
	),
)

// Write-side repositories are bound to the transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

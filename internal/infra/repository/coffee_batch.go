package repository

import (
	"context"

	"coffee-verifier/internal/domain/batch"
	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/infra/repository/converter"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
)

type CoffeeBatchWriteQueries interface {
	GetCoffeeBatchForUpdate(ctx context.Context, db sqlc.DBTX, batchID int64) (sqlc.CoffeeBatches, error)
	MarkCoffeeBatchVerified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCoffeeBatchVerifiedParams) (int64, error)
}

type CoffeeBatchRepository struct {
	queries CoffeeBatchWriteQueries
	db      sqlc.DBTX
}

func NewCoffeeBatchRepository(queries CoffeeBatchWriteQueries, db sqlc.DBTX) *CoffeeBatchRepository {
	return &CoffeeBatchRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CoffeeBatchRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*batch.Batch, error) {
	row, err := r.queries.GetCoffeeBatchForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coffee batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coffee batch", err)
	}
	b, err := converter.BatchFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode coffee batch", err, infra.KindCorruptedRow)
	}
	return b, nil
}

func (r *CoffeeBatchRepository) MarkVerified(ctx context.Context, tx sqlc.DBTX, b *batch.Batch) error {
	affected, err := r.queries.MarkCoffeeBatchVerified(ctx, tx, sqlc.MarkCoffeeBatchVerifiedParams{
		BatchID:   b.ID(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark coffee batch verified", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coffee batch not found", nil, infra.KindNotFound)
	}
	return nil
}

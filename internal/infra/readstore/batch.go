package readstore

import (
	"context"

	"coffee-verifier/internal/infra"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
	"coffee-verifier/internal/usecase/queries"
)

type BatchReadQueries interface {
	GetCoffeeBatch(ctx context.Context, db sqlc.DBTX, batchID int64) (sqlc.CoffeeBatches, error)
}

type BatchReadStore struct {
	queries BatchReadQueries
	db      sqlc.DBTX
}

func NewBatchReadStore(queries BatchReadQueries, db sqlc.DBTX) *BatchReadStore {
	return &BatchReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BatchReadStore) FindByID(ctx context.Context, id int64) (*queries.BatchView, error) {
	row, err := r.queries.GetCoffeeBatch(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coffee batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coffee batch", err)
	}
	return &queries.BatchView{
		BatchID:            row.BatchID,
		IsVerified:         row.IsVerified,
		VerificationStatus: row.VerificationStatus,
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

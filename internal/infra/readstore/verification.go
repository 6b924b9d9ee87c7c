package readstore

import (
	"context"
	"time"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/infra/repository/converter"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
	"coffee-verifier/internal/usecase/queries"
)

type VerificationReadQueries interface {
	GetVerificationRequestByID(ctx context.Context, db sqlc.DBTX, requestID string) (sqlc.VerificationRequests, error)
	ListStalePendingVerificationRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingVerificationRequestsParams) ([]sqlc.VerificationRequests, error)
	ListVerificationRequestsByBatchFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVerificationRequestsByBatchFirstPageParams) ([]sqlc.VerificationRequests, error)
	ListVerificationRequestsByBatchKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVerificationRequestsByBatchKeysetParams) ([]sqlc.VerificationRequests, error)
}

type VerificationReadStore struct {
	queries VerificationReadQueries
	db      sqlc.DBTX
}

func NewVerificationReadStore(queries VerificationReadQueries, db sqlc.DBTX) *VerificationReadStore {
	return &VerificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VerificationReadStore) FindByID(ctx context.Context, id string) (*verification.Request, error) {
	row, err := r.queries.GetVerificationRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get verification request by id", err)
	}
	req, err := converter.RequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification request", err, infra.KindCorruptedRow)
	}
	return req, nil
}

func (r *VerificationReadStore) FindStalePending(ctx context.Context, submittedBefore time.Time, limit int32) ([]*verification.Request, error) {
	rows, err := r.queries.ListStalePendingVerificationRequests(ctx, r.db, sqlc.ListStalePendingVerificationRequestsParams{
		SubmittedAt: pgconv.TimeToPgtype(submittedBefore),
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending verification requests", err)
	}
	reqs, err := converter.RequestsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification requests", err, infra.KindCorruptedRow)
	}
	return reqs, nil
}

func (r *VerificationReadStore) FindByBatchFirstPage(ctx context.Context, batchID int64, limit int32) ([]*queries.VerificationView, error) {
	rows, err := r.queries.ListVerificationRequestsByBatchFirstPage(ctx, r.db, sqlc.ListVerificationRequestsByBatchFirstPageParams{
		BatchID: batchID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list verification requests first page by batch", err)
	}
	return mapVerificationRows(rows)
}

func (r *VerificationReadStore) FindByBatchKeyset(ctx context.Context, batchID int64, lastSubmittedAt time.Time, lastRequestID string, limit int32) ([]*queries.VerificationView, error) {
	rows, err := r.queries.ListVerificationRequestsByBatchKeyset(ctx, r.db, sqlc.ListVerificationRequestsByBatchKeysetParams{
		BatchID:     batchID,
		SubmittedAt: pgconv.TimeToPgtype(lastSubmittedAt),
		RequestID:   lastRequestID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list verification requests keyset by batch", err)
	}
	return mapVerificationRows(rows)
}

func mapVerificationRows(rows []sqlc.VerificationRequests) ([]*queries.VerificationView, error) {
	reqs, err := converter.RequestsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification requests", err, infra.KindCorruptedRow)
	}
	views := make([]*queries.VerificationView, 0, len(reqs))
	for _, req := range reqs {
		views = append(views, queries.ViewFromRequest(req))
	}
	return views, nil
}

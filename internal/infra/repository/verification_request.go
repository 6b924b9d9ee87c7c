package repository

import (
	"context"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/infra/repository/converter"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
)

type VerificationRequestWriteQueries interface {
	CreateVerificationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVerificationRequestParams) (sqlc.VerificationRequests, error)
	CreateVerificationRequestIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVerificationRequestIfAbsentParams) (int64, error)
	DeleteUndispatchedVerificationRequest(ctx context.Context, db sqlc.DBTX, requestID string) (int64, error)
	GetVerificationRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, requestID string) (sqlc.VerificationRequests, error)
	CompleteVerificationRequestIfPending(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteVerificationRequestIfPendingParams) (int64, error)
	UpdateVerificationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVerificationRequestParams) (int64, error)
	SetVerificationTransactionHash(ctx context.Context, db sqlc.DBTX, arg sqlc.SetVerificationTransactionHashParams) (int64, error)
}

type VerificationRequestRepository struct {
	queries VerificationRequestWriteQueries
	db      sqlc.DBTX
}

func NewVerificationRequestRepository(queries VerificationRequestWriteQueries, db sqlc.DBTX) *VerificationRequestRepository {
	return &VerificationRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VerificationRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *verification.Request) error {
	params, err := converter.RequestToCreateParams(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode verification request", err, infra.KindCorruptedRow)
	}
	if _, err := r.queries.CreateVerificationRequest(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create verification request", err)
	}
	return nil
}

// CreateIfAbsent reports false when a row with the same id already exists.
func (r *VerificationRequestRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, req *verification.Request) (bool, error) {
	params, err := converter.RequestToCreateParams(req)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode verification request", err, infra.KindCorruptedRow)
	}
	affected, err := r.queries.CreateVerificationRequestIfAbsent(ctx, tx, sqlc.CreateVerificationRequestIfAbsentParams(params))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create verification request", err)
	}
	return affected == 1, nil
}

// DeleteUndispatched removes a request that never reached the oracle. Rows that
// already carry a transaction hash or a terminal status are kept.
func (r *VerificationRequestRepository) DeleteUndispatched(ctx context.Context, tx sqlc.DBTX, id string) (bool, error) {
	affected, err := r.queries.DeleteUndispatchedVerificationRequest(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete verification request", err)
	}
	return affected == 1, nil
}

func (r *VerificationRequestRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id string) (*verification.Request, error) {
	row, err := r.queries.GetVerificationRequestByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock verification request", err)
	}
	req, err := converter.RequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification request", err, infra.KindCorruptedRow)
	}
	return req, nil
}

func (r *VerificationRequestRepository) CompleteIfPending(ctx context.Context, tx sqlc.DBTX, req *verification.Request) (bool, error) {
	params, err := converter.RequestToCompleteParams(req)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode verification request", err, infra.KindCorruptedRow)
	}
	affected, err := r.queries.CompleteVerificationRequestIfPending(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete verification request", err)
	}
	return affected == 1, nil
}

func (r *VerificationRequestRepository) Update(ctx context.Context, tx sqlc.DBTX, req *verification.Request) error {
	params, err := converter.RequestToUpdateParams(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode verification request", err, infra.KindCorruptedRow)
	}
	affected, err := r.queries.UpdateVerificationRequest(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update verification request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("verification request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VerificationRequestRepository) AttachTransactionHash(ctx context.Context, tx sqlc.DBTX, id, hash string) (bool, error) {
	affected, err := r.queries.SetVerificationTransactionHash(ctx, tx, sqlc.SetVerificationTransactionHashParams{
		RequestID:       id,
		TransactionHash: pgconv.StringToPgtype(hash),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach transaction hash", err)
	}
	return affected == 1, nil
}

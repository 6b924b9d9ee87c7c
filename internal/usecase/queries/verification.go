package queries

import (
	"context"
	"time"

	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/pkg/errs"
)

type VerificationReadStore interface {
	FindByBatchFirstPage(ctx context.Context, batchID int64, limit int32) ([]*VerificationView, error)
	FindByBatchKeyset(ctx context.Context, batchID int64, lastSubmittedAt time.Time, lastRequestID string, limit int32) ([]*VerificationView, error)
}

type BatchReadStore interface {
	FindByID(ctx context.Context, id int64) (*BatchView, error)
}

type BatchQueries interface {
	GetBatch(ctx context.Context, batchID int64) (*BatchView, error)
	// ListVerifications returns the batch's audit trail, newest first.
	ListVerifications(ctx context.Context, batchID int64, cursor *Cursor, limit int) ([]*VerificationView, *Cursor, error)
}

type batchQueriesImpl struct {
	batches       BatchReadStore
	verifications VerificationReadStore
}

func NewBatchQueries(batches BatchReadStore, verifications VerificationReadStore) BatchQueries {
	return &batchQueriesImpl{
		batches:       batches,
		verifications: verifications,
	}
}

func (q *batchQueriesImpl) GetBatch(ctx context.Context, batchID int64) (*BatchView, error) {
	if batchID <= 0 {
		return nil, errs.Mark(errs.New("batchId must be a positive integer"), errs.ErrValidation)
	}
	view, err := q.batches.FindByID(ctx, batchID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBatchNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return view, nil
}

func (q *batchQueriesImpl) ListVerifications(ctx context.Context, batchID int64, cursor *Cursor, limit int) ([]*VerificationView, *Cursor, error) {
	if batchID <= 0 {
		return nil, nil, errs.Mark(errs.New("batchId must be a positive integer"), errs.ErrValidation)
	}
	if limit < 0 {
		return nil, nil, ErrInvalidLimit
	}

	limit = ValidateLimit(limit)
	var rows []*VerificationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.verifications.FindByBatchFirstPage(ctx, batchID, int32(limit+1))
	} else {
		lastSubmittedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.verifications.FindByBatchKeyset(ctx, batchID, lastSubmittedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrPersistence)
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.SubmittedAt, last.RequestID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

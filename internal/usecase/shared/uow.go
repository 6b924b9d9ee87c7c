package shared

import (
	"context"
	"time"

	"coffee-verifier/internal/domain/batch"
	"coffee-verifier/internal/domain/verification"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Requests() VerificationRequestRepository
	Batches() BatchRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BatchByID(ctx context.Context, id int64) (*BatchSnapshot, error)
	RequestByID(ctx context.Context, id string) (*verification.Request, error)
	StalePendingRequests(ctx context.Context, submittedBefore time.Time, limit int32) ([]*verification.Request, error)
}

type VerificationRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *verification.Request) error
	// CreateIfAbsent inserts req unless the id is already taken; it reports whether a row was written.
	CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, req *verification.Request) (bool, error)
	// DeleteUndispatched compensates a submission whose oracle call failed.
	DeleteUndispatched(ctx context.Context, tx sqlc.DBTX, id string) (bool, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id string) (*verification.Request, error)
	// CompleteIfPending persists a terminal transition only while the stored row is still pending.
	// It reports false when another writer resolved the request first.
	CompleteIfPending(ctx context.Context, tx sqlc.DBTX, req *verification.Request) (bool, error)
	Update(ctx context.Context, tx sqlc.DBTX, req *verification.Request) error
	AttachTransactionHash(ctx context.Context, tx sqlc.DBTX, id, hash string) (bool, error)
}

type BatchRepository interface {
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*batch.Batch, error)
	MarkVerified(ctx context.Context, tx sqlc.DBTX, b *batch.Batch) error
}

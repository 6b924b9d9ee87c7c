//go:build unit || e2e

package builder

import (
	"time"

	"coffee-verifier/internal/domain/batch"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
	"coffee-verifier/internal/usecase/queries"
	"coffee-verifier/internal/usecase/shared"
)

type BatchBuilder struct {
	ID                 int64
	IsVerified         bool
	VerificationStatus batch.VerificationStatus
	UpdatedAt          time.Time
}

func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		ID:                 DefaultBatchID,
		IsVerified:         false,
		VerificationStatus: batch.VerificationPending,
		UpdatedAt:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *BatchBuilder) BuildDomain() (*batch.Batch, error) {
	return batch.ReconstructBatch(b.ID, b.IsVerified, b.VerificationStatus, b.UpdatedAt)
}

func (b *BatchBuilder) MustBuildDomain() *batch.Batch {
	bt, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bt
}

func (b *BatchBuilder) BuildInfra() sqlc.CoffeeBatches {
	return sqlc.CoffeeBatches{
		BatchID:            b.ID,
		IsVerified:         b.IsVerified,
		VerificationStatus: string(b.VerificationStatus),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BatchBuilder) BuildView() *queries.BatchView {
	return &queries.BatchView{
		BatchID:            b.ID,
		IsVerified:         b.IsVerified,
		VerificationStatus: string(b.VerificationStatus),
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *BatchBuilder) BuildSnapshot() *shared.BatchSnapshot {
	return &shared.BatchSnapshot{
		ID:                 b.ID,
		IsVerified:         b.IsVerified,
		VerificationStatus: string(b.VerificationStatus),
		UpdatedAt:          b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BatchBuilder) WithID(id int64) *BatchBuilder {
	b.ID = id
	return b
}

func (b *BatchBuilder) AsVerified() *BatchBuilder {
	b.IsVerified = true
	b.VerificationStatus = batch.VerificationVerified
	return b
}

//go:build unit || e2e

package builder

import (
	"time"

	"coffee-verifier/internal/domain/verification"
	reqdto "coffee-verifier/internal/handler/dto/request"
	"coffee-verifier/internal/infra/repository/converter"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/pgconv"
	"coffee-verifier/internal/usecase/queries"
)

const (
	DefaultRequestID       = "req_1849203847562240000"
	DefaultBatchID         = int64(7)
	DefaultTransactionHash = "0x8f5b4c1a2d3e4f5061728394a5b6c7d8e9f00112233445566778899aabbccdde"
	DefaultMetadataHash    = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
)

type VerificationBuilder struct {
	RequestID        string
	BatchID          int64
	VerificationType verification.Type
	Status           verification.Status
	SubmittedAt      time.Time
	CompletedAt      *time.Time
	Quantity         int64
	Price            int64
	Packaging        string
	MetadataHash     string
	Verified         bool
	ErrorMessage     *string
	TransactionHash  *string
}

func NewVerificationBuilder() *VerificationBuilder {
	hash := DefaultTransactionHash
	return &VerificationBuilder{
		RequestID:        DefaultRequestID,
		BatchID:          DefaultBatchID,
		VerificationType: verification.TypeReserve,
		Status:           verification.StatusPending,
		SubmittedAt:      time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Quantity:         640,
		Price:            2450,
		Packaging:        "250g",
		MetadataHash:     DefaultMetadataHash,
		Verified:         true,
		TransactionHash:  &hash,
	}
}

func (b *VerificationBuilder) With(mutate func(*VerificationBuilder)) *VerificationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VerificationBuilder) BuildResult() *verification.Result {
	if b.Status != verification.StatusFulfilled {
		return nil
	}
	r, err := verification.NewResult(b.Quantity, b.Price, b.Packaging, b.MetadataHash, b.Verified)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *VerificationBuilder) BuildDomain() (*verification.Request, error) {
	return verification.ReconstructRequest(
		b.RequestID,
		b.BatchID,
		b.VerificationType,
		b.Status,
		b.SubmittedAt,
		b.CompletedAt,
		b.BuildResult(),
		b.ErrorMessage,
		b.TransactionHash,
	)
}

func (b *VerificationBuilder) MustBuildDomain() *verification.Request {
	req, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *VerificationBuilder) BuildInfra() sqlc.VerificationRequests {
	result, err := converter.ResultToJSON(b.BuildResult())
	if err != nil {
		panic(err)
	}
	return sqlc.VerificationRequests{
		RequestID:        b.RequestID,
		BatchID:          b.BatchID,
		VerificationType: b.VerificationType.String(),
		Status:           b.Status.String(),
		SubmittedAt:      pgconv.TimeToPgtype(b.SubmittedAt),
		CompletedAt:      pgconv.TimePtrToPgtype(b.CompletedAt),
		Result:           result,
		Error:            pgconv.StringPtrToPgtype(b.ErrorMessage),
		TransactionHash:  pgconv.StringPtrToPgtype(b.TransactionHash),
		CreatedAt:        pgconv.TimeToPgtype(b.SubmittedAt),
		UpdatedAt:        pgconv.TimeToPgtype(b.SubmittedAt),
	}
}

func (b *VerificationBuilder) BuildView() *queries.VerificationView {
	return queries.ViewFromRequest(b.MustBuildDomain())
}

func (b *VerificationBuilder) BuildVerifyRequestDTO() reqdto.VerifyRequest {
	return reqdto.VerifyRequest{
		BatchID:          b.BatchID,
		VerificationType: b.VerificationType.String(),
	}
}

func (b *VerificationBuilder) BuildSyncRequestDTO() reqdto.SyncVerificationRequest {
	dto := reqdto.SyncVerificationRequest{
		RequestID:       b.RequestID,
		BatchID:         b.BatchID,
		Status:          b.Status.String(),
		TransactionHash: b.TransactionHash,
		Error:           b.ErrorMessage,
	}
	if b.Status == verification.StatusFulfilled {
		dto.VerificationResults = &reqdto.VerificationResultsRequest{
			VerifiedQuantity:     b.Quantity,
			VerifiedPrice:        b.Price,
			VerifiedPackaging:    b.Packaging,
			VerifiedMetadataHash: b.MetadataHash,
			Verified:             b.Verified,
		}
	}
	return dto
}

// Fluent builder methods
func (b *VerificationBuilder) WithRequestID(id string) *VerificationBuilder {
	b.RequestID = id
	return b
}

func (b *VerificationBuilder) WithBatchID(id int64) *VerificationBuilder {
	b.BatchID = id
	return b
}

func (b *VerificationBuilder) WithType(t verification.Type) *VerificationBuilder {
	b.VerificationType = t
	return b
}

func (b *VerificationBuilder) WithSubmittedAt(t time.Time) *VerificationBuilder {
	b.SubmittedAt = t
	return b
}

func (b *VerificationBuilder) WithTransactionHash(hash *string) *VerificationBuilder {
	b.TransactionHash = hash
	return b
}

func (b *VerificationBuilder) WithVerified(verified bool) *VerificationBuilder {
	b.Verified = verified
	return b
}

func (b *VerificationBuilder) AsPending() *VerificationBuilder {
	b.Status = verification.StatusPending
	b.CompletedAt = nil
	b.ErrorMessage = nil
	return b
}

func (b *VerificationBuilder) AsFulfilled(at time.Time) *VerificationBuilder {
	b.Status = verification.StatusFulfilled
	b.CompletedAt = &at
	b.ErrorMessage = nil
	return b
}

func (b *VerificationBuilder) AsFailed(message string, at time.Time) *VerificationBuilder {
	b.Status = verification.StatusFailed
	b.CompletedAt = &at
	b.ErrorMessage = &message
	return b
}

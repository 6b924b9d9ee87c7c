package batch

import (
	"time"

	"coffee-verifier/internal/pkg/errs"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationFailed   VerificationStatus = "failed"
)

func (s VerificationStatus) String() string { return string(s) }

var (
	ErrInvalidBatchID            = errs.New("batch id must be a positive integer")
	ErrInvalidVerificationStatus = errs.New("verification status must be one of pending, verified, failed")
	ErrVerifiedMismatch          = errs.New("a verified batch must carry verification status verified")
)

func ParseVerificationStatus(raw string) (VerificationStatus, error) {
	switch VerificationStatus(raw) {
	case VerificationPending, VerificationVerified, VerificationFailed:
		return VerificationStatus(raw), nil
	default:
		return "", ErrInvalidVerificationStatus
	}
}

// Batch is the slice of the coffee batch aggregate this service is allowed to touch.
// The batch itself is owned by the batch management subsystem.
type Batch struct {
	id                 int64
	isVerified         bool
	verificationStatus VerificationStatus
	updatedAt          time.Time
}

func ReconstructBatch(id int64, isVerified bool, status VerificationStatus, updatedAt time.Time) (*Batch, error) {
	if id <= 0 {
		return nil, ErrInvalidBatchID
	}
	if _, err := ParseVerificationStatus(string(status)); err != nil {
		return nil, err
	}
	if isVerified && status != VerificationVerified {
		return nil, ErrVerifiedMismatch
	}
	return &Batch{
		id:                 id,
		isVerified:         isVerified,
		verificationStatus: status,
		updatedAt:          updatedAt,
	}, nil
}

func (b *Batch) ID() int64                              { return b.id }
func (b *Batch) IsVerified() bool                       { return b.isVerified }
func (b *Batch) VerificationStatus() VerificationStatus { return b.verificationStatus }
func (b *Batch) UpdatedAt() time.Time                   { return b.updatedAt }

// MarkVerified reports whether the batch changed.
func (b *Batch) MarkVerified(now time.Time) bool {
	if b.isVerified && b.verificationStatus == VerificationVerified {
		return false
	}
	b.isVerified = true
	b.verificationStatus = VerificationVerified
	b.updatedAt = now
	return true
}

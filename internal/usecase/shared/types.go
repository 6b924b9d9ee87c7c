package shared

import "time"

// BatchSnapshot is the minimal batch view the issuer needs to accept a submission.
type BatchSnapshot struct {
	ID                 int64
	IsVerified         bool
	VerificationStatus string
	UpdatedAt          time.Time
}

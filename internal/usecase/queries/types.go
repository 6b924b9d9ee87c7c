package queries

import (
	"time"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidLimit  = errs.Mark(errs.New("limit must be a positive integer"), errs.ErrValidation)
)

// BatchView represents read-optimized coffee batch data
type BatchView struct {
	BatchID            int64     `json:"batchId"`
	IsVerified         bool      `json:"isVerified"`
	VerificationStatus string    `json:"verificationStatus"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type ResultView struct {
	VerifiedQuantity     int64  `json:"verifiedQuantity"`
	VerifiedPrice        int64  `json:"verifiedPrice"`
	VerifiedPackaging    string `json:"verifiedPackaging"`
	VerifiedMetadataHash string `json:"verifiedMetadataHash"`
	Verified             bool   `json:"verified"`
}

// VerificationView represents read-optimized verification request data
type VerificationView struct {
	RequestID        string      `json:"requestId"`
	BatchID          int64       `json:"batchId"`
	VerificationType string      `json:"verificationType"`
	Status           string      `json:"status"`
	SubmittedAt      time.Time   `json:"submittedAt"`
	CompletedAt      *time.Time  `json:"completedAt"`
	Result           *ResultView `json:"result"`
	Error            *string     `json:"error"`
	TransactionHash  *string     `json:"transactionHash"`
}

func ViewFromRequest(req *verification.Request) *VerificationView {
	view := &VerificationView{
		RequestID:        req.ID(),
		BatchID:          req.BatchID(),
		VerificationType: req.Type().String(),
		Status:           req.Status().String(),
		SubmittedAt:      req.SubmittedAt(),
		CompletedAt:      req.CompletedAt(),
		Error:            req.Error(),
		TransactionHash:  req.TransactionHash(),
	}
	if r := req.Result(); r != nil {
		view.Result = &ResultView{
			VerifiedQuantity:     r.Quantity(),
			VerifiedPrice:        r.Price(),
			VerifiedPackaging:    r.Packaging(),
			VerifiedMetadataHash: r.MetadataHash(),
			Verified:             r.Verified(),
		}
	}
	return view
}

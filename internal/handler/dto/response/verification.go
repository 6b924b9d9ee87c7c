package response

import (
	"time"

	"coffee-verifier/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VerifyResponse struct {
	Success                 bool      `json:"success"`
	RequestID               string    `json:"requestId"`
	BatchID                 int64     `json:"batchId"`
	VerificationType        string    `json:"verificationType"`
	Status                  string    `json:"status"`
	EstimatedCompletionTime time.Time `json:"estimatedCompletionTime"`
	TransactionHash         *string   `json:"transactionHash"`
	Message                 string    `json:"message"`
}

func NewVerifyResponse(v *queries.VerificationView, estimated time.Time) *VerifyResponse {
	return &VerifyResponse{
		Success:                 true,
		RequestID:               v.RequestID,
		BatchID:                 v.BatchID,
		VerificationType:        v.VerificationType,
		Status:                  v.Status,
		EstimatedCompletionTime: estimated,
		TransactionHash:         v.TransactionHash,
		Message:                 "Verification request submitted",
	}
}

type ResultResponse struct {
	VerifiedQuantity     int64  `json:"verifiedQuantity"`
	VerifiedPrice        int64  `json:"verifiedPrice"`
	VerifiedPackaging    string `json:"verifiedPackaging"`
	VerifiedMetadataHash string `json:"verifiedMetadataHash"`
	Verified             bool   `json:"verified"`
}

// VerificationResponse keeps null fields in the body; pollers test them explicitly.
type VerificationResponse struct {
	RequestID        string          `json:"requestId"`
	Status           string          `json:"status"`
	BatchID          int64           `json:"batchId"`
	VerificationType string          `json:"verificationType"`
	SubmittedAt      time.Time       `json:"submittedAt"`
	CompletedAt      *time.Time      `json:"completedAt"`
	Result           *ResultResponse `json:"result"`
	Error            *string         `json:"error"`
	TransactionHash  *string         `json:"transactionHash"`
}

func FromVerificationView(v *queries.VerificationView) (*VerificationResponse, error) {
	var res VerificationResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromVerificationViews(views []*queries.VerificationView) ([]*VerificationResponse, error) {
	res := make([]*VerificationResponse, 0, len(views))
	for _, v := range views {
		item, err := FromVerificationView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

type VerificationListResponse struct {
	Items      []*VerificationResponse `json:"items"`
	NextCursor *string                 `json:"nextCursor"`
}

type SyncVerificationResponse struct {
	Success             bool                  `json:"success"`
	Message             string                `json:"message"`
	Created             bool                  `json:"created"`
	BatchUpdated        bool                  `json:"batchUpdated"`
	VerificationRequest *VerificationResponse `json:"verificationRequest"`
}

func SyncMessage(created, changed, batchUpdated bool) string {
	switch {
	case created && batchUpdated:
		return "Verification request recorded and batch marked verified"
	case created:
		return "Verification request recorded"
	case batchUpdated:
		return "Verification request synced and batch marked verified"
	case changed:
		return "Verification request synced"
	default:
		return "Verification request already up to date"
	}
}

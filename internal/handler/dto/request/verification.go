package request

import (
	"strings"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/usecase/commands"
)

type VerifyRequest struct {
	BatchID          int64  `json:"batchId" binding:"required,gt=0"`
	VerificationType string `json:"verificationType" binding:"omitempty,oneof=reserve inventory"`
	Recipient        string `json:"recipient" binding:"omitempty,ethaddr"`
}

func (r VerifyRequest) ToParams() commands.SubmitParams {
	vType := strings.TrimSpace(r.VerificationType)
	if vType == "" {
		vType = verification.TypeReserve.String()
	}
	return commands.SubmitParams{
		BatchID:          r.BatchID,
		VerificationType: vType,
		Recipient:        strings.TrimSpace(r.Recipient),
	}
}

type VerificationResultsRequest struct {
	VerifiedQuantity     int64  `json:"verifiedQuantity" binding:"gte=0"`
	VerifiedPrice        int64  `json:"verifiedPrice" binding:"gte=0"`
	VerifiedPackaging    string `json:"verifiedPackaging" binding:"max=64"`
	VerifiedMetadataHash string `json:"verifiedMetadataHash" binding:"max=128"`
	Verified             bool   `json:"verified"`
}

// SyncVerificationRequest is posted by the on-chain event listener once the oracle
// callback lands. Status accepts the listener's "completed"/"error" spelling too.
type SyncVerificationRequest struct {
	RequestID           string                      `json:"requestId" binding:"required,max=128"`
	BatchID             int64                       `json:"batchId" binding:"required,gt=0"`
	Status              string                      `json:"status" binding:"required"`
	VerificationType    string                      `json:"verificationType" binding:"omitempty,oneof=reserve inventory"`
	TransactionHash     *string                     `json:"transactionHash"`
	Error               *string                     `json:"error"`
	VerificationResults *VerificationResultsRequest `json:"verificationResults"`
}

func (r SyncVerificationRequest) ToParams() commands.SyncParams {
	params := commands.SyncParams{
		RequestID:        strings.TrimSpace(r.RequestID),
		BatchID:          r.BatchID,
		Status:           strings.TrimSpace(r.Status),
		VerificationType: strings.TrimSpace(r.VerificationType),
	}
	if r.TransactionHash != nil {
		params.TransactionHash = strings.TrimSpace(*r.TransactionHash)
	}
	if r.Error != nil {
		params.Error = strings.TrimSpace(*r.Error)
	}
	if res := r.VerificationResults; res != nil {
		params.Results = &commands.SyncResultInput{
			VerifiedQuantity:     res.VerifiedQuantity,
			VerifiedPrice:        res.VerifiedPrice,
			VerifiedPackaging:    res.VerifiedPackaging,
			VerifiedMetadataHash: res.VerifiedMetadataHash,
			Verified:             res.Verified,
		}
	}
	return params
}

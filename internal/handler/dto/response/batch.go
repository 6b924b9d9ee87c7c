package response

import (
	"time"

	"coffee-verifier/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BatchResponse struct {
	BatchID            int64     `json:"batchId"`
	IsVerified         bool      `json:"isVerified"`
	VerificationStatus string    `json:"verificationStatus"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromBatchView(v *queries.BatchView) (*BatchResponse, error) {
	var res BatchResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

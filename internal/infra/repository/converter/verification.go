package converter

import (
	"encoding/json"

	"coffee-verifier/internal/domain/batch"
	"coffee-verifier/internal/domain/verification"
	sqlc "coffee-verifier/internal/infra/sqlc/generated"
	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/pkg/pgconv"
)

// ResultDocument is the JSONB shape of verification_requests.result.
type ResultDocument struct {
	VerifiedQuantity     int64  `json:"verifiedQuantity"`
	VerifiedPrice        int64  `json:"verifiedPrice"`
	VerifiedPackaging    string `json:"verifiedPackaging"`
	VerifiedMetadataHash string `json:"verifiedMetadataHash"`
	Verified             bool   `json:"verified"`
}

func ResultToJSON(r *verification.Result) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	doc := ResultDocument{
		VerifiedQuantity:     r.Quantity(),
		VerifiedPrice:        r.Price(),
		VerifiedPackaging:    r.Packaging(),
		VerifiedMetadataHash: r.MetadataHash(),
		Verified:             r.Verified(),
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode verification result")
	}
	return b, nil
}

func ResultFromJSON(raw []byte) (*verification.Result, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var doc ResultDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Wrap(err, "failed to decode verification result")
	}
	return verification.NewResult(
		doc.VerifiedQuantity,
		doc.VerifiedPrice,
		doc.VerifiedPackaging,
		doc.VerifiedMetadataHash,
		doc.Verified,
	)
}

func RequestFromRow(row sqlc.VerificationRequests) (*verification.Request, error) {
	status, err := verification.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	vType, err := verification.ParseType(row.VerificationType)
	if err != nil {
		return nil, err
	}
	result, err := ResultFromJSON(row.Result)
	if err != nil {
		return nil, err
	}
	return verification.ReconstructRequest(
		row.RequestID,
		row.BatchID,
		vType,
		status,
		pgconv.TimeFromPgtype(row.SubmittedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		result,
		pgconv.StringPtrFromPgtype(row.Error),
		pgconv.StringPtrFromPgtype(row.TransactionHash),
	)
}

func RequestsFromRows(rows []sqlc.VerificationRequests) ([]*verification.Request, error) {
	out := make([]*verification.Request, 0, len(rows))
	for _, row := range rows {
		req, err := RequestFromRow(row)
		if err != nil {
			return nil, errs.Wrapf(err, "request %s", row.RequestID)
		}
		out = append(out, req)
	}
	return out, nil
}

func RequestToCreateParams(req *verification.Request) (sqlc.CreateVerificationRequestParams, error) {
	result, err := ResultToJSON(req.Result())
	if err != nil {
		return sqlc.CreateVerificationRequestParams{}, err
	}
	return sqlc.CreateVerificationRequestParams{
		RequestID:        req.ID(),
		BatchID:          req.BatchID(),
		VerificationType: req.Type().String(),
		Status:           req.Status().String(),
		SubmittedAt:      pgconv.TimeToPgtype(req.SubmittedAt()),
		CompletedAt:      pgconv.TimePtrToPgtype(req.CompletedAt()),
		Result:           result,
		Error:            pgconv.StringPtrToPgtype(req.Error()),
		TransactionHash:  pgconv.StringPtrToPgtype(req.TransactionHash()),
	}, nil
}

func RequestToCompleteParams(req *verification.Request) (sqlc.CompleteVerificationRequestIfPendingParams, error) {
	result, err := ResultToJSON(req.Result())
	if err != nil {
		return sqlc.CompleteVerificationRequestIfPendingParams{}, err
	}
	return sqlc.CompleteVerificationRequestIfPendingParams{
		RequestID:   req.ID(),
		Status:      req.Status().String(),
		CompletedAt: pgconv.TimePtrToPgtype(req.CompletedAt()),
		Result:      result,
		Error:       pgconv.StringPtrToPgtype(req.Error()),
	}, nil
}

func RequestToUpdateParams(req *verification.Request) (sqlc.UpdateVerificationRequestParams, error) {
	result, err := ResultToJSON(req.Result())
	if err != nil {
		return sqlc.UpdateVerificationRequestParams{}, err
	}
	return sqlc.UpdateVerificationRequestParams{
		RequestID:       req.ID(),
		Status:          req.Status().String(),
		CompletedAt:     pgconv.TimePtrToPgtype(req.CompletedAt()),
		Result:          result,
		Error:           pgconv.StringPtrToPgtype(req.Error()),
		TransactionHash: pgconv.StringPtrToPgtype(req.TransactionHash()),
	}, nil
}

func BatchFromRow(row sqlc.CoffeeBatches) (*batch.Batch, error) {
	return batch.ReconstructBatch(
		row.BatchID,
		row.IsVerified,
		batch.VerificationStatus(row.VerificationStatus),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

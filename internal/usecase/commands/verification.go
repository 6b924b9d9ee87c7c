package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/pkg/clock"
	"coffee-verifier/internal/pkg/errs"
	"coffee-verifier/internal/pkg/idgen"
	"coffee-verifier/internal/usecase/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const compensationTimeout = 5 * time.Second

type SubmitParams struct {
	BatchID          int64  `json:"batchId"`
	VerificationType string `json:"verificationType"`
	Recipient        string `json:"recipient"`
}

type SubmitResult struct {
	Request             *verification.Request
	EstimatedCompletion time.Time
}

type SyncResultInput struct {
	VerifiedQuantity     int64  `json:"verifiedQuantity"`
	VerifiedPrice        int64  `json:"verifiedPrice"`
	VerifiedPackaging    string `json:"verifiedPackaging"`
	VerifiedMetadataHash string `json:"verifiedMetadataHash"`
	Verified             bool   `json:"verified"`
}

type SyncParams struct {
	RequestID        string           `json:"requestId"`
	BatchID          int64            `json:"batchId"`
	Status           string           `json:"status"`
	VerificationType string           `json:"verificationType"`
	TransactionHash  string           `json:"transactionHash"`
	Error            string           `json:"error"`
	Results          *SyncResultInput `json:"verificationResults"`
}

type SyncResult struct {
	Request      *verification.Request
	Created      bool
	Changed      bool
	BatchUpdated bool
}

type VerificationCommands interface {
	Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error)
	Sync(ctx context.Context, params SyncParams) (*SyncResult, error)
}

type verificationCommandsImpl struct {
	uow                 shared.UnitOfWork
	oracle              OracleClient
	job                 OracleJob
	ids                 idgen.Generator
	clock               clock.Clock
	metrics             Metrics
	estimatedCompletion time.Duration
}

func NewVerificationCommands(
	uow shared.UnitOfWork,
	oracle OracleClient,
	job OracleJob,
	ids idgen.Generator,
	clk clock.Clock,
	metrics Metrics,
	estimatedCompletion time.Duration,
) VerificationCommands {
	return &verificationCommandsImpl{
		uow:                 uow,
		oracle:              oracle,
		job:                 job,
		ids:                 ids,
		clock:               clk,
		metrics:             metrics,
		estimatedCompletion: estimatedCompletion,
	}
}

func (p SubmitParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.BatchID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.VerificationType, validation.Required, isVerificationType),
		validation.Field(&p.Recipient, isAddress),
	)
}

func (uc *verificationCommandsImpl) Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error) {
	if err := params.Validate(); err != nil {
		return nil, invalid(err)
	}
	vType, err := verification.ParseType(params.VerificationType)
	if err != nil {
		return nil, invalid(err)
	}

	if _, err := uc.uow.CommandReads().BatchByID(ctx, params.BatchID); err != nil {
		return nil, storeErr(err, errs.ErrBatchNotFound)
	}

	req, err := verification.NewRequest(uc.ids.NewRequestID(), params.BatchID, vType, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return storeErr(tx.Requests().Create(ctx, tx.DB(), req), nil)
	})
	if err != nil {
		slog.Error("failed to store verification request",
			"batch_id", params.BatchID,
			"request_id", req.ID(),
			"error", err.Error())
		return nil, err
	}

	// The oracle round trip runs outside any transaction. A failed dispatch is
	// compensated by deleting the row it left behind.
	receipt, err := uc.callOracle(ctx, OracleRequest{
		RequestID:        req.ID(),
		BatchID:          req.BatchID(),
		VerificationType: req.Type().String(),
		Recipient:        params.Recipient,
		Job:              uc.job,
	})
	if err != nil {
		slog.Warn("verification dispatch failed",
			"batch_id", params.BatchID,
			"request_id", req.ID(),
			"error", err.Error())
		uc.discardUndispatched(ctx, req.ID())
		return nil, err
	}

	if req.AttachTransactionHash(receipt.TransactionHash) {
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, derr := tx.Requests().AttachTransactionHash(ctx, tx.DB(), req.ID(), receipt.TransactionHash)
			return derr
		})
		if err != nil {
			// The job is already on its way; the request stays usable without the hash.
			slog.Warn("failed to record oracle transaction hash",
				"request_id", req.ID(),
				"transaction_hash", receipt.TransactionHash,
				"error", err.Error())
		}
	}

	uc.metrics.RequestSubmitted(req.Type().String())

	return &SubmitResult{
		Request:             req,
		EstimatedCompletion: req.SubmittedAt().Add(uc.estimatedCompletion),
	}, nil
}

// discardUndispatched survives cancellation of the caller's context so that a
// client hang-up during dispatch does not leave an orphaned pending row.
func (uc *verificationCommandsImpl) discardUndispatched(ctx context.Context, requestID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	var deleted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		deleted, derr = tx.Requests().DeleteUndispatched(ctx, tx.DB(), requestID)
		return derr
	})
	if err != nil {
		slog.Error("failed to discard undispatched verification request",
			"request_id", requestID,
			"error", err.Error())
		return
	}
	if !deleted {
		slog.Warn("undispatched verification request already gone or progressed", "request_id", requestID)
	}
}

func (uc *verificationCommandsImpl) callOracle(ctx context.Context, req OracleRequest) (*OracleReceipt, error) {
	started := uc.clock.Now()
	receipt, err := uc.oracle.RequestVerification(ctx, req)
	elapsed := uc.clock.Now().Sub(started)

	switch {
	case err == nil:
		uc.metrics.OracleCall("ok", elapsed)
		return receipt, nil
	case errs.Is(err, errs.ErrOracleTimeout), ctx.Err() == context.DeadlineExceeded:
		uc.metrics.OracleCall("timeout", elapsed)
		return nil, errs.Mark(err, errs.ErrOracleTimeout)
	default:
		uc.metrics.OracleCall("error", elapsed)
		return nil, errs.Mark(err, errs.ErrTransientOracle)
	}
}

func (p SyncParams) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.RequestID, validation.Required, validation.Length(1, 128)),
		validation.Field(&p.BatchID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.Status, validation.Required, isStatus),
		validation.Field(&p.VerificationType, isVerificationType),
		validation.Field(&p.TransactionHash, isTxHash),
		validation.Field(&p.Error, validation.Length(0, 1024)),
	)
	if err != nil {
		return err
	}
	if p.Results == nil {
		return nil
	}
	r := p.Results
	return validation.Errors{
		"verificationResults": validation.ValidateStruct(r,
			validation.Field(&r.VerifiedQuantity, validation.Min(int64(0))),
			validation.Field(&r.VerifiedPrice, validation.Min(int64(0))),
			validation.Field(&r.VerifiedPackaging, validation.Length(0, 64)),
			validation.Field(&r.VerifiedMetadataHash, validation.Length(0, 128)),
		),
	}.Filter()
}

// Sync reconciles an externally reported outcome into the request store and, for a
// verified fulfillment, into the batch. Both writes share one transaction.
func (uc *verificationCommandsImpl) Sync(ctx context.Context, params SyncParams) (*SyncResult, error) {
	params.RequestID = strings.TrimSpace(params.RequestID)
	if err := params.Validate(); err != nil {
		uc.metrics.SyncCompleted(SyncOutcomeRejected)
		return nil, invalid(err)
	}

	status, err := verification.ParseStatus(params.Status)
	if err != nil {
		uc.metrics.SyncCompleted(SyncOutcomeRejected)
		return nil, invalid(err)
	}

	var result *verification.Result
	if params.Results != nil && status == verification.StatusFulfilled {
		in := params.Results
		result, err = verification.NewResult(in.VerifiedQuantity, in.VerifiedPrice, in.VerifiedPackaging, in.VerifiedMetadataHash, in.Verified)
		if err != nil {
			uc.metrics.SyncCompleted(SyncOutcomeRejected)
			return nil, invalid(err)
		}
	}
	markBatch := status == verification.StatusFulfilled && result != nil && result.Verified()

	now := uc.clock.Now()
	var out SyncResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = SyncResult{}

		req, derr := tx.Requests().FindByIDForUpdate(ctx, tx.DB(), params.RequestID)
		if infra.IsKind(derr, infra.KindNotFound) {
			fresh, nerr := uc.newSyncedRequest(params, status, result, now)
			if nerr != nil {
				return nerr
			}
			created, cerr := tx.Requests().CreateIfAbsent(ctx, tx.DB(), fresh)
			if cerr != nil {
				return storeErr(cerr, nil)
			}
			if created {
				req, derr = fresh, nil
				out.Created = true
				out.Changed = true
			} else {
				// Lost the insert race; the winner's row lock serializes the rest.
				req, derr = tx.Requests().FindByIDForUpdate(ctx, tx.DB(), params.RequestID)
			}
		}
		if derr != nil {
			return storeErr(derr, nil)
		}

		if !out.Created {
			changed, aerr := uc.applySync(ctx, tx, req, params, status, result, now)
			if aerr != nil {
				return aerr
			}
			out.Changed = changed
		}

		if markBatch {
			b, berr := tx.Batches().FindByIDForUpdate(ctx, tx.DB(), params.BatchID)
			if berr != nil {
				return storeErr(berr, errs.ErrBatchNotFound)
			}
			if b.MarkVerified(now) {
				if berr = tx.Batches().MarkVerified(ctx, tx.DB(), b); berr != nil {
					return storeErr(berr, errs.ErrBatchNotFound)
				}
				out.BatchUpdated = true
			}
		}

		out.Request = req
		return nil
	})
	if err != nil {
		outcome := SyncOutcomeFailed
		if errs.Is(err, errs.ErrValidation) || errs.Is(err, errs.ErrStatusConflict) {
			outcome = SyncOutcomeRejected
		}
		uc.metrics.SyncCompleted(outcome)
		slog.Error("verification sync failed",
			"request_id", params.RequestID,
			"batch_id", params.BatchID,
			"status", params.Status,
			"outcome", outcome,
			"error", err.Error())
		return nil, storeErr(err, nil)
	}

	switch {
	case out.Created:
		uc.metrics.SyncCompleted(SyncOutcomeCreated)
	case out.Changed || out.BatchUpdated:
		uc.metrics.SyncCompleted(SyncOutcomeUpdated)
	default:
		uc.metrics.SyncCompleted(SyncOutcomeUnchanged)
	}
	return &out, nil
}

// applySync merges a reported outcome into a stored request and persists it
// when anything moved.
func (uc *verificationCommandsImpl) applySync(
	ctx context.Context,
	tx shared.Tx,
	req *verification.Request,
	params SyncParams,
	status verification.Status,
	result *verification.Result,
	now time.Time,
) (bool, error) {
	if req.BatchID() != params.BatchID {
		return false, invalid(errs.Newf("request %s belongs to batch %d", req.ID(), req.BatchID()))
	}
	changed, err := req.Apply(status, result, params.Error, now)
	if err != nil {
		if errs.Is(err, verification.ErrAlreadyResolved) {
			return false, errs.Mark(errs.Wrapf(err, "request %s is %s", req.ID(), req.Status()), errs.ErrStatusConflict)
		}
		return false, invalid(err)
	}
	hashAttached := req.AttachTransactionHash(params.TransactionHash)
	if !changed && !hashAttached {
		return false, nil
	}
	if err = tx.Requests().Update(ctx, tx.DB(), req); err != nil {
		return false, storeErr(err, nil)
	}
	return true, nil
}

// newSyncedRequest creates a request first seen through sync. Ids issued by this service
// carry their issuance time; foreign ids are stamped with the sync time.
func (uc *verificationCommandsImpl) newSyncedRequest(params SyncParams, status verification.Status, result *verification.Result, now time.Time) (*verification.Request, error) {
	vType := verification.TypeReserve
	if params.VerificationType != "" {
		t, err := verification.ParseType(params.VerificationType)
		if err != nil {
			return nil, invalid(err)
		}
		vType = t
	}

	submittedAt := now
	if issued, ok := idgen.TimeOf(params.RequestID); ok && !issued.After(now) {
		submittedAt = issued
	}

	req, err := verification.NewRequest(params.RequestID, params.BatchID, vType, submittedAt)
	if err != nil {
		return nil, invalid(err)
	}
	if _, err := req.Apply(status, result, params.Error, now); err != nil {
		return nil, invalid(err)
	}
	req.AttachTransactionHash(params.TransactionHash)
	return req, nil
}

package commands

import (
	"context"
	"time"
)

// OracleJob is the oracle network job the issuer dispatches: the verification source
// executed by the oracle nodes plus its routing configuration.
type OracleJob struct {
	Name             string
	Source           string
	DonID            string
	SubscriptionID   uint64
	CallbackGasLimit uint32
	Args             map[string]string
}

type OracleRequest struct {
	RequestID        string
	BatchID          int64
	VerificationType string
	Recipient        string
	Job              OracleJob
}

type OracleReceipt struct {
	TransactionHash string
}

// OracleClient submits verification jobs to the oracle network. Implementations mark
// failures with errs.ErrOracleTimeout or errs.ErrTransientOracle.
type OracleClient interface {
	RequestVerification(ctx context.Context, req OracleRequest) (*OracleReceipt, error)
}

type Metrics interface {
	RequestSubmitted(verificationType string)
	RequestResolved(status, source string)
	SyncCompleted(outcome string)
	OracleCall(outcome string, elapsed time.Duration)
}

// Resolution sources
const (
	SourcePoll  = "poll"
	SourceSweep = "sweep"
)

// Sync outcomes
const (
	SyncOutcomeCreated   = "created"
	SyncOutcomeUpdated   = "updated"
	SyncOutcomeUnchanged = "unchanged"
	SyncOutcomeRejected  = "rejected"
	SyncOutcomeFailed    = "failed"
)

package verification

import (
	"strings"
	"time"
)

const defaultFailureMessage = "verification failed"

// TimestampPrecision is the resolution of timestamps in the request store. Lifecycle
// times are cut to it so an in-memory request equals its re-read row.
const TimestampPrecision = time.Microsecond

// Request is the lifecycle record of one oracle verification job. It is append-only:
// once resolved its status, result and completion time never change.
type Request struct {
	id               string
	batchID          int64
	verificationType Type
	status           Status
	submittedAt      time.Time
	completedAt      *time.Time
	result           *Result
	errorMessage     *string
	transactionHash  *string
}

func NewRequest(id string, batchID int64, verificationType Type, submittedAt time.Time) (*Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyRequestID
	}
	if batchID <= 0 {
		return nil, ErrInvalidBatchID
	}
	if _, err := ParseType(string(verificationType)); err != nil {
		return nil, err
	}

	return &Request{
		id:               id,
		batchID:          batchID,
		verificationType: verificationType,
		status:           StatusPending,
		submittedAt:      submittedAt.Truncate(TimestampPrecision),
	}, nil
}

// ReconstructRequest rebuilds a persisted request and rejects rows that break the completion invariant.
func ReconstructRequest(
	id string,
	batchID int64,
	verificationType Type,
	status Status,
	submittedAt time.Time,
	completedAt *time.Time,
	result *Result,
	errorMessage *string,
	transactionHash *string,
) (*Request, error) {
	if status.IsTerminal() != (completedAt != nil) {
		return nil, ErrCompletionMismatch
	}
	return &Request{
		id:               id,
		batchID:          batchID,
		verificationType: verificationType,
		status:           status,
		submittedAt:      submittedAt,
		completedAt:      completedAt,
		result:           result,
		errorMessage:     errorMessage,
		transactionHash:  transactionHash,
	}, nil
}

func (r *Request) ID() string               { return r.id }
func (r *Request) BatchID() int64           { return r.batchID }
func (r *Request) Type() Type               { return r.verificationType }
func (r *Request) Status() Status           { return r.status }
func (r *Request) SubmittedAt() time.Time   { return r.submittedAt }
func (r *Request) CompletedAt() *time.Time  { return r.completedAt }
func (r *Request) Result() *Result          { return r.result }
func (r *Request) Error() *string           { return r.errorMessage }
func (r *Request) TransactionHash() *string { return r.transactionHash }

func (r *Request) IsTerminal() bool { return r.status.IsTerminal() }

func (r *Request) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.submittedAt)
}

func (r *Request) Fulfill(result *Result, at time.Time) error {
	if r.IsTerminal() {
		return ErrAlreadyResolved
	}
	at = at.Truncate(TimestampPrecision)
	r.status = StatusFulfilled
	r.result = result
	r.errorMessage = nil
	r.completedAt = &at
	return nil
}

func (r *Request) Fail(message string, at time.Time) error {
	if r.IsTerminal() {
		return ErrAlreadyResolved
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = defaultFailureMessage
	}
	at = at.Truncate(TimestampPrecision)
	r.status = StatusFailed
	r.result = nil
	r.errorMessage = &message
	r.completedAt = &at
	return nil
}

// Apply moves a pending request to status. A resolved request accepts only a repeat
// of its own status, which is a no-op; any other status yields ErrAlreadyResolved.
func (r *Request) Apply(status Status, result *Result, message string, at time.Time) (bool, error) {
	if r.IsTerminal() {
		if status == r.status {
			return false, nil
		}
		return false, ErrAlreadyResolved
	}

	switch status {
	case StatusPending:
		return false, nil
	case StatusFulfilled:
		return true, r.Fulfill(result, at)
	case StatusFailed:
		return true, r.Fail(message, at)
	default:
		return false, ErrInvalidStatus
	}
}

// AttachTransactionHash records the on-chain transaction once; later hashes are ignored.
func (r *Request) AttachTransactionHash(hash string) bool {
	hash = strings.TrimSpace(hash)
	if hash == "" || r.transactionHash != nil {
		return false
	}
	r.transactionHash = &hash
	return true
}

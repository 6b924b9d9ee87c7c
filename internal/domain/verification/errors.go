package verification

import "coffee-verifier/internal/pkg/errs"

var (
	ErrInvalidStatus      = errs.New("status must be one of pending, fulfilled, failed")
	ErrInvalidType        = errs.New("verification type must be reserve or inventory")
	ErrInvalidBatchID     = errs.New("batch id must be a positive integer")
	ErrEmptyRequestID     = errs.New("request id cannot be empty")
	ErrNegativeQuantity   = errs.New("verified quantity cannot be negative")
	ErrNegativePrice      = errs.New("verified price cannot be negative")
	ErrAlreadyResolved    = errs.New("verification request already resolved")
	ErrCompletionMismatch = errs.New("completedAt must be set exactly when the request is resolved")
)

package errs

// Sentinel categories shared by the use-case and handler layers.
var (
	ErrValidation      = New("validation error")
	ErrBatchNotFound   = New("batch not found")
	ErrRequestNotFound = New("verification request not found")
	ErrStatusConflict  = New("verification request already resolved with a different status")

	// Oracle errors
	ErrTransientOracle = New("oracle request failed")
	ErrOracleTimeout   = New("oracle request timed out")

	// Operation errors
	ErrPersistence = New("persistence operation failed")
)

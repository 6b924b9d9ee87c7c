package verification

import (
	"time"

	"coffee-verifier/internal/pkg/metahash"
)

// Randomizer is satisfied by *math/rand/v2.Rand; implementations shared between
// goroutines must serialize access themselves.
type Randomizer interface {
	Float64() float64
	Int64N(n int64) int64
}

// StatusPolicy stands in for a genuine oracle callback: requests stay pending for
// PendingWindow, may resolve either way until ForceAfter, and are forced to fulfilled after it.
type StatusPolicy struct {
	PendingWindow      time.Duration
	ForceAfter         time.Duration
	FailureProbability float64
}

func DefaultStatusPolicy() StatusPolicy {
	return StatusPolicy{
		PendingWindow:      30 * time.Second,
		ForceAfter:         90 * time.Second,
		FailureProbability: 0.15,
	}
}

type Decision struct {
	Status Status
	Result *Result
	Error  string
}

var (
	packagingOptions = []string{"250g", "500g"}

	failureReasons = []string{
		"Oracle network timeout",
		"Data source unavailable",
		"Reserve attestation mismatch",
		"Inventory count could not be confirmed",
	}
)

const (
	minQuantity   = 100
	quantitySpan  = 1000
	minPriceCents = 1000
	priceSpan     = 5000
)

type resultMetadata struct {
	RequestID        string `json:"requestId"`
	BatchID          int64  `json:"batchId"`
	VerificationType string `json:"verificationType"`
	Quantity         int64  `json:"quantity"`
	Price            int64  `json:"price"`
	Packaging        string `json:"packaging"`
}

// Decide reports the status req should hold at now. It never mutates req.
func (p StatusPolicy) Decide(req *Request, now time.Time, rng Randomizer) (Decision, error) {
	if req.IsTerminal() {
		return Decision{Status: req.Status(), Result: req.Result()}, nil
	}

	elapsed := req.Elapsed(now)
	if elapsed < p.PendingWindow {
		return Decision{Status: StatusPending}, nil
	}

	if elapsed < p.ForceAfter && rng.Float64() < p.FailureProbability {
		reason := failureReasons[rng.Int64N(int64(len(failureReasons)))]
		return Decision{Status: StatusFailed, Error: reason}, nil
	}

	result, err := synthesizeResult(req, rng)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Status: StatusFulfilled, Result: result}, nil
}

func synthesizeResult(req *Request, rng Randomizer) (*Result, error) {
	meta := resultMetadata{
		RequestID:        req.ID(),
		BatchID:          req.BatchID(),
		VerificationType: req.Type().String(),
		Quantity:         minQuantity + rng.Int64N(quantitySpan),
		Price:            minPriceCents + rng.Int64N(priceSpan),
		Packaging:        packagingOptions[rng.Int64N(int64(len(packagingOptions)))],
	}

	hash, err := metahash.Compute(meta)
	if err != nil {
		return nil, err
	}

	return NewResult(meta.Quantity, meta.Price, meta.Packaging, hash, true)
}

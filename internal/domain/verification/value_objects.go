package verification

// Result is the oracle's attestation of batch attributes. Immutable once attached to a request.
type Result struct {
	quantity     int64
	price        int64
	packaging    string
	metadataHash string
	verified     bool
}

func NewResult(quantity, price int64, packaging, metadataHash string, verified bool) (*Result, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Result{
		quantity:     quantity,
		price:        price,
		packaging:    packaging,
		metadataHash: metadataHash,
		verified:     verified,
	}, nil
}

func (r *Result) Quantity() int64      { return r.quantity }
func (r *Result) Price() int64         { return r.price }
func (r *Result) Packaging() string    { return r.packaging }
func (r *Result) MetadataHash() string { return r.metadataHash }
func (r *Result) Verified() bool       { return r.verified }

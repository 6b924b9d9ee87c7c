package commands

import (
	"coffee-verifier/internal/domain/verification"
	"coffee-verifier/internal/infra"
	"coffee-verifier/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errTxHashFormat  = validation.NewError("validation_tx_hash", "must be a 0x-prefixed 32-byte hex hash")
	errAddressFormat = validation.NewError("validation_eth_address", "must be a 0x-prefixed 20-byte hex address")
	errStatusValue   = validation.NewError("validation_status", "must be one of pending, fulfilled, completed, failed, error")
	errTypeValue     = validation.NewError("validation_verification_type", "must be reserve or inventory")
)

var isTxHash = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return errTxHashFormat
	}
	return nil
})

var isAddress = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) || len(s) != 2+2*common.AddressLength {
		return errAddressFormat
	}
	return nil
})

var isStatus = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := verification.ParseStatus(s); err != nil {
		return errStatusValue
	}
	return nil
})

var isVerificationType = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := verification.ParseType(s); err != nil {
		return errTypeValue
	}
	return nil
})

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// storeErr maps repository failures onto the use-case taxonomy.
func storeErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	for _, known := range []error{
		errs.ErrValidation,
		errs.ErrBatchNotFound,
		errs.ErrRequestNotFound,
		errs.ErrStatusConflict,
		errs.ErrTransientOracle,
		errs.ErrOracleTimeout,
		errs.ErrPersistence,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrPersistence)
}

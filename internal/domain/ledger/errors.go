package ledger

import (
	"errors"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/shared"
)

// Transfer validation errors, in the order the checks run.
var (
	ErrMissingSource         = errors.New("source account not found")
	ErrMissingDestination    = errors.New("destination account not found")
	ErrSameAccount           = errors.New("source and destination must be different")
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrInsufficientFunds     = errors.New("insufficient balance")
	ErrConversionUnavailable = errors.New("currency conversion unavailable")
	ErrMissingScheduleDate   = errors.New("scheduled date is required")
	ErrScheduleDateInPast    = errors.New("scheduled date cannot be before today")
)

// ErrTransactionNotFound indicates missing ledger transaction
type ErrTransactionNotFound struct {
	TransactionID string
}

func (e ErrTransactionNotFound) Error() string {
	return "transaction not found: " + e.TransactionID
}

// ReasonOf maps a ledger or currency error to its failure code.
func ReasonOf(err error) shared.FailureReason {
	var rateNotFound currency.ErrRateNotFound
	switch {
	case errors.Is(err, ErrMissingSource):
		return shared.FailureReasonMissingSource
	case errors.Is(err, ErrMissingDestination):
		return shared.FailureReasonMissingDestination
	case errors.Is(err, ErrSameAccount):
		return shared.FailureReasonSameAccount
	case errors.Is(err, ErrInvalidAmount):
		return shared.FailureReasonInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return shared.FailureReasonInsufficientFunds
	case errors.Is(err, ErrConversionUnavailable):
		return shared.FailureReasonConversionUnavailable
	case errors.Is(err, ErrMissingScheduleDate):
		return shared.FailureReasonMissingScheduleDate
	case errors.Is(err, ErrScheduleDateInPast):
		return shared.FailureReasonScheduleDateInPast
	case errors.As(err, &rateNotFound):
		return shared.FailureReasonRateNotFound
	default:
		return shared.FailureReasonUnknownError
	}
}

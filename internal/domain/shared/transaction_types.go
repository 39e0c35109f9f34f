package shared

// TransferType distinguishes plain transfers from currency-converting ones
type TransferType string

const (
	TransferTypeTransfer   TransferType = "transfer"
	TransferTypeFXTransfer TransferType = "fx-transfer"
)

// ScheduleStatus defines scheduled transfer states
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
)

// FailureReason is the stable code reported for a rejected operation
type FailureReason string

const (
	FailureReasonMissingSource         FailureReason = "MISSING_SOURCE"
	FailureReasonMissingDestination    FailureReason = "MISSING_DESTINATION"
	FailureReasonSameAccount           FailureReason = "SAME_ACCOUNT"
	FailureReasonInvalidAmount         FailureReason = "INVALID_AMOUNT"
	FailureReasonInsufficientFunds     FailureReason = "INSUFFICIENT_FUNDS"
	FailureReasonConversionUnavailable FailureReason = "CONVERSION_UNAVAILABLE"
	FailureReasonMissingScheduleDate   FailureReason = "MISSING_SCHEDULE_DATE"
	FailureReasonScheduleDateInPast    FailureReason = "SCHEDULE_DATE_IN_PAST"
	FailureReasonRateNotFound          FailureReason = "RATE_NOT_FOUND"
	FailureReasonEmptyExport           FailureReason = "EMPTY_EXPORT"
	FailureReasonMalformedImport       FailureReason = "MALFORMED_IMPORT"
	FailureReasonUnknownError          FailureReason = "UNKNOWN_ERROR"
)

// EventType names a domain event published after a state change
type EventType string

const (
	EventTypeTransferExecuted     EventType = "transfer.executed"
	EventTypeTransferScheduled    EventType = "transfer.scheduled"
	EventTypeScheduleCancelled    EventType = "transfer.schedule_cancelled"
	EventTypeRatesUpdated         EventType = "rates.updated"
	EventTypeAccountsImported     EventType = "accounts.imported"
	EventTypeScheduledTransferDue EventType = "scheduled_transfer.due"
)

// Known reports whether t is one of the published event types
func (t EventType) Known() bool {
	switch t {
	case EventTypeTransferExecuted, EventTypeTransferScheduled, EventTypeScheduleCancelled,
		EventTypeRatesUpdated, EventTypeAccountsImported, EventTypeScheduledTransferDue:
		return true
	}
	return false
}

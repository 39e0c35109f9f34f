package ledger

import (
	"time"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/currency"
)

// State is everything one session owns. Operations take a State and return
// a new one; they never mutate the argument.
type State struct {
	Accounts     account.Accounts
	Rates        currency.RateTable
	Transactions []Transaction // newest first
	Scheduled    []ScheduledTransfer
}

// Clone returns a copy that shares no slices or maps with s.
func (s State) Clone() State {
	txns := make([]Transaction, len(s.Transactions))
	copy(txns, s.Transactions)
	scheduled := make([]ScheduledTransfer, len(s.Scheduled))
	copy(scheduled, s.Scheduled)

	return State{
		Accounts:     s.Accounts.Clone(),
		Rates:        s.Rates.Clone(),
		Transactions: txns,
		Scheduled:    scheduled,
	}
}

// ApplyTransfer executes req against the state and prepends the resulting
// transaction to the log.
func (m *Mutator) ApplyTransfer(s State, req TransferRequest) (State, Transaction, error) {
	accounts, txn, err := m.ExecuteTransfer(s.Accounts, req, s.Rates)
	if err != nil {
		return s, Transaction{}, err
	}

	next := s.Clone()
	next.Accounts = accounts
	next.Transactions = append([]Transaction{txn}, next.Transactions...)
	return next, txn, nil
}

// ApplySchedule records a scheduled transfer at the end of the list.
func (m *Mutator) ApplySchedule(s State, req ScheduleRequest) (State, ScheduledTransfer, error) {
	scheduled, err := m.ScheduleTransfer(s.Accounts, req, s.Rates)
	if err != nil {
		return s, ScheduledTransfer{}, err
	}

	next := s.Clone()
	next.Scheduled = append(next.Scheduled, scheduled)
	return next, scheduled, nil
}

// ApplyCancel removes a scheduled transfer and reports whether one was removed.
func ApplyCancel(s State, id string) (State, bool) {
	next := s.Clone()
	next.Scheduled = CancelScheduledTransfer(s.Scheduled, id)
	return next, len(next.Scheduled) != len(s.Scheduled)
}

// ApplyRateEdits merges raw rate edits into the state's table.
func ApplyRateEdits(s State, edits map[string]string) State {
	next := s.Clone()
	next.Rates = currency.UpdateRates(s.Rates, edits)
	return next
}

// FindTransaction looks a transaction up by id.
func (s State) FindTransaction(id string) (Transaction, error) {
	for _, txn := range s.Transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return Transaction{}, ErrTransactionNotFound{TransactionID: id}
}

// DueScheduled returns the scheduled transfers due on or before day.
func (s State) DueScheduled(day time.Time) []ScheduledTransfer {
	var due []ScheduledTransfer
	for _, st := range s.Scheduled {
		if st.DueOn(day) {
			due = append(due, st)
		}
	}
	return due
}

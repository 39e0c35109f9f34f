package account

// ErrAccountNotFound indicates missing account
type ErrAccountNotFound struct {
	AccountID string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.AccountID
}

// ErrDuplicateAccountID indicates an account set that reuses an id
type ErrDuplicateAccountID struct {
	AccountID string
}

func (e ErrDuplicateAccountID) Error() string {
	return "account id used more than once: " + e.AccountID
}

// ValidateSet checks a replacement account set before it is installed.
func ValidateSet(as Accounts) error {
	seen := make(map[string]struct{}, len(as))
	for _, a := range as {
		if _, ok := seen[a.ID]; ok {
			return ErrDuplicateAccountID{AccountID: a.ID}
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}

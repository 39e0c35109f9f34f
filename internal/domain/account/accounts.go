package account

// Accounts is an ordered account collection. Operations return new
// collections and leave the receiver untouched.
type Accounts []Account

// Find returns the account with the given id.
func (as Accounts) Find(id string) (Account, bool) {
	for _, a := range as {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Get is Find with a typed not-found error.
func (as Accounts) Get(id string) (Account, error) {
	a, ok := as.Find(id)
	if !ok {
		return Account{}, ErrAccountNotFound{AccountID: id}
	}
	return a, nil
}

// Replace returns a copy of the collection where every account whose id
// matches one of updated is swapped for the updated version. Order is kept.
func (as Accounts) Replace(updated ...Account) Accounts {
	byID := make(map[string]Account, len(updated))
	for _, a := range updated {
		byID[a.ID] = a
	}

	out := make(Accounts, len(as))
	for i, a := range as {
		if u, ok := byID[a.ID]; ok {
			out[i] = u
			continue
		}
		out[i] = a
	}
	return out
}

// Clone returns a shallow copy; Account is a value type so this is enough
// to isolate callers.
func (as Accounts) Clone() Accounts {
	out := make(Accounts, len(as))
	copy(out, as)
	return out
}

package bootstrap

import (
	"fmt"
	"os"

	"github.com/shannicec/moneymorph/internal/data/seed"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/report"
)

// InitialState returns the starting state for a session. When accountsFile is set
// its accounts replace the built-in ones; rates always come from the seed.
func InitialState(accountsFile string) (ledger.State, error) {
	state := seed.State()
	if accountsFile == "" {
		return state, nil
	}

	raw, err := os.ReadFile(accountsFile)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to read accounts file: %w", err)
	}

	accounts, err := report.ParseAccounts(string(raw))
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to load accounts from %s: %w", accountsFile, err)
	}
	state.Accounts = accounts
	return state, nil
}

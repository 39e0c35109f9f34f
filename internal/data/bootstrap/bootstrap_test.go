package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shannicec/moneymorph/internal/platform/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	t.Run("DefaultsToSeed", func(t *testing.T) {
		state, err := InitialState("")
		require.NoError(t, err)
		assert.Len(t, state.Accounts, 10)
		assert.Len(t, state.Rates, 6)
	})

	t.Run("AccountsFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "accounts.csv")
		csv := "Account ID,Account Name,Currency,Balance,Type,Flag\nacc-100,Treasury,USD,1000.50,Bank Account,"
		require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

		state, err := InitialState(path)
		require.NoError(t, err)
		require.Len(t, state.Accounts, 1)
		assert.Equal(t, "Treasury", state.Accounts[0].Name)
		assert.Len(t, state.Rates, 6)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := InitialState(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "accounts.csv")
		require.NoError(t, os.WriteFile(path, []byte("Account ID"), 0o600))

		_, err := InitialState(path)
		assert.ErrorIs(t, err, tabular.ErrMalformedImport)
	})
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type AccountsCommandRunner struct {
	app *app
	out io.Writer
}

func newAccountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List all accounts with their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AccountsCommandRunner{app: a, out: cmd.OutOrStdout()}
			return runner.Run(cmd)
		},
	}
}

func (r *AccountsCommandRunner) Run(cmd *cobra.Command) error {
	accounts, err := r.app.session.Accounts.ListAccounts(r.app.ctx(cmd))
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}
	return renderAccounts(r.out, accounts)
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
	"github.com/shannicec/moneymorph/internal/report"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Out string
}

type ExportCommandRunner struct {
	app   *app
	flags *exportFlags
	out   io.Writer
}

func newExportCmd(a *app) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the accounts and the transaction log as CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ExportCommandRunner{app: a, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Out, "out", "o", ".", "directory the files are written to")

	return cmd
}

func (r *ExportCommandRunner) Run(cmd *cobra.Command) error {
	ctx := r.app.ctx(cmd)
	if err := os.MkdirAll(r.flags.Out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	now := r.app.clock.Now()

	accounts, err := r.app.session.Accounts.ExportAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to export accounts: %w", err)
	}
	if err := r.write(tabular.FileName(report.AccountsFileBase, now), accounts); err != nil {
		return err
	}

	txns, err := r.app.session.Transactions.ExportTransactions(ctx, service.TransactionFilter{})
	switch {
	case errors.Is(err, tabular.ErrEmptyExport):
		fmt.Fprint(r.out, pterm.Warning.Sprintln("No transactions to export"))
		return nil
	case err != nil:
		return fmt.Errorf("failed to export transactions: %w", err)
	}
	return r.write(tabular.FileName(report.TransactionsFileBase, now), txns)
}

func (r *ExportCommandRunner) write(name string, body []byte) error {
	path := filepath.Join(r.flags.Out, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprint(r.out, pterm.Success.Sprintf("Wrote %s\n", path))
	return nil
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	Note string
}

type TransferCommandRunner struct {
	app   *app
	flags *transferFlags
	out   io.Writer
}

func newTransferCmd(a *app) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:     "transfer <from-account> <to-account> <amount>",
		Short:   "Move money between two accounts, converting if needed",
		Example: "  moneymorph transfer acc-001 acc-004 2500 --note \"float top-up\"",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &TransferCommandRunner{app: a, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "note stored with the transfer")

	return cmd
}

func (r *TransferCommandRunner) Run(cmd *cobra.Command, args []string) error {
	req := transferRequest(args, r.flags.Note)

	txn, err := r.app.session.Transactions.Transfer(r.app.ctx(cmd), req)
	if err != nil {
		return err
	}

	if err := renderTransaction(r.out, txn); err != nil {
		return err
	}
	fmt.Fprint(r.out, pterm.Success.Sprintf("Transfer %s completed\n", txn.ID))

	accounts, err := r.app.session.Accounts.ListAccounts(r.app.ctx(cmd))
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}
	return renderAccounts(r.out, accounts)
}

type ScheduleCommandRunner struct {
	app   *app
	flags *transferFlags
	out   io.Writer
}

func newScheduleCmd(a *app) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "schedule <from-account> <to-account> <amount> <date>",
		Short: "Record a transfer for a future date",
		Long: `Record a transfer for a date in YYYY-MM-DD form. The transfer is validated
now but balances are not touched; nothing executes it later.`,
		Example: "  moneymorph schedule acc-001 acc-004 2500 2026-12-01",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ScheduleCommandRunner{app: a, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "note stored with the transfer")

	return cmd
}

func (r *ScheduleCommandRunner) Run(cmd *cobra.Command, args []string) error {
	req := transferRequest(args[:3], r.flags.Note)
	date, err := ledger.ParseScheduleDate(args[3])
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[3])
	}

	scheduled, err := r.app.session.Schedules.ScheduleTransfer(r.app.ctx(cmd), ledger.ScheduleRequest{
		TransferRequest: req,
		ScheduledDate:   date,
	})
	if err != nil {
		return err
	}

	if err := renderScheduled(r.out, scheduled); err != nil {
		return err
	}
	fmt.Fprint(r.out, pterm.Success.Sprintf("Transfer scheduled for %s\n", scheduled.ScheduledDate.Format("2006-01-02")))
	return nil
}

// transferRequest builds a request from <from> <to> <amount>. An amount that
// does not parse becomes zero so the mutator reports it in its usual order.
func transferRequest(args []string, note string) ledger.TransferRequest {
	amount, err := decimal.NewFromString(strings.TrimSpace(args[2]))
	if err != nil {
		amount = decimal.Zero
	}
	return ledger.TransferRequest{
		FromAccountID: strings.TrimSpace(args[0]),
		ToAccountID:   strings.TrimSpace(args[1]),
		Amount:        amount,
		Note:          note,
	}
}

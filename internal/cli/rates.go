package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/platform/display"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type ratesFlags struct {
	Set []string
}

type RatesCommandRunner struct {
	app   *app
	flags *ratesFlags
	out   io.Writer
}

func newRatesCmd(a *app) *cobra.Command {
	flags := &ratesFlags{}

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show or edit the exchange rate table",
		Long: `Show the exchange rate table. Each --set PAIR=RATE edit replaces or adds
one direction; edits with an unknown pair or a non-positive rate are ignored.`,
		Example: "  moneymorph rates --set KES-USD=0.0075 --set USD-KES=135",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &RatesCommandRunner{app: a, flags: flags, out: cmd.OutOrStdout()}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringArrayVar(&flags.Set, "set", nil, "rate edit in PAIR=RATE form, repeatable")

	return cmd
}

func (r *RatesCommandRunner) Run(cmd *cobra.Command) error {
	ctx := r.app.ctx(cmd)
	if len(r.flags.Set) == 0 {
		rates, err := r.app.session.Rates.GetRates(ctx)
		if err != nil {
			return fmt.Errorf("failed to get rates: %w", err)
		}
		return renderRates(r.out, rates)
	}

	edits := make(map[string]string, len(r.flags.Set))
	for _, raw := range r.flags.Set {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected PAIR=RATE", raw)
		}
		edits[strings.TrimSpace(key)] = value
	}

	rates, err := r.app.session.Rates.UpdateRates(ctx, edits)
	if err != nil {
		return fmt.Errorf("failed to update rates: %w", err)
	}

	for key, value := range edits {
		if _, err := currency.ParsePair(key); err != nil {
			fmt.Fprint(r.out, pterm.Warning.Sprintf("Ignored %s: unknown currency pair\n", key))
			continue
		}
		if _, ok := currency.ParseRate(value); !ok {
			fmt.Fprint(r.out, pterm.Warning.Sprintf("Ignored %s: rate must be a positive number\n", key))
		}
	}
	return renderRates(r.out, rates)
}

type ConvertCommandRunner struct {
	app *app
	out io.Writer
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <amount> <from> <to>",
		Short:   "Preview a currency conversion",
		Example: "  moneymorph convert 1000 KES USD",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ConvertCommandRunner{app: a, out: cmd.OutOrStdout()}
			return runner.Run(cmd, args)
		},
	}
}

func (r *ConvertCommandRunner) Run(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid amount: %s", args[0])
	}
	from, err := currency.ParseCode(args[1])
	if err != nil {
		return err
	}
	to, err := currency.ParseCode(args[2])
	if err != nil {
		return err
	}

	conv, err := r.app.session.Rates.Convert(r.app.ctx(cmd), amount, from, to)
	if err != nil {
		return err
	}

	fmt.Fprint(r.out, pterm.Success.Sprintf("%s = %s (rate %s)\n",
		display.FormatMoney(conv.Amount, conv.From),
		display.FormatMoney(conv.ConvertedAmount, conv.To),
		rateOrDash(conv.Rate),
	))
	return nil
}

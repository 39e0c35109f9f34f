// Package cli is the moneymorph command line. Every invocation runs its own
// in-memory session seeded from the reference data or an accounts CSV.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/data/bootstrap"
	"github.com/shannicec/moneymorph/internal/data/memory"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/logger"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	AccountsFile string
	BaseCurrency string
	LogLevel     string
}

// app carries what the subcommands share. The session is built once the
// flags are parsed.
type app struct {
	flags   *rootFlags
	clock   ledger.Clock
	ids     ledger.IDGenerator
	session service.Services
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := NewRootCmd(ledger.SystemClock(), ledger.UUIDv7Generator())
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around clock and ids
func NewRootCmd(clock ledger.Clock, ids ledger.IDGenerator) *cobra.Command {
	a := &app{flags: &rootFlags{}, clock: clock, ids: ids}

	rootCmd := &cobra.Command{
		Use:           "moneymorph",
		Short:         "moneymorph is a multi-currency treasury console",
		Long:          `moneymorph moves money between treasury accounts in USD, KES and NGN, converting with a directional rate table.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.flags.AccountsFile, "accounts", "", "load accounts from a CSV file instead of the seed set")
	rootCmd.PersistentFlags().StringVar(&a.flags.BaseCurrency, "base", string(currency.USD), "currency analytics values the portfolio in")
	rootCmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "error", "log level written to stderr")

	rootCmd.AddCommand(newAccountsCmd(a))
	rootCmd.AddCommand(newRatesCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newTransferCmd(a))
	rootCmd.AddCommand(newScheduleCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newAnalyticsCmd(a))

	return rootCmd
}

func (a *app) open(logOut io.Writer) error {
	base, err := currency.ParseCode(a.flags.BaseCurrency)
	if err != nil {
		return fmt.Errorf("invalid --base: %w", err)
	}

	state, err := bootstrap.InitialState(a.flags.AccountsFile)
	if err != nil {
		return err
	}

	log := logger.New(logOut, a.flags.LogLevel).With(slog.String("component", "cli"))
	repo := memory.NewSessionRepository(log, state)
	mutator := ledger.NewMutator(a.clock, a.ids)
	a.session = service.NewServices(log, repo, mutator, producers.NoopPublisher{}, a.clock, base)
	return nil
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type AnalyticsCommandRunner struct {
	app *app
	out io.Writer
}

func newAnalyticsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Summarize balances and transfer activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AnalyticsCommandRunner{app: a, out: cmd.OutOrStdout()}
			return runner.Run(cmd)
		},
	}
}

func (r *AnalyticsCommandRunner) Run(cmd *cobra.Command) error {
	summary, err := r.app.session.Analytics.Summary(r.app.ctx(cmd))
	if err != nil {
		return fmt.Errorf("failed to build analytics: %w", err)
	}
	return renderSummary(r.out, summary)
}

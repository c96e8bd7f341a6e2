package cmd

import (
	"context"
	"flag"

	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	evalFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display gains, losses and income of the ledger" }
func (*summaryCmd) Usage() string {
	return `tlc summary [-method <method>] [-resolve]

  Displays the short-term and long-term gains, the income and the losses of
  the ledger, evaluated at the -at date. Wash sales are reported apart and do
  not count as losses.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	return emit(renderer.SummaryMarkdown(r))
}

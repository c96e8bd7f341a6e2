package cmd

import (
	"context"
	"flag"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/google/subcommands"
)

type suggestCmd struct {
	evalFlags
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest tax strategies for the ledger" }
func (*suggestCmd) Usage() string {
	return `tlc suggest [-method <method>] [-resolve]

  Suggests realizing losses to offset gains, and holding short-term gains
  until they qualify as long-term. Savings are rough estimates.
`
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	return emit(renderer.SuggestionsMarkdown(taxlot.Suggest(r)))
}

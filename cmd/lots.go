package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/google/subcommands"
)

type lotsCmd struct {
	method string
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "display the lots matched by each disposal" }
func (*lotsCmd) Usage() string {
	return `tlc lots [-method <method>]

  Pools acquisitions into tax lots and matches every disposal against them in
  the order of the method. Displays the cost basis of each disposal and the
  lots still open.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "method", defaultMethod(), "Lot selection method (fifo, lifo, hifo). Defaults to $"+EnvMethod+" or fifo.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := taxlot.ParseMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing method: %v\n", err)
		return subcommands.ExitUsageError
	}
	txs, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	r, err := taxlot.MatchLots(txs, method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error matching lots: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, d := range r.Disposals {
		if d.Unmatched.IsPositive() {
			logger.Warn("disposal exceeds the open lots", "id", d.ID, "asset", d.Asset, "unmatched", d.Unmatched.String())
		}
	}
	return emit(renderer.LotsMarkdown(r))
}

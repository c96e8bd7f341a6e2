package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/google/subcommands"
)

type classifyCmd struct {
	amount       string
	counterparty string
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "classify a raw activity description" }
func (*classifyCmd) Usage() string {
	return `tlc classify [-amount <quantity>] [-counterparty <name>] <description>...

  Prints the kind of transaction described by a raw activity record. The
  first matching rule wins, see 'tlc topic ledger' for the list of kinds.

Usage Examples:
$ tlc classify -counterparty coinbase "Bought BTC"
trade
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "1", "Quantity of the activity")
	f.StringVar(&c.counterparty, "counterparty", "", "Counterparty of the activity, e.g. an exchange name")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a description is required")
		return subcommands.ExitUsageError
	}
	amount, err := taxlot.ParseQuantity(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind := taxlot.Classify(strings.Join(f.Args(), " "), amount, c.counterparty)
	fmt.Fprintln(stdout, kind)
	return subcommands.ExitSuccess
}

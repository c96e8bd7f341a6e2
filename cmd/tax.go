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

type taxCmd struct {
	evalFlags
	income string
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate the federal income tax" }
func (*taxCmd) Usage() string {
	return `tlc tax [-income <amount>] [-method <method>] [-resolve]

  Estimates the federal income tax of a single filer with the 2024 brackets.
  Without -income, the taxable income is the ledger income plus its
  short-term gains, both taxed as ordinary income.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	c.evalFlags.SetFlags(f)
	f.StringVar(&c.income, "income", "", "Taxable income in USD. Computed from the ledger by default.")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.income != "" {
		income, err := taxlot.ParseMoney(c.income)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing income: %v\n", err)
			return subcommands.ExitUsageError
		}
		return emit(renderer.TaxEstimateMarkdown(taxlot.EstimateFederalTax(income)))
	}

	r, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	income := r.Summary.Income.Add(r.Summary.ShortTermGains)
	return emit(renderer.TaxEstimateMarkdown(taxlot.EstimateFederalTax(income)))
}

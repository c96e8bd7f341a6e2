package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tlc fmt [-o <file>]

  Validates and formats the ledger file. This command reads all transactions,
  validates them, sorts them chronologically, and writes them back in the
  canonical JSONL format. Use -o to write elsewhere, "-" for stdout.

  A JSON document read with -select is converted to JSONL, it requires -o.

Usage Examples:
# Formats the default ledger file in place.
$ tlc fmt

# Converts an exchange export into a ledger.
$ tlc -ledger-file export.json -select '$.result[*]' fmt -o transactions.jsonl
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Formats the ledger in place by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.outputFile == "" && SelectPath() != "" {
		fmt.Fprintln(os.Stderr, "Error: formatting a JSON document in place is not supported, use -o")
		return subcommands.ExitUsageError
	}

	txs, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := taxlot.ValidateAll(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid ledger %q:\n%v\n", LedgerFile(), err)
		return subcommands.ExitFailure
	}
	// FIFO order is the chronological order.
	sorted, err := taxlot.Order(txs, taxlot.FIFO)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sorting ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.outputFile {
	case "-":
		if err := taxlot.EncodeTransactions(stdout, sorted); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	case "":
		c.outputFile = LedgerFile()
	}
	if err := EncodeLedger(c.outputFile, sorted); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logger.Info("ledger formatted", "file", c.outputFile, "transactions", len(sorted))
	return subcommands.ExitSuccess
}

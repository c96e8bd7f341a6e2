package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/google/subcommands"
)

// evalFlags holds the flags shared by the commands evaluating the ledger.
type evalFlags struct {
	method  string
	resolve bool
}

func (e *evalFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.method, "method", defaultMethod(), "Lot selection method (fifo, lifo, hifo). Defaults to $"+EnvMethod+" or fifo.")
	f.BoolVar(&e.resolve, "resolve", false, "Derive missing cost bases from the lots matched by -method")
}

// load decodes the ledger, and resolves missing cost bases with -resolve.
// Errors are reported on stderr, the status is ExitSuccess only when the
// transactions are available.
func (e *evalFlags) load() (taxlot.Method, []taxlot.Transaction, subcommands.ExitStatus) {
	method, err := taxlot.ParseMethod(e.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing method: %v\n", err)
		return method, nil, subcommands.ExitUsageError
	}
	txs, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return method, nil, subcommands.ExitFailure
	}
	if e.resolve {
		txs, err = taxlot.ResolveCostBasis(txs, method)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving cost basis: %v\n", err)
			return method, nil, subcommands.ExitFailure
		}
	}
	return method, txs, subcommands.ExitSuccess
}

// evaluate loads the ledger and evaluates it at the -at date.
func (e *evalFlags) evaluate() (*taxlot.Report, subcommands.ExitStatus) {
	at, err := evaluationTime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing evaluation date: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	method, txs, status := e.load()
	if status != subcommands.ExitSuccess {
		return nil, status
	}
	return checkReport(taxlot.Evaluate(txs, method, at))
}

// checkReport reports an evaluation error on stderr, and logs the warnings of r.
func checkReport(r *taxlot.Report, err error) (*taxlot.Report, subcommands.ExitStatus) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating ledger: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if len(r.MissingCostBasis) > 0 {
		logger.Warn("trades without cost basis count as pure gain", "count", len(r.MissingCostBasis), "ids", r.MissingCostBasis)
	}
	logger.Debug("ledger evaluated", "method", r.Method.String(), "at", r.At, "transactions", len(r.Chronological), "washSales", r.Summary.WashSaleCount)
	return r, subcommands.ExitSuccess
}

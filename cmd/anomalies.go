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

type anomaliesCmd struct{}

func (*anomaliesCmd) Name() string     { return "anomalies" }
func (*anomaliesCmd) Synopsis() string { return "detect suspicious trading patterns" }
func (*anomaliesCmd) Usage() string {
	return `tlc anomalies

  Scans the ledger for wash sale patterns, round tripping and tax loss
  harvesting opportunities. Detection is advisory and never changes the
  computed figures.
`
}

func (*anomaliesCmd) SetFlags(f *flag.FlagSet) {}

func (*anomaliesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	at, err := evaluationTime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing evaluation date: %v\n", err)
		return subcommands.ExitUsageError
	}
	txs, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	anomalies := taxlot.DetectAnomalies(txs, at)
	for _, a := range anomalies {
		logger.Warn("anomaly detected", "anomaly", string(a))
	}
	return emit(renderer.AnomaliesMarkdown(anomalies))
}

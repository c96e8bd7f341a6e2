// Package cmd implements the CLI application computing tax lots and tax forms.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&form8949Cmd{}, "reports")
	c.Register(&scheduleDCmd{}, "reports")
	c.Register(&lotsCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")

	c.Register(&anomaliesCmd{}, "analysis")
	c.Register(&suggestCmd{}, "analysis")
	c.Register(&taxCmd{}, "analysis")
	c.Register(&classifyCmd{}, "analysis")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL, or a JSON document with -select). Defaults to $"+EnvLedgerFile+" or "+defaultLedgerFile)
var selectPath = flag.String("select", "", "JSONPath selecting the transactions when the ledger is a single JSON document, e.g. $.result[*]. Defaults to $"+EnvSelect)
var atDate = flag.String("at", "0d", "Evaluation date. See 'topic dates' for supported formats.")
var htmlOutput = flag.Bool("html", false, "Write reports as HTML instead of Markdown")
var Verbose = flag.Bool("v", false, "Enable debug logging")

const defaultLedgerFile = "transactions.jsonl"

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// logger is the CLI logger, set up by InitLogger.
var logger = slog.Default()

// LoadEnv loads environment variables from the given files, ".env" by
// default. Variables already set in the environment win. Missing files are
// ignored.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// InitLogger sets the CLI logger writing text records to w, at debug level
// with -v. Every record carries the id of the run.
func InitLogger(w io.Writer) {
	level := slog.LevelInfo
	if *Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler).With("run", uuid.NewString())
}

// LedgerFile returns the path of the ledger to work on.
func LedgerFile() string {
	return setting(*ledgerFile, EnvLedgerFile, defaultLedgerFile)
}

// SelectPath returns the JSONPath selecting transactions, empty for JSONL ledgers.
func SelectPath() string {
	return setting(*selectPath, EnvSelect, "")
}

func defaultMethod() string {
	return setting("", EnvMethod, taxlot.FIFO.String())
}

// setting returns the flag value if set, then the environment variable, then the default.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// evaluationTime returns the instant of the -at flag. Today is now, an RFC
// 3339 timestamp is taken as is, and any other date is the end of that day in
// UTC.
func evaluationTime() (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, *atDate); err == nil {
		return at, nil
	}
	on, err := taxlot.ParseDate(*atDate)
	if err != nil {
		return time.Time{}, err
	}
	if on == taxlot.Today() {
		return time.Now().UTC(), nil
	}
	return on.Add(1).Time().Add(-time.Nanosecond), nil
}

// DecodeLedger reads the transactions of the app ledger file.
func DecodeLedger() ([]taxlot.Transaction, error) {
	filename := LedgerFile()
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", filename, err)
	}
	defer f.Close()

	var txs []taxlot.Transaction
	if path := SelectPath(); path != "" {
		txs, err = taxlot.DecodeDocument(f, path)
	} else {
		txs, err = taxlot.DecodeTransactions(f)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger %q: %w", filename, err)
	}
	logger.Debug("ledger decoded", "file", filename, "transactions", len(txs))
	return txs, nil
}

// EncodeLedger writes txs in canonical JSONL into filename, replacing its content.
func EncodeLedger(filename string, txs []taxlot.Transaction) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	defer f.Close()

	if err := taxlot.EncodeTransactions(f, txs); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", filename, err)
	}
	return f.Close()
}

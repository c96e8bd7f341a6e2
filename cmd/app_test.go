package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
)

// ledger is a 2025 ledger: a short-term gain of 10,000, a reward of 500 and
// a loss of 200.
const ledger = `{"id":"t2","timestamp":1740787200000,"kind":"trade","fromAsset":"ETH","toAsset":"USD","fromAmount":1,"toAmount":800,"usdValue":800,"costBasis":1000}
{"id":"t1","timestamp":1735689600000,"kind":"trade","fromAsset":"BTC","toAsset":"USD","fromAmount":0.5,"toAmount":30000,"usdValue":30000,"costBasis":20000}
{"id":"r1","timestamp":1738368000000,"kind":"reward","fromAsset":"","toAsset":"ETH","fromAmount":0,"toAmount":1,"usdValue":500}
`

// Helper function to create a temporary ledger file
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	tmpfile, err := os.Create(filepath.Join(tmp, "test_ledger.jsonl"))
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer tmpfile.Close()

	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	return tmpfile.Name()
}

// withLedger overrides the global ledger file for the test.
func withLedger(t *testing.T, path string) {
	t.Helper()
	old := ledgerFile
	ledgerFile = &path
	t.Cleanup(func() { ledgerFile = old })
}

// withAt overrides the global evaluation date for the test.
func withAt(t *testing.T, at string) {
	t.Helper()
	old := atDate
	atDate = &at
	t.Cleanup(func() { atDate = old })
}

// run executes the command with args and returns its status and output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %v: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return status, out.String()
}

func TestEvaluationTime(t *testing.T) {
	tests := []struct {
		at   string
		want time.Time
	}{
		{"2025-06-30", time.Date(2025, time.June, 30, 23, 59, 59, 999999999, time.UTC)},
		{"2025-06-30T12:00:00Z", time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			withAt(t, tt.at)
			got, err := evaluationTime()
			if err != nil {
				t.Fatalf("evaluationTime() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("evaluationTime() = %v, want %v", got, tt.want)
			}
		})
	}

	withAt(t, "yesterday-ish")
	if _, err := evaluationTime(); err == nil {
		t.Error("evaluationTime() expected an error for an invalid date")
	}
}

func TestLedgerFile(t *testing.T) {
	withLedger(t, "")
	t.Setenv(EnvLedgerFile, "")
	if got := LedgerFile(); got != defaultLedgerFile {
		t.Errorf("LedgerFile() = %q, want %q", got, defaultLedgerFile)
	}

	t.Setenv(EnvLedgerFile, "env.jsonl")
	if got := LedgerFile(); got != "env.jsonl" {
		t.Errorf("LedgerFile() = %q, want the environment value", got)
	}

	withLedger(t, "flag.jsonl")
	if got := LedgerFile(); got != "flag.jsonl" {
		t.Errorf("LedgerFile() = %q, want the flag value", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TLC_TEST_PRESET", "os")
	t.Cleanup(func() { os.Unsetenv("TLC_TEST_LOADED") })

	path := filepath.Join(t.TempDir(), ".env")
	content := "TLC_TEST_LOADED=file\nTLC_TEST_PRESET=file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() unexpected error: %v", err)
	}
	if got := os.Getenv("TLC_TEST_LOADED"); got != "file" {
		t.Errorf("TLC_TEST_LOADED = %q, want %q", got, "file")
	}
	if got := os.Getenv("TLC_TEST_PRESET"); got != "os" {
		t.Errorf("TLC_TEST_PRESET = %q, the environment must win", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadEnv() of a missing file = %v, want nil", err)
	}
}

func TestInitLogger(t *testing.T) {
	old := logger
	t.Cleanup(func() { logger = old })
	var buf bytes.Buffer
	InitLogger(&buf)

	logger.Info("hello")
	logger.Debug("hidden")
	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "run=") {
		t.Errorf("log output = %q, want the message and the run id", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("log output = %q, debug records need -v", out)
	}
}

func TestDecodeLedger_Select(t *testing.T) {
	doc := `{"result":[{"id":"t1","timestamp":1735689600000,"type":"trade","fromAsset":"BTC","toAsset":"USD","fromAmount":0.5,"toAmount":30000,"usdValue":30000,"costBasis":20000}]}`
	withLedger(t, createTempLedger(t, doc))
	sel := "$.result[*]"
	old := selectPath
	selectPath = &sel
	t.Cleanup(func() { selectPath = old })

	txs, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	if len(txs) != 1 || txs[0].ID != "t1" {
		t.Errorf("DecodeLedger() = %v, want t1", txs)
	}
}

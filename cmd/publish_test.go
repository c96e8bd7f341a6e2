package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/google/subcommands"
)

func newTx(on string) taxlot.Transaction {
	return taxlot.Transaction{ID: on, Timestamp: taxlot.MustParseDate(on).Time(), Kind: taxlot.Trade}
}

func TestGenerateYears(t *testing.T) {
	at := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		txs  []taxlot.Transaction
		want []int
	}{
		{"empty ledger", nil, nil},
		{"single day", []taxlot.Transaction{newTx("2025-01-15")}, []int{2025}},
		{"unordered", []taxlot.Transaction{newTx("2025-01-15"), newTx("2024-08-15")}, []int{2024, 2025}},
		{"gap year", []taxlot.Transaction{newTx("2022-12-31"), newTx("2024-01-01")}, []int{2022, 2023, 2024}},
		{"after evaluation", []taxlot.Transaction{newTx("2024-08-15"), newTx("2025-07-01")}, []int{2024}},
		{"only after evaluation", []taxlot.Transaction{newTx("2025-07-01")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateYears(tt.txs, at)
			if !slices.Equal(got, tt.want) {
				t.Errorf("generateYears() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPublishCmd_WashSaleAcrossYears(t *testing.T) {
	// The loss of December is disallowed by the disposal of Y in January.
	const ledger = `{"id":"loss","timestamp":1734652800000,"kind":"trade","fromAsset":"X","toAsset":"Y","fromAmount":1,"toAmount":1,"usdValue":500,"costBasis":800}
{"id":"back","timestamp":1736035200000,"kind":"trade","fromAsset":"Y","toAsset":"X","fromAmount":1,"toAmount":1,"usdValue":700,"costBasis":500}
`
	withLedger(t, createTempLedger(t, ledger))
	withAt(t, "2025-06-30")
	out := filepath.Join(t.TempDir(), "reports")

	if status, _ := run(t, &publishCmd{}, "-o", out); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	content, err := os.ReadFile(filepath.Join(out, "summary", "2024.md"))
	if err != nil {
		t.Fatalf("report not generated: %v", err)
	}
	for _, want := range []string{"## Wash Sales", "1 trades excluded from gains: loss."} {
		if !strings.Contains(string(content), want) {
			t.Errorf("summary/2024.md does not contain %q:\n%s", want, content)
		}
	}
	if strings.Contains(string(content), "$300.00") {
		t.Errorf("the disallowed loss must not count in 2024:\n%s", content)
	}

	content, err = os.ReadFile(filepath.Join(out, "summary", "2025.md"))
	if err != nil {
		t.Fatalf("report not generated: %v", err)
	}
	if strings.Contains(string(content), "## Wash Sales") || !strings.Contains(string(content), "+$200.00") {
		t.Errorf("2025 holds the gain of back only:\n%s", content)
	}
}

func TestPublishCmd(t *testing.T) {
	const sol = `{"id":"t0","timestamp":1717200000000,"kind":"trade","fromAsset":"SOL","toAsset":"USD","fromAmount":2,"toAmount":300,"usdValue":300,"costBasis":100}` + "\n"
	withLedger(t, createTempLedger(t, sol+ledger))
	withAt(t, "2025-06-30")

	dir := t.TempDir()
	tpl := filepath.Join(dir, "frontmatter.tpl")
	if err := os.WriteFile(tpl, []byte("---\ntitle: {{.Report}} {{.Year}}\ndate: {{.At}}\n---\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "reports")

	status, _ := run(t, &publishCmd{}, "-o", out, "-frontmatter", tpl)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	tests := []struct {
		file string
		want []string
	}{
		{"scheduled/2024.md", []string{"---\ntitle: scheduled 2024\ndate: 2024-12-31\n---\n\n# Schedule D (2024)", "+$200.00"}},
		{"scheduled/2025.md", []string{"date: 2025-06-30", "**Net Gain or Loss: +$9,800.00**"}},
		{"summary/2024.md", []string{"# Tax Summary on 2024-12-31", "1 transactions."}},
		{"summary/2025.md", []string{"# Tax Summary on 2025-06-30", "3 transactions."}},
		{"form8949/2025.md", []string{"## Part I: Short-Term"}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join(out, tt.file))
			if err != nil {
				t.Fatalf("report not generated: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(content), want) {
					t.Errorf("%s does not contain %q:\n%s", tt.file, want, content)
				}
			}
		})
	}
}

func TestPublishCmd_EmptyLedger(t *testing.T) {
	withLedger(t, createTempLedger(t, ""))
	out := filepath.Join(t.TempDir(), "reports")

	if status, _ := run(t, &publishCmd{}, "-o", out); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("nothing must be published for an empty ledger")
	}
}

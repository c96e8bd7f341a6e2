package taxlot

import (
	"strings"
	"testing"
)

func TestEncodeDecodeTransactions(t *testing.T) {
	input := `
{"id":"t1","timestamp":1735689600000,"kind":"trade","fromAsset":"BTC","toAsset":"USD","fromAmount":0.5,"toAmount":30000,"usdValue":30000,"costBasis":20000}

{"id":"r1","timestamp":1735776000000,"kind":"reward","fromAsset":"","toAsset":"ETH","fromAmount":0,"toAmount":0.01,"usdValue":33.3}
`
	input = strings.Trim(input, "\n")

	txs, err := DecodeTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	var sb strings.Builder
	if err := EncodeTransactions(&sb, txs); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}
	want := strings.ReplaceAll(input, "\n\n", "\n") + "\n"
	if got := sb.String(); got != want {
		t.Errorf("encode/decode sequence is not stable got\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeTransactions_LegacyType(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader(`{"id":"a","timestamp":1,"type":"airdrop","usdValue":1}`))
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(txs) != 1 || txs[0].Kind != Airdrop {
		t.Errorf("DecodeTransactions() = %+v, want one airdrop", txs)
	}
}

func TestDecodeTransactions_ReportsLine(t *testing.T) {
	input := "{\"id\":\"a\",\"timestamp\":1,\"kind\":\"trade\"}\n\n{\"id\":\"b\",\"timestamp\":oops}\n"
	_, err := DecodeTransactions(strings.NewReader(input))
	if err == nil {
		t.Fatalf("DecodeTransactions() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("DecodeTransactions() error = %q, want it to name line 3", err)
	}
}

func TestDecodeTransactions_Empty(t *testing.T) {
	txs, err := DecodeTransactions(strings.NewReader("\n  \n"))
	if err != nil || len(txs) != 0 {
		t.Errorf("DecodeTransactions(blank) = %v, %v, want nothing", txs, err)
	}
}

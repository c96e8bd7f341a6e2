package taxlot

import (
	"regexp"
	"testing"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		description  string
		amount       float64
		counterparty string
		want         Kind
	}{
		{"Swap ETH for USDC", 1, "", Trade},
		{"Exchange order filled", 1, "", Trade},
		{"Stake rewards", 1, "", Stake},
		{"Yield farming", 1, "", Stake},
		{"Interest payment", 1, "", Reward},
		{"Receive airdrop", 1, "", Airdrop},
		{"Token distribution", 1, "", Airdrop},
		{"Send to cold wallet", 1, "", Transfer},
		{"Mint NFT", 1, "", AssetCreation},
		{"Create pool", 1, "", AssetCreation},
		{"Burn tokens", 1, "", AssetDestruction},
		{"Borrow USDC", 1, "", Loan},
		{"TRADE", 0, "", Trade},
		{"", 0, "Binance", Transfer},
		{"", 2, "Coinbase Pro", Trade},
		{"", 2, "UNISWAP V3 router", Trade},
		{"", 2, "alice", Transfer},
		{"misc", 2, "", Transfer},
	}
	for _, tc := range testCases {
		got := Classify(tc.description, Q(tc.amount), tc.counterparty)
		if got != tc.want {
			t.Errorf("Classify(%q, %v, %q) = %v, want %v", tc.description, tc.amount, tc.counterparty, got, tc.want)
		}
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	c := Classifier{
		Rules: []Rule{
			{regexp.MustCompile(`(?i)payroll`), Reward},
			{regexp.MustCompile(`(?i)pay`), Trade},
		},
		Venues: []string{"MyBroker"},
	}
	if got := c.Classify("Payroll deposit", Q(1), ""); got != Reward {
		t.Errorf("Classify(payroll) = %v, want reward", got)
	}
	if got := c.Classify("Pay invoice", Q(1), ""); got != Trade {
		t.Errorf("Classify(pay) = %v, want trade", got)
	}
	if got := c.Classify("", Q(1), "mybroker inc"); got != Trade {
		t.Errorf("Classify(venue) = %v, want trade", got)
	}
	if got := c.Classify("", Q(1), "binance"); got != Transfer {
		t.Errorf("Classify(binance) = %v, want transfer with custom venues", got)
	}
}

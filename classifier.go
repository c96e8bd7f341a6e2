package taxlot

import (
	"regexp"
	"strings"
)

// Rule maps a description pattern to a kind.
type Rule struct {
	Pattern *regexp.Regexp
	Kind    Kind
}

// DefaultRules is the built-in rule table. Order matters: the first matching
// rule wins, so specific patterns come before generic ones.
var DefaultRules = []Rule{
	{regexp.MustCompile(`(?i)trade|swap|exchange`), Trade},
	{regexp.MustCompile(`(?i)stake|farm|yield`), Stake},
	{regexp.MustCompile(`(?i)reward|interest`), Reward},
	{regexp.MustCompile(`(?i)airdrop|distribution`), Airdrop},
	{regexp.MustCompile(`(?i)transfer|send|receive`), Transfer},
	{regexp.MustCompile(`(?i)mint|create`), AssetCreation},
	{regexp.MustCompile(`(?i)burn|destroy`), AssetDestruction},
	{regexp.MustCompile(`(?i)lend|borrow`), Loan},
}

// DefaultVenues are the exchange venues recognized in counterparty names.
var DefaultVenues = []string{
	"binance", "coinbase", "kraken", "gemini",
	"uniswap", "sushiswap", "pancakeswap",
}

// Classifier labels free-text activity with a Kind.
type Classifier struct {
	Rules  []Rule   // Rules are tried in order.
	Venues []string // Venues are matched as lower case substrings of the counterparty.
}

// DefaultClassifier uses DefaultRules and DefaultVenues.
var DefaultClassifier = Classifier{Rules: DefaultRules, Venues: DefaultVenues}

// Classify returns the kind of the first rule matching description.
//
// When no rule matches, a zero amount is a Transfer, a known exchange venue
// as counterparty makes it a Trade, and anything else is a Transfer.
func (c Classifier) Classify(description string, amount Quantity, counterparty string) Kind {
	for _, rule := range c.Rules {
		if rule.Pattern.MatchString(description) {
			return rule.Kind
		}
	}
	if amount.IsZero() {
		return Transfer
	}
	if c.IsVenue(counterparty) {
		return Trade
	}
	return Transfer
}

// IsVenue reports whether counterparty names a known exchange venue.
func (c Classifier) IsVenue(counterparty string) bool {
	counterparty = strings.ToLower(counterparty)
	for _, venue := range c.Venues {
		if venue != "" && strings.Contains(counterparty, strings.ToLower(venue)) {
			return true
		}
	}
	return false
}

// Classify classifies with the DefaultClassifier.
func Classify(description string, amount Quantity, counterparty string) Kind {
	return DefaultClassifier.Classify(description, amount, counterparty)
}

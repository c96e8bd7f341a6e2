package taxlot

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SuggestionKind identifies a tax strategy.
type SuggestionKind string

const (
	TaxLossHarvesting SuggestionKind = "TAX_LOSS_HARVESTING"
	HoldingPeriod     SuggestionKind = "HOLDING_PERIOD"
)

// Urgency ranks suggestions.
type Urgency string

const (
	UrgencyHigh   Urgency = "HIGH"
	UrgencyMedium Urgency = "MEDIUM"
)

var (
	// topMarginalRate values a harvested loss.
	topMarginalRate = decimal.RequireFromString("0.37")
	// longTermRateGap is the saving of long-term over short-term treatment.
	longTermRateGap = decimal.RequireFromString("0.17")
)

// Suggestion is an advisory tax strategy hint.
type Suggestion struct {
	Kind             SuggestionKind
	Description      string
	Count            int
	PotentialSavings Money
	Urgency          Urgency
}

// Suggest returns strategy hints for the report's trades:
// realizing losses of trades that are not wash sales, and holding short-term
// gains until they turn long-term.
func Suggest(r *Report) []Suggestion {
	var suggestions []Suggestion

	var losing int
	var losses Money
	for _, tx := range r.Chronological {
		if tx.Kind != Trade || r.IsWashSale(tx.ID) || !tx.USDValue.LessThan(tx.Basis()) {
			continue
		}
		losing++
		losses = losses.Add(tx.Basis().Sub(tx.USDValue))
	}
	if losing > 0 {
		suggestions = append(suggestions, Suggestion{
			Kind:             TaxLossHarvesting,
			Description:      fmt.Sprintf("Consider realizing %d losses to offset gains", losing),
			Count:            losing,
			PotentialSavings: losses.Times(topMarginalRate).Round(),
			Urgency:          UrgencyHigh,
		})
	}

	var gaining int
	var gains Money
	for _, tx := range r.Chronological {
		if tx.Kind != Trade || tx.Age(r.At) >= OneYear || !tx.GainLoss().IsPositive() {
			continue
		}
		gaining++
		gains = gains.Add(tx.GainLoss())
	}
	if gaining > 0 {
		suggestions = append(suggestions, Suggestion{
			Kind:             HoldingPeriod,
			Description:      fmt.Sprintf("Consider holding %d assets for long-term treatment", gaining),
			Count:            gaining,
			PotentialSavings: gains.Times(longTermRateGap).Round(),
			Urgency:          UrgencyMedium,
		})
	}
	return suggestions
}

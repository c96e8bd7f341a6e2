package taxlot

import "time"

// Anomaly is an advisory label about a transaction list. Anomalies never
// change computed figures.
type Anomaly string

const (
	WashSalePattern              Anomaly = "WASH_SALE_PATTERN"
	RoundTripping                Anomaly = "ROUND_TRIPPING"
	TaxLossHarvestingOpportunity Anomaly = "TAX_LOSS_HARVESTING_OPPORTUNITY"
)

// Detector holds the thresholds of the anomaly checks.
type Detector struct {
	// WashWindow is the distance under which two transactions on the same
	// asset look like a wash sale.
	WashWindow time.Duration
	// RoundTripThreshold is the USD value above which a trade is large.
	RoundTripThreshold Money
	// RoundTripWindow is the recency under which a large trade is a round trip.
	RoundTripWindow time.Duration
	// HarvestThreshold is the yearly realized loss above which harvesting is worth it.
	HarvestThreshold Money
	// SinceLastTrade returns the time between sorted[i] and the last trade
	// before it, or false if there is none. Nil means PrecedingTrade.
	SinceLastTrade func(sorted []Transaction, i int) (time.Duration, bool)
}

// NewDetector returns a Detector with the default thresholds: 30 days,
// 10,000 USD within 24 hours, and 3,000 USD of yearly losses.
func NewDetector() *Detector {
	return &Detector{
		WashWindow:         WashSaleWindow,
		RoundTripThreshold: M(10000),
		RoundTripWindow:    Day,
		HarvestThreshold:   M(3000),
		SinceLastTrade:     PrecedingTrade,
	}
}

// PrecedingTrade returns the time since the closest Trade before sorted[i].
func PrecedingTrade(sorted []Transaction, i int) (time.Duration, bool) {
	for k := i - 1; k >= 0; k-- {
		if sorted[k].Kind == Trade {
			return sorted[i].Timestamp.Sub(sorted[k].Timestamp), true
		}
	}
	return 0, false
}

// DetectAnomalies runs the default Detector.
func DetectAnomalies(txs []Transaction, at time.Time) []Anomaly {
	return NewDetector().Detect(txs, at)
}

// Detect returns the anomalies found in txs, each at most once, in the order
// WashSalePattern, RoundTripping, TaxLossHarvestingOpportunity. The
// harvesting check looks at the calendar year of at.
func (d *Detector) Detect(txs []Transaction, at time.Time) []Anomaly {
	sorted := chronological(txs)
	var found []Anomaly
	if d.hasWashSalePattern(sorted) {
		found = append(found, WashSalePattern)
	}
	if d.hasRoundTripping(sorted) {
		found = append(found, RoundTripping)
	}
	if d.hasTaxLossOpportunity(sorted, at) {
		found = append(found, TaxLossHarvestingOpportunity)
	}
	return found
}

func (d *Detector) hasWashSalePattern(sorted []Transaction) bool {
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Timestamp.Sub(sorted[i].Timestamp) > d.WashWindow {
				break
			}
			if shareAsset(sorted[i], sorted[j]) {
				return true
			}
		}
	}
	return false
}

// shareAsset reports whether a and b move a common non cash asset.
func shareAsset(a, b Transaction) bool {
	for _, x := range [...]string{a.FromAsset, a.ToAsset} {
		if x == "" || x == Cash {
			continue
		}
		if x == b.FromAsset || x == b.ToAsset {
			return true
		}
	}
	return false
}

func (d *Detector) hasRoundTripping(sorted []Transaction) bool {
	since := d.SinceLastTrade
	if since == nil {
		since = PrecedingTrade
	}
	for i, tx := range sorted {
		if tx.Kind != Trade || !tx.USDValue.GreaterThan(d.RoundTripThreshold) {
			continue
		}
		if elapsed, ok := since(sorted, i); ok && elapsed < d.RoundTripWindow {
			return true
		}
	}
	return false
}

func (d *Detector) hasTaxLossOpportunity(sorted []Transaction, at time.Time) bool {
	year := at.UTC().Year()
	var losses Money
	for _, tx := range sorted {
		if tx.Kind != Trade || tx.Timestamp.UTC().Year() != year {
			continue
		}
		if tx.USDValue.LessThan(tx.Basis()) {
			losses = losses.Add(tx.Basis().Sub(tx.USDValue))
		}
	}
	return losses.GreaterThan(d.HarvestThreshold)
}

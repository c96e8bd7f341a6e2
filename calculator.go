package taxlot

import (
	"fmt"
	"slices"
	"time"
)

const (
	// WashSaleWindow is the period after a trade during which re-disposing
	// of the acquired asset makes the trade a wash sale.
	WashSaleWindow = 30 * Day
	// OneYear is the holding period limit of short-term gains. A trade
	// exactly one year old is still short-term.
	OneYear = 365 * Day
)

// Summary holds the aggregate figures of a computation, in USD.
type Summary struct {
	ShortTermGains Money
	LongTermGains  Money
	Income         Money
	Losses         Money // Losses is a positive magnitude, wash sales excluded.
	WashSaleCount  int
}

// Equal reports whether both summaries hold the same figures.
func (s Summary) Equal(o Summary) bool {
	return s.ShortTermGains.Equal(o.ShortTermGains) &&
		s.LongTermGains.Equal(o.LongTermGains) &&
		s.Income.Equal(o.Income) &&
		s.Losses.Equal(o.Losses) &&
		s.WashSaleCount == o.WashSaleCount
}

// CapitalGains holds proceeds and cost basis per holding period. It is the
// input of Schedule D.
type CapitalGains struct {
	ShortTermProceeds  Money
	ShortTermCostBasis Money
	LongTermProceeds   Money
	LongTermCostBasis  Money
}

// Report is the complete result of one computation.
type Report struct {
	At     time.Time // At is the evaluation instant.
	Method Method

	// Chronological holds the transactions sorted by timestamp, ties in
	// input order.
	Chronological []Transaction
	// Ordered holds the transactions in Method order.
	Ordered []Transaction
	// WashSales holds the ids of the wash-sale flagged trades.
	WashSales map[string]bool
	// MissingCostBasis lists the ids of trades without a cost basis, in
	// chronological order. Their basis counts as zero and overstates gains.
	MissingCostBasis []string

	Summary      Summary
	CapitalGains CapitalGains // CapitalGains excludes wash sales.
}

// IsWashSale reports whether the transaction with this id was flagged.
func (r *Report) IsWashSale(id string) bool { return r.WashSales[id] }

// ScheduleD projects the report's capital gains into a Schedule D.
func (r *Report) ScheduleD() ScheduleD { return GenerateScheduleD(r.CapitalGains) }

// chronological returns a copy of txs sorted by timestamp. The sort is
// stable: equal timestamps keep their input order.
func chronological(txs []Transaction) []Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

// Order returns a copy of txs in method order.
//
// FIFO is chronological order, LIFO its reverse, and HIFO sorts the
// chronological order by decreasing cost basis, ties keeping chronological
// order.
func Order(txs []Transaction, method Method) ([]Transaction, error) {
	sorted := chronological(txs)
	switch method {
	case FIFO:
	case LIFO:
		slices.Reverse(sorted)
	case HIFO:
		slices.SortStableFunc(sorted, func(a, b Transaction) int {
			return b.Basis().Cmp(a.Basis())
		})
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	return sorted, nil
}

// detectWashSales flags every trade whose acquired asset is disposed of again
// within WashSaleWindow. sorted must be chronological. The first match wins:
// a trade is flagged once however many later disposals qualify.
func detectWashSales(sorted []Transaction) map[string]bool {
	flagged := make(map[string]bool)
	for i, current := range sorted {
		if current.Kind != Trade {
			continue
		}
		for _, later := range sorted[i+1:] {
			if later.Timestamp.Sub(current.Timestamp) > WashSaleWindow {
				break
			}
			if later.FromAsset == current.ToAsset {
				flagged[current.ID] = true
				break
			}
		}
	}
	return flagged
}

// isShortTerm reports whether tx is at most one year old at 'at'.
func isShortTerm(tx Transaction, at time.Time) bool {
	return tx.Age(at) <= OneYear
}

// Evaluate validates txs and computes the full Report.
//
// The method only changes Report.Ordered: every figure is summed per
// transaction, and cost bases are taken as given. Use ResolveCostBasis
// beforehand to derive missing cost bases from lots.
func Evaluate(txs []Transaction, method Method, at time.Time) (*Report, error) {
	return evaluate(txs, method, at, nil)
}

// EvaluatePeriod is like Evaluate but the report only holds the transactions
// timestamped within [from, at]. Wash sales are still detected over all of
// txs, so that a trade at the end of the period is flagged by a disposal
// after it.
func EvaluatePeriod(txs []Transaction, method Method, from, at time.Time) (*Report, error) {
	return evaluate(txs, method, at, func(tx Transaction) bool {
		return !tx.Timestamp.Before(from) && !tx.Timestamp.After(at)
	})
}

// evaluate computes the Report of the transactions kept by keep, all of them
// when keep is nil.
func evaluate(txs []Transaction, method Method, at time.Time, keep func(Transaction) bool) (*Report, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	if err := ValidateAll(txs); err != nil {
		return nil, err
	}

	all := chronological(txs)
	washSales := detectWashSales(all)
	sorted := all
	if keep != nil {
		sorted = nil
		kept := make(map[string]bool)
		for _, tx := range all {
			if !keep(tx) {
				continue
			}
			sorted = append(sorted, tx)
			if washSales[tx.ID] {
				kept[tx.ID] = true
			}
		}
		washSales = kept
	}
	ordered, err := Order(sorted, method)
	if err != nil {
		return nil, err
	}

	r := &Report{
		At:            at,
		Method:        method,
		Chronological: sorted,
		Ordered:       ordered,
		WashSales:     washSales,
	}
	r.Summary.WashSaleCount = len(r.WashSales)

	for _, tx := range sorted {
		if tx.Kind.IsIncome() {
			r.Summary.Income = r.Summary.Income.Add(tx.USDValue)
		}
		if tx.Kind != Trade {
			continue
		}
		if !tx.HasCostBasis() {
			r.MissingCostBasis = append(r.MissingCostBasis, tx.ID)
		}
		if r.WashSales[tx.ID] {
			continue
		}
		gain := tx.GainLoss()
		if isShortTerm(tx, at) {
			r.Summary.ShortTermGains = r.Summary.ShortTermGains.Add(gain)
			r.CapitalGains.ShortTermProceeds = r.CapitalGains.ShortTermProceeds.Add(tx.USDValue)
			r.CapitalGains.ShortTermCostBasis = r.CapitalGains.ShortTermCostBasis.Add(tx.Basis())
		} else {
			r.Summary.LongTermGains = r.Summary.LongTermGains.Add(gain)
			r.CapitalGains.LongTermProceeds = r.CapitalGains.LongTermProceeds.Add(tx.USDValue)
			r.CapitalGains.LongTermCostBasis = r.CapitalGains.LongTermCostBasis.Add(tx.Basis())
		}
		if gain.IsNegative() {
			r.Summary.Losses = r.Summary.Losses.Add(gain.Neg())
		}
	}
	return r, nil
}

// CalculateGainsLosses computes the Summary of txs evaluated at 'at'.
func CalculateGainsLosses(txs []Transaction, method Method, at time.Time) (Summary, error) {
	r, err := Evaluate(txs, method, at)
	if err != nil {
		return Summary{}, err
	}
	return r.Summary, nil
}

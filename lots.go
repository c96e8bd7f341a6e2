package taxlot

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// lot is a single acquisition of an asset, used for cost basis calculations.
type lot struct {
	id       string // id of the acquiring transaction
	acquired time.Time
	quantity Quantity
	cost     Money // Total cost of the lot
}

// lots of a single asset, in acquisition order.
type lots []lot

// selection returns the indexes of l in the order method consumes them.
func (l lots) selection(method Method) []int {
	idx := make([]int, len(l))
	for i := range idx {
		idx[i] = i
	}
	switch method {
	case LIFO:
		slices.Reverse(idx)
	case HIFO:
		// highest unit cost first, older lots first on ties.
		slices.SortStableFunc(idx, func(a, b int) int {
			return l[b].unitCost().Cmp(l[a].unitCost())
		})
	}
	return idx
}

func (l lot) unitCost() Money {
	if l.quantity.IsZero() {
		return Money{}
	}
	return l.cost.Div(l.quantity)
}

// sell consumes quantityToSell from the lots in method order. It returns the
// remaining lots, the matched portions, and the quantity no lot could cover.
func (l lots) sell(quantityToSell Quantity, method Method) (remaining lots, matched []LotMatch, unmatched Quantity) {
	left := slices.Clone(l)
	for _, i := range left.selection(method) {
		if !quantityToSell.IsPositive() {
			break
		}
		current := left[i]
		if current.quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := current.cost.Mul(quantityToSell).Div(current.quantity)
			matched = append(matched, LotMatch{Acquisition: current.id, Acquired: current.acquired, Quantity: quantityToSell, Cost: costOfSoldPortion})
			left[i].quantity = current.quantity.Sub(quantityToSell)
			left[i].cost = current.cost.Sub(costOfSoldPortion)
			quantityToSell = Quantity{}
		} else {
			// Full sale of this lot
			matched = append(matched, LotMatch{Acquisition: current.id, Acquired: current.acquired, Quantity: current.quantity, Cost: current.cost})
			quantityToSell = quantityToSell.Sub(current.quantity)
			left[i].quantity = Quantity{}
		}
	}
	for _, current := range left {
		if current.quantity.IsPositive() {
			remaining = append(remaining, current)
		}
	}
	return remaining, matched, quantityToSell
}

// LotMatch is the part of a lot consumed by a disposal.
type LotMatch struct {
	Acquisition string // Acquisition is the id of the transaction that opened the lot.
	Acquired    time.Time
	Quantity    Quantity
	Cost        Money
}

// LongTerm reports whether the lot was held more than one year at disposed.
func (m LotMatch) LongTerm(disposed time.Time) bool {
	return disposed.Sub(m.Acquired) > OneYear
}

// Disposal is a disposal event matched against the lots of its asset.
type Disposal struct {
	ID        string // ID of the disposing transaction.
	Disposed  time.Time
	Asset     string
	Quantity  Quantity
	Proceeds  Money
	CostBasis Money // CostBasis is the sum of the matched lot costs.
	Lots      []LotMatch
	Unmatched Quantity // Unmatched quantity had no lot and no cost.
}

// GainLoss returns the proceeds minus the matched cost basis.
func (d Disposal) GainLoss() Money { return d.Proceeds.Sub(d.CostBasis) }

// OpenLot is a lot still held after every disposal.
type OpenLot struct {
	Asset       string
	Acquisition string
	Acquired    time.Time
	Quantity    Quantity
	Cost        Money
}

// LotReport is the result of matching disposals to lots.
type LotReport struct {
	Method    Method
	Disposals []Disposal // in chronological order
	Open      []OpenLot  // by asset, then acquisition order
}

// acquires reports whether tx opens a lot of its ToAsset.
func acquires(tx Transaction) bool {
	switch tx.Kind {
	case Trade, Stake, Reward, Airdrop, AssetCreation:
		return tx.ToAsset != "" && tx.ToAsset != Cash && tx.ToAmount.IsPositive()
	}
	return false
}

// disposes reports whether tx consumes lots of its FromAsset.
func disposes(tx Transaction) bool {
	switch tx.Kind {
	case Trade, AssetDestruction:
		return tx.FromAsset != "" && tx.FromAsset != Cash && tx.FromAmount.IsPositive()
	}
	return false
}

// MatchLots pools acquisitions into lots and matches every disposal against
// them in method order. Transactions are processed chronologically; a trade
// disposes before it acquires. A lot costs the USD value of the acquiring
// transaction.
func MatchLots(txs []Transaction, method Method) (*LotReport, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	if err := ValidateAll(txs); err != nil {
		return nil, err
	}

	report := &LotReport{Method: method}
	pool := make(map[string]lots)
	for _, tx := range chronological(txs) {
		if disposes(tx) {
			remaining, matched, unmatched := pool[tx.FromAsset].sell(tx.FromAmount, method)
			pool[tx.FromAsset] = remaining
			d := Disposal{
				ID:        tx.ID,
				Disposed:  tx.Timestamp,
				Asset:     tx.FromAsset,
				Quantity:  tx.FromAmount,
				Proceeds:  tx.USDValue,
				Lots:      matched,
				Unmatched: unmatched,
			}
			for _, m := range matched {
				d.CostBasis = d.CostBasis.Add(m.Cost)
			}
			report.Disposals = append(report.Disposals, d)
		}
		if acquires(tx) {
			pool[tx.ToAsset] = append(pool[tx.ToAsset], lot{
				id:       tx.ID,
				acquired: tx.Timestamp,
				quantity: tx.ToAmount,
				cost:     tx.USDValue,
			})
		}
	}

	for _, asset := range slices.Sorted(maps.Keys(pool)) {
		for _, l := range pool[asset] {
			report.Open = append(report.Open, OpenLot{
				Asset:       asset,
				Acquisition: l.id,
				Acquired:    l.acquired,
				Quantity:    l.quantity,
				Cost:        l.cost,
			})
		}
	}
	return report, nil
}

// ResolveCostBasis returns a copy of txs, in input order, where each disposal
// without a cost basis gets the cost of the lots matched by method. Cost
// bases already set are kept.
func ResolveCostBasis(txs []Transaction, method Method) ([]Transaction, error) {
	report, err := MatchLots(txs, method)
	if err != nil {
		return nil, err
	}
	costs := make(map[string]Money, len(report.Disposals))
	for _, d := range report.Disposals {
		costs[d.ID] = d.CostBasis
	}
	resolved := slices.Clone(txs)
	for i, tx := range resolved {
		if tx.HasCostBasis() {
			continue
		}
		if cost, ok := costs[tx.ID]; ok {
			resolved[i] = tx.WithCostBasis(cost)
		}
	}
	return resolved, nil
}

package taxlot

import "time"

// origin is the reference instant of the tests.
var origin = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// day returns the instant n days after origin.
func day(n int) time.Time { return origin.Add(time.Duration(n) * Day) }

// USD is a helper for test to create money from const
func USD(v float64) Money { return M(v) }

// basis is a helper for test to create an optional cost basis.
func basis(v float64) *Money {
	m := M(v)
	return &m
}

// trade returns a Trade giving one unit of 'from' for one unit of 'to'.
func trade(id string, on time.Time, from, to string, value, cost float64) Transaction {
	return Transaction{
		ID:         id,
		Timestamp:  on,
		Kind:       Trade,
		FromAsset:  from,
		ToAsset:    to,
		FromAmount: Q(1),
		ToAmount:   Q(1),
		USDValue:   USD(value),
		CostBasis:  basis(cost),
	}
}

// income returns an income transaction of kind k.
func income(id string, on time.Time, k Kind, asset string, value float64) Transaction {
	return Transaction{
		ID:         id,
		Timestamp:  on,
		Kind:       k,
		ToAsset:    asset,
		FromAmount: Q(0),
		ToAmount:   Q(1),
		USDValue:   USD(value),
	}
}

// buy returns a Trade acquiring quantity of asset for cost dollars.
func buy(id string, on time.Time, asset string, quantity, cost float64) Transaction {
	return Transaction{
		ID:         id,
		Timestamp:  on,
		Kind:       Trade,
		FromAsset:  Cash,
		ToAsset:    asset,
		FromAmount: Q(cost),
		ToAmount:   Q(quantity),
		USDValue:   USD(cost),
		CostBasis:  basis(cost),
	}
}

// sell returns a Trade disposing quantity of asset for proceeds dollars,
// with no cost basis.
func sell(id string, on time.Time, asset string, quantity, proceeds float64) Transaction {
	return Transaction{
		ID:         id,
		Timestamp:  on,
		Kind:       Trade,
		FromAsset:  asset,
		ToAsset:    Cash,
		FromAmount: Q(quantity),
		ToAmount:   Q(proceeds),
		USDValue:   USD(proceeds),
	}
}

func ids(txs []Transaction) []string {
	var out []string
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

package taxlot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Cash is the asset symbol of US dollars. Cash is never pooled in lots.
const Cash = "USD"

// Transaction is a normalized activity record.
//
// Transactions are values owned by the caller: the engine works on copies and
// never modifies them.
type Transaction struct {
	ID         string    // ID is an opaque identifier, unique within a computation.
	Timestamp  time.Time // Timestamp is the instant of the economic event.
	Kind       Kind
	FromAsset  string   // FromAsset is the asset given up.
	ToAsset    string   // ToAsset is the asset received.
	FromAmount Quantity // FromAmount is the quantity of FromAsset given up.
	ToAmount   Quantity // ToAmount is the quantity of ToAsset received.
	USDValue   Money    // USDValue is the value of the event at Timestamp.
	CostBasis  *Money   // CostBasis of the disposed asset, nil when unknown.
}

// Basis returns the cost basis, or zero when it is not set.
func (t Transaction) Basis() Money {
	if t.CostBasis == nil {
		return Money{}
	}
	return *t.CostBasis
}

// HasCostBasis reports whether the cost basis was provided.
func (t Transaction) HasCostBasis() bool { return t.CostBasis != nil }

// WithCostBasis returns a copy of t with its cost basis set to basis.
func (t Transaction) WithCostBasis(basis Money) Transaction {
	t.CostBasis = &basis
	return t
}

// GainLoss returns USDValue minus the cost basis.
func (t Transaction) GainLoss() Money { return t.USDValue.Sub(t.Basis()) }

// Age returns the time elapsed between the transaction and at.
func (t Transaction) Age(at time.Time) time.Duration { return at.Sub(t.Timestamp) }

// Date returns the UTC day of the transaction.
func (t Transaction) Date() Date { return DateOf(t.Timestamp) }

// Equal reports whether both transactions hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Timestamp.Equal(o.Timestamp) &&
		t.Kind == o.Kind &&
		t.FromAsset == o.FromAsset &&
		t.ToAsset == o.ToAsset &&
		t.FromAmount.Equal(o.FromAmount) &&
		t.ToAmount.Equal(o.ToAmount) &&
		t.USDValue.Equal(o.USDValue) &&
		t.HasCostBasis() == o.HasCostBasis() &&
		t.Basis().Equal(o.Basis())
}

// Validate checks the transaction fields and returns an error listing every
// failure, or nil.
func (t Transaction) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id is missing"))
	}
	if t.Timestamp.IsZero() {
		errs = append(errs, errors.New("timestamp is missing"))
	}
	if !t.Kind.Valid() {
		errs = append(errs, fmt.Errorf("unknown kind %d", int(t.Kind)))
	}
	if t.FromAmount.IsNegative() {
		errs = append(errs, fmt.Errorf("fromAmount must not be negative, got %s", t.FromAmount))
	}
	if t.ToAmount.IsNegative() {
		errs = append(errs, fmt.Errorf("toAmount must not be negative, got %s", t.ToAmount))
	}
	if t.USDValue.IsNegative() {
		errs = append(errs, fmt.Errorf("usdValue must not be negative, got %s", t.USDValue))
	}
	if t.Basis().IsNegative() {
		errs = append(errs, fmt.Errorf("costBasis must not be negative, got %s", t.Basis()))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidTransaction, t.ID, errors.Join(errs...))
}

// ValidateAll validates every transaction and checks that ids are unique.
func ValidateAll(txs []Transaction) error {
	var errs []error
	seen := make(map[string]int, len(txs))
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			errs = append(errs, err)
		}
		if tx.ID == "" {
			continue
		}
		if first, ok := seen[tx.ID]; ok {
			errs = append(errs, fmt.Errorf("%w %q: duplicate id, first seen at index %d, again at %d", ErrInvalidTransaction, tx.ID, first, i))
			continue
		}
		seen[tx.ID] = i
	}
	return errors.Join(errs...)
}

// MarshalJSON writes the transaction with a fixed key order. The timestamp is
// written in milliseconds since epoch.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("timestamp", t.Timestamp.UnixMilli())
	w.Append("kind", t.Kind)
	w.Append("fromAsset", t.FromAsset)
	w.Append("toAsset", t.ToAsset)
	w.Append("fromAmount", t.FromAmount)
	w.Append("toAmount", t.ToAmount)
	w.Append("usdValue", t.USDValue)
	w.Optional("costBasis", t.CostBasis)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a transaction. The kind may be given as "kind" or, for
// older exports, as "type". A missing timestamp leaves Timestamp zero so that
// Validate reports it.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID         string   `json:"id"`
		Timestamp  *int64   `json:"timestamp"`
		Kind       *Kind    `json:"kind"`
		Type       *Kind    `json:"type"`
		FromAsset  string   `json:"fromAsset"`
		ToAsset    string   `json:"toAsset"`
		FromAmount Quantity `json:"fromAmount"`
		ToAmount   Quantity `json:"toAmount"`
		USDValue   Money    `json:"usdValue"`
		CostBasis  *Money   `json:"costBasis"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	*t = Transaction{
		ID:         temp.ID,
		FromAsset:  temp.FromAsset,
		ToAsset:    temp.ToAsset,
		FromAmount: temp.FromAmount,
		ToAmount:   temp.ToAmount,
		USDValue:   temp.USDValue,
		CostBasis:  temp.CostBasis,
	}
	if temp.Timestamp != nil {
		t.Timestamp = time.UnixMilli(*temp.Timestamp).UTC()
	}
	switch {
	case temp.Kind != nil:
		t.Kind = *temp.Kind
	case temp.Type != nil:
		t.Kind = *temp.Type
	}
	return nil
}

package taxlot

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestTransaction_Validate(t *testing.T) {
	valid := trade("t1", day(0), "BTC", "USD", 100, 50)
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	bad := Transaction{USDValue: USD(-1), CostBasis: basis(-2), FromAmount: Q(-3), ToAmount: Q(-4)}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalidTransaction) {
		t.Fatalf("Validate() error = %v, want ErrInvalidTransaction", err)
	}
	for _, want := range []string{"id is missing", "timestamp is missing", "unknown kind", "fromAmount", "toAmount", "usdValue", "costBasis"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %q", err, want)
		}
	}
}

func TestValidateAll_DuplicateID(t *testing.T) {
	err := ValidateAll([]Transaction{
		trade("a", day(0), "BTC", "USD", 1, 1),
		trade("b", day(1), "BTC", "USD", 1, 1),
		trade("a", day(2), "BTC", "USD", 1, 1),
	})
	if !errors.Is(err, ErrInvalidTransaction) {
		t.Fatalf("ValidateAll() error = %v, want ErrInvalidTransaction", err)
	}
	if !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("ValidateAll() error = %q, want duplicate id", err)
	}
}

func TestTransaction_GainLoss(t *testing.T) {
	tx := trade("t1", day(0), "BTC", "USD", 100, 130)
	if got := tx.GainLoss(); !got.Equal(USD(-30)) {
		t.Errorf("GainLoss() = %v, want -30", got.Decimal())
	}
	tx.CostBasis = nil
	if got := tx.GainLoss(); !got.Equal(USD(100)) {
		t.Errorf("GainLoss() without basis = %v, want 100", got.Decimal())
	}
	if with := tx.WithCostBasis(USD(10)); !with.HasCostBasis() || tx.HasCostBasis() {
		t.Errorf("WithCostBasis() must set the basis on a copy only")
	}
}

func TestTransaction_JSON(t *testing.T) {
	tx := Transaction{
		ID:         "t1",
		Timestamp:  origin,
		Kind:       AssetCreation,
		FromAsset:  "BTC",
		ToAsset:    "USD",
		FromAmount: Q(0.5),
		ToAmount:   Q(30000),
		USDValue:   USD(30000),
		CostBasis:  basis(20000.25),
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"t1","timestamp":1735689600000,"kind":"asset-creation","fromAsset":"BTC","toAsset":"USD","fromAmount":0.5,"toAmount":30000,"usdValue":30000,"costBasis":20000.25}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}

	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(tx) {
		t.Errorf("Unmarshal() = %+v, want %+v", back, tx)
	}

	tx.CostBasis = nil
	data, _ = json.Marshal(tx)
	if strings.Contains(string(data), "costBasis") {
		t.Errorf("Marshal() = %s, want no costBasis", data)
	}
}

func TestTransaction_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"legacy type key", `{"id":"a","timestamp":1,"type":"TRADE"}`, Trade, false},
		{"kind wins over type", `{"id":"a","timestamp":1,"kind":"reward","type":"trade"}`, Reward, false},
		{"no kind", `{"id":"a","timestamp":1}`, 0, false},
		{"bad kind", `{"id":"a","timestamp":1,"kind":"gift"}`, 0, true},
		{"bad amount", `{"id":"a","timestamp":1,"kind":"trade","usdValue":"many"}`, 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var tx Transaction
			err := json.Unmarshal([]byte(tc.input), &tx)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Unmarshal() error = %v, want error %v", err, tc.wantErr)
			}
			if err == nil && tx.Kind != tc.want {
				t.Errorf("Kind = %v, want %v", tx.Kind, tc.want)
			}
		})
	}

	var tx Transaction
	if err := json.Unmarshal([]byte(`{"id":"a","kind":"trade"}`), &tx); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !tx.Timestamp.IsZero() {
		t.Errorf("missing timestamp decoded as %v, want zero", tx.Timestamp)
	}
}

package taxlot

import "github.com/shopspring/decimal"

// bracket is a marginal tax rate applying up to an income limit.
type bracket struct {
	upTo decimal.Decimal // zero means unbounded
	rate decimal.Decimal
}

// federalSingle2024 are the 2024 federal brackets of a single filer.
var federalSingle2024 = []bracket{
	{decimal.NewFromInt(11600), decimal.RequireFromString("0.10")},
	{decimal.NewFromInt(47150), decimal.RequireFromString("0.12")},
	{decimal.NewFromInt(100525), decimal.RequireFromString("0.22")},
	{decimal.NewFromInt(191950), decimal.RequireFromString("0.24")},
	{decimal.NewFromInt(243725), decimal.RequireFromString("0.32")},
	{decimal.NewFromInt(609350), decimal.RequireFromString("0.35")},
	{decimal.Zero, decimal.RequireFromString("0.37")},
}

// TaxEstimate is the federal tax due on an income.
type TaxEstimate struct {
	Income         Money
	Tax            Money
	EffectiveRate  decimal.Decimal // EffectiveRate is in percent, rounded to 2 digits.
	AfterTaxIncome Money
}

// EstimateFederalTax applies the 2024 single filer brackets to income.
// Amounts are rounded to the cent.
func EstimateFederalTax(income Money) TaxEstimate {
	tax := decimal.Zero
	remaining := income.value
	floor := decimal.Zero
	for _, b := range federalSingle2024 {
		if !remaining.IsPositive() {
			break
		}
		taxable := remaining
		if !b.upTo.IsZero() {
			taxable = decimal.Min(remaining, b.upTo.Sub(floor))
			floor = b.upTo
		}
		tax = tax.Add(taxable.Mul(b.rate))
		remaining = remaining.Sub(taxable)
	}

	estimate := TaxEstimate{
		Income:         income,
		Tax:            Money{value: tax}.Round(),
		AfterTaxIncome: Money{value: income.value.Sub(tax)}.Round(),
	}
	if income.IsPositive() {
		estimate.EffectiveRate = tax.Div(income.value).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return estimate
}

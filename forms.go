package taxlot

import (
	"fmt"
	"time"
)

// WashSaleCode is the Form 8949 adjustment code of a disallowed wash-sale loss.
const WashSaleCode = "W"

// Form8949Row is one line of Form 8949.
type Form8949Row struct {
	ID           string
	Description  string // Description is "{fromAmount} {fromAsset} → {toAmount} {toAsset}".
	DateAcquired Date
	DateSold     Date
	Proceeds     Money
	CostBasis    Money
	Code         string // Code is the adjustment code, column (f).
	Adjustment   Money  // Adjustment is the adjustment amount, column (g).
	GainLoss     Money  // GainLoss is Proceeds - CostBasis + Adjustment.
}

// Form8949Summary totals both parts of a Form 8949.
type Form8949Summary struct {
	ShortTermProceeds  Money
	ShortTermCostBasis Money
	LongTermProceeds   Money
	LongTermCostBasis  Money
}

// Form8949 lists trades split by holding period.
type Form8949 struct {
	PartI   []Form8949Row // PartI holds the short-term rows.
	PartII  []Form8949Row // PartII holds the long-term rows.
	Summary Form8949Summary
}

// CapitalGains projects the form totals into a Schedule D input.
func (f Form8949) CapitalGains() CapitalGains {
	return CapitalGains{
		ShortTermProceeds:  f.Summary.ShortTermProceeds,
		ShortTermCostBasis: f.Summary.ShortTermCostBasis,
		LongTermProceeds:   f.Summary.LongTermProceeds,
		LongTermCostBasis:  f.Summary.LongTermCostBasis,
	}
}

// GenerateForm8949 builds the Form 8949 of every trade in txs, evaluated at
// 'at'. A trade at most one year old goes to Part I, older trades to Part II.
// Rows are in chronological order. The acquisition date of a row is the trade
// date and the sale date is the evaluation date.
func GenerateForm8949(txs []Transaction, at time.Time) Form8949 {
	return buildForm8949(chronological(txs), at, nil)
}

// Form8949 builds the Form 8949 of the report's trades. Wash-sale flagged
// trades with a loss carry code W and an adjustment cancelling the loss.
func (r *Report) Form8949() Form8949 {
	return buildForm8949(r.Chronological, r.At, r.WashSales)
}

func buildForm8949(sorted []Transaction, at time.Time, washSales map[string]bool) Form8949 {
	var form Form8949
	sold := DateOf(at)
	for _, tx := range sorted {
		if tx.Kind != Trade {
			continue
		}
		row := Form8949Row{
			ID:           tx.ID,
			Description:  fmt.Sprintf("%s %s → %s %s", tx.FromAmount, tx.FromAsset, tx.ToAmount, tx.ToAsset),
			DateAcquired: tx.Date(),
			DateSold:     sold,
			Proceeds:     tx.USDValue,
			CostBasis:    tx.Basis(),
			GainLoss:     tx.GainLoss(),
		}
		if washSales[tx.ID] && row.GainLoss.IsNegative() {
			row.Code = WashSaleCode
			row.Adjustment = row.GainLoss.Neg()
			row.GainLoss = row.GainLoss.Add(row.Adjustment)
		}
		if isShortTerm(tx, at) {
			form.PartI = append(form.PartI, row)
			form.Summary.ShortTermProceeds = form.Summary.ShortTermProceeds.Add(row.Proceeds)
			form.Summary.ShortTermCostBasis = form.Summary.ShortTermCostBasis.Add(row.CostBasis)
		} else {
			form.PartII = append(form.PartII, row)
			form.Summary.LongTermProceeds = form.Summary.LongTermProceeds.Add(row.Proceeds)
			form.Summary.LongTermCostBasis = form.Summary.LongTermCostBasis.Add(row.CostBasis)
		}
	}
	return form
}

// ScheduleDLine is one holding period line of Schedule D.
type ScheduleDLine struct {
	Proceeds  Money
	CostBasis Money
	GainLoss  Money
}

// ScheduleD is the short-term and long-term summary of capital gains.
type ScheduleD struct {
	ShortTerm   ScheduleDLine
	LongTerm    ScheduleDLine
	NetGainLoss Money
}

// GenerateScheduleD projects capital gains into a Schedule D. It does not look
// at transactions.
func GenerateScheduleD(cg CapitalGains) ScheduleD {
	return ScheduleD{
		ShortTerm: ScheduleDLine{
			Proceeds:  cg.ShortTermProceeds,
			CostBasis: cg.ShortTermCostBasis,
			GainLoss:  cg.ShortTermProceeds.Sub(cg.ShortTermCostBasis),
		},
		LongTerm: ScheduleDLine{
			Proceeds:  cg.LongTermProceeds,
			CostBasis: cg.LongTermCostBasis,
			GainLoss:  cg.LongTermProceeds.Sub(cg.LongTermCostBasis),
		},
		NetGainLoss: cg.ShortTermProceeds.Add(cg.LongTermProceeds).
			Sub(cg.ShortTermCostBasis.Add(cg.LongTermCostBasis)),
	}
}

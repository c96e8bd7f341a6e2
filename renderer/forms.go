package renderer

import (
	"bytes"

	"github.com/SA-Nathan-SOLVY/taxlot"
	md "github.com/nao1215/markdown"
)

// Form8949Markdown renders both parts of a Form 8949.
func Form8949Markdown(f taxlot.Form8949) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Form 8949: Sales and Other Dispositions of Capital Assets")

	doc.H2("Part I: Short-Term")
	form8949Part(doc, f.PartI, f.Summary.ShortTermProceeds, f.Summary.ShortTermCostBasis)

	doc.H2("Part II: Long-Term")
	form8949Part(doc, f.PartII, f.Summary.LongTermProceeds, f.Summary.LongTermCostBasis)

	return doc.String()
}

func form8949Part(doc *md.Markdown, rows []taxlot.Form8949Row, proceeds, basis taxlot.Money) {
	if len(rows) == 0 {
		doc.PlainText("No transactions.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"(a) Description",
			"(b) Acquired",
			"(c) Sold",
			"(d) Proceeds",
			"(e) Cost Basis",
			"(f) Code",
			"(g) Adjustment",
			"(h) Gain or Loss",
		},
	}
	var gains taxlot.Money
	for _, row := range rows {
		adjustment := ""
		if row.Code != "" {
			adjustment = row.Adjustment.String()
		}
		table.Rows = append(table.Rows, []string{
			row.Description,
			row.DateAcquired.FormString(),
			row.DateSold.FormString(),
			row.Proceeds.String(),
			row.CostBasis.String(),
			row.Code,
			adjustment,
			row.GainLoss.SignedString(),
		})
		gains = gains.Add(row.GainLoss)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Totals"), "", "",
		md.Bold(proceeds.String()),
		md.Bold(basis.String()),
		"", "",
		md.Bold(gains.SignedString()),
	})
	doc.Table(table)
}

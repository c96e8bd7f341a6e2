package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/SA-Nathan-SOLVY/taxlot"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the gains and income summary of a report.
func SummaryMarkdown(r *taxlot.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	s := r.Summary

	doc.H1(fmt.Sprintf("Tax Summary on %s", taxlot.DateOf(r.At)))
	doc.PlainText(fmt.Sprintf("Method: %s, %d transactions.", r.Method, len(r.Chronological)))

	doc.H2("Gains and Income")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Amount"},
		Rows: [][]string{
			{"Short-Term Gains", s.ShortTermGains.SignedString()},
			{"Long-Term Gains", s.LongTermGains.SignedString()},
			{"Ordinary Income", s.Income.String()},
			{"Losses", s.Losses.String()},
			{md.Bold("Net Capital Gains"), md.Bold(s.ShortTermGains.Add(s.LongTermGains).SignedString())},
		},
	})

	if s.WashSaleCount > 0 {
		doc.H2("Wash Sales")
		var flagged []string
		for _, tx := range r.Chronological {
			if r.IsWashSale(tx.ID) {
				flagged = append(flagged, tx.ID)
			}
		}
		doc.PlainText(fmt.Sprintf("%d trades excluded from gains: %s.", s.WashSaleCount, strings.Join(flagged, ", ")))
	}

	if len(r.MissingCostBasis) > 0 {
		doc.H2("Missing Cost Basis")
		doc.PlainText("These trades count with a zero cost basis and overstate gains:")
		doc.BulletList(r.MissingCostBasis...)
	}

	return doc.String()
}

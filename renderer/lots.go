package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/SA-Nathan-SOLVY/taxlot"
	md "github.com/nao1215/markdown"
)

// LotsMarkdown renders the disposals matched to lots and the lots still open.
func LotsMarkdown(r *taxlot.LotReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Lot Matching (%s)", r.Method))

	doc.H2("Disposals")
	if len(r.Disposals) == 0 {
		doc.PlainText("No disposals.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"ID", "Date", "Asset", "Quantity", "Proceeds", "Cost Basis", "Gain or Loss", "Lots"},
		}
		for _, d := range r.Disposals {
			var lots []string
			for _, m := range d.Lots {
				lots = append(lots, fmt.Sprintf("%s (%s)", m.Acquisition, m.Quantity))
			}
			if d.Unmatched.IsPositive() {
				lots = append(lots, fmt.Sprintf("unmatched (%s)", d.Unmatched))
			}
			table.Rows = append(table.Rows, []string{
				d.ID,
				taxlot.DateOf(d.Disposed).String(),
				d.Asset,
				d.Quantity.String(),
				d.Proceeds.String(),
				d.CostBasis.String(),
				d.GainLoss().SignedString(),
				strings.Join(lots, ", "),
			})
		}
		doc.Table(table)
	}

	doc.H2("Open Lots")
	if len(r.Open) == 0 {
		doc.PlainText("No open lots.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Acquisition", "Acquired", "Quantity", "Cost"},
	}
	for _, l := range r.Open {
		table.Rows = append(table.Rows, []string{
			l.Asset,
			l.Acquisition,
			taxlot.DateOf(l.Acquired).String(),
			l.Quantity.String(),
			l.Cost.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/SA-Nathan-SOLVY/taxlot"
	md "github.com/nao1215/markdown"
)

var anomalyDescriptions = map[taxlot.Anomaly]string{
	taxlot.WashSalePattern:              "transactions on the same asset less than 30 days apart",
	taxlot.RoundTripping:                "a large trade less than 24 hours after another trade",
	taxlot.TaxLossHarvestingOpportunity: "realized losses this year are above 3,000 USD",
}

// AnomaliesMarkdown renders a list of detected anomalies.
func AnomaliesMarkdown(anomalies []taxlot.Anomaly) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Anomalies")
	if len(anomalies) == 0 {
		doc.PlainText("No anomaly detected.")
		return doc.String()
	}
	var items []string
	for _, a := range anomalies {
		items = append(items, fmt.Sprintf("%s: %s", md.Bold(string(a)), anomalyDescriptions[a]))
	}
	doc.BulletList(items...)
	return doc.String()
}

// SuggestionsMarkdown renders tax strategy suggestions.
func SuggestionsMarkdown(suggestions []taxlot.Suggestion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tax Strategy Suggestions")
	if len(suggestions) == 0 {
		doc.PlainText("Nothing to suggest.")
		return doc.String()
	}
	doc.H2("Suggestions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"Strategy", "Trades", "Urgency", "Potential Savings"},
	}
	var details []string
	for _, s := range suggestions {
		table.Rows = append(table.Rows, []string{
			string(s.Kind),
			fmt.Sprint(s.Count),
			string(s.Urgency),
			s.PotentialSavings.String(),
		})
		details = append(details, s.Description+".")
	}
	doc.Table(table)
	doc.H2("Details")
	doc.BulletList(details...)
	return doc.String()
}

// TaxEstimateMarkdown renders a federal tax estimate.
func TaxEstimateMarkdown(e taxlot.TaxEstimate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Federal Tax Estimate")
	doc.PlainText("2024 brackets, single filer.")
	doc.H2("Estimate")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Item", "Amount"},
		Rows: [][]string{
			{"Income", e.Income.String()},
			{"Federal Tax", e.Tax.String()},
			{"Effective Rate", e.EffectiveRate.StringFixed(2) + "%"},
			{md.Bold("After-Tax Income"), md.Bold(e.AfterTaxIncome.String())},
		},
	})
	return doc.String()
}

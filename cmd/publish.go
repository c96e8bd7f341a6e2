package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"
	"time"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/google/subcommands"
)

// publishedReports are the reports generated for every tax year.
var publishedReports = []string{"summary", "form8949", "scheduled"}

// reportTask is the data available to the front matter template.
type reportTask struct {
	Year   int
	Report string
	At     taxlot.Date
}

type publishCmd struct {
	evalFlags
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates the reports of every tax year" }

func (*publishCmd) Usage() string {
	return `tlc publish [-o <dir>] [-frontmatter <file>] [-method <method>] [-resolve]

  Generates the summary, Form 8949 and Schedule D of every tax year of the
  ledger and saves them as <dir>/<report>/<year>.md. A tax year reports its
  own transactions evaluated at December 31, or at the -at date when earlier.
  Wash sales are detected over the whole ledger.

  The front matter template receives .Year, .Report and .At.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.evalFlags.SetFlags(f)
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	at, err := evaluationTime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing evaluation date: %v\n", err)
		return subcommands.ExitUsageError
	}
	method, txs, status := c.load()
	if status != subcommands.ExitSuccess {
		return status
	}

	years := generateYears(txs, at)
	if len(years) == 0 {
		logger.Info("ledger is empty, nothing to publish")
		return subcommands.ExitSuccess
	}

	for _, year := range years {
		yearAt := endOfYear(year)
		if at.Before(yearAt) {
			yearAt = at
		}
		// The whole ledger is evaluated so that a trade of December is flagged
		// by a disposal in January.
		r, status := checkReport(taxlot.EvaluatePeriod(txs, method, startOfYear(year), yearAt))
		if status != subcommands.ExitSuccess {
			return status
		}

		for _, report := range publishedReports {
			var md string
			switch report {
			case "summary":
				md = renderer.SummaryMarkdown(r)
			case "form8949":
				md = renderer.Form8949Markdown(r.Form8949())
			case "scheduled":
				md = renderer.RenderScheduleD(renderer.NewScheduleD(year, r.ScheduleD()))
			}

			task := reportTask{Year: year, Report: report, At: taxlot.DateOf(yearAt)}
			if frontMatterTpl != nil {
				fm, err := renderFrontMatter(frontMatterTpl, task)
				if err != nil {
					fmt.Fprintf(os.Stderr, "failed to render front matter for %s report %d: %v\n", report, year, err)
					continue
				}
				md = fm + "\n" + md
			}

			fullPath := filepath.Join(c.outputDir, report, strconv.Itoa(year)+".md")
			if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create output directory for file %s: %v\n", fullPath, err)
				return subcommands.ExitFailure
			}
			if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", fullPath, err)
				return subcommands.ExitFailure
			}
			logger.Info("report generated", "report", report, "year", year, "file", fullPath)
		}
	}
	return subcommands.ExitSuccess
}

// generateYears returns the tax years from the first transaction to the last
// one, ignoring transactions after at.
func generateYears(txs []taxlot.Transaction, at time.Time) []int {
	first, last := 0, 0
	for _, tx := range txs {
		if tx.Timestamp.After(at) {
			continue
		}
		y := tx.Timestamp.UTC().Year()
		if first == 0 || y < first {
			first = y
		}
		if y > last {
			last = y
		}
	}
	if first == 0 {
		return nil
	}
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}

// startOfYear returns the first instant of the year in UTC.
func startOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// endOfYear returns the last instant of the year in UTC.
func endOfYear(year int) time.Time {
	return startOfYear(year + 1).Add(-time.Nanosecond)
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}

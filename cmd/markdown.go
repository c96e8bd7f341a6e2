package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// emit writes a markdown report to stdout: as HTML with -html, styled when
// stdout is a terminal, and as plain markdown otherwise.
func emit(md string) subcommands.ExitStatus {
	if *htmlOutput {
		html, err := renderer.HTML(md)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(stdout, html)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it as is when stdout
// is not a terminal.
func printMarkdown(md string) {
	if !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		logger.Debug("cannot create the terminal renderer", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("cannot render markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

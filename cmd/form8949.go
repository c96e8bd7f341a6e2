package cmd

import (
	"context"
	"flag"

	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/google/subcommands"
)

type form8949Cmd struct {
	evalFlags
}

func (*form8949Cmd) Name() string { return "form8949" }
func (*form8949Cmd) Synopsis() string {
	return "display Form 8949 rows of sales and other dispositions"
}
func (*form8949Cmd) Usage() string {
	return `tlc form8949 [-method <method>] [-resolve]

  Displays one Form 8949 row per trade, split into short-term (Part I) and
  long-term (Part II) holdings. Wash sale losses carry code W and are
  disallowed.
`
}

func (c *form8949Cmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	return emit(renderer.Form8949Markdown(r.Form8949()))
}

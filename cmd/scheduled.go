package cmd

import (
	"context"
	"flag"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/SA-Nathan-SOLVY/taxlot/renderer"
	"github.com/google/subcommands"
)

type scheduleDCmd struct {
	evalFlags
}

func (*scheduleDCmd) Name() string     { return "scheduled" }
func (*scheduleDCmd) Synopsis() string { return "display the Schedule D totals" }
func (*scheduleDCmd) Usage() string {
	return `tlc scheduled [-method <method>] [-resolve]

  Displays the Schedule D lines: short-term and long-term proceeds, cost basis
  and gain or loss, and the net capital gain or loss.
`
}

func (c *scheduleDCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	year := taxlot.DateOf(r.At).Year()
	return emit(renderer.RenderScheduleD(renderer.NewScheduleD(year, r.ScheduleD())))
}

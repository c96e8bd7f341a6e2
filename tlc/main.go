// Command tlc computes tax lots, capital gains and tax forms from a ledger of
// crypto transactions.
//
// Unknown subcommands run the tlc-<subcommand> binary found in PATH, if any.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/SA-Nathan-SOLVY/taxlot/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Completes the command line and exits when run by the shell completion.
	completion(commander, flag.CommandLine).Complete("tlc")

	flag.Parse()
	cmd.InitLogger(os.Stderr)

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

package main

import (
	"flag"

	"github.com/SA-Nathan-SOLVY/taxlot"
	"github.com/SA-Nathan-SOLVY/taxlot/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line of every registered subcommand for
// shell completion. top holds the global flags.
func completion(commander *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(top),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f)}
		switch c.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		case "help":
			var names []string
			commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
				names = append(names, c.Name())
			})
			sub.Args = predict.Set(names)
		}
		root.Sub[c.Name()] = sub
	})
	return root
}

// flagPredictors predicts the values of the flags in f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		predictors[fl.Name] = predictFlag(fl)
	})
	return predictors
}

func predictFlag(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "method":
		var methods []string
		for _, m := range taxlot.Methods() {
			methods = append(methods, m.String())
		}
		return predict.Set(methods)
	case "ledger-file":
		return predict.Files("*.json*")
	case "o", "frontmatter":
		return predict.Files("*")
	}
	return predict.Something
}

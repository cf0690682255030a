// Command fbk is a personal finance ledger: it records income, expense
// and investment transactions in a flat file and computes simple
// analytics over them.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/ebrunet/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion, enabled with 'COMP_INSTALL=1 fbk'. When the shell
	// asks for completions this call never returns.
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion(name string) {
	filters := map[string]complete.Predictor{}
	sub := map[string]*complete.Command{}
	for _, cmdName := range []string{"income", "expense", "investment", "tx", "summary",
		"insights", "trend", "forecast", "goal", "export", "import", "clear",
		"seed", "fmt", "topic", "help", "flags", "commands"} {
		sub[cmdName] = &complete.Command{Flags: filters}
	}
	sub["import"] = &complete.Command{Flags: map[string]complete.Predictor{
		"i": predict.Files("*.csv"),
	}}
	sub["export"] = &complete.Command{Flags: map[string]complete.Predictor{
		"o": predict.Files("*.csv"),
	}}

	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"currency":    predict.Nothing,
		},
	}
	root.Complete(name)
}

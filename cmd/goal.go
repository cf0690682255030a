package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrunet/finbook"
	"github.com/ebrunet/finbook/renderer"
	"github.com/google/subcommands"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	view viewFlags
	goal float64
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "evaluate a savings goal against the ledger" }
func (*goalCmd) Usage() string {
	return `fbk goal [-g <percent>] [-kind <kinds>] [-category <categories>] [-s <start>] [-d <end>]

  Compares the achieved savings percentage of the filtered view with a
  goal expressed in percent of income.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
	f.Float64Var(&c.goal, "g", 20, "Savings goal in percent of income.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goal < 0 || c.goal > 100 {
		fmt.Fprintln(os.Stderr, "Error: the goal must be between 0 and 100 percent.")
		return subcommands.ExitUsageError
	}

	view, err := c.view.view()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	stats := finbook.NewStatistics(view)
	report := finbook.EvaluateSavingsGoal(stats, finbook.Percent(c.goal))
	printMarkdown(renderer.Goal(report))
	return subcommands.ExitSuccess
}

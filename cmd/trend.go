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

// trendCmd holds the flags for the 'trend' subcommand.
type trendCmd struct {
	view viewFlags
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display monthly totals per kind" }
func (*trendCmd) Usage() string {
	return `fbk trend [-kind <kinds>] [-category <categories>] [-s <start>] [-d <end>]

  Groups the filtered view by calendar month and displays one row per
  month with the income, expense and investment totals.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.view.view()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	rows := finbook.MonthlyTrend(view)
	printMarkdown(renderer.Trend(rows, *currency))
	return subcommands.ExitSuccess
}

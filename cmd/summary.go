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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	view viewFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display aggregate statistics of the ledger" }
func (*summaryCmd) Usage() string {
	return `fbk summary [-kind <kinds>] [-category <categories>] [-s <start>] [-d <end>]

  Displays totals per kind, the net balance and the savings percentage of
  the filtered view.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.view.view()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	stats := finbook.NewStatistics(view)
	printMarkdown(renderer.Summary(stats, *currency))
	return subcommands.ExitSuccess
}

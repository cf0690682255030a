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

// insightsCmd holds the flags for the 'insights' subcommand.
type insightsCmd struct {
	view viewFlags
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display category analytics of the ledger" }
func (*insightsCmd) Usage() string {
	return `fbk insights [-kind <kinds>] [-category <categories>] [-s <start>] [-d <end>]

  Displays the highest spending category, the most frequent category and
  the per-category expense totals of the filtered view.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.view.view()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	insights := finbook.NewCategoryInsights(view)
	printMarkdown(renderer.Insights(insights, *currency))
	return subcommands.ExitSuccess
}

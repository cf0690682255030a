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

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	view viewFlags
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project next month's income and expense" }
func (*forecastCmd) Usage() string {
	return `fbk forecast [-kind <kinds>] [-category <categories>] [-s <start>] [-d <end>]

  Fits a linear trend over the monthly totals of the filtered view and
  projects the income, expense and balance of the next month.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.view.view()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	trend := finbook.MonthlyTrend(view)
	forecast := finbook.NewForecast(trend)
	printMarkdown(renderer.Forecast(forecast, *currency))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ebrunet/finbook"
	"github.com/google/subcommands"
)

// exportCmd writes the filtered view as CSV, to stdout or to a file.
type exportCmd struct {
	view   viewFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions as CSV" }
func (*exportCmd) Usage() string {
	return `fbk export [-o <file>] [-kind <kinds>] [-category <categories>] [-s <start>] [-d <end>]

  Writes the filtered view as CSV with a header row. Without -o the CSV
  goes to stdout. The output round-trips through 'fbk import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.view.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file; stdout when empty.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.view.view()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := finbook.ExportCSV(w, view); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Exported %d transactions to %q.\n", len(view), c.output)
	}
	return subcommands.ExitSuccess
}

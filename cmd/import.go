package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ebrunet/finbook"
	"github.com/google/subcommands"
)

// importCmd appends transactions read from a CSV file to the ledger.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from CSV" }
func (*importCmd) Usage() string {
	return `fbk import -i <file>

  Reads transactions from a CSV file with the columns date, amount,
  category, note and type, and appends them to the ledger. Rows with an
  unknown type are skipped with a warning.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "CSV file to import; stdin when empty.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	txs, err := finbook.ImportCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(txs) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to import.")
		return subcommands.ExitSuccess
	}

	if err := openStore().Append(txs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions.\n", len(txs))
	return subcommands.ExitSuccess
}

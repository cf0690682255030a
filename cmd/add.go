package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ebrunet/finbook"
	"github.com/google/subcommands"
)

// addCmd appends one transaction of a fixed kind to the ledger. The same
// implementation backs the income, expense and investment subcommands.
type addCmd struct {
	kind     finbook.Kind
	date     string
	amount   float64
	category string
	note     string
}

func newAddCmd(kind finbook.Kind) *addCmd { return &addCmd{kind: kind} }

func (c *addCmd) Name() string { return c.kind.String() }
func (c *addCmd) Synopsis() string {
	return fmt.Sprintf("record a new %s transaction", c.kind)
}
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`fbk %s -a <amount> [-d <date>] [-c <category>] [-n <note>]

  Appends one %s transaction to the ledger. The amount must be a positive
  number; the date defaults to today.
`, c.kind, c.kind)
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date of the transaction.")
	f.Float64Var(&c.amount, "a", 0, "Amount of the transaction, must be positive.")
	f.StringVar(&c.category, "c", "General", "Category name; any new string becomes a new category.")
	f.StringVar(&c.note, "n", "", "Optional free-text note.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := finbook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := finbook.Transaction{
		Date:     day,
		Amount:   finbook.M(c.amount),
		Category: strings.TrimSpace(c.category),
		Note:     strings.TrimSpace(c.note),
		Kind:     c.kind,
	}
	if err := openStore().Append(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s: %s (%s)\n", c.kind, tx.Amount.Display(*currency), tx.Category)
	return subcommands.ExitSuccess
}

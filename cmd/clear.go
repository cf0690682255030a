package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// clearCmd erases every transaction. Destructive, so it requires an
// explicit -yes.
type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all transactions from the ledger" }
func (*clearCmd) Usage() string {
	return `fbk clear -yes

  Removes every transaction from the ledger. This cannot be undone, so
  the -yes flag is required.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the removal of all transactions.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to clear the ledger without -yes.")
		return subcommands.ExitUsageError
	}

	if err := openStore().Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("All transactions cleared.")
	return subcommands.ExitSuccess
}

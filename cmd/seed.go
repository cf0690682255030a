package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// seedCmd writes a small sample ledger so the reports have something to
// show on a fresh install.
type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "create a sample ledger for a fresh start" }
func (*seedCmd) Usage() string {
	return `fbk seed

  Writes a few illustrative transactions, but only when no ledger file
  exists yet. An existing ledger is never touched.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	seeded, err := store.Seed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if !seeded {
		fmt.Fprintf(os.Stderr, "Ledger %q already exists, nothing seeded.\n", store.Path())
		return subcommands.ExitSuccess
	}
	fmt.Printf("Seeded sample transactions into %q.\n", store.Path())
	return subcommands.ExitSuccess
}

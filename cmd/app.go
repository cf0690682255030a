// Package cmd implements the CLI application to manage a finance ledger.
package cmd

import (
	"flag"

	"github.com/ebrunet/finbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(newAddCmd(finbook.Income), "transactions")
	c.Register(newAddCmd(finbook.Expense), "transactions")
	c.Register(newAddCmd(finbook.Investment), "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&clearCmd{}, "transactions")
	c.Register(&seedCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&forecastCmd{}, "reports")
	c.Register(&goalCmd{}, "reports")

	c.Register(&exportCmd{}, "exchange")
	c.Register(&importCmd{}, "exchange")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var currency = flag.String("currency", "", "Optional ISO-4217 code used to format amounts for display")

// openStore opens the app ledger store. The file itself is only touched by
// the store operations.
func openStore() *finbook.Store {
	return finbook.NewStore(*ledgerFile)
}

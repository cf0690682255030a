package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/ebrunet/finbook"
)

// viewFlags holds the filter flags shared by the listing and reporting
// commands. Unset flags fall back to the ledger's default predicate: every
// kind and category present, over the full date span observed.
type viewFlags struct {
	kinds      string
	categories string
	start      string
	end        string
}

func (v *viewFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&v.kinds, "kind", "", "Comma-separated kinds to keep (income, expense, investment).")
	f.StringVar(&v.categories, "category", "", "Comma-separated categories to keep.")
	f.StringVar(&v.start, "s", "", "Start date of the range, inclusive.")
	f.StringVar(&v.end, "d", "", "End date of the range, inclusive.")
}

// view loads the ledger and computes the filtered view the report will run
// on.
func (v *viewFlags) view() ([]finbook.Transaction, error) {
	ledger := openStore().Load()
	filter := finbook.DefaultFilter(ledger)

	if v.kinds != "" {
		var kinds []finbook.Kind
		for _, s := range strings.Split(v.kinds, ",") {
			k, err := finbook.ParseKind(strings.TrimSpace(s))
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
		filter = filter.WithKinds(kinds...)
	}

	if v.categories != "" {
		var categories []string
		for _, c := range strings.Split(v.categories, ",") {
			categories = append(categories, strings.TrimSpace(c))
		}
		filter = filter.WithCategories(categories...)
	}

	if v.start != "" || v.end != "" {
		from, to := filter.Dates.From, filter.Dates.To
		if v.start != "" {
			parsed, err := finbook.ParseDate(v.start)
			if err != nil {
				return nil, fmt.Errorf("invalid start date: %w", err)
			}
			from = parsed
		}
		if v.end != "" {
			parsed, err := finbook.ParseDate(v.end)
			if err != nil {
				return nil, fmt.Errorf("invalid end date: %w", err)
			}
			to = parsed
		}
		filter = filter.WithDates(from, to)
	}

	return filter.Apply(ledger), nil
}

package finbook

import "slices"

// Filter selects the working subset of the ledger handed to every
// downstream computation: kind set, category set and inclusive date range
// are combined with AND.
//
// The zero value selects nothing; use DefaultFilter for the "no filters
// applied" predicate.
type Filter struct {
	Kinds      map[Kind]bool
	Categories map[string]bool
	Dates      Range
}

// DefaultFilter returns the predicate that selects the whole ledger: every
// kind and category present, over the full date span observed. On an empty
// ledger the domain degenerates to no kinds, no categories and a zero date
// range, so the filtered view is empty.
func DefaultFilter(l *Ledger) Filter {
	f := Filter{
		Kinds:      make(map[Kind]bool),
		Categories: make(map[string]bool),
	}
	for k := range l.AllKinds() {
		f.Kinds[k] = true
	}
	for c := range l.AllCategories() {
		f.Categories[c] = true
	}
	f.Dates, _ = l.DateSpan()
	return f
}

// Match reports whether the transaction satisfies the predicate. A zero
// (unparseable) date never matches a date range: filters are
// date-dependent, and such records are excluded from them.
func (f Filter) Match(tx Transaction) bool {
	if !f.Kinds[tx.Kind] {
		return false
	}
	if !f.Categories[tx.Category] {
		return false
	}
	return f.Dates.Contains(tx.Date)
}

// Apply computes the Filtered View: a derived, non-owning subset of the
// ledger in insertion order. It is recomputed on every call and never
// persisted.
func (f Filter) Apply(l *Ledger) []Transaction {
	var view []Transaction
	for _, tx := range l.Transactions() {
		if f.Match(tx) {
			view = append(view, tx)
		}
	}
	return view
}

// WithKinds restricts the filter to the given kinds.
func (f Filter) WithKinds(kinds ...Kind) Filter {
	f.Kinds = make(map[Kind]bool)
	for _, k := range kinds {
		f.Kinds[k] = true
	}
	return f
}

// WithCategories restricts the filter to the given categories.
func (f Filter) WithCategories(categories ...string) Filter {
	f.Categories = make(map[string]bool)
	for _, c := range categories {
		f.Categories[c] = true
	}
	return f
}

// WithDates restricts the filter to the given inclusive date range.
func (f Filter) WithDates(from, to Date) Filter {
	f.Dates = NewRange(from, to)
	return f
}

// SelectedKinds returns the kinds of the filter in canonical order.
func (f Filter) SelectedKinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if f.Kinds[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// SelectedCategories returns the categories of the filter in lexicographic order.
func (f Filter) SelectedCategories() []string {
	var categories []string
	for c := range f.Categories {
		if f.Categories[c] {
			categories = append(categories, c)
		}
	}
	slices.Sort(categories)
	return categories
}

package finbook

import (
	"slices"
	"testing"
)

func testLedger() *Ledger {
	return NewLedger(
		NewIncome(day("2025-01-01"), M(5000), "Salary", ""),
		NewExpense(day("2025-01-05"), M(1200), "Rent", ""),
		NewExpense(day("2025-02-10"), M(150), "Groceries", ""),
		NewInvestment(day("2025-02-20"), M(300), "Stocks", ""),
	)
}

func TestDefaultFilter_SelectsEverything(t *testing.T) {
	ledger := testLedger()
	view := DefaultFilter(ledger).Apply(ledger)
	if len(view) != ledger.Len() {
		t.Errorf("default filter selected %d of %d transactions", len(view), ledger.Len())
	}
}

func TestDefaultFilter_EmptyLedger(t *testing.T) {
	ledger := NewLedger()
	f := DefaultFilter(ledger)
	if got := f.Apply(ledger); len(got) != 0 {
		t.Errorf("default filter on an empty ledger selected %d transactions", len(got))
	}
	if got := f.SelectedKinds(); len(got) != 0 {
		t.Errorf("SelectedKinds() = %v, want none", got)
	}
	if got := f.SelectedCategories(); len(got) != 0 {
		t.Errorf("SelectedCategories() = %v, want none", got)
	}
}

func TestFilter_WithKinds(t *testing.T) {
	ledger := testLedger()
	view := DefaultFilter(ledger).WithKinds(Expense).Apply(ledger)
	if len(view) != 2 {
		t.Fatalf("expense view has %d transactions, want 2", len(view))
	}
	for _, tx := range view {
		if tx.Kind != Expense {
			t.Errorf("expense view contains a %s transaction", tx.Kind)
		}
	}
}

func TestFilter_WithCategories(t *testing.T) {
	ledger := testLedger()
	view := DefaultFilter(ledger).WithCategories("Rent", "Stocks").Apply(ledger)
	var got []string
	for _, tx := range view {
		got = append(got, tx.Category)
	}
	want := []string{"Rent", "Stocks"}
	if !slices.Equal(got, want) {
		t.Errorf("category view = %v, want %v", got, want)
	}
}

func TestFilter_WithDates(t *testing.T) {
	ledger := testLedger()
	view := DefaultFilter(ledger).WithDates(day("2025-01-05"), day("2025-02-10")).Apply(ledger)
	if len(view) != 2 {
		t.Fatalf("date view has %d transactions, want 2", len(view))
	}
	// Both bounds are inclusive.
	if view[0].Category != "Rent" || view[1].Category != "Groceries" {
		t.Errorf("date view = %+v", view)
	}
}

func TestFilter_Combined(t *testing.T) {
	ledger := testLedger()
	view := DefaultFilter(ledger).
		WithKinds(Expense).
		WithDates(day("2025-02-01"), day("2025-02-28")).
		Apply(ledger)
	if len(view) != 1 || view[0].Category != "Groceries" {
		t.Errorf("combined filters = %+v, want the February groceries only", view)
	}
}

// TestFilter_UndatedExcludedFromRange checks that a record whose stored
// date could not be parsed never matches a real date range.
func TestFilter_UndatedExcludedFromRange(t *testing.T) {
	ledger := testLedger()
	ledger.Append(NewExpense(Date{}, M(10), "Groceries", ""))

	view := DefaultFilter(ledger).Apply(ledger)
	for _, tx := range view {
		if tx.Date.IsZero() {
			t.Error("an undated transaction matched the default date range")
		}
	}
}

package finbook

import (
	"maps"
	"slices"
)

// Statistics summarizes a filtered view of the ledger.
type Statistics struct {
	TotalIncome     Money // sum of income amounts, zero if none
	TotalExpense    Money // sum of expense amounts, zero if none
	TotalInvestment Money // sum of investment amounts, zero if none

	// NetBalance is income minus expense minus investment.
	NetBalance Money

	// SavingsPercentage is (income-expense)/income expressed in percent,
	// zero whenever there is no income.
	SavingsPercentage Percent
}

// NewStatistics computes aggregate statistics over the given view.
func NewStatistics(view []Transaction) Statistics {
	var s Statistics
	for _, tx := range view {
		switch tx.Kind {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case Expense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
		case Investment:
			s.TotalInvestment = s.TotalInvestment.Add(tx.Amount)
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpense).Sub(s.TotalInvestment)
	if s.TotalIncome.IsPositive() {
		savings := s.TotalIncome.Sub(s.TotalExpense)
		s.SavingsPercentage = Percent(savings.AsFloat() / s.TotalIncome.AsFloat() * 100)
	}
	return s
}

// CategoryInsights holds the category analytics of a filtered view. Each
// field is computed independently and degrades to its zero value on an
// empty view.
type CategoryInsights struct {
	// CategoryTotals maps category to summed amount, restricted to the
	// expense kind only.
	CategoryTotals map[string]Money

	// HighestSpendingCategory is the category with the largest expense
	// total, "" when there are no expenses. Ties go to the
	// lexicographically smallest category name.
	HighestSpendingCategory string

	// MostFrequentCategory is the category with the most transactions
	// across all kinds, "" on an empty view. Same tie-break rule.
	MostFrequentCategory string

	// UniqueCategories lists the distinct category strings across all
	// kinds, in lexicographic order.
	UniqueCategories []string
}

// NewCategoryInsights computes the category analytics over the given view.
func NewCategoryInsights(view []Transaction) CategoryInsights {
	insights := CategoryInsights{CategoryTotals: make(map[string]Money)}

	counts := make(map[string]int)
	for _, tx := range view {
		counts[tx.Category]++
		if tx.Kind == Expense {
			insights.CategoryTotals[tx.Category] = insights.CategoryTotals[tx.Category].Add(tx.Amount)
		}
	}

	insights.UniqueCategories = slices.Collect(maps.Keys(counts))
	slices.Sort(insights.UniqueCategories)

	// Scanning categories in lexicographic order with a strict comparison
	// makes the smallest name win ties deterministically.
	totalCategories := slices.Collect(maps.Keys(insights.CategoryTotals))
	slices.Sort(totalCategories)
	var best Money
	for _, category := range totalCategories {
		if total := insights.CategoryTotals[category]; total.GreaterThan(best) || insights.HighestSpendingCategory == "" {
			insights.HighestSpendingCategory = category
			best = total
		}
	}

	bestCount := 0
	for _, category := range insights.UniqueCategories {
		if counts[category] > bestCount {
			insights.MostFrequentCategory = category
			bestCount = counts[category]
		}
	}

	return insights
}

// Package renderer turns the finbook analytics outputs into markdown
// reports. It is a pure rendering layer: it never touches the store.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/ebrunet/finbook"
	md "github.com/nao1215/markdown"
)

// Transactions renders a view as a markdown table, one row per transaction
// in insertion order. The currency code only affects formatting and may be
// empty.
func Transactions(view []finbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(view) == 0 {
		doc.PlainText("No transactions yet. Record your first one with `fbk income` or `fbk expense`.")
		return doc.String()
	}

	rows := make([][]string, 0, len(view))
	for _, tx := range view {
		date := tx.Date.String()
		if tx.Date.IsZero() {
			date = "—"
		}
		rows = append(rows, []string{
			date,
			tx.Kind.String(),
			tx.Amount.Display(currency),
			tx.Category,
			tx.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Kind", "Amount", "Category", "Note"},
		Rows:   rows,
	})
	return doc.String()
}

// Summary renders the aggregate statistics of a view.
func Summary(s finbook.Statistics, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary Statistics")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Income", s.TotalIncome.Display(currency)},
			{"Total Expense", s.TotalExpense.Display(currency)},
			{"Total Investment", s.TotalInvestment.Display(currency)},
			{"Net Balance", s.NetBalance.Display(currency)},
			{"Savings", s.SavingsPercentage.String()},
		},
	})
	return doc.String()
}

// Insights renders the category analytics of a view.
func Insights(i finbook.CategoryInsights, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Category Insights")
	doc.PlainText(fmt.Sprintf("Highest spending category: %s", orDash(i.HighestSpendingCategory)))
	doc.PlainText(fmt.Sprintf("Most frequent category: %s", orDash(i.MostFrequentCategory)))

	if len(i.CategoryTotals) > 0 {
		doc.H2("Expense totals by category")
		rows := make([][]string, 0, len(i.CategoryTotals))
		for _, category := range i.UniqueCategories {
			total, ok := i.CategoryTotals[category]
			if !ok {
				continue
			}
			rows = append(rows, []string{category, total.Display(currency)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Total"},
			Rows:   rows,
		})
	}

	if len(i.UniqueCategories) > 0 {
		doc.H2("Categories")
		for _, category := range i.UniqueCategories {
			doc.PlainText("- " + category)
		}
	}
	return doc.String()
}

// Trend renders the monthly buckets as a table, one row per month.
func Trend(trend []finbook.MonthlyBucket, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Trend")
	if len(trend) == 0 {
		doc.PlainText("No dated transactions to bucket.")
		return doc.String()
	}

	rows := make([][]string, 0, len(trend))
	for _, bucket := range trend {
		rows = append(rows, []string{
			bucket.Month.String(),
			bucket.Amount(finbook.Income).Display(currency),
			bucket.Amount(finbook.Expense).Display(currency),
			bucket.Amount(finbook.Investment).Display(currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expense", "Investment"},
		Rows:   rows,
	})
	return doc.String()
}

// Forecast renders the next-month projection.
func Forecast(f finbook.Forecast, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Next Month Forecast")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Projection"},
		Rows: [][]string{
			{"Income", f.Income.Display(currency)},
			{"Expense", f.Expense.Display(currency)},
			{"Balance", f.Balance.Display(currency)},
		},
	})
	doc.PlainText("Linear trend over monthly totals; not a serious time-series model.")
	return doc.String()
}

// Goal renders a savings goal evaluation.
func Goal(r finbook.GoalReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Goal")
	if r.Verdict == finbook.GoalNoIncome {
		doc.PlainText("No income recorded yet, so the goal cannot be evaluated.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Goal: %s of income, actual savings: %s.", r.Goal, r.Actual))
	switch r.Verdict {
	case finbook.GoalWellAbove:
		doc.PlainText(fmt.Sprintf("Amazing! You're well above your goal by %s.", r.Delta))
	case finbook.GoalMet:
		doc.PlainText(fmt.Sprintf("Great job, you've met your goal by %s.", r.Delta))
	case finbook.GoalFarUnder:
		doc.PlainText(fmt.Sprintf("Significant shortfall: increase savings by %s.", -r.Delta))
	default:
		doc.PlainText(fmt.Sprintf("You're under the goal by %s. Try reducing expenses.", -r.Delta))
	}
	return doc.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

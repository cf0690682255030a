package finbook

import "testing"

func trendOf(t *testing.T, view ...Transaction) []MonthlyBucket {
	t.Helper()
	return MonthlyTrend(view)
}

// A clean linear series extrapolates to the next point on the line.
func TestNewForecast_LinearSeries(t *testing.T) {
	trend := trendOf(t,
		NewExpense(day("2025-01-15"), M(100), "Rent", ""),
		NewExpense(day("2025-02-15"), M(200), "Rent", ""),
		NewExpense(day("2025-03-15"), M(300), "Rent", ""),
	)

	f := NewForecast(trend)
	if !f.Expense.Equal(M(400)) {
		t.Errorf("Expense forecast = %s, want 400.00", f.Expense)
	}
	if !f.Income.IsZero() {
		t.Errorf("Income forecast = %s, want 0.00", f.Income)
	}
	if !f.Balance.Equal(M(-400)) {
		t.Errorf("Balance forecast = %s, want -400.00", f.Balance)
	}
}

// With a single month of history there is no trend to fit: the forecast is
// that month's totals.
func TestNewForecast_SingleMonth(t *testing.T) {
	trend := trendOf(t,
		NewIncome(day("2025-01-01"), M(5000), "Salary", ""),
		NewExpense(day("2025-01-15"), M(1200), "Rent", ""),
	)

	f := NewForecast(trend)
	if !f.Income.Equal(M(5000)) {
		t.Errorf("Income forecast = %s, want 5000.00", f.Income)
	}
	if !f.Expense.Equal(M(1200)) {
		t.Errorf("Expense forecast = %s, want 1200.00", f.Expense)
	}
	if !f.Balance.Equal(M(3800)) {
		t.Errorf("Balance forecast = %s, want 3800.00", f.Balance)
	}
}

func TestNewForecast_Empty(t *testing.T) {
	f := NewForecast(nil)
	if !f.Income.IsZero() || !f.Expense.IsZero() || !f.Balance.IsZero() {
		t.Errorf("empty trend should forecast zero, got %+v", f)
	}
}

// A kind missing from some months counts as zero there, it is not
// interpolated away.
func TestNewForecast_MissingMonthsCountAsZero(t *testing.T) {
	// Income exists in January and March only; February contributes a zero
	// income point because an expense keeps the month in the trend.
	trend := trendOf(t,
		NewIncome(day("2025-01-01"), M(100), "Salary", ""),
		NewExpense(day("2025-02-01"), M(10), "Rent", ""),
		NewIncome(day("2025-03-01"), M(100), "Salary", ""),
	)
	if len(trend) != 3 {
		t.Fatalf("trend has %d rows, want 3", len(trend))
	}

	// The income series is 100, 0, 100: a flat fit predicting its mean.
	f := NewForecast(trend)
	if !f.Income.Equal(M(67)) {
		t.Errorf("Income forecast = %s, want 67.00", f.Income)
	}
}

func TestLinearFit(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		slope     float64
		intercept float64
	}{
		{"ascending", []float64{100, 200, 300}, 100, 100},
		{"flat", []float64{50, 50, 50}, 0, 50},
		{"single point", []float64{42}, 0, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, intercept := linearFit(tt.values)
			if slope != tt.slope || intercept != tt.intercept {
				t.Errorf("linearFit(%v) = (%v, %v), want (%v, %v)",
					tt.values, slope, intercept, tt.slope, tt.intercept)
			}
		})
	}
}

package finbook

import "github.com/shopspring/decimal"

// Forecast projects next month's income and expense one period ahead of
// the monthly trend. It is a single-feature linear extrapolation: no
// confidence interval, no seasonality, no outlier handling.
type Forecast struct {
	Income  Money
	Expense Money

	// Balance is the income forecast minus the expense forecast.
	Balance Money
}

// NewForecast computes the forecast from the monthly trend rows, which must
// be ordered chronologically (as MonthlyTrend returns them). Investment is
// deliberately not forecast.
func NewForecast(trend []MonthlyBucket) Forecast {
	income := forecastKind(trend, Income)
	expense := forecastKind(trend, Expense)
	return Forecast{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// forecastKind extrapolates one kind's monthly totals one month ahead.
//
// With fewer than 2 monthly data points there is no trend to fit: the
// forecast degenerates to the sum of whatever amounts exist. With 2 or
// more, an ordinary-least-squares line over the zero-based month index is
// evaluated at the next index, rounded to an integral unit of currency.
func forecastKind(trend []MonthlyBucket, k Kind) Money {
	if len(trend) < 2 {
		var sum Money
		for _, row := range trend {
			sum = sum.Add(row.Amount(k))
		}
		return sum
	}

	// Months without a transaction of this kind contribute a zero point,
	// so the index keeps its calendar meaning across kinds.
	values := make([]float64, len(trend))
	for i, row := range trend {
		values[i] = row.Amount(k).AsFloat()
	}
	slope, intercept := linearFit(values)
	predicted := slope*float64(len(values)) + intercept
	return MD(decimal.NewFromFloat(predicted)).Round()
}

// linearFit computes the ordinary-least-squares line y = slope*x +
// intercept for y-values indexed by x = 0, 1, 2, ...
func linearFit(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

package finbook

import (
	"slices"
	"time"
)

// Month identifies a calendar month: a date with the day truncated away.
type Month struct {
	y int
	m time.Month
}

// MonthOf returns the calendar month containing the given date.
func MonthOf(d Date) Month { return Month{y: d.Year(), m: d.Month()} }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// First returns the first day of the month.
func (m Month) First() Date { return NewDate(m.y, m.m, 1) }

// String formats the month as "2006-01".
func (m Month) String() string { return m.First().Format("2006-01") }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// MonthlyBucket is one row of the monthly trend: a calendar month with the
// amount summed per kind. Buckets are ephemeral, recomputed per request.
type MonthlyBucket struct {
	Month   Month
	Amounts map[Kind]Money
}

// Amount returns the summed amount for the kind, zero when the month has no
// transaction of that kind.
func (b MonthlyBucket) Amount(k Kind) Money { return b.Amounts[k] }

// MonthlyTrend buckets each transaction of the view into its calendar month
// and groups by (month, kind), summing amounts. Rows are ordered by month.
//
// Transactions with a zero (unparseable) date are dropped silently, the
// same tolerant policy the store applies on read.
func MonthlyTrend(view []Transaction) []MonthlyBucket {
	buckets := make(map[Month]map[Kind]Money)
	for _, tx := range view {
		if tx.Date.IsZero() {
			continue
		}
		month := MonthOf(tx.Date)
		amounts, ok := buckets[month]
		if !ok {
			amounts = make(map[Kind]Money)
			buckets[month] = amounts
		}
		amounts[tx.Kind] = amounts[tx.Kind].Add(tx.Amount)
	}

	rows := make([]MonthlyBucket, 0, len(buckets))
	for month, amounts := range buckets {
		rows = append(rows, MonthlyBucket{Month: month, Amounts: amounts})
	}
	slices.SortFunc(rows, func(a, b MonthlyBucket) int {
		switch {
		case a.Month.Before(b.Month):
			return -1
		case b.Month.Before(a.Month):
			return 1
		default:
			return 0
		}
	})
	return rows
}

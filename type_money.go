package finbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in currency-agnostic units.
//
// The ledger never converts between currencies; a currency code only comes
// into play when a value is formatted for display, see [Money.Display].
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric constant. It is the convenience
// constructor used throughout commands and tests.
func M[T float32 | float64 | int | int32 | int64](value T) Money {
	return Money{value: decimal.NewFromFloat(float64(value))}
}

// MD builds a Money from an exact decimal value.
func MD(value decimal.Decimal) Money { return Money{value: value} }

// String returns the plain two-digit decimal representation of the value.
func (m Money) String() string { return m.value.StringFixed(2) }

// Display formats the value using the conventions of the given ISO-4217
// currency code. An empty code falls back to the plain representation.
func (m Money) Display(code string) string {
	if code == "" {
		return m.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, code).Currency()
	shifted := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// Simple wrappers around decimal.Decimal.

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Round returns the value rounded to an integral unit of currency.
func (m Money) Round() Money { return Money{value: m.value.Round(0)} }

// AsFloat returns an inexact float64 view of the value, for computations
// that do not need to stay exact (e.g. the trend regression).
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

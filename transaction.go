package finbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed category of a transaction.
type Kind int

const (
	Income Kind = iota
	Expense
	Investment
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	case Investment:
		return "investment"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	case "investment":
		return Investment, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Kinds lists all kinds in their canonical order.
func Kinds() []Kind { return []Kind{Income, Expense, Investment} }

// MarshalJSON persists the kind under its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Transaction represents a single financial event recorded in the ledger.
//
// A transaction is immutable once stored: the ledger only supports append
// and bulk clear, never in-place edits.
type Transaction struct {
	Date     Date   // Date is the calendar day the event occurred. Zero when the stored date was unparseable.
	Amount   Money  // Amount is the value of the event, always positive for accepted transactions.
	Category string // Category is a free, case-preserving display string.
	Note     string // Note is an optional free-text memo.
	Kind     Kind   // Kind tags the event as income, expense or investment.
}

// NewIncome creates an income transaction.
func NewIncome(day Date, amount Money, category, note string) Transaction {
	return Transaction{Date: day, Amount: amount, Category: category, Note: note, Kind: Income}
}

// NewExpense creates an expense transaction.
func NewExpense(day Date, amount Money, category, note string) Transaction {
	return Transaction{Date: day, Amount: amount, Category: category, Note: note, Kind: Expense}
}

// NewInvestment creates an investment transaction.
func NewInvestment(day Date, amount Money, category, note string) Transaction {
	return Transaction{Date: day, Amount: amount, Category: category, Note: note, Kind: Investment}
}

// Validate checks the write-boundary invariants: a strictly positive amount
// and a non-empty category. A transaction that fails validation is never
// written, not even partially.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be a positive number, got %s", t.Amount)
	}
	if strings.TrimSpace(t.Category) == "" {
		return errors.New("category is missing")
	}
	return nil
}

// Equal reports whether two transactions carry the same fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Note == o.Note &&
		t.Kind == o.Kind
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in a canonical order to keep the persisted file diffable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Optional("note", t.Note)
	w.Append("type", t.Kind)
	return w.MarshalJSON()
}

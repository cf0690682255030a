package finbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	jsonlStream := `
{"date":"2025-08-01","amount":5000,"category":"Salary","note":"monthly","type":"income"}
{"date":"2025-08-05","amount":1200,"category":"Rent","type":"expense"}
{"date":"2025-08-20","amount":300,"category":"Stocks","type":"investment"}
`
	ledger := DecodeLedger(strings.NewReader(jsonlStream))

	want := []Transaction{
		NewIncome(day("2025-08-01"), M(5000), "Salary", "monthly"),
		NewExpense(day("2025-08-05"), M(1200), "Rent", ""),
		NewInvestment(day("2025-08-20"), M(300), "Stocks", ""),
	}
	got := ledger.All()
	if len(got) != len(want) {
		t.Fatalf("DecodeLedger() decoded %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("transaction %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestDecodeLedger_Tolerant locks the tolerant read policy: malformed lines
// and unknown kinds are skipped, bad amounts coerce to zero, bad dates
// become the zero date but keep the record.
func TestDecodeLedger_Tolerant(t *testing.T) {
	jsonlStream := `
this is not json
{"date":"2025-08-01","amount":100,"category":"Salary","type":"paycheck"}
{"date":"2025-08-02","amount":"not a number","category":"Rent","type":"expense"}
{"date":"soon","amount":50,"category":"Groceries","type":"expense"}
{"date":"2025-08-03","amount":"12.50","category":"Transport","type":"expense"}
`
	ledger := DecodeLedger(strings.NewReader(jsonlStream))

	got := ledger.All()
	if len(got) != 3 {
		t.Fatalf("DecodeLedger() decoded %d transactions, want 3", len(got))
	}

	if !got[0].Amount.IsZero() {
		t.Errorf("unparseable amount should coerce to zero, got %s", got[0].Amount)
	}
	if got[0].Category != "Rent" {
		t.Errorf("a bad amount should not discard the rest of the record, got %+v", got[0])
	}

	if !got[1].Date.IsZero() {
		t.Errorf("unparseable date should become the zero date, got %v", got[1].Date)
	}
	if !got[1].Amount.Equal(M(50)) {
		t.Errorf("a bad date should not discard the amount, got %s", got[1].Amount)
	}

	// Amounts stored as numeric strings are accepted.
	if !got[2].Amount.Equal(M(12.5)) {
		t.Errorf("string amount = %s, want 12.50", got[2].Amount)
	}
}

func TestDecodeLedger_FullyCorrupt(t *testing.T) {
	ledger := DecodeLedger(strings.NewReader("garbage\nmore garbage\n"))
	if ledger.Len() != 0 {
		t.Errorf("a fully corrupt stream should decode to an empty ledger, got %d transactions", ledger.Len())
	}
}

func TestEncodeLedger(t *testing.T) {
	ledger := NewLedger(
		NewIncome(day("2025-08-01"), M(5000), "Salary", "monthly"),
		NewExpense(day("2025-08-05"), M(1200), "Rent", ""),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	want := `{"date":"2025-08-01","amount":5000,"category":"Salary","note":"monthly","type":"income"}
{"date":"2025-08-05","amount":1200,"category":"Rent","type":"expense"}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

// TestEncodeDecodeLedger verifies that the canonical form survives a round
// trip unchanged, including insertion order.
func TestEncodeDecodeLedger(t *testing.T) {
	original := NewLedger(
		NewExpense(day("2025-03-01"), M(10.5), "Groceries", "farmers market"),
		NewIncome(day("2025-01-01"), M(5000), "Salary", ""),
		NewInvestment(Date{}, M(300), "Stocks", ""),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, original); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	decoded := DecodeLedger(&buf)

	if decoded.Len() != original.Len() {
		t.Fatalf("round trip changed the number of transactions: got %d, want %d", decoded.Len(), original.Len())
	}
	want := original.All()
	for i, tx := range decoded.All() {
		if !tx.Equal(want[i]) {
			t.Errorf("transaction %d = %+v, want %+v", i, tx, want[i])
		}
	}
}

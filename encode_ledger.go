package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jrecord mirrors one persisted line. Every field is decoded loosely so a
// bad value in one field never discards the others.
type jrecord struct {
	Date     string          `json:"date"`
	Amount   json.RawMessage `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Type     string          `json:"type"`
}

// DecodeLedger decodes transactions from a stream of JSONL data.
//
// The read is tolerant by policy: a malformed line, or a line with an
// unknown transaction kind, is skipped with a warning; an unparseable
// amount coerces to zero; an unparseable date becomes the zero Date, which
// excludes the record from date-dependent computations. A completely
// corrupt stream therefore decodes to an empty ledger, never to an error.
func DecodeLedger(r io.Reader) *Ledger {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var js jrecord
		if err := json.Unmarshal(line, &js); err != nil {
			log.Printf("skipping malformed ledger line %q: %v", string(line), err)
			continue
		}

		kind, err := ParseKind(js.Type)
		if err != nil {
			log.Printf("skipping ledger line %q: %v", string(line), err)
			continue
		}

		ledger.Append(Transaction{
			Date:     coerceDate(js.Date),
			Amount:   coerceAmount(js.Amount),
			Category: js.Category,
			Note:     js.Note,
			Kind:     kind,
		})
	}
	if err := scanner.Err(); err != nil {
		// Same tolerant policy as above: a truncated stream loses history,
		// it does not fail the read.
		log.Printf("stopped reading ledger: %v", err)
	}

	return ledger
}

// coerceDate parses a stored date, falling back to the zero Date.
func coerceDate(str string) Date {
	if str == "" {
		return Date{}
	}
	d, err := ParseDate(str)
	if err != nil {
		log.Printf("keeping record with unparseable date %q", str)
		return Date{}
	}
	return d
}

// coerceAmount parses a stored amount, accepting a JSON number or a numeric
// string, falling back to zero.
func coerceAmount(raw json.RawMessage) Money {
	if len(raw) == 0 {
		return Money{}
	}
	var value decimal.Decimal
	if err := json.Unmarshal(raw, &value); err == nil {
		return MD(value)
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return coerceAmountString(str)
	}
	log.Printf("coercing unparseable amount %s to zero", string(raw))
	return Money{}
}

// coerceAmountString parses an amount written as text, falling back to zero.
func coerceAmountString(str string) Money {
	value, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		log.Printf("coercing unparseable amount %q to zero", str)
		return Money{}
	}
	return MD(value)
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, one
// transaction per line in insertion order, with canonical key order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

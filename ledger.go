package finbook

import (
	"iter"
	"maps"
	"slices"
)

// Ledger represents the full ordered collection of persisted transactions.
//
// Transactions stay in insertion order: the ledger only grows by append and
// is never edited in place.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger, preserving insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in its original order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// All returns a copy of the transactions, the working set handed to the
// pure computations. The copy keeps callers from mutating the ledger.
func (l *Ledger) All() []Transaction {
	return slices.Clone(l.transactions)
}

// AllCategories iterates over the distinct category strings appearing in the
// ledger, in lexicographic order.
func (l *Ledger) AllCategories() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Category] = struct{}{}
		}
		categories := slices.Collect(maps.Keys(visited))
		slices.Sort(categories)
		for _, category := range categories {
			if !yield(category) {
				return
			}
		}
	}
}

// AllKinds iterates over the kinds present in the ledger, in canonical order.
func (l *Ledger) AllKinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		present := make(map[Kind]struct{})
		for _, tx := range l.transactions {
			present[tx.Kind] = struct{}{}
		}
		for _, k := range Kinds() {
			if _, ok := present[k]; !ok {
				continue
			}
			if !yield(k) {
				return
			}
		}
	}
}

// DateSpan returns the inclusive range covering every dated transaction.
// Transactions with a zero (unparseable) date are ignored; ok is false when
// no dated transaction exists.
func (l *Ledger) DateSpan() (r Range, ok bool) {
	for _, tx := range l.transactions {
		if tx.Date.IsZero() {
			continue
		}
		if !ok {
			r = Range{From: tx.Date, To: tx.Date}
			ok = true
			continue
		}
		if tx.Date.Before(r.From) {
			r.From = tx.Date
		}
		if tx.Date.After(r.To) {
			r.To = tx.Date
		}
	}
	return r, ok
}

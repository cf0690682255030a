package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the ledger as a single flat JSONL file, the sole unit of
// truth. The whole collection is the unit of persistence: there is no
// incremental update.
//
// A mutex serializes every operation so that Append's read-modify-write
// cannot silently drop a concurrent writer's transaction. There is still no
// file locking: the model assumes exactly one process accesses the file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path. The file is not
// touched until the first operation.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the backing file exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the backing file into a ledger.
//
// The read is tolerant: a missing or unreadable file yields an empty
// ledger, never an error, so a corrupt store never crashes the caller,
// it only loses history.
func (s *Store) Load() *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() *Ledger {
	f, err := os.Open(s.path)
	if err != nil {
		return NewLedger()
	}
	defer f.Close()
	return DecodeLedger(f)
}

// Save overwrites the backing file with the given ledger. The content is
// written to a temporary file first and renamed into place, so the
// overwrite is atomic from the caller's perspective.
func (s *Store) Save(ledger *Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ledger)
}

func (s *Store) save(ledger *Ledger) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", s.path, err)
	}
	return nil
}

// Append validates the transactions and appends them to the stored ledger
// in a single read-modify-write. On a validation error nothing is written,
// not even the valid transactions of the same call.
func (s *Store) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid %s transaction: %w", tx.Kind, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.load()
	ledger.Append(txs...)
	return s.save(ledger)
}

// Clear removes every transaction. It is equivalent to saving an empty
// ledger and is idempotent; callers must gate it behind an explicit user
// confirmation.
func (s *Store) Clear() error {
	return s.Save(NewLedger())
}

// Seed writes an illustrative sample ledger, but only when no backing file
// exists yet. It reports whether seeding happened.
func (s *Store) Seed() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("could not stat ledger file %q: %w", s.path, err)
	}

	today := Today()
	sample := NewLedger(
		NewIncome(today, M(5000), "Salary", "Monthly salary"),
		NewExpense(NewDate(today.Year(), today.Month(), 5), M(1200), "Rent", "Monthly rent"),
		NewExpense(NewDate(today.Year(), today.Month(), 10), M(150), "Groceries", "Weekly groceries"),
		NewExpense(NewDate(today.Year(), today.Month(), 15), M(60), "Transport", "Gas & transit"),
		NewInvestment(NewDate(today.Year(), today.Month(), 20), M(300), "Stocks", "Monthly investment"),
	)
	if err := s.save(sample); err != nil {
		return false, err
	}
	return true, nil
}

package finbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to load into a spreadsheet.

// csvHeader is the canonical column order, the same field set as the
// persisted format.
var csvHeader = []string{"date", "amount", "category", "note", "type"}

// ExportCSV writes the view as delimited text for download. The output
// round-trips through ImportCSV field for field.
func ExportCSV(w io.Writer, view []Transaction) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, tx := range view {
		row := []string{
			tx.Date.String(),
			tx.Amount.String(),
			tx.Category,
			tx.Note,
			tx.Kind.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row: %w", err)
		}
	}
	return writer.Error()
}

// ImportCSV reads transactions from delimited text produced by ExportCSV
// (or any spreadsheet export with the same columns). Field coercion follows
// the store's tolerant policy; rows with an unknown kind are skipped with a
// warning. A leading header row is recognized and ignored.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	var txs []Transaction
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse CSV line %d: %w", line, err)
		}
		if line == 1 && row[0] == csvHeader[0] {
			continue // header row
		}

		kind, err := ParseKind(row[4])
		if err != nil {
			log.Printf("skipping CSV line %d: %v", line, err)
			continue
		}
		txs = append(txs, Transaction{
			Date:     coerceDate(row[0]),
			Amount:   coerceAmountString(row[1]),
			Category: row[2],
			Note:     row[3],
			Kind:     kind,
		})
	}
	return txs, nil
}

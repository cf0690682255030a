// Package finbook provides the data model, persistence contract and
// analytics engine of a personal finance ledger. It is designed to be
// local-first: the whole history lives in a single human-readable flat
// file that users fully control.
//
// The core functionalities include:
//   - Ledger Management: Recording income, expense and investment events
//     in an immutable, insertion-ordered record that only grows by append
//     and is only ever wiped as a whole.
//   - Data Persistence: A tolerant single-file JSONL store; a corrupt
//     file degrades to an empty ledger instead of crashing the caller.
//   - Aggregation: Totals per kind, net balance, savings percentage and
//     category analytics, all computed as pure functions of a filtered
//     view of the ledger.
//   - Trend and Forecast: Monthly (month, kind) buckets feeding a simple
//     ordinary-least-squares projection of next month's income and
//     expense.
//   - Import/Export: A CSV round trip of the same field set for exchange
//     with spreadsheets.
//
// This package serves as the foundational logic for the `fbk` command-line
// tool; any user interface is an external collaborator that calls this API
// and renders whatever it returns.
package finbook

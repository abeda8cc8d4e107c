// Package models defines the records exchanged with ledgerwise callers.
//
// # Input
//
//   - Entry: a raw ledger record (identifier + amount) as supplied by the caller
//
// # Output
//
//   - Balance: per-identifier sum, or a single extreme entry value
//   - Average: per-identifier mean entry value
//
// # Design Principles
//
//  1. **Caller owned**: entries are transient; nothing here is stored
//  2. **One record per identifier**: output slices never repeat an identifier
//  3. **Exact amounts**: outputs carry decimal.Decimal, never float64
package models

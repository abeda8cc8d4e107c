package models

import "github.com/shopspring/decimal"

// Entry is one raw ledger record as handed over by a caller.
// Nothing about it is trusted until it has been admitted by the ledger package.
type Entry struct {
	// Identifier is the taxpayer identifier (11 digits with two check digits).
	// Before validation it may be shorter, longer or contain non-digits.
	Identifier string `json:"identifier"`

	// Amount is the signed monetary value of the entry.
	// It may be textual (string, json.Number) or numeric (any Go integer or
	// float, or decimal.Decimal); it is parsed once on admission.
	Amount any `json:"amount"`
}

// Balance is the algebraic sum of all entries for one identifier.
// It is also used for the minimum and maximum entry of an identifier.
type Balance struct {
	Identifier string          `json:"identifier"`
	Amount     decimal.Decimal `json:"amount"`
}

// Average is the arithmetic mean of all entries for one identifier.
type Average struct {
	Identifier string          `json:"identifier"`
	Amount     decimal.Decimal `json:"amount"`
}

package ledger

import "github.com/mmynk/ledgerwise/internal/models"

// Extremes returns the smallest and largest entry amounts of identifier.
//
// The result has no record if the identifier has no entries, a single record
// if every entry carries the same amount, and otherwise two records with the
// minimum first.
func Extremes(identifier string, entries []ValidatedEntry) []models.Balance {
	var found bool
	var lo, hi ValidatedEntry
	for _, e := range entries {
		if e.identifier == "" || e.identifier != identifier {
			continue
		}
		if !found {
			lo, hi, found = e, e, true
			continue
		}
		if e.amount.LessThan(lo.amount) {
			lo = e
		}
		if e.amount.GreaterThan(hi.amount) {
			hi = e
		}
	}

	if !found {
		return []models.Balance{}
	}
	if lo.amount.Equal(hi.amount) {
		return []models.Balance{{Identifier: identifier, Amount: lo.amount}}
	}
	return []models.Balance{
		{Identifier: identifier, Amount: lo.amount},
		{Identifier: identifier, Amount: hi.amount},
	}
}

// Package ledger validates ledger entries and computes per-identifier
// balances, extremes and rankings over a batch of admitted entries.
//
// Every function is pure: it reads the caller's slice, builds fresh output
// and keeps nothing between calls.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/ledgerwise/internal/models"
)

// tally is the running total of one identifier's entries.
type tally struct {
	sum   decimal.Decimal
	count int64
}

// tallyByIdentifier groups entries by identifier in first-seen order.
// Zero-value entries are skipped.
func tallyByIdentifier(entries []ValidatedEntry) *orderedMap[string, tally] {
	tallies := newOrderedMap[string, tally]()
	for _, e := range entries {
		if e.identifier == "" {
			continue
		}
		t, _ := tallies.get(e.identifier)
		t.sum = t.sum.Add(e.amount)
		t.count++
		tallies.set(e.identifier, t)
	}
	return tallies
}

// Balances returns one balance per identifier: the algebraic sum of its
// entries. Output follows the order in which identifiers first appear.
func Balances(entries []ValidatedEntry) []models.Balance {
	tallies := tallyByIdentifier(entries)

	balances := make([]models.Balance, 0, tallies.len())
	tallies.each(func(id string, t tally) {
		balances = append(balances, models.Balance{Identifier: id, Amount: t.sum})
	})
	return balances
}

// Averages returns one mean entry value per identifier, in first-seen order.
func Averages(entries []ValidatedEntry) []models.Average {
	tallies := tallyByIdentifier(entries)

	averages := make([]models.Average, 0, tallies.len())
	tallies.each(func(id string, t tally) {
		averages = append(averages, models.Average{
			Identifier: id,
			Amount:     t.sum.Div(decimal.NewFromInt(t.count)),
		})
	})
	return averages
}

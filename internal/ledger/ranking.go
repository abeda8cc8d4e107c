package ledger

import (
	"slices"

	"github.com/mmynk/ledgerwise/internal/models"
)

// TopN is the number of records returned by the rankings.
const TopN = 3

// TopBalances returns the TopN identifiers with the largest balances,
// largest first. Equal balances keep first-seen order.
func TopBalances(entries []ValidatedEntry) []models.Balance {
	balances := Balances(entries)
	slices.SortStableFunc(balances, func(a, b models.Balance) int {
		return b.Amount.Cmp(a.Amount)
	})
	return balances[:min(TopN, len(balances))]
}

// TopAverages returns the TopN identifiers with the largest mean entry
// value, largest first. Equal means keep first-seen order.
func TopAverages(entries []ValidatedEntry) []models.Average {
	averages := Averages(entries)
	slices.SortStableFunc(averages, func(a, b models.Average) int {
		return b.Amount.Cmp(a.Amount)
	})
	return averages[:min(TopN, len(averages))]
}

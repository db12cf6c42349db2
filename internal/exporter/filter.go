package exporter

import (
	"fintrack/pkg/contracts/domain"
)

// FilterByRange selects the transactions whose date falls inside the
// inclusive range, preserving input order. Empty input, an empty
// result and an inverted range are all valid and yield an empty slice,
// never an error.
func FilterByRange(transactions []domain.Transaction, r domain.DateRange) []domain.Transaction {
	if r.Empty() {
		return nil
	}
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if r.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

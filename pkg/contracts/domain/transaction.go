package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger movement in the tracker.
//
// Amount carries the sign convention used across the whole export
// pipeline: expenses are negative, income is positive, transfers keep
// the sign they were recorded with. The export engine takes a
// read-only snapshot; a Transaction is never mutated after it has been
// handed to the engine.
type Transaction struct {
	ID          string          `json:"id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	AccountID   string          `json:"account_id"`
	CategoryID  string          `json:"category_id"`
}

// TransactionType classifies a transaction.
type TransactionType string

const (
	TransactionExpense  TransactionType = "expense"
	TransactionIncome   TransactionType = "income"
	TransactionTransfer TransactionType = "transfer"
)

// transactionTypeLabels is the fixed display-label table for known
// transaction types.
var transactionTypeLabels = map[TransactionType]string{
	TransactionExpense:  "Expense",
	TransactionIncome:   "Income",
	TransactionTransfer: "Transfer",
}

// Label returns the human-readable label for the type. Unrecognized
// values map to "Unknown" rather than failing.
func (t TransactionType) Label() string {
	if label, ok := transactionTypeLabels[t]; ok {
		return label
	}
	return UnknownLabel
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

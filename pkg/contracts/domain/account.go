package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a money account referenced by transactions. The export
// engine reads accounts only to resolve display fields; it never
// mutates them.
type Account struct {
	ID      string          `json:"id" validate:"required"`
	Name    string          `json:"name" validate:"required"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountType classifies an account.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountCredit   AccountType = "credit"
)

var accountTypeLabels = map[AccountType]string{
	AccountChecking: "Checking",
	AccountSavings:  "Savings",
	AccountCredit:   "Credit",
}

// Label returns the human-readable label for the type. Unrecognized
// values map to "Unknown" rather than failing.
func (t AccountType) Label() string {
	if label, ok := accountTypeLabels[t]; ok {
		return label
	}
	return UnknownLabel
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	_, ok := accountTypeLabels[t]
	return ok
}

package exporter

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/pkg/contracts/domain"
)

// ResolvedTransaction is the flattened record both renderers consume:
// transaction fields joined with the display fields of the owning
// account and category. Renderers never see raw identifiers.
type ResolvedTransaction struct {
	ID            string
	Date          time.Time
	Description   string
	Type          domain.TransactionType
	Amount        decimal.Decimal
	AccountName   string
	AccountType   domain.AccountType
	CategoryName  string
	CategoryColor string
}

// Resolve joins each transaction to its account and category by
// identifier. The lookup maps are built once per call, not per
// transaction. A dangling reference resolves to the "Unknown"
// placeholder instead of aborting the batch.
func Resolve(transactions []domain.Transaction, accounts []domain.Account, categories []domain.Category) []ResolvedTransaction {
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		accountsByID[account.ID] = account
	}
	categoriesByID := make(map[string]domain.Category, len(categories))
	for _, category := range categories {
		categoriesByID[category.ID] = category
	}

	resolved := make([]ResolvedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		rec := ResolvedTransaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Type:        tx.Type,
			Amount:      tx.Amount,
		}
		if account, ok := accountsByID[tx.AccountID]; ok {
			rec.AccountName = account.Name
			rec.AccountType = account.Type
		} else {
			rec.AccountName = domain.UnknownLabel
		}
		if category, ok := categoriesByID[tx.CategoryID]; ok {
			rec.CategoryName = category.Name
			rec.CategoryColor = category.Color
		} else {
			rec.CategoryName = domain.UnknownLabel
		}
		resolved = append(resolved, rec)
	}
	return resolved
}

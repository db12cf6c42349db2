package exporter

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the ISO-8601 calendar date used everywhere a date is
// rendered, keeping output stable across locales and environments.
const dateLayout = "2006-01-02"

// exportColumns is the fixed column set shared by both renderers.
var exportColumns = []string{"Date", "Description", "Category", "Account", "Type", "Amount"}

// formatAmount renders a monetary value with exactly two fractional
// digits, preserving sign. A value like 13.4 comes out as 13.40.
func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// formatDate renders the calendar date of ts in UTC.
func formatDate(ts time.Time) string {
	return ts.UTC().Format(dateLayout)
}

// formatRow renders one resolved transaction in exportColumns order.
// Enum values go through the domain label tables, so unknown types
// render as "Unknown" rather than leaking raw values.
func formatRow(rec ResolvedTransaction) []string {
	return []string{
		formatDate(rec.Date),
		rec.Description,
		rec.CategoryName,
		rec.AccountName,
		rec.Type.Label(),
		formatAmount(rec.Amount),
	}
}

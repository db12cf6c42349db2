package exporter

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"fintrack/pkg/contracts/domain"
)

// ReportOptions configures the paginated report document.
type ReportOptions struct {
	// Title is the first-page heading. Empty means defaultReportTitle.
	Title string
	// RowsPerPage caps body rows (line items plus month headers) per
	// page. Zero or negative means defaultRowsPerPage.
	RowsPerPage int
}

const (
	defaultReportTitle = "Transaction Report"
	defaultRowsPerPage = 40

	// monthLayout renders the month-group header rows.
	monthLayout = "January 2006"
)

// reportSummary holds the report footer aggregates. Sums are exact
// decimal arithmetic end to end; no monetary value passes through a
// float.
type reportSummary struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// net is total income plus total expense; expenses are stored
// negative, so the addition nets them out.
func (s reportSummary) net() decimal.Decimal {
	return s.income.Add(s.expense)
}

func summarize(resolved []ResolvedTransaction) reportSummary {
	s := reportSummary{income: decimal.Zero, expense: decimal.Zero}
	for _, rec := range resolved {
		switch rec.Type {
		case domain.TransactionIncome:
			s.income = s.income.Add(rec.Amount)
		case domain.TransactionExpense:
			s.expense = s.expense.Add(rec.Amount)
		}
	}
	return s
}

// reportRow is one body row of the report: either a month-group
// header or a formatted line item.
type reportRow struct {
	cells       []string
	groupHeader bool
}

// buildReportRows lays out the line items grouped under calendar-month
// header rows. Input must already be sorted by date.
func buildReportRows(resolved []ResolvedTransaction) []reportRow {
	rows := make([]reportRow, 0, len(resolved))
	var currentMonth string
	for _, rec := range resolved {
		month := rec.Date.UTC().Format(monthLayout)
		if month != currentMonth {
			currentMonth = month
			rows = append(rows, reportRow{cells: []string{month}, groupHeader: true})
		}
		rows = append(rows, reportRow{cells: formatRow(rec)})
	}
	return rows
}

// paginate chunks body rows into pages of at most perPage rows.
func paginate(rows []reportRow, perPage int) [][]reportRow {
	var pages [][]reportRow
	for start := 0; start < len(rows); start += perPage {
		end := start + perPage
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, rows[start:end])
	}
	return pages
}

// renderReport emits the paginated report workbook: one worksheet per
// page, line items sorted by date ascending and grouped by month, the
// inclusive range in the first-page header and the decimal summary
// footer on the last page. Zero transactions still produce a valid
// one-page document with all-zero totals. The renderer embeds no
// timestamps or random values.
func renderReport(resolved []ResolvedTransaction, r domain.DateRange, opts ReportOptions) ([]byte, error) {
	if opts.RowsPerPage <= 0 {
		opts.RowsPerPage = defaultRowsPerPage
	}
	if opts.Title == "" {
		opts.Title = defaultReportTitle
	}

	// Stable sort: records sharing a date keep their input order.
	items := make([]ResolvedTransaction, len(resolved))
	copy(items, resolved)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	bodyRows := buildReportRows(items)
	totals := summarize(items)

	pages := paginate(bodyRows, opts.RowsPerPage)
	if len(pages) == 0 {
		// An empty record set still gets a page for the summary.
		pages = [][]reportRow{nil}
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, page := range pages {
		sheet := fmt.Sprintf("Page %d", i+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		row := 1
		if i == 0 {
			header := fmt.Sprintf("%s to %s", formatDate(r.From), formatDate(r.To))
			if err := setRow(f, sheet, 1, row, []string{opts.Title}); err != nil {
				return nil, err
			}
			row++
			if err := setRow(f, sheet, 1, row, []string{header}); err != nil {
				return nil, err
			}
			row += 2 // blank spacer before the column header
		}
		if err := setRow(f, sheet, 1, row, exportColumns); err != nil {
			return nil, err
		}
		row++
		for _, body := range page {
			if err := setRow(f, sheet, 1, row, body.cells); err != nil {
				return nil, err
			}
			row++
		}

		if i == len(pages)-1 {
			row++
			footer := [][]string{
				{"Total Income", totals.income.StringFixed(2)},
				{"Total Expense", totals.expense.StringFixed(2)},
				{"Net Total", totals.net().StringFixed(2)},
			}
			for _, line := range footer {
				if err := setRow(f, sheet, 5, row, line); err != nil {
					return nil, err
				}
				row++
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// setRow writes values left to right starting at the given column of
// the given row.
func setRow(f *excelize.File, sheet string, col, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("set row %d on %s: %w", row, sheet, err)
	}
	return nil
}

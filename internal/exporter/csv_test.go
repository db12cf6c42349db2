package exporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/pkg/contracts/domain"
)

func TestRenderTabular_HeaderAndRowCount(t *testing.T) {
	resolved := Resolve(fixtureTransactions(t), fixtureAccounts(), fixtureCategories())

	data, err := renderTabular(resolved, TabularOptions{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// Exactly one header row plus one row per resolved transaction.
	require.Len(t, rows, len(resolved)+1)
	assert.Equal(t, exportColumns, rows[0])
}

func TestRenderTabular_EmptyInputStillHasHeader(t *testing.T) {
	data, err := renderTabular(nil, TabularOptions{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportColumns, rows[0])
}

func TestRenderTabular_EscapingRoundTrip(t *testing.T) {
	// Descriptions carrying the delimiter, quotes and newlines are the
	// one place naive concatenation would corrupt the document.
	descriptions := []string{
		`dinner, drinks and a movie`,
		`the "good" coffee`,
		"split across\ntwo lines",
		`comma, "quote" and` + "\nnewline together",
		`plain`,
	}

	resolved := make([]ResolvedTransaction, 0, len(descriptions))
	for _, desc := range descriptions {
		resolved = append(resolved, ResolvedTransaction{
			Date:         day(2024, time.April, 2),
			Description:  desc,
			Type:         domain.TransactionExpense,
			Amount:       dec(t, "-1.00"),
			AccountName:  "Everyday",
			CategoryName: "Misc",
		})
	}

	data, err := renderTabular(resolved, TabularOptions{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(descriptions)+1)
	for i, desc := range descriptions {
		// csv normalizes \r\n on read; our fields only carry \n, so
		// the recovered string must match exactly.
		assert.Equal(t, desc, rows[i+1][1])
	}
}

func TestRenderTabular_Deterministic(t *testing.T) {
	resolved := Resolve(fixtureTransactions(t), fixtureAccounts(), fixtureCategories())

	first, err := renderTabular(resolved, TabularOptions{})
	require.NoError(t, err)
	second, err := renderTabular(resolved, TabularOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderTabular_CustomDelimiter(t *testing.T) {
	resolved := Resolve(fixtureTransactions(t), fixtureAccounts(), fixtureCategories())

	data, err := renderTabular(resolved, TabularOptions{Delimiter: ';'})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, "Date;Description;Category;Account;Type;Amount", lines[0])

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(resolved)+1)
}

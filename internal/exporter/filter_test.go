package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/pkg/contracts/domain"
)

func TestFilterByRange_SelectsInclusiveWindow(t *testing.T) {
	// Transactions dated 2024-01-05, 2024-01-15 and 2024-02-01 with a
	// January range: only the first two survive.
	txs := fixtureTransactions(t)

	filtered := FilterByRange(txs, januaryRange())

	require.Len(t, filtered, 2)
	assert.Equal(t, "tx-1", filtered[0].ID)
	assert.Equal(t, "tx-2", filtered[1].ID)
}

func TestFilterByRange_BoundsAreInclusive(t *testing.T) {
	txs := []domain.Transaction{
		{ID: "on-from", Date: day(2024, time.January, 1)},
		{ID: "on-to", Date: time.Date(2024, time.January, 31, 22, 15, 0, 0, time.UTC)},
	}

	filtered := FilterByRange(txs, januaryRange())

	require.Len(t, filtered, 2)
}

func TestFilterByRange_InvertedRangeYieldsEmpty(t *testing.T) {
	ranges := []domain.DateRange{
		{From: day(2024, time.February, 1), To: day(2024, time.January, 1)},
		{From: day(2024, time.January, 2), To: day(2024, time.January, 1)},
		{From: day(2030, time.June, 1), To: day(1999, time.June, 1)},
	}

	for _, r := range ranges {
		assert.Empty(t, FilterByRange(fixtureTransactions(t), r))
	}
}

func TestFilterByRange_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterByRange(nil, januaryRange()))
	assert.Empty(t, FilterByRange([]domain.Transaction{}, allTimeRange()))
}

func TestFilterByRange_PreservesInputOrder(t *testing.T) {
	// Deliberately out of date order; the filter must not sort.
	txs := []domain.Transaction{
		{ID: "c", Date: day(2024, time.January, 20)},
		{ID: "a", Date: day(2024, time.January, 2)},
		{ID: "b", Date: day(2024, time.January, 10)},
	}

	filtered := FilterByRange(txs, januaryRange())

	require.Len(t, filtered, 3)
	assert.Equal(t, "c", filtered[0].ID)
	assert.Equal(t, "a", filtered[1].ID)
	assert.Equal(t, "b", filtered[2].ID)
}

package expensequery

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowFor(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		want        domain.PageWindow
	}{
		{"defaults", "", "", domain.PageWindow{Page: 1, Limit: 10}},
		{"explicit", "3", "20", domain.PageWindow{Page: 3, Limit: 20}},
		{"non-numeric falls back", "abc", "x", domain.PageWindow{Page: 1, Limit: 10}},
		{"zero and negative fall back", "0", "-5", domain.PageWindow{Page: 1, Limit: 10}},
		{"whitespace trimmed", " 2 ", " 5", domain.PageWindow{Page: 2, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowFor(tt.page, tt.limit))
		})
	}
}

func TestWindowFor_HugePageSkipsEverything(t *testing.T) {
	w := WindowFor("1000000000000000000", "10")

	assert.Equal(t, 1_000_000_000_000_000_000, w.Page)
	assert.Equal(t, math.MaxInt, w.Skip())

	// Beyond int range is not a number at all.
	assert.Equal(t, domain.PageWindow{Page: 1, Limit: 10}, WindowFor("99999999999999999999", ""))
}

func TestResolve(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	t.Run("search with past month sorted by amount", func(t *testing.T) {
		q, err := Resolve(Params{
			Search: " food ",
			Filter: "past_month",
			Sort:   "amount_high",
			Page:   "2",
			Limit:  "20",
		}, now)
		require.NoError(t, err)

		assert.Equal(t, "food", q.Filter.Search)
		require.NotNil(t, q.Filter.CreatedFrom)
		assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.Local), *q.Filter.CreatedFrom)
		assert.Nil(t, q.Filter.CreatedTo)
		assert.Equal(t, domain.ExpenseSort{Field: domain.SortByAmount, Direction: domain.SortDesc}, q.Sort)
		assert.Equal(t, 20, q.Window.Skip())
	})

	t.Run("no parameters", func(t *testing.T) {
		q, err := Resolve(Params{}, now)
		require.NoError(t, err)

		assert.Equal(t, domain.ExpenseFilter{}, q.Filter)
		assert.Equal(t, domain.DefaultExpenseSort(), q.Sort)
		assert.Equal(t, domain.PageWindow{Page: 1, Limit: 10}, q.Window)
	})

	t.Run("custom range out of order fails", func(t *testing.T) {
		_, err := Resolve(Params{Filter: "custom", StartDate: "2024-03-10", EndDate: "2024-03-05"}, now)
		assert.ErrorIs(t, err, ErrStartAfterEnd)
	})

	t.Run("dates ignored for non-custom filters", func(t *testing.T) {
		q, err := Resolve(Params{Filter: "today", StartDate: "garbage", EndDate: "2020-01-01"}, now)
		require.NoError(t, err)
		require.NotNil(t, q.Filter.CreatedTo)
		assert.Equal(t, EndOfDay(now), *q.Filter.CreatedTo)
	})
}

package querybuilder

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestWhere_Empty(t *testing.T) {
	where, args := Postgres.Where(domain.ExpenseFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestSelectExpenses_Postgres(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 999000000, time.UTC)
	q := domain.ExpenseQuery{
		Filter: domain.ExpenseFilter{Search: "Food", CreatedFrom: &from, CreatedTo: &to},
		Sort:   domain.ExpenseSort{Field: domain.SortByAmount, Direction: domain.SortDesc},
		Window: domain.PageWindow{Page: 3, Limit: 20},
	}

	query, args := Postgres.SelectExpenses(q)

	assert.Equal(t,
		"SELECT "+ExpenseColumns+" FROM expenses"+
			` WHERE (LOWER(description) LIKE $1 ESCAPE '\' OR LOWER(category) LIKE $2 ESCAPE '\')`+
			" AND created_at >= $3 AND created_at <= $4"+
			" ORDER BY amount DESC, expense_id ASC LIMIT 20 OFFSET 40",
		query)
	assert.Equal(t, []any{"%food%", "%food%", from, to}, args)
}

func TestCountExpenses_SQLite(t *testing.T) {
	from := time.UnixMilli(1700000000000)
	query, args := SQLite.CountExpenses(domain.ExpenseFilter{CreatedFrom: &from})

	assert.Equal(t, "SELECT COUNT(*) FROM expenses WHERE created_at >= ?", query)
	assert.Equal(t, []any{int64(1700000000000)}, args)
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY description ASC, expense_id ASC",
		SQLite.OrderBy(domain.ExpenseSort{Field: domain.SortByDescription, Direction: domain.SortAsc}))
	assert.Equal(t, " ORDER BY created_at DESC, expense_id ASC",
		SQLite.OrderBy(domain.ExpenseSort{Field: "author; DROP TABLE expenses", Direction: domain.SortAsc}))
	assert.Equal(t, " ORDER BY created_at DESC, expense_id ASC",
		Postgres.OrderBy(domain.ExpenseSort{Field: "", Direction: domain.SortAsc}))
}

func TestOrderBy_ByteOrderOnBothDialects(t *testing.T) {
	desc := domain.ExpenseSort{Field: domain.SortByDescription, Direction: domain.SortDesc}
	assert.Equal(t, ` ORDER BY description COLLATE "C" DESC, expense_id ASC`, Postgres.OrderBy(desc))
	assert.Equal(t, " ORDER BY description DESC, expense_id ASC", SQLite.OrderBy(desc))
}

func TestOrderBy_SQLiteAmountIsNumeric(t *testing.T) {
	s := domain.ExpenseSort{Field: domain.SortByAmount, Direction: domain.SortAsc}
	assert.Equal(t, " ORDER BY CAST(amount AS REAL) ASC, expense_id ASC", SQLite.OrderBy(s))
	assert.Equal(t, " ORDER BY amount ASC, expense_id ASC", Postgres.OrderBy(s))
}

func TestWhere_SQLiteUsesUnicodeLower(t *testing.T) {
	where, args := SQLite.Where(domain.ExpenseFilter{Search: "Café"})
	assert.Equal(t,
		` WHERE (`+SQLiteLowerFunc+`(description) LIKE ? ESCAPE '\' OR `+SQLiteLowerFunc+`(category) LIKE ? ESCAPE '\')`,
		where)
	assert.Equal(t, []any{"%café%", "%café%"}, args)
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%50\% off\_deal%`, LikePattern("50% OFF_deal"))
	assert.Equal(t, `%a\\b%`, LikePattern(`a\b`))
}

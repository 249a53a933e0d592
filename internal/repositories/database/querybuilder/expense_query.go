// Package querybuilder renders expense lookups as SQL shared by the Postgres
// and SQLite repositories. Queries are written with '?' placeholders and
// rebound to the dialect's bind style with sqlx.
package querybuilder

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

// Dialect captures the per-driver differences the builder cares about.
type Dialect struct {
	Bind    int                 // sqlx bind type (sqlx.DOLLAR, sqlx.QUESTION, ...)
	TimeArg func(time.Time) any // encodes a time bound the way the column stores it
	Lower   string              // SQL function folding text to lower case, Unicode-aware

	// Sort expressions. Both dialects order text by code point so the
	// backends agree on a-z/z-a.
	DescriptionOrder string
	AmountOrder      string
}

// SQLiteLowerFunc is the Unicode-aware lower() the SQLite store registers;
// the built-in LOWER only folds ASCII.
const SQLiteLowerFunc = "unicode_lower"

// Postgres stores timestamps as TIMESTAMPTZ and binds $n.
var Postgres = Dialect{
	Bind:             sqlx.DOLLAR,
	TimeArg:          func(t time.Time) any { return t },
	Lower:            "LOWER",
	DescriptionOrder: `description COLLATE "C"`,
	AmountOrder:      "amount",
}

// SQLite stores timestamps as unix milliseconds, amounts as decimal text,
// and binds '?'.
var SQLite = Dialect{
	Bind:             sqlx.QUESTION,
	TimeArg:          func(t time.Time) any { return t.UnixMilli() },
	Lower:            SQLiteLowerFunc,
	DescriptionOrder: "description",
	AmountOrder:      "CAST(amount AS REAL)",
}

// ExpenseColumns is the column list every expense SELECT returns, in scan order.
const ExpenseColumns = `expense_id, amount, account_type, expense_type, category, description, author_id, created_at, updated_at`

func (d Dialect) sortColumn(f domain.SortField) (string, bool) {
	switch f {
	case domain.SortByDescription:
		return d.DescriptionOrder, true
	case domain.SortByAmount:
		return d.AmountOrder, true
	case domain.SortByCreatedAt:
		return "created_at", true
	default:
		return "", false
	}
}

// Where renders the filter as a WHERE clause (empty when unconstrained) with
// its arguments. The search term is matched as a literal substring,
// case-insensitively, against description OR category.
func (d Dialect) Where(f domain.ExpenseFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Search != "" {
		pattern := LikePattern(f.Search)
		conds = append(conds, "("+d.Lower+`(description) LIKE ? ESCAPE '\' OR `+d.Lower+`(category) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if f.CreatedFrom != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, d.TimeArg(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		conds = append(conds, "created_at <= ?")
		args = append(args, d.TimeArg(*f.CreatedTo))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// OrderBy renders the sort with expense_id as a final tie-breaker so page
// windows are stable. Unknown fields fall back to the default sort.
func (d Dialect) OrderBy(s domain.ExpenseSort) string {
	col, ok := d.sortColumn(s.Field)
	if !ok {
		def := domain.DefaultExpenseSort()
		col, _ = d.sortColumn(def.Field)
		s.Direction = def.Direction
	}
	dir := "DESC"
	if s.Direction == domain.SortAsc {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir + ", expense_id ASC"
}

// SelectExpenses renders the bounded, sorted, offset lookup.
func (d Dialect) SelectExpenses(q domain.ExpenseQuery) (string, []any) {
	where, args := d.Where(q.Filter)
	query := "SELECT " + ExpenseColumns + " FROM expenses" + where + d.OrderBy(q.Sort) +
		" LIMIT " + strconv.Itoa(q.Window.Limit) + " OFFSET " + strconv.Itoa(q.Window.Skip())
	return sqlx.Rebind(d.Bind, query), args
}

// CountExpenses renders the unbounded count for the same predicate.
func (d Dialect) CountExpenses(f domain.ExpenseFilter) (string, []any) {
	where, args := d.Where(f)
	return sqlx.Rebind(d.Bind, "SELECT COUNT(*) FROM expenses"+where), args
}

// LikePattern lower-cases s, escapes LIKE metacharacters and wraps it in '%'.
func LikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

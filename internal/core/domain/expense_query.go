package domain

import (
	"math"
	"time"
)

// SortField names an expense attribute the store can order by.
type SortField string

const (
	SortByDescription SortField = "description"
	SortByAmount      SortField = "amount"
	SortByCreatedAt   SortField = "createdAt"
)

// SortDirection is the ordering direction for a SortField.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ExpenseSort is a resolved key/direction pair.
type ExpenseSort struct {
	Field     SortField
	Direction SortDirection
}

// DefaultExpenseSort orders newest first.
func DefaultExpenseSort() ExpenseSort {
	return ExpenseSort{Field: SortByCreatedAt, Direction: SortDesc}
}

// ExpenseFilter is the predicate applied to expense lookups.
// Nil bounds and an empty Search mean "no constraint".
type ExpenseFilter struct {
	Search      string     // case-insensitive substring on description OR category
	CreatedFrom *time.Time // inclusive lower bound on CreatedAt
	CreatedTo   *time.Time // inclusive upper bound on CreatedAt
}

// PageWindow is the (skip, limit) slice of a sorted result set.
type PageWindow struct {
	Page  int
	Limit int
}

// Skip returns the number of records preceding the window. It saturates at
// math.MaxInt instead of overflowing, so an absurd page yields an empty result.
func (w PageWindow) Skip() int {
	if w.Page <= 1 || w.Limit <= 0 {
		return 0
	}
	if w.Page-1 > math.MaxInt/w.Limit {
		return math.MaxInt
	}
	return (w.Page - 1) * w.Limit
}

// ExpenseQuery bundles everything the store needs for a bounded lookup.
type ExpenseQuery struct {
	Filter ExpenseFilter
	Sort   ExpenseSort
	Window PageWindow
}

// ExpensePage is one page of query results plus pagination metadata.
type ExpensePage struct {
	Expenses      []Expense
	TotalElements int64
	TotalPages    int
	Page          int
}

// TotalPagesFor returns ceil(total / limit).
func TotalPagesFor(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}

package expensequery

import "github.com/SscSPs/expense_tracker_api/internal/core/domain"

// SortMode is the value of the "sort" query parameter.
type SortMode string

const (
	SortAZ         SortMode = "a-z"
	SortZA         SortMode = "z-a"
	SortAmountHigh SortMode = "amount_high"
	SortAmountLow  SortMode = "amount_low"
	SortNewestDate SortMode = "newest_date"
	SortOldestDate SortMode = "oldest_date"
)

// SortKeyFor maps a sort mode to its field and direction. Unknown or empty
// modes resolve to newest_date.
func SortKeyFor(mode SortMode) (domain.SortField, domain.SortDirection) {
	switch mode {
	case SortAZ:
		return domain.SortByDescription, domain.SortAsc
	case SortZA:
		return domain.SortByDescription, domain.SortDesc
	case SortAmountHigh:
		return domain.SortByAmount, domain.SortDesc
	case SortAmountLow:
		return domain.SortByAmount, domain.SortAsc
	case SortOldestDate:
		return domain.SortByCreatedAt, domain.SortAsc
	default:
		return domain.SortByCreatedAt, domain.SortDesc
	}
}

// SortFor is SortKeyFor packed into a domain.ExpenseSort.
func SortFor(mode SortMode) domain.ExpenseSort {
	field, dir := SortKeyFor(mode)
	return domain.ExpenseSort{Field: field, Direction: dir}
}

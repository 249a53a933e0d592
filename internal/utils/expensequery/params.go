package expensequery

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/core/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params holds the raw list parameters exactly as received.
type Params struct {
	Search    string
	Filter    string
	StartDate string
	EndDate   string
	Sort      string
	Page      string
	Limit     string
}

// Resolve builds the full query for p at time now.
func Resolve(p Params, now time.Time) (domain.ExpenseQuery, error) {
	filter, err := FilterFor(p, now)
	if err != nil {
		return domain.ExpenseQuery{}, err
	}
	return domain.ExpenseQuery{
		Filter: filter,
		Sort:   SortFor(SortMode(p.Sort)),
		Window: WindowFor(p.Page, p.Limit),
	}, nil
}

// FilterFor combines the search and date predicates.
func FilterFor(p Params, now time.Time) (domain.ExpenseFilter, error) {
	f := domain.ExpenseFilter{Search: strings.TrimSpace(p.Search)}

	dr, err := DateRangeFor(DateFilter(p.Filter), now, p.StartDate, p.EndDate)
	if err != nil {
		return domain.ExpenseFilter{}, err
	}
	if dr != nil {
		from := dr.From
		f.CreatedFrom = &from
		f.CreatedTo = dr.To
	}
	return f, nil
}

// WindowFor parses page and limit, falling back to defaults for missing,
// non-numeric or non-positive values.
func WindowFor(page, limit string) domain.PageWindow {
	return domain.PageWindow{
		Page:  positiveOr(page, DefaultPage),
		Limit: positiveOr(limit, DefaultLimit),
	}
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

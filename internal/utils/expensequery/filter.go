package expensequery

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
)

// DateFilter is the value of the "filter" query parameter.
type DateFilter string

const (
	FilterToday       DateFilter = "today"
	FilterYesterday   DateFilter = "yesterday"
	FilterPastWeek    DateFilter = "past_week"
	FilterPastMonth   DateFilter = "past_month"
	FilterLast3Months DateFilter = "last_3_months"
	FilterCustom      DateFilter = "custom"
)

// Custom range errors. All wrap apperrors.ErrValidation.
var (
	ErrDateRangeRequired = fmt.Errorf("%w: date range required", apperrors.ErrValidation)
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", apperrors.ErrValidation)
	ErrStartAfterEnd     = fmt.Errorf("%w: start must precede end", apperrors.ErrValidation)
)

// DateRange bounds CreatedAt. A nil To means no upper bound.
type DateRange struct {
	From time.Time
	To   *time.Time
}

// StartOfDay returns 00:00:00.000 of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DateRangeFor resolves a date filter relative to now. It returns nil for
// empty or unrecognized filters. start and end are only consulted for
// FilterCustom and are interpreted in now's location.
func DateRangeFor(filter DateFilter, now time.Time, start, end string) (*DateRange, error) {
	switch filter {
	case FilterToday:
		return closedDay(now), nil
	case FilterYesterday:
		return closedDay(now.AddDate(0, 0, -1)), nil
	case FilterPastWeek:
		return &DateRange{From: StartOfDay(now.AddDate(0, 0, -7))}, nil
	case FilterPastMonth:
		return &DateRange{From: StartOfDay(now.AddDate(0, -1, 0))}, nil
	case FilterLast3Months:
		return &DateRange{From: StartOfDay(now.AddDate(0, -3, 0))}, nil
	case FilterCustom:
		return customRange(now.Location(), start, end)
	default:
		return nil, nil
	}
}

func closedDay(t time.Time) *DateRange {
	end := EndOfDay(t)
	return &DateRange{From: StartOfDay(t), To: &end}
}

func customRange(loc *time.Location, start, end string) (*DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, ErrDateRangeRequired
	}

	startAt, err := parseDate(start, loc)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endAt, err := parseDate(end, loc)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	from := StartOfDay(startAt)
	to := EndOfDay(endAt)
	if from.After(to) {
		return nil, ErrStartAfterEnd
	}
	return &DateRange{From: from, To: &to}, nil
}

// parseDate accepts a calendar date (2006-01-02) in loc, or a full RFC3339
// timestamp which is converted into loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

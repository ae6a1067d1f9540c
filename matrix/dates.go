package matrix

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat selects the display form of matrix column labels.
type DateFormat int

const (
	// FormatDayMonth renders labels as zero-padded day-month: "02-01".
	FormatDayMonth DateFormat = iota

	// FormatDayMonthAbbrev renders labels as day plus month name: "02 Jan".
	FormatDayMonthAbbrev
)

func (f DateFormat) String() string {
	if f == FormatDayMonthAbbrev {
		return "dd-mon"
	}
	return "dd-mm"
}

// layout returns the time.Format layout for this format.
func (f DateFormat) layout() string {
	if f == FormatDayMonthAbbrev {
		return "02 Jan"
	}
	return "02-01"
}

// Label renders a column date in this format.
func (f DateFormat) Label(t time.Time) string {
	return t.Format(f.layout())
}

// ParseDateFormat maps a configuration string to a DateFormat. Accepted
// values are "dd-mm" and "dd-mon", case-insensitively; the empty string is
// the default day-month form.
func ParseDateFormat(s string) (DateFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dd-mm":
		return FormatDayMonth, nil
	case "dd-mon", "dd mon":
		return FormatDayMonthAbbrev, nil
	default:
		return FormatDayMonth, fmt.Errorf("unknown date format %q", s)
	}
}

// WeekdayDates returns every date of the given weekday within one calendar
// month, ascending, at UTC midnight.
func WeekdayDates(year int, month time.Month, weekday time.Weekday) []time.Time {
	var dates []time.Time
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == month {
		if d.Weekday() == weekday {
			dates = append(dates, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return dates
}

// day truncates a timestamp to its calendar date at UTC midnight, the
// canonical column key.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

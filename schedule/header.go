package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avolio/flightgrid/model"
)

// Header is a recognized day header: the calendar date the rows that follow
// belong to, and the weekday label shown in the document or derived from the
// date.
type Header struct {
	Date    time.Time
	Weekday time.Weekday
}

// Outcome classifies a header detection attempt.
type Outcome int

const (
	// OutcomeNone means the text matches no header pattern.
	OutcomeNone Outcome = iota

	// OutcomeMatched means a header was recognized.
	OutcomeMatched

	// OutcomeInvalidDate means a pattern matched but the date is impossible
	// (day 30 of February). Treated as "no header found", never as a fault.
	OutcomeInvalidDate

	// OutcomeOutOfPeriod means a valid date outside the target month/year.
	OutcomeOutOfPeriod
)

// Header patterns, tried in order. All are anchored to the full trimmed
// text and case-insensitive.
var (
	// "<ShortWeekday> <day> <Month> <year>", e.g. "Mon 2 Feb 2026"
	weekdayHeaderExpr = regexp.MustCompile(
		`(?i)^(Sun|Mon|Tue|Wed|Thu|Fri|Sat)\s+(\d{1,2})\s+([A-Za-z]{3,9})\s+(\d{4})$`)

	// "<day> <MonthName> <year>", e.g. "2 February 2026" or "2 Feb 2026"
	dayMonthYearExpr = regexp.MustCompile(
		`(?i)^(\d{1,2})\s+([A-Za-z]{3,9})\s+(\d{4})$`)

	// "<day>/<month>/<year>", e.g. "02/02/2026"
	slashDateExpr = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

	// "<year>-<month>-<day>", e.g. "2026-02-02"
	isoDateExpr = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// monthNames maps lower-case English month names, full and three-letter, to
// their time.Month values.
var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// HeaderDetector recognizes day headers for one target month. A zero target
// (year 0) disables the period check and accepts any valid date.
type HeaderDetector struct {
	year  int
	month time.Month
}

// NewHeaderDetector creates a detector for the given target month.
func NewHeaderDetector(year int, month time.Month) *HeaderDetector {
	return &HeaderDetector{year: year, month: month}
}

// Detect recognizes a day header in a table cell or free-text line. The
// weekday comes from an explicit weekday token when the pattern carries one,
// otherwise it is derived from the date.
func (d *HeaderDetector) Detect(text string) (Header, Outcome) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Header{}, OutcomeNone
	}

	if m := weekdayHeaderExpr.FindStringSubmatch(text); m != nil {
		month, ok := monthNames[strings.ToLower(m[3])]
		if !ok {
			return Header{}, OutcomeNone
		}
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[4])
		return d.resolve(year, month, day, m[1])
	}

	if m := dayMonthYearExpr.FindStringSubmatch(text); m != nil {
		month, ok := monthNames[strings.ToLower(m[2])]
		if !ok {
			return Header{}, OutcomeNone
		}
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		return d.resolve(year, month, day, "")
	}

	if m := slashDateExpr.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 {
			return Header{}, OutcomeInvalidDate
		}
		return d.resolve(year, time.Month(month), day, "")
	}

	if m := isoDateExpr.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 {
			return Header{}, OutcomeInvalidDate
		}
		return d.resolve(year, time.Month(month), day, "")
	}

	return Header{}, OutcomeNone
}

// resolve validates the calendar date, applies the period check and builds
// the header. weekdayToken is the explicit weekday from the pattern, empty
// when the pattern has none.
func (d *HeaderDetector) resolve(year int, month time.Month, day int, weekdayToken string) (Header, Outcome) {
	if day < 1 || day > daysInMonth(year, month) {
		return Header{}, OutcomeInvalidDate
	}
	if d.year != 0 && (year != d.year || month != d.month) {
		return Header{}, OutcomeOutOfPeriod
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	wd := date.Weekday()
	if weekdayToken != "" {
		if parsed, ok := model.ParseWeekday(weekdayToken); ok {
			wd = parsed
		}
	}
	return Header{Date: date, Weekday: wd}, OutcomeMatched
}

// daysInMonth returns the number of days in a month, accounting for leap
// years.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

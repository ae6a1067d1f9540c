package rows

import (
	"regexp"

	"github.com/avolio/flightgrid/model"
)

// lineExpr matches one flight per line with both optional time columns:
// flight, route, direction letters, type word, then up to two HH:MM times.
var lineExpr = regexp.MustCompile(
	`^\s*(\S+)\s+(\S+)\s+([A-Za-z]+)\s+([A-Za-z]+)(?:\s+(\d{1,2}:\d{2}))?(?:\s+(\d{1,2}:\d{2}))?\s*$`)

// TokenRegex extracts rows by matching a whole line against a single
// expression capturing Flight, Route, A/D, Type and the optional ETA and ETD
// columns. It suits layouts where both times can appear on one line. A line
// that does not match is simply not a data row.
type TokenRegex struct{}

// NewTokenRegex creates the single-line regex strategy.
func NewTokenRegex() *TokenRegex {
	return &TokenRegex{}
}

// Name returns the strategy name
func (s *TokenRegex) Name() string {
	return "token-regex"
}

// GridRows is a no-op for the token-regex strategy; lines are its only input.
func (s *TokenRegex) GridRows(grid [][]string, start int) ([]model.RawRow, int) {
	return nil, 0
}

// LineRows matches the line against the flight expression. With both times
// captured they map positionally to ETA and ETD; a single captured time is
// assigned by direction, mirroring the token-stream rule.
func (s *TokenRegex) LineRows(line string) ([]model.RawRow, int) {
	m := lineExpr.FindStringSubmatch(line)
	if m == nil {
		return nil, 0
	}

	row := model.RawRow{
		Flight:    m[1],
		Route:     m[2],
		Direction: m[3],
		Type:      m[4],
	}
	switch {
	case m[5] != "" && m[6] != "":
		row.ETA = m[5]
		row.ETD = m[6]
	case m[5] != "":
		if model.ParseDirection(m[3]) == model.DirectionArrival {
			row.ETA = m[5]
		} else {
			row.ETD = m[5]
		}
	}
	return []model.RawRow{row}, 0
}

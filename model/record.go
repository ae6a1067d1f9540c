package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Direction classifies a flight event as an arrival or a departure.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionArrival
	DirectionDeparture
)

func (d Direction) String() string {
	switch d {
	case DirectionArrival:
		return "Arrival"
	case DirectionDeparture:
		return "Departure"
	default:
		return "Unknown"
	}
}

// Code returns the single-letter column value used in delimited exports:
// "A" for arrivals, "D" for departures, "?" when unknown.
func (d Direction) Code() string {
	switch d {
	case DirectionArrival:
		return "A"
	case DirectionDeparture:
		return "D"
	default:
		return "?"
	}
}

// ParseDirection maps the direction vocabulary seen in schedule documents to
// a Direction. Matching is case-insensitive and ignores surrounding space.
// Arrivals: A, ARR, ARRIVAL. Departures: P, D, DEP, DEPT, DEPARTURE.
// Anything else is DirectionUnknown.
func ParseDirection(s string) Direction {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "ARR", "ARRIVAL":
		return DirectionArrival
	case "P", "D", "DEP", "DEPT", "DEPARTURE":
		return DirectionDeparture
	default:
		return DirectionUnknown
	}
}

// MarshalJSON encodes the direction as its String form.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the String form or any vocabulary word handled by
// ParseDirection.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("direction: %w", err)
	}
	*d = ParseDirection(s)
	return nil
}

// weekdayNames maps lower-case weekday tokens (short and full English forms)
// to time.Weekday values.
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday recognizes short ("Mon") and full ("Monday") English weekday
// names, case-insensitively. The second return value reports whether the
// token was recognized.
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

// WeekdayLabel returns the three-letter English label for a weekday ("Mon").
func WeekdayLabel(wd time.Weekday) string {
	return wd.String()[:3]
}

// RawRow is a positional flight row as extracted from a table grid or text
// line, before any normalization. Missing fields are empty strings.
type RawRow struct {
	Flight    string
	Route     string
	Direction string
	Type      string
	ETA       string
	ETD       string
}

// FlightRecord is one normalized flight event attributed to a calendar date.
// ETA and ETD are free-form time strings; an empty string means absent.
type FlightRecord struct {
	Date      time.Time    `json:"date"`
	Weekday   time.Weekday `json:"weekday"`
	Flight    string       `json:"flight"`
	Route     string       `json:"route"`
	Direction Direction    `json:"direction"`
	Type      string       `json:"type"`
	ETA       string       `json:"eta,omitempty"`
	ETD       string       `json:"etd,omitempty"`
}

// Key returns the matrix row key for this record.
func (r FlightRecord) Key() RowKey {
	return RowKey{Flight: r.Flight, Route: r.Route, Direction: r.Direction}
}

// DisplayTime selects the time shown in a matrix cell: ETA for arrivals,
// ETD for departures. ok is false when the direction is unknown, in which
// case the record never populates a cell.
func (r FlightRecord) DisplayTime() (value string, ok bool) {
	switch r.Direction {
	case DirectionArrival:
		return r.ETA, true
	case DirectionDeparture:
		return r.ETD, true
	default:
		return "", false
	}
}

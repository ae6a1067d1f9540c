package schedule

import (
	"strings"
	"time"

	"github.com/avolio/flightgrid/model"
)

// pax is the only flight type kept in the record set.
const pax = "PAX"

// NormalizeRow converts a raw row attributed to a date into a FlightRecord.
// Type, direction and times are upper-cased and trimmed; flight and route
// are trimmed. Rows whose type is not PAX (case-insensitive) are dropped and
// ok is false. Direction words outside the known vocabulary normalize to
// DirectionUnknown but the record is kept.
func NormalizeRow(raw model.RawRow, date time.Time, weekday time.Weekday) (model.FlightRecord, bool) {
	typ := strings.ToUpper(strings.TrimSpace(raw.Type))
	if typ != pax {
		return model.FlightRecord{}, false
	}

	return model.FlightRecord{
		Date:      date,
		Weekday:   weekday,
		Flight:    strings.TrimSpace(raw.Flight),
		Route:     strings.TrimSpace(raw.Route),
		Direction: model.ParseDirection(raw.Direction),
		Type:      typ,
		ETA:       strings.ToUpper(strings.TrimSpace(raw.ETA)),
		ETD:       strings.ToUpper(strings.TrimSpace(raw.ETD)),
	}, true
}

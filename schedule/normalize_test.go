package schedule

import (
	"testing"
	"time"

	"github.com/avolio/flightgrid/model"
)

var (
	normDate = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
)

func TestNormalizeKeepsPax(t *testing.T) {
	raw := model.RawRow{
		Flight: " DX100 ", Route: " FCO ", Direction: "a",
		Type: " pax ", ETA: " 08:10 ", ETD: "",
	}
	rec, ok := NormalizeRow(raw, normDate, time.Monday)
	if !ok {
		t.Fatal("PAX row was dropped")
	}
	if rec.Flight != "DX100" || rec.Route != "FCO" {
		t.Errorf("identity fields not trimmed: %+v", rec)
	}
	if rec.Type != "PAX" {
		t.Errorf("type = %q, want upper-cased PAX", rec.Type)
	}
	if rec.Direction != model.DirectionArrival {
		t.Errorf("direction = %v, want arrival", rec.Direction)
	}
	if rec.ETA != "08:10" || rec.ETD != "" {
		t.Errorf("times = %q/%q", rec.ETA, rec.ETD)
	}
	if !rec.Date.Equal(normDate) || rec.Weekday != time.Monday {
		t.Errorf("attribution = %v %v", rec.Date, rec.Weekday)
	}
}

func TestNormalizeDropsNonPax(t *testing.T) {
	for _, typ := range []string{"CARGO", "cargo", "FREIGHT", "", "  "} {
		raw := model.RawRow{Flight: "DX100", Route: "FCO", Direction: "A", Type: typ}
		if _, ok := NormalizeRow(raw, normDate, time.Monday); ok {
			t.Errorf("type %q passed the PAX filter", typ)
		}
	}
}

func TestNormalizeDirectionVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Direction
	}{
		{"A", model.DirectionArrival},
		{"arr", model.DirectionArrival},
		{"Arrival", model.DirectionArrival},
		{"P", model.DirectionDeparture},
		{"D", model.DirectionDeparture},
		{"dep", model.DirectionDeparture},
		{"DEPT", model.DirectionDeparture},
		{"departure", model.DirectionDeparture},
		{"X", model.DirectionUnknown},
		{"", model.DirectionUnknown},
	}
	for _, tt := range tests {
		raw := model.RawRow{Flight: "DX100", Route: "FCO", Direction: tt.raw, Type: "PAX"}
		rec, ok := NormalizeRow(raw, normDate, time.Monday)
		if !ok {
			t.Fatalf("PAX row with direction %q dropped", tt.raw)
		}
		if rec.Direction != tt.want {
			t.Errorf("direction %q = %v, want %v", tt.raw, rec.Direction, tt.want)
		}
	}
}

func TestNormalizeUppercasesTimes(t *testing.T) {
	raw := model.RawRow{Flight: "DX100", Route: "FCO", Direction: "P", Type: "PAX", ETD: "tbd"}
	rec, ok := NormalizeRow(raw, normDate, time.Monday)
	if !ok {
		t.Fatal("row dropped")
	}
	if rec.ETD != "TBD" {
		t.Errorf("ETD = %q, want upper-cased free-form value", rec.ETD)
	}
}

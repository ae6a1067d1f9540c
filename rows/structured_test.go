package rows

import (
	"testing"

	"github.com/avolio/flightgrid/model"
)

func TestStartIndex(t *testing.T) {
	grid := [][]string{
		{"Mon 2 Feb 2026"},
		{"Flight", "Route", "A/D", "Type", "ETA", "ETD"},
		{"DX100", "FCO", "A", "PAX", "08:10", ""},
	}

	if got := StartIndex(grid, true); got != 2 {
		t.Errorf("fresh header start = %d, want 2", got)
	}

	titled := [][]string{
		{"Flight", "Route", "A/D", "Type", "ETA", "ETD"},
		{"DX100", "FCO", "A", "PAX", "08:10", ""},
	}
	if got := StartIndex(titled, false); got != 1 {
		t.Errorf("repeated title start = %d, want 1", got)
	}
	lower := [][]string{{"  flight  "}, {"DX100"}}
	if got := StartIndex(lower, false); got != 1 {
		t.Errorf("case-insensitive title start = %d, want 1", got)
	}

	plain := [][]string{{"DX100", "FCO", "A", "PAX", "08:10", ""}}
	if got := StartIndex(plain, false); got != 0 {
		t.Errorf("plain continuation start = %d, want 0", got)
	}
	if got := StartIndex(nil, false); got != 0 {
		t.Errorf("empty grid start = %d, want 0", got)
	}
}

func TestStructuredGridRows(t *testing.T) {
	s := NewStructured()

	grid := [][]string{
		{"Mon 2 Feb 2026"},
		{"Flight", "Route", "A/D", "Type", "ETA", "ETD"},
		{" DX100 ", " FCO ", "A", "PAX", "08:10", ""},
		{"DX200", "LHR", "P", "PAX", "", "11:45"},
	}

	rows, rejected := s.GridRows(grid, 2)
	if rejected != 0 {
		t.Errorf("rejected = %d, want 0", rejected)
	}
	if len(rows) != 2 {
		t.Fatalf("extracted %d rows, want 2", len(rows))
	}
	want := model.RawRow{Flight: "DX100", Route: "FCO", Direction: "A", Type: "PAX", ETA: "08:10"}
	if rows[0] != want {
		t.Errorf("row 0 = %+v, want %+v", rows[0], want)
	}
	if rows[1].Flight != "DX200" || rows[1].ETD != "11:45" {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestStructuredGridRowsShortCells(t *testing.T) {
	s := NewStructured()

	// Missing trailing cells default to empty strings
	rows, rejected := s.GridRows([][]string{{"DX300", "AMS"}}, 0)
	if rejected != 0 || len(rows) != 1 {
		t.Fatalf("extracted %d rows, rejected %d", len(rows), rejected)
	}
	want := model.RawRow{Flight: "DX300", Route: "AMS"}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func TestStructuredGridRowsRejections(t *testing.T) {
	s := NewStructured()

	grid := [][]string{
		{"", "FCO", "A", "PAX", "08:10", ""},
		{"   ", "LHR", "P", "PAX", "", "11:45"},
		{"DX400", "CDG", "A", "PAX", "09:30", ""},
		{},
	}
	rows, rejected := s.GridRows(grid, 0)
	if len(rows) != 1 || rows[0].Flight != "DX400" {
		t.Errorf("extracted %+v, want only DX400", rows)
	}
	if rejected != 3 {
		t.Errorf("rejected = %d, want 3", rejected)
	}
}

func TestStructuredGridRowsStartPastEnd(t *testing.T) {
	s := NewStructured()

	rows, rejected := s.GridRows([][]string{{"Mon 2 Feb 2026"}}, 2)
	if rows != nil || rejected != 0 {
		t.Errorf("start past end produced %v rows, %d rejected", rows, rejected)
	}
	if rows, _ := s.GridRows(nil, 0); rows != nil {
		t.Errorf("nil grid produced %v", rows)
	}
}

func TestStructuredLineRowsNoOp(t *testing.T) {
	s := NewStructured()
	if rows, rejected := s.LineRows("DX100 FCO A PAX 08:10"); rows != nil || rejected != 0 {
		t.Error("structured strategy should ignore text lines")
	}
}

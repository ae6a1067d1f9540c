package export

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/avolio/flightgrid/model"
)

func testMatrix() *model.Matrix {
	return &model.Matrix{
		Weekday: time.Monday,
		Columns: []model.MatrixColumn{
			{Date: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), Label: "02-02"},
			{Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), Label: "09-02"},
		},
		Rows: []model.MatrixRow{
			{
				Key:   model.RowKey{Flight: "DX100", Route: "FCO", Direction: model.DirectionArrival},
				Cells: []string{"08:10", "08:15"},
			},
			{
				Key:   model.RowKey{Flight: "DX200", Route: "LHR, T2", Direction: model.DirectionDeparture},
				Cells: []string{"11:45", ""},
			},
		},
	}
}

// ===== CSV Tests =====

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(&buf, testMatrix()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"Flight,Route,A/D,02-02,09-02",
		"DX100,FCO,A,08:10,08:15",
		`DX200,"LHR, T2",D,11:45,`,
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("csv lines = %q, want %q", lines, want)
	}
}

func TestCSVExportEmptyMatrix(t *testing.T) {
	var buf bytes.Buffer
	m := &model.Matrix{Weekday: time.Friday}
	if err := (&CSVExporter{}).Export(&buf, m); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "Flight,Route,A/D" {
		t.Errorf("empty matrix csv = %q", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	m := testMatrix()

	var first bytes.Buffer
	if err := (&CSVExporter{}).Export(&first, m); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	parsed, err := ReadMatrixCSV(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("ReadMatrixCSV() error = %v", err)
	}

	if !reflect.DeepEqual(parsed.ColumnLabels(), m.ColumnLabels()) {
		t.Errorf("labels = %v, want %v", parsed.ColumnLabels(), m.ColumnLabels())
	}
	for i, row := range parsed.Rows {
		if row.Key != m.Rows[i].Key {
			t.Errorf("row %d key = %+v, want %+v", i, row.Key, m.Rows[i].Key)
		}
		if !reflect.DeepEqual(row.Cells, m.Rows[i].Cells) {
			t.Errorf("row %d cells = %v, want %v", i, row.Cells, m.Rows[i].Cells)
		}
	}

	var second bytes.Buffer
	if err := (&CSVExporter{}).Export(&second, parsed); err != nil {
		t.Fatalf("re-Export() error = %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("round trip changed output:\n%s\n%s", first.String(), second.String())
	}
}

func TestReadMatrixCSVRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "Plane,Route,A/D,02-02\nDX100,FCO,A,08:10\n"},
		{"narrow header", "Flight,Route\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadMatrixCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadMatrixCSV() accepted bad input")
			}
		})
	}
}

// ===== JSON Tests =====

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(&buf, testMatrix()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded model.Matrix
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Weekday != time.Monday {
		t.Errorf("weekday = %v", decoded.Weekday)
	}
	if !reflect.DeepEqual(decoded.ColumnLabels(), []string{"02-02", "09-02"}) {
		t.Errorf("labels = %v", decoded.ColumnLabels())
	}
	if decoded.Rows[0].Key.Direction != model.DirectionArrival {
		t.Errorf("direction = %v, want Arrival from string form", decoded.Rows[0].Key.Direction)
	}
}

// ===== PDF Tests =====

func TestPDFExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&PDFExporter{}).Export(&buf, testMatrix()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output does not start with a PDF signature")
	}
	if buf.Len() < 500 {
		t.Errorf("pdf output is %d bytes, suspiciously small", buf.Len())
	}
}

// ===== Factory Tests =====

func TestForName(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"csv", "csv", false},
		{"CSV", "csv", false},
		{" json ", "json", false},
		{"pdf", "pdf", false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ForName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && e.Name() != tt.want {
				t.Errorf("ForName(%q).Name() = %q, want %q", tt.input, e.Name(), tt.want)
			}
		})
	}
}

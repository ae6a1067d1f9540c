package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/avolio/flightgrid/model"
)

// keyColumns is the number of fixed columns preceding the dated ones.
const keyColumns = 3

// csvKeyHeader holds the fixed column titles of the delimited form.
var csvKeyHeader = []string{"Flight", "Route", "A/D"}

// CSVExporter writes matrices as UTF-8 CSV: one header row of column labels,
// then one row per (flight, route, direction) key. Absent cells are empty
// fields.
type CSVExporter struct{}

// Name returns the format name
func (e *CSVExporter) Name() string {
	return "csv"
}

// Export implements the Exporter interface for CSV.
func (e *CSVExporter) Export(w io.Writer, m *model.Matrix) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, keyColumns+len(m.Columns))
	header = append(header, csvKeyHeader...)
	header = append(header, m.ColumnLabels()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}

	for _, row := range m.Rows {
		record := make([]string, 0, keyColumns+len(m.Columns))
		record = append(record, row.Key.Flight, row.Key.Route, row.Key.Direction.Code())
		for i := range m.Columns {
			if i < len(row.Cells) {
				record = append(record, row.Cells[i])
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	return nil
}

// ReadMatrixCSV parses the delimited form back into a matrix. Column dates
// cannot be recovered from their display labels, so the returned columns
// carry labels only and the weekday is left zero; cell values and key fields
// round-trip exactly.
func ReadMatrixCSV(r io.Reader) (*model.Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv read: empty input")
	}

	header := records[0]
	if len(header) < keyColumns {
		return nil, fmt.Errorf("csv read: header has %d columns, want at least %d", len(header), keyColumns)
	}
	for i, want := range csvKeyHeader {
		if header[i] != want {
			return nil, fmt.Errorf("csv read: header column %d is %q, want %q", i, header[i], want)
		}
	}

	m := &model.Matrix{}
	for _, label := range header[keyColumns:] {
		m.Columns = append(m.Columns, model.MatrixColumn{Label: label})
	}

	for n, record := range records[1:] {
		if len(record) < keyColumns {
			return nil, fmt.Errorf("csv read: row %d has %d columns, want at least %d", n+1, len(record), keyColumns)
		}
		row := model.MatrixRow{
			Key: model.RowKey{
				Flight:    record[0],
				Route:     record[1],
				Direction: model.ParseDirection(record[2]),
			},
			Cells: make([]string, len(m.Columns)),
		}
		for i := range m.Columns {
			if keyColumns+i < len(record) {
				row.Cells[i] = record[keyColumns+i]
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

package model

import (
	"strings"
	"time"
)

// RowKey identifies one recurring flight in a matrix: the flight code, the
// route, and the direction of travel.
type RowKey struct {
	Flight    string    `json:"flight"`
	Route     string    `json:"route"`
	Direction Direction `json:"direction"`
}

// Less orders keys lexicographically by (Flight, Route, Direction), the
// canonical matrix row order.
func (k RowKey) Less(other RowKey) bool {
	if k.Flight != other.Flight {
		return k.Flight < other.Flight
	}
	if k.Route != other.Route {
		return k.Route < other.Route
	}
	return k.Direction.String() < other.Direction.String()
}

// MatrixColumn is one dated column of a weekday matrix. Label is the date
// rendered in the configured display format.
type MatrixColumn struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

// MatrixRow is one recurring flight across the matrix columns. Cells is
// aligned index-for-index with the matrix columns; an empty string is an
// absent cell.
type MatrixRow struct {
	Key   RowKey   `json:"key"`
	Cells []string `json:"cells"`
}

// Matrix is the per-weekday recurrence view: rows keyed by flight, route and
// direction, columns for each date of that weekday, cells holding the
// scheduled time. Columns are strictly increasing by date and rows strictly
// ordered by key.
type Matrix struct {
	Weekday time.Weekday   `json:"weekday"`
	Columns []MatrixColumn `json:"columns"`
	Rows    []MatrixRow    `json:"rows"`
}

// IsEmpty reports whether the matrix holds no rows. An empty matrix is the
// valid "no data for this weekday" result.
func (m *Matrix) IsEmpty() bool {
	return m == nil || len(m.Rows) == 0
}

// ColumnLabels returns the display labels of all columns in order.
func (m *Matrix) ColumnLabels() []string {
	labels := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		labels[i] = c.Label
	}
	return labels
}

// Cell returns the cell value at the given row and column index, or the
// empty string when either index is out of range.
func (m *Matrix) Cell(row, col int) string {
	if row < 0 || row >= len(m.Rows) {
		return ""
	}
	cells := m.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

// ToMarkdown converts the matrix to a Markdown table for quick inspection.
func (m *Matrix) ToMarkdown() string {
	var sb strings.Builder

	sb.WriteString("| Flight | Route | A/D |")
	for _, c := range m.Columns {
		sb.WriteString(" ")
		sb.WriteString(escapeMarkdown(c.Label))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	sb.WriteString("|---|---|---|")
	for range m.Columns {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, row := range m.Rows {
		sb.WriteString("| ")
		sb.WriteString(escapeMarkdown(row.Key.Flight))
		sb.WriteString(" | ")
		sb.WriteString(escapeMarkdown(row.Key.Route))
		sb.WriteString(" | ")
		sb.WriteString(row.Key.Direction.Code())
		sb.WriteString(" |")
		for i := range m.Columns {
			sb.WriteString(" ")
			if i < len(row.Cells) {
				sb.WriteString(escapeMarkdown(row.Cells[i]))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// escapeMarkdown escapes characters that would break Markdown table cells
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

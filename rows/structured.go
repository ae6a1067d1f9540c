package rows

import (
	"strings"

	"github.com/avolio/flightgrid/model"
)

// StartIndex returns the index of the first data row in a table cell grid.
// A table that just bound a fresh day header starts at row 2 (row 0 is the
// header text, row 1 the column titles). Otherwise, a leading first cell
// equal to "Flight" marks a repeated title row and data starts at row 1.
// Any other table starts at row 0.
func StartIndex(grid [][]string, freshHeader bool) int {
	if freshHeader {
		return 2
	}
	if len(grid) > 0 && len(grid[0]) > 0 &&
		strings.EqualFold(strings.TrimSpace(grid[0][0]), "Flight") {
		return 1
	}
	return 0
}

// Structured extracts rows from table cell grids, consuming columns
// positionally as [Flight, Route, A/D, Type, ETA, ETD].
type Structured struct{}

// NewStructured creates the structured grid strategy.
func NewStructured() *Structured {
	return &Structured{}
}

// Name returns the strategy name
func (s *Structured) Name() string {
	return "structured"
}

// GridRows extracts data rows from grid starting at index start. A row is
// valid iff its first cell is non-empty after trimming; invalid rows are
// counted as rejected. Missing trailing cells default to empty strings.
func (s *Structured) GridRows(grid [][]string, start int) ([]model.RawRow, int) {
	if start < 0 {
		start = 0
	}
	if start >= len(grid) {
		return nil, 0
	}

	var extracted []model.RawRow
	rejected := 0
	for _, cells := range grid[start:] {
		flight := cellAt(cells, 0)
		if flight == "" {
			rejected++
			continue
		}
		extracted = append(extracted, model.RawRow{
			Flight:    flight,
			Route:     cellAt(cells, 1),
			Direction: cellAt(cells, 2),
			Type:      cellAt(cells, 3),
			ETA:       cellAt(cells, 4),
			ETD:       cellAt(cells, 5),
		})
	}
	return extracted, rejected
}

// LineRows is a no-op for the structured strategy; grids are its only input.
func (s *Structured) LineRows(line string) ([]model.RawRow, int) {
	return nil, 0
}

// cellAt returns the trimmed cell at index i, or "" when the row is shorter.
func cellAt(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

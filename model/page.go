package model

import "strings"

// TableBlock is one detected table on a page: a bounding box and the
// extracted cell grid. A zero BBox means the source had no geometry (HTML
// and plain-text loaders); such blocks belong to a linear single-column
// document.
type TableBlock struct {
	BBox BBox       `json:"bbox"`
	Rows [][]string `json:"rows"`
}

// FirstCell returns the trimmed content of the table's top-left cell, the
// position a day header occupies. Empty when the grid has no cells.
func (t TableBlock) FirstCell() string {
	if len(t.Rows) == 0 || len(t.Rows[0]) == 0 {
		return ""
	}
	return strings.TrimSpace(t.Rows[0][0])
}

// RowCount returns the number of rows in the cell grid.
func (t TableBlock) RowCount() int {
	return len(t.Rows)
}

// HasGeometry reports whether the block carries a usable bounding box.
func (t TableBlock) HasGeometry() bool {
	return !t.BBox.IsEmpty()
}

// Page is the input contract consumed by the schedule parser: text lines in
// reading order and, optionally, table blocks with geometry. Sources are
// responsible for emitting tables top-to-bottom within a page.
type Page struct {
	Number int          `json:"number"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Lines  []string     `json:"lines,omitempty"`
	Tables []TableBlock `json:"tables,omitempty"`
}

// HasTables reports whether the page carries at least one table block.
func (p Page) HasTables() bool {
	return len(p.Tables) > 0
}

// HasGeometry reports whether any table on the page carries a bounding box.
func (p Page) HasGeometry() bool {
	for _, t := range p.Tables {
		if t.HasGeometry() {
			return true
		}
	}
	return false
}

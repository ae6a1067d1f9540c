package flightgrid

import (
	"time"

	"github.com/avolio/flightgrid/matrix"
	"github.com/avolio/flightgrid/rows"
	"github.com/avolio/flightgrid/schedule"
)

// ExtractOptions holds configuration for schedule extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Target period
	year  int
	month time.Month

	// Parsing options
	strategy        rows.Kind
	columnStrategy  schedule.ColumnStrategy
	columnTolerance float64
	maxPages        int
	maxRowsPerPage  int

	// Matrix options
	pad        bool
	dateFormat matrix.DateFormat

	// OCR language for image sources ("" means the engine default)
	language string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		strategy:       rows.KindAuto,
		columnStrategy: schedule.ColumnAuto,
		dateFormat:     matrix.FormatDayMonth,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

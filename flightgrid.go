// Package flightgrid parses monthly flight schedule documents into weekday
// matrices: one table per weekday, flights down the side, the dates of the
// month across the top, an estimated time in each cell.
//
// Schedules arrive as layout JSON with table geometry, as HTML, as plain
// text or as scanned images; the source format is detected from the file
// name and content. Day headers inside the document bind the rows that
// follow them to a calendar date, tables split across page boundaries are
// reattached to their weekday column, and rows that cannot be understood are
// skipped and counted rather than failing the run.
//
// Basic usage:
//
//	records, warnings, err := flightgrid.Open("february.json").
//		Month(2026, time.February).
//		Records()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if len(warnings) > 0 {
//		fmt.Println(flightgrid.FormatWarnings(warnings))
//	}
//
// Building the Monday matrix and exporting it as CSV:
//
//	warnings, err := flightgrid.Open("february.json").
//		Month(2026, time.February).
//		PadFullMonth().
//		CSV(os.Stdout, time.Monday)
package flightgrid

import (
	"fmt"
	"io"

	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/schedule"
)

// Warning describes a non-fatal problem encountered during parsing, such as
// skipped rows or a header outside the target month.
type Warning = schedule.Warning

// FormatWarnings renders warnings as human-readable lines of text.
func FormatWarnings(warnings []Warning) string {
	return schedule.FormatWarnings(warnings)
}

// Open creates an Extractor for the named schedule document. The file is
// read lazily; errors surface at the first terminal operation.
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes creates an Extractor for an in-memory document. The filename
// hint steers format detection and may be empty, in which case the format
// is sniffed from the content alone.
func FromBytes(filename string, data []byte) *Extractor {
	return &Extractor{
		filename: filename,
		data:     data,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor that reads the whole document from r.
// The filename hint steers format detection and may be empty.
func FromReader(filename string, r io.Reader) *Extractor {
	ext := &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
	data, err := io.ReadAll(r)
	if err != nil {
		ext.err = fmt.Errorf("reading document: %w", err)
		return ext
	}
	ext.data = data
	return ext
}

// FromPages creates an Extractor over already-loaded pages, bypassing
// format detection.
func FromPages(pages []model.Page) *Extractor {
	return &Extractor{
		pages:   pages,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call returning (T, error) and panics if the
// error is non-nil.
//
// Example:
//
//	count := flightgrid.Must(flightgrid.Open("february.json").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. Warnings are
// discarded.
//
// Example:
//
//	records := flightgrid.MustRecords(flightgrid.Open("february.json").Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

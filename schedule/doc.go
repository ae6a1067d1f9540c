// Package schedule converts paged flight schedule documents into normalized
// flight records.
//
// A schedule document lays out one block of flights per calendar day, either
// as a linear sequence of tables or as up to seven parallel day-of-week
// columns, with blocks sometimes split across page boundaries. The parser
// reconciles several unreliable layout signals into one deterministic
// traversal:
//
//   - [ColumnResolver] maps each table's horizontal position to a weekday
//     column slot, either by fixed page division or by clustering the
//     centers of first-page header tables.
//   - [HeaderDetector] recognizes day headers in table cells and free text,
//     validating the calendar date against the target month.
//   - [Tracker] carries the last bound date per column slot so header-less
//     continuation blocks inherit the right day.
//   - The row strategies from the rows package turn table grids or text
//     lines into raw rows, which [NormalizeRow] filters to passenger
//     flights with a normalized direction.
//
// The traversal is single-threaded and strictly sequential: pages in
// document order, tables top-to-bottom within a page. Parsing is a pure
// function of its inputs; the returned record slice is never mutated
// afterwards and is safe for concurrent reads.
//
// Nothing a document contains is a fatal error. Malformed rows, impossible
// dates and unattached blocks are skipped and counted in [Diagnostics],
// which terminal operations surface as warnings.
package schedule

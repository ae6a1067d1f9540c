package schedule

import (
	"fmt"
	"strings"
)

// Diagnostics aggregates the non-fatal skip counters of one parse. Counters
// are informational: none of them makes the parse fail, and an empty result
// with zero headers is a valid outcome for an unrecognizable document.
type Diagnostics struct {
	PagesScanned  int `json:"pages_scanned"`
	TablesScanned int `json:"tables_scanned"`
	LinesScanned  int `json:"lines_scanned"`

	HeadersBound  int `json:"headers_bound"`
	RowsExtracted int `json:"rows_extracted"`
	RecordsKept   int `json:"records_kept"`

	// RowsRejected counts rows and lines that failed shape checks.
	RowsRejected int `json:"rows_rejected"`

	// RecordsFiltered counts rows dropped by the PAX type filter.
	RecordsFiltered int `json:"records_filtered"`

	// InvalidDates counts header patterns with impossible calendar dates.
	InvalidDates int `json:"invalid_dates"`

	// OutOfPeriodHeaders counts valid dates outside the target month.
	OutOfPeriodHeaders int `json:"out_of_period_headers"`

	// UnattachedBlocks counts data blocks seen before any header in their
	// column slot.
	UnattachedBlocks int `json:"unattached_blocks"`

	// SentinelsSkipped counts banner lines and repeated title rows.
	SentinelsSkipped int `json:"sentinels_skipped"`

	// Truncated reports that a page or row cap cut the traversal short.
	Truncated bool `json:"truncated,omitempty"`

	// Strategy is the row-extraction strategy that ran.
	Strategy string `json:"strategy,omitempty"`

	// ColumnMode is the column resolution strategy in effect.
	ColumnMode string `json:"column_mode,omitempty"`
}

// StructureRecognized reports whether the document yielded any schedule
// structure at all. False means the whole document was unrecognizable,
// which callers observe here rather than through an error.
func (d Diagnostics) StructureRecognized() bool {
	return d.HeadersBound > 0 || d.RowsExtracted > 0
}

// Warning codes attached to diagnostics-derived warnings.
const (
	WarnStructureNotRecognized = "structure-not-recognized"
	WarnRowsRejected           = "rows-rejected"
	WarnInvalidDates           = "invalid-dates"
	WarnOutOfPeriodHeaders     = "out-of-period-headers"
	WarnUnattachedBlocks       = "unattached-blocks"
	WarnTruncated              = "truncated"
)

// Warning is a non-fatal finding surfaced by terminal operations.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// Warnings converts the non-zero skip counters into warnings. A fully clean
// parse returns none.
func (d Diagnostics) Warnings() []Warning {
	var warnings []Warning

	if !d.StructureRecognized() {
		warnings = append(warnings, Warning{
			Code:    WarnStructureNotRecognized,
			Message: "no day headers or flight rows found in the document",
		})
	}
	if d.RowsRejected > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnRowsRejected,
			Message: fmt.Sprintf("%d rows failed shape checks and were skipped", d.RowsRejected),
		})
	}
	if d.InvalidDates > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnInvalidDates,
			Message: fmt.Sprintf("%d header patterns carried impossible calendar dates", d.InvalidDates),
		})
	}
	if d.OutOfPeriodHeaders > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnOutOfPeriodHeaders,
			Message: fmt.Sprintf("%d day headers fell outside the target month", d.OutOfPeriodHeaders),
		})
	}
	if d.UnattachedBlocks > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnUnattachedBlocks,
			Message: fmt.Sprintf("%d data blocks appeared before any day header in their column", d.UnattachedBlocks),
		})
	}
	if d.Truncated {
		warnings = append(warnings, Warning{
			Code:    WarnTruncated,
			Message: "traversal stopped at a page or row cap",
		})
	}

	return warnings
}

// FormatWarnings renders warnings one per line for logs and CLI output.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

package flightgrid

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/avolio/flightgrid/export"
	"github.com/avolio/flightgrid/format"
	"github.com/avolio/flightgrid/matrix"
	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/rows"
	"github.com/avolio/flightgrid/schedule"
	"github.com/avolio/flightgrid/source"
)

// Extractor provides a fluent interface for schedule extraction. Configuration
// methods return a new Extractor, so a partially configured extractor can be
// reused as a base for several derived extractions. Errors accumulate in the
// chain and surface at the terminal operation.
type Extractor struct {
	filename string
	data     []byte
	pages    []model.Page
	loaded   bool

	options ExtractOptions

	err error
}

// clone creates a copy of the extractor with deep-copied options. The loaded
// pages are shared; they are never mutated after loading.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		pages:    e.pages,
		loaded:   e.loaded,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Month sets the target period. Day headers outside it are ignored, and
// month padding and full-month columns resolve against it.
func (e *Extractor) Month(year int, month time.Month) *Extractor {
	newExt := e.clone()
	newExt.options.year = year
	newExt.options.month = month
	return newExt
}

// Strategy forces a row-extraction strategy instead of the automatic probe.
func (e *Extractor) Strategy(kind rows.Kind) *Extractor {
	newExt := e.clone()
	newExt.options.strategy = kind
	return newExt
}

// Columns selects how tables are mapped to weekday column slots.
func (e *Extractor) Columns(strategy schedule.ColumnStrategy) *Extractor {
	newExt := e.clone()
	newExt.options.columnStrategy = strategy
	return newExt
}

// ColumnTolerance sets the maximum X distance, in points, between header
// table centers grouped into one column slot.
func (e *Extractor) ColumnTolerance(points float64) *Extractor {
	newExt := e.clone()
	newExt.options.columnTolerance = points
	return newExt
}

// PadFullMonth pads matrices with every date of the target month for the
// matrix weekday, not just the dates observed in the document. Requires a
// target period set via Month.
func (e *Extractor) PadFullMonth() *Extractor {
	newExt := e.clone()
	newExt.options.pad = true
	return newExt
}

// DateFormat sets the matrix column label format.
func (e *Extractor) DateFormat(f matrix.DateFormat) *Extractor {
	newExt := e.clone()
	newExt.options.dateFormat = f
	return newExt
}

// Language sets the OCR language used for image sources.
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// Pages restricts parsing to specific pages (1-indexed). Calls accumulate:
// Pages(1).Pages(3) parses pages 1 and 3.
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange restricts parsing to an inclusive page range (1-indexed).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start > end {
		newExt.err = fmt.Errorf("invalid page range: start (%d) > end (%d)", start, end)
		return newExt
	}
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// MaxPages caps the number of pages parsed.
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxPages = n
	return newExt
}

// MaxRowsPerPage caps the number of rows or lines consumed per page.
func (e *Extractor) MaxRowsPerPage(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxRowsPerPage = n
	return newExt
}

// Parse runs the extraction once and returns both the record set and the
// diagnostics. Warnings are derivable from the diagnostics; Records and
// Diagnostics are narrower views over the same parse.
func (e *Extractor) Parse() ([]model.FlightRecord, schedule.Diagnostics, error) {
	result, err := e.parse()
	if err != nil {
		return nil, schedule.Diagnostics{}, err
	}
	return result.Records, result.Diagnostics, nil
}

// Records parses the document and returns the flat record set in traversal
// order, together with warnings for anything skipped along the way.
func (e *Extractor) Records() ([]model.FlightRecord, []Warning, error) {
	result, err := e.parse()
	if err != nil {
		return nil, nil, err
	}
	return result.Records, result.Diagnostics.Warnings(), nil
}

// Diagnostics parses the document and returns the parse counters.
func (e *Extractor) Diagnostics() (schedule.Diagnostics, []Warning, error) {
	result, err := e.parse()
	if err != nil {
		return schedule.Diagnostics{}, nil, err
	}
	return result.Diagnostics, result.Diagnostics.Warnings(), nil
}

// Matrix parses the document and builds the schedule matrix for one weekday.
// The result is never nil; a weekday with no records yields an empty matrix.
func (e *Extractor) Matrix(weekday time.Weekday) (*model.Matrix, []Warning, error) {
	result, err := e.parse()
	if err != nil {
		return nil, nil, err
	}
	m := matrix.NewBuilder(e.matrixConfig()).Build(result.Records, weekday)
	return m, result.Diagnostics.Warnings(), nil
}

// Matrices parses the document and builds a matrix for every weekday that
// has at least one record, ordered Sunday through Saturday.
func (e *Extractor) Matrices() ([]*model.Matrix, []Warning, error) {
	result, err := e.parse()
	if err != nil {
		return nil, nil, err
	}
	ms := matrix.NewBuilder(e.matrixConfig()).BuildAll(result.Records)
	return ms, result.Diagnostics.Warnings(), nil
}

// Export builds the weekday matrix and writes it to w in the named format
// ("csv", "json" or "pdf").
func (e *Extractor) Export(w io.Writer, weekday time.Weekday, formatName string) ([]Warning, error) {
	exp, err := export.ForName(formatName)
	if err != nil {
		return nil, err
	}
	m, warnings, err := e.Matrix(weekday)
	if err != nil {
		return warnings, err
	}
	if err := exp.Export(w, m); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// CSV is shorthand for Export in CSV format.
func (e *Extractor) CSV(w io.Writer, weekday time.Weekday) ([]Warning, error) {
	return e.Export(w, weekday, "csv")
}

// PageCount returns the number of pages in the document, before page
// selection.
func (e *Extractor) PageCount() (int, error) {
	if err := e.ensurePages(); err != nil {
		return 0, err
	}
	return len(e.pages), nil
}

// parse loads the document if needed, applies page selection and runs the
// schedule parser.
func (e *Extractor) parse() (*schedule.Result, error) {
	if err := e.ensurePages(); err != nil {
		return nil, err
	}
	selected, err := e.selectPages()
	if err != nil {
		return nil, err
	}
	return schedule.NewParser(e.scheduleConfig()).Parse(selected), nil
}

// ensurePages loads and converts the document into pages. The loaded pages
// are cached on the extractor; repeated terminal operations parse the same
// pages without touching the source again.
func (e *Extractor) ensurePages() error {
	if e.err != nil {
		return e.err
	}
	if e.loaded {
		return nil
	}

	if e.data == nil {
		if e.filename == "" {
			e.err = fmt.Errorf("no document source")
			return e.err
		}
		data, err := os.ReadFile(e.filename)
		if err != nil {
			e.err = fmt.Errorf("reading %s: %w", e.filename, err)
			return e.err
		}
		e.data = data
	}

	f := format.Sniff(e.filename, e.data)
	loader, err := source.ForFormat(f)
	if err != nil {
		e.err = err
		return e.err
	}
	if img, ok := loader.(*source.ImageLoader); ok {
		img.Language = e.options.language
	}
	pages, err := loader.Load(e.data)
	if err != nil {
		e.err = fmt.Errorf("%s source: %w", loader.Name(), err)
		return e.err
	}

	e.pages = pages
	e.loaded = true
	return nil
}

// selectPages applies the configured page selection to the loaded pages.
// Page numbers are 1-indexed, deduplicated and sorted; an out-of-range
// number is an error.
func (e *Extractor) selectPages() ([]model.Page, error) {
	if len(e.options.pages) == 0 {
		return e.pages, nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, n := range e.options.pages {
		if n < 1 || n > len(e.pages) {
			return nil, fmt.Errorf("page %d out of range (1-%d)", n, len(e.pages))
		}
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	selected := make([]model.Page, 0, len(numbers))
	for _, n := range numbers {
		selected = append(selected, e.pages[n-1])
	}
	return selected, nil
}

// scheduleConfig maps the extractor options onto the parser configuration.
func (e *Extractor) scheduleConfig() schedule.Config {
	cfg := schedule.DefaultConfig()
	cfg.Year = e.options.year
	cfg.Month = e.options.month
	cfg.Strategy = e.options.strategy
	cfg.Columns.Strategy = e.options.columnStrategy
	if e.options.columnTolerance > 0 {
		cfg.Columns.CenterTolerance = e.options.columnTolerance
	}
	if e.options.maxPages > 0 {
		cfg.MaxPages = e.options.maxPages
	}
	if e.options.maxRowsPerPage > 0 {
		cfg.MaxRowsPerPage = e.options.maxRowsPerPage
	}
	return cfg
}

// matrixConfig maps the extractor options onto the matrix builder
// configuration.
func (e *Extractor) matrixConfig() matrix.Config {
	return matrix.Config{
		Year:   e.options.year,
		Month:  e.options.month,
		Pad:    e.options.pad,
		Format: e.options.dateFormat,
	}
}

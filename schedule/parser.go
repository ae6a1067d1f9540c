package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/rows"
)

// Traversal caps for pathological inputs.
const (
	DefaultMaxPages       = 500
	DefaultMaxRowsPerPage = 50000
)

// Config holds the options of one parse traversal.
type Config struct {
	// Year and Month define the target period. Headers outside it are
	// ignored. A zero Year disables the period check.
	Year  int
	Month time.Month

	// Strategy selects the row-extraction strategy; KindAuto probes the
	// document.
	Strategy rows.Kind

	// Columns configures column slot resolution.
	Columns ColumnConfig

	// MaxPages and MaxRowsPerPage cap the traversal. Zero means default.
	MaxPages       int
	MaxRowsPerPage int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Strategy:       rows.KindAuto,
		Columns:        DefaultColumnConfig(),
		MaxPages:       DefaultMaxPages,
		MaxRowsPerPage: DefaultMaxRowsPerPage,
	}
}

// Result is the outcome of one parse: the flat record set in traversal
// order and the skip counters. The record slice is never mutated after
// Parse returns and is safe for concurrent reads.
type Result struct {
	Records     []model.FlightRecord
	Diagnostics Diagnostics
}

// Parser runs the single-pass schedule traversal. A Parser is stateless
// between calls; all traversal state lives in the call.
type Parser struct {
	config Config
}

// NewParser creates a parser, applying default caps where the
// configuration leaves them zero.
func NewParser(config Config) *Parser {
	if config.MaxPages <= 0 {
		config.MaxPages = DefaultMaxPages
	}
	if config.MaxRowsPerPage <= 0 {
		config.MaxRowsPerPage = DefaultMaxRowsPerPage
	}
	return &Parser{config: config}
}

// Parse traverses the document pages in order and returns the flat record
// set. Parsing is a pure function of its inputs: repeated calls on the same
// pages yield identical results. Nothing in the document content is a fatal
// condition; malformed blocks are skipped and counted.
func (p *Parser) Parse(pages []model.Page) *Result {
	strategy, kind := rows.Resolve(p.config.Strategy, pages)

	t := &traversal{
		cfg:      p.config,
		strategy: strategy,
		detector: NewHeaderDetector(p.config.Year, p.config.Month),
		resolver: NewColumnResolver(p.config.Columns),
		tracker:  NewTracker(),
	}
	if len(pages) > 0 {
		t.resolver.Prepare(pages[0], t.detector)
	}
	t.diag.Strategy = kind.String()
	t.diag.ColumnMode = t.resolver.Active().String()

	structured := kind == rows.KindStructured
	for i, page := range pages {
		if i >= t.cfg.MaxPages {
			t.diag.Truncated = true
			break
		}
		t.diag.PagesScanned++
		if structured {
			t.walkTables(page)
		} else {
			t.walkLines(page)
		}
	}

	return &Result{Records: t.records, Diagnostics: t.diag}
}

// traversal is the state of one Parse call.
type traversal struct {
	cfg      Config
	strategy rows.Strategy
	detector *HeaderDetector
	resolver *ColumnResolver
	tracker  *Tracker
	diag     Diagnostics
	records  []model.FlightRecord
}

// walkTables consumes one page of table blocks, top to bottom, so headers
// are observed before their continuations.
func (t *traversal) walkTables(page model.Page) {
	rowsSeen := 0
	for _, tbl := range orderTables(page.Tables) {
		if rowsSeen+len(tbl.Rows) > t.cfg.MaxRowsPerPage {
			t.diag.Truncated = true
			break
		}
		rowsSeen += len(tbl.Rows)
		t.diag.TablesScanned++

		slot := t.resolver.Slot(tbl, page.Width)

		fresh := false
		if h, outcome := t.detector.Detect(tbl.FirstCell()); outcome == OutcomeMatched {
			t.tracker.SetHeader(slot, h)
			t.diag.HeadersBound++
			fresh = true
		} else {
			t.note(outcome)
		}

		start := rows.StartIndex(tbl.Rows, fresh)
		if !fresh && start == 1 {
			t.diag.SentinelsSkipped++
		}

		extracted, rejected := t.strategy.GridRows(tbl.Rows, start)
		t.diag.RowsRejected += rejected
		if len(extracted) == 0 {
			continue
		}

		current, bound := t.tracker.Current(slot)
		if !bound {
			t.diag.UnattachedBlocks++
			continue
		}
		t.keep(extracted, current)
	}
}

// walkLines consumes one page of text lines in reading order. Text
// documents carry no geometry, so all lines bind through slot 0.
func (t *traversal) walkLines(page model.Page) {
	for i, line := range page.Lines {
		if i >= t.cfg.MaxRowsPerPage {
			t.diag.Truncated = true
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.diag.LinesScanned++

		if rows.IsBannerLine(line) || rows.IsTitleLine(line) {
			t.diag.SentinelsSkipped++
			continue
		}

		if h, outcome := t.detector.Detect(line); outcome == OutcomeMatched {
			t.tracker.SetHeader(0, h)
			t.diag.HeadersBound++
			continue
		} else if outcome != OutcomeNone {
			t.note(outcome)
			continue
		}

		extracted, rejected := t.strategy.LineRows(line)
		t.diag.RowsRejected += rejected
		if len(extracted) == 0 {
			continue
		}

		current, bound := t.tracker.Current(0)
		if !bound {
			t.diag.UnattachedBlocks++
			continue
		}
		t.keep(extracted, current)
	}
}

// keep normalizes extracted rows against the bound header and appends the
// survivors to the record set.
func (t *traversal) keep(extracted []model.RawRow, h Header) {
	for _, raw := range extracted {
		t.diag.RowsExtracted++
		rec, ok := NormalizeRow(raw, h.Date, h.Weekday)
		if !ok {
			t.diag.RecordsFiltered++
			continue
		}
		t.records = append(t.records, rec)
		t.diag.RecordsKept++
	}
}

// note records a failed header detection outcome.
func (t *traversal) note(outcome Outcome) {
	switch outcome {
	case OutcomeInvalidDate:
		t.diag.InvalidDates++
	case OutcomeOutOfPeriod:
		t.diag.OutOfPeriodHeaders++
	}
}

// orderTables returns the page's tables sorted top-to-bottom, keeping
// encounter order for ties and for tables without geometry. The input
// slice is left untouched.
func orderTables(tables []model.TableBlock) []model.TableBlock {
	ordered := make([]model.TableBlock, len(tables))
	copy(ordered, tables)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].BBox.Top() < ordered[j].BBox.Top()
	})
	return ordered
}

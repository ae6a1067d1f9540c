package rows

import (
	"fmt"
	"strings"

	"github.com/avolio/flightgrid/model"
)

// Kind identifies a row-extraction strategy.
type Kind int

const (
	// KindAuto selects a strategy by probing the document (see Detect).
	KindAuto Kind = iota

	// KindStructured consumes table cell grids.
	KindStructured

	// KindTokenStream tokenizes text lines into five-token flight groups.
	KindTokenStream

	// KindTokenRegex matches one flight per line with both time columns.
	KindTokenRegex
)

func (k Kind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindTokenStream:
		return "token-stream"
	case KindTokenRegex:
		return "token-regex"
	default:
		return "auto"
	}
}

// ParseKind maps a configuration string to a Kind. Accepted values are
// "auto", "structured", "token-stream" and "token-regex" (hyphens optional),
// case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "", "auto":
		return KindAuto, nil
	case "structured":
		return KindStructured, nil
	case "tokenstream":
		return KindTokenStream, nil
	case "tokenregex":
		return KindTokenRegex, nil
	default:
		return KindAuto, fmt.Errorf("unknown row strategy %q", s)
	}
}

// Strategy is the interface for row-extraction algorithms.
//
// GridRows consumes a table cell grid, skipping the first start rows (see
// StartIndex); LineRows consumes one free-text line. A strategy implements
// the method matching its input shape and returns nothing from the other.
// The rejected count reports rows or lines that failed shape checks; sentinel
// lines (banners, repeated column titles) must be filtered by the caller
// before LineRows is invoked and are never counted.
type Strategy interface {
	// Name returns the strategy name
	Name() string

	// GridRows extracts data rows from a cell grid
	GridRows(grid [][]string, start int) (extracted []model.RawRow, rejected int)

	// LineRows extracts data rows from one text line
	LineRows(line string) (extracted []model.RawRow, rejected int)
}

// titleSentinel is the repeated column-title row with all spacing removed.
const titleSentinel = "flightroutea/dtypeetaetd"

// IsTitleRow reports whether the cells form the repeated column-title row
// ("Flight Route A/D Type ETA ETD"), which is neither a header nor data.
func IsTitleRow(cells []string) bool {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(strings.Join(strings.Fields(c), ""))
	}
	return strings.EqualFold(sb.String(), titleSentinel)
}

// IsTitleLine reports whether a text line is the column-title sentinel.
func IsTitleLine(line string) bool {
	return strings.EqualFold(strings.Join(strings.Fields(line), ""), titleSentinel)
}

// IsBannerLine reports whether a text line is the "from <date> to <date>"
// period banner printed above token-stream schedules.
func IsBannerLine(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(l, "from") && strings.Contains(l, " to ")
}

// Registry holds registered strategies by kind.
type Registry struct {
	strategies map[Kind]Strategy
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[Kind]Strategy)}
}

// Register registers a strategy under a kind.
func (r *Registry) Register(kind Kind, s Strategy) {
	r.strategies[kind] = s
}

// Get retrieves a strategy by kind.
func (r *Registry) Get(kind Kind) (Strategy, bool) {
	s, ok := r.strategies[kind]
	return s, ok
}

// List returns the names of all registered strategies.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// Register registers a strategy globally.
func Register(kind Kind, s Strategy) {
	globalRegistry.Register(kind, s)
}

// Get retrieves a globally registered strategy by kind.
func Get(kind Kind) (Strategy, bool) {
	return globalRegistry.Get(kind)
}

// List returns the names of all globally registered strategies.
func List() []string {
	return globalRegistry.List()
}

func init() {
	// Register default strategies
	Register(KindStructured, NewStructured())
	Register(KindTokenStream, NewTokenStream())
	Register(KindTokenRegex, NewTokenRegex())
}

package schedule

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/avolio/flightgrid/model"
)

// SlotCount is the number of weekday column slots a schedule page can carry.
const SlotCount = 7

// ColumnStrategy selects how table positions map to column slots.
type ColumnStrategy int

const (
	// ColumnAuto prefers clustered centers when first-page headers exist
	// and falls back to fixed division otherwise.
	ColumnAuto ColumnStrategy = iota

	// ColumnFixedDivision divides the page width into seven equal slots.
	ColumnFixedDivision

	// ColumnClusteredCenters derives slot positions from the x-centers of
	// first-page header tables.
	ColumnClusteredCenters
)

func (s ColumnStrategy) String() string {
	switch s {
	case ColumnFixedDivision:
		return "fixed"
	case ColumnClusteredCenters:
		return "clustered"
	default:
		return "auto"
	}
}

// ParseColumnStrategy maps a configuration string to a ColumnStrategy.
func ParseColumnStrategy(s string) (ColumnStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColumnAuto, nil
	case "fixed", "fixed-division":
		return ColumnFixedDivision, nil
	case "clustered", "clustered-centers":
		return ColumnClusteredCenters, nil
	default:
		return ColumnAuto, fmt.Errorf("unknown column strategy %q", s)
	}
}

// ColumnConfig holds configuration for column slot resolution.
type ColumnConfig struct {
	// Strategy selects the resolution strategy
	Strategy ColumnStrategy

	// CenterTolerance is the maximum X distance between header-table
	// centers grouped into one slot position (points)
	// Default: 20 points
	CenterTolerance float64
}

// DefaultColumnConfig returns sensible default configuration
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		Strategy:        ColumnAuto,
		CenterTolerance: 20.0,
	}
}

// ColumnResolver maps a table's horizontal position to one of the weekday
// column slots. Prepare registers clustered centers from the first page;
// Slot then resolves every table of the document.
type ColumnResolver struct {
	config  ColumnConfig
	centers []float64
	active  ColumnStrategy
}

// NewColumnResolver creates a resolver with the given configuration.
func NewColumnResolver(config ColumnConfig) *ColumnResolver {
	if config.CenterTolerance <= 0 {
		config.CenterTolerance = DefaultColumnConfig().CenterTolerance
	}
	active := config.Strategy
	if active != ColumnFixedDivision {
		// Clustered and auto both need Prepare to confirm centers exist.
		active = ColumnFixedDivision
	}
	return &ColumnResolver{config: config, active: active}
}

// Prepare inspects the first page: the x-centers of tables whose first cell
// is a recognized day header become the slot positions for the clustered
// strategy. Without such headers, or under ColumnFixedDivision, the resolver
// stays on fixed division.
func (r *ColumnResolver) Prepare(first model.Page, detector *HeaderDetector) {
	if r.config.Strategy == ColumnFixedDivision {
		return
	}

	var centers []float64
	for _, t := range first.Tables {
		if !t.HasGeometry() {
			continue
		}
		if _, outcome := detector.Detect(t.FirstCell()); outcome == OutcomeMatched {
			centers = append(centers, t.BBox.CenterX())
		}
	}

	centers = clusterValues(centers, r.config.CenterTolerance)
	if len(centers) > SlotCount {
		centers = centers[:SlotCount]
	}
	if len(centers) > 0 {
		r.centers = centers
		r.active = ColumnClusteredCenters
	}
}

// Active returns the strategy in effect after Prepare.
func (r *ColumnResolver) Active() ColumnStrategy {
	return r.active
}

// Centers returns the registered slot positions, left to right. Empty under
// fixed division.
func (r *ColumnResolver) Centers() []float64 {
	return r.centers
}

// Slot resolves a table to a column slot in [0, SlotCount). Tables without
// geometry belong to a linear single-column document and resolve to slot 0.
func (r *ColumnResolver) Slot(t model.TableBlock, pageWidth float64) int {
	if !t.HasGeometry() {
		return 0
	}

	if r.active == ColumnClusteredCenters {
		return nearestCenter(r.centers, t.BBox.CenterX())
	}

	if pageWidth <= 0 {
		return 0
	}
	slot := int(math.Floor(t.BBox.CenterX() / (pageWidth / SlotCount)))
	if slot < 0 {
		slot = 0
	}
	if slot >= SlotCount {
		slot = SlotCount - 1
	}
	return slot
}

// nearestCenter returns the index of the registered center closest to x.
// Ties resolve to the leftmost center.
func nearestCenter(centers []float64, x float64) int {
	best := 0
	bestDist := math.Abs(x - centers[0])
	for i := 1; i < len(centers); i++ {
		if d := math.Abs(x - centers[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// clusterValues groups values within tolerance of the cluster start and
// returns the cluster averages, sorted ascending.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var clusters []float64
	clusterStart := sorted[0]
	clusterSum := sorted[0]
	count := 1

	for _, v := range sorted[1:] {
		if v-clusterStart <= tolerance {
			clusterSum += v
			count++
		} else {
			clusters = append(clusters, clusterSum/float64(count))
			clusterStart = v
			clusterSum = v
			count = 1
		}
	}
	clusters = append(clusters, clusterSum/float64(count))

	return clusters
}

package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/avolio/flightgrid/model"
)

// tableAt builds a table block whose bounding box is centered on x.
func tableAt(centerX float64, rows ...[]string) model.TableBlock {
	return model.TableBlock{
		BBox: model.NewBBox(centerX-40, 50, 80, 120),
		Rows: rows,
	}
}

func TestFixedDivisionSlots(t *testing.T) {
	r := NewColumnResolver(ColumnConfig{Strategy: ColumnFixedDivision})

	// Page width 700 gives seven 100-point slots.
	tests := []struct {
		centerX float64
		want    int
	}{
		{50, 0},
		{99, 0},
		{100, 1},
		{150, 1},
		{350, 3},
		{650, 6},
		{699, 6},
		{740, 6}, // clamped past the right edge
	}
	for _, tt := range tests {
		if got := r.Slot(tableAt(tt.centerX), 700); got != tt.want {
			t.Errorf("Slot(center %v) = %d, want %d", tt.centerX, got, tt.want)
		}
	}
}

func TestSlotWithoutGeometry(t *testing.T) {
	r := NewColumnResolver(DefaultColumnConfig())

	linear := model.TableBlock{Rows: [][]string{{"Mon 2 Feb 2026"}}}
	if got := r.Slot(linear, 700); got != 0 {
		t.Errorf("Slot(no geometry) = %d, want 0", got)
	}
}

func TestSlotWithZeroPageWidth(t *testing.T) {
	r := NewColumnResolver(ColumnConfig{Strategy: ColumnFixedDivision})
	if got := r.Slot(tableAt(350), 0); got != 0 {
		t.Errorf("Slot(zero page width) = %d, want 0", got)
	}
}

func TestClusteredCenters(t *testing.T) {
	detector := NewHeaderDetector(2026, time.February)
	r := NewColumnResolver(DefaultColumnConfig())

	first := model.Page{
		Width: 700,
		Tables: []model.TableBlock{
			tableAt(100, []string{"Mon 2 Feb 2026"}),
			tableAt(104, []string{"Mon 2 Feb 2026"}), // clusters with 100
			tableAt(300, []string{"Tue 3 Feb 2026"}),
			tableAt(500, []string{"Wed 4 Feb 2026"}),
			tableAt(320, []string{"DX100"}), // not a header, ignored
			{Rows: [][]string{{"Thu 5 Feb 2026"}}}, // no geometry, ignored
		},
	}
	r.Prepare(first, detector)

	if r.Active() != ColumnClusteredCenters {
		t.Fatalf("Active() = %v, want clustered", r.Active())
	}
	centers := r.Centers()
	if len(centers) != 3 {
		t.Fatalf("Centers() = %v, want 3 clusters", centers)
	}
	if math.Abs(centers[0]-102) > 0.001 {
		t.Errorf("first cluster = %v, want averaged 102", centers[0])
	}

	// Subsequent tables map to the nearest registered center.
	tests := []struct {
		centerX float64
		want    int
	}{
		{95, 0},
		{102, 0},
		{180, 0},  // closer to 102 than to 300
		{780, 2},  // far right still lands on the last center
		{310, 1},
		{401, 2},  // 401 is closer to 500 than to 300
	}
	for _, tt := range tests {
		if got := r.Slot(tableAt(tt.centerX), 700); got != tt.want {
			t.Errorf("Slot(center %v) = %d, want %d", tt.centerX, got, tt.want)
		}
	}
}

func TestClusteredFallsBackWithoutHeaders(t *testing.T) {
	detector := NewHeaderDetector(2026, time.February)
	r := NewColumnResolver(ColumnConfig{Strategy: ColumnClusteredCenters})

	first := model.Page{
		Width:  700,
		Tables: []model.TableBlock{tableAt(100, []string{"DX100", "FCO"})},
	}
	r.Prepare(first, detector)

	if r.Active() != ColumnFixedDivision {
		t.Errorf("Active() = %v, want fixed fallback", r.Active())
	}
	if got := r.Slot(tableAt(350), 700); got != 3 {
		t.Errorf("fallback Slot = %d, want 3", got)
	}
}

func TestFixedDivisionIgnoresPrepare(t *testing.T) {
	detector := NewHeaderDetector(2026, time.February)
	r := NewColumnResolver(ColumnConfig{Strategy: ColumnFixedDivision})

	first := model.Page{
		Width:  700,
		Tables: []model.TableBlock{tableAt(100, []string{"Mon 2 Feb 2026"})},
	}
	r.Prepare(first, detector)

	if r.Active() != ColumnFixedDivision || len(r.Centers()) != 0 {
		t.Errorf("fixed strategy registered centers: %v", r.Centers())
	}
}

func TestClusterCapAtSlotCount(t *testing.T) {
	detector := NewHeaderDetector(2026, time.February)
	r := NewColumnResolver(DefaultColumnConfig())

	var tables []model.TableBlock
	for i := 0; i < 9; i++ {
		tables = append(tables, tableAt(float64(60+i*80), []string{"Mon 2 Feb 2026"}))
	}
	r.Prepare(model.Page{Width: 800, Tables: tables}, detector)

	if len(r.Centers()) != SlotCount {
		t.Errorf("Centers() kept %d, want capped at %d", len(r.Centers()), SlotCount)
	}
}

func TestClusterValues(t *testing.T) {
	if got := clusterValues(nil, 10); got != nil {
		t.Errorf("clusterValues(nil) = %v", got)
	}

	got := clusterValues([]float64{300, 100, 104, 500}, 20)
	if len(got) != 3 {
		t.Fatalf("clusterValues = %v, want 3 clusters", got)
	}
	if math.Abs(got[0]-102) > 0.001 || got[1] != 300 || got[2] != 500 {
		t.Errorf("clusterValues = %v, want [102 300 500]", got)
	}
}

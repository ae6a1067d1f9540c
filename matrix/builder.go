package matrix

import (
	"sort"
	"time"

	"github.com/avolio/flightgrid/model"
)

// Config holds the matrix build options.
type Config struct {
	// Year and Month define the target period, used only when Pad is set.
	Year  int
	Month time.Month

	// Pad extends the columns to every date of the weekday in the target
	// month, whether observed or not. Off by default.
	Pad bool

	// Format selects the column label form.
	Format DateFormat
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Format: FormatDayMonth}
}

// Builder pivots flight records into weekday matrices.
type Builder struct {
	config Config
}

// NewBuilder creates a matrix builder.
func NewBuilder(config Config) *Builder {
	return &Builder{config: config}
}

// Build pivots the record set into the matrix for one weekday. Records of
// other weekdays and records with an unknown direction are skipped. When the
// same (key, date) pair occurs more than once, the first occurrence in slice
// order wins, even if its time is empty. The result is never nil; a weekday
// with no matching records yields an empty matrix.
func (b *Builder) Build(records []model.FlightRecord, weekday time.Weekday) *model.Matrix {
	cells := make(map[model.RowKey]map[time.Time]string)
	observed := make(map[time.Time]bool)

	for _, rec := range records {
		if rec.Weekday != weekday {
			continue
		}
		value, ok := rec.DisplayTime()
		if !ok {
			continue
		}
		date := day(rec.Date)
		observed[date] = true

		key := rec.Key()
		row, exists := cells[key]
		if !exists {
			row = make(map[time.Time]string)
			cells[key] = row
		}
		if _, taken := row[date]; !taken {
			row[date] = value
		}
	}

	dates := b.columnDates(observed, weekday)

	columns := make([]model.MatrixColumn, len(dates))
	for i, d := range dates {
		columns[i] = model.MatrixColumn{Date: d, Label: b.config.Format.Label(d)}
	}

	keys := make([]model.RowKey, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	matrixRows := make([]model.MatrixRow, len(keys))
	for i, k := range keys {
		rowCells := make([]string, len(dates))
		for j, d := range dates {
			if v, ok := cells[k][d]; ok {
				rowCells[j] = v
			}
		}
		matrixRows[i] = model.MatrixRow{Key: k, Cells: rowCells}
	}

	return &model.Matrix{Weekday: weekday, Columns: columns, Rows: matrixRows}
}

// BuildAll builds one matrix per weekday that has at least one matrix-eligible
// record, ordered Sunday through Saturday.
func (b *Builder) BuildAll(records []model.FlightRecord) []*model.Matrix {
	var matrices []*model.Matrix
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		m := b.Build(records, wd)
		if !m.IsEmpty() {
			matrices = append(matrices, m)
		}
	}
	return matrices
}

// columnDates merges the observed dates with the padded month dates when
// padding is enabled, sorted ascending.
func (b *Builder) columnDates(observed map[time.Time]bool, weekday time.Weekday) []time.Time {
	set := make(map[time.Time]bool, len(observed))
	for d := range observed {
		set[d] = true
	}
	if b.config.Pad && b.config.Year != 0 {
		for _, d := range WeekdayDates(b.config.Year, b.config.Month, weekday) {
			set[d] = true
		}
	}

	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

package source

import (
	"encoding/json"
	"fmt"

	"github.com/avolio/flightgrid/model"
)

// LayoutJSONLoader reads the layout-dump interchange form: pages with
// dimensions, text lines in reading order, and table blocks carrying a
// bounding box plus an extracted cell grid.
//
// The document is either an object with a "pages" array or a bare array of
// pages. A table bbox is [x0, top, x1, bottom] with y growing downward from
// the page top; it may be omitted for geometry-free tables.
type LayoutJSONLoader struct{}

// layoutPage is one page of the dump.
type layoutPage struct {
	Number int           `json:"number"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Lines  []string      `json:"lines"`
	Tables []layoutTable `json:"tables"`
}

// layoutTable is one table block of the dump.
type layoutTable struct {
	BBox []float64  `json:"bbox"`
	Rows [][]string `json:"rows"`
}

// Name returns the loader name
func (l *LayoutJSONLoader) Name() string {
	return "layout-json"
}

// Load parses layout-dump JSON into pages. Page numbers default to the
// array position when absent.
func (l *LayoutJSONLoader) Load(data []byte) ([]model.Page, error) {
	var doc struct {
		Pages []layoutPage `json:"pages"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		// Bare page arrays are accepted too.
		if arrErr := json.Unmarshal(data, &doc.Pages); arrErr != nil {
			return nil, fmt.Errorf("parsing layout dump: %w", err)
		}
	}

	pages := make([]model.Page, 0, len(doc.Pages))
	for i, lp := range doc.Pages {
		page := model.Page{
			Number: lp.Number,
			Width:  lp.Width,
			Height: lp.Height,
			Lines:  lp.Lines,
		}
		if page.Number == 0 {
			page.Number = i + 1
		}
		for _, lt := range lp.Tables {
			block := model.TableBlock{Rows: lt.Rows}
			if len(lt.BBox) == 4 {
				block.BBox = model.NewBBoxFromCorners(lt.BBox[0], lt.BBox[1], lt.BBox[2], lt.BBox[3])
			}
			page.Tables = append(page.Tables, block)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

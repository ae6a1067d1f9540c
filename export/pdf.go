package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/avolio/flightgrid/model"
)

// Widths of the fixed key columns, in millimetres.
const (
	pdfFlightWidth    = 24.0
	pdfRouteWidth     = 26.0
	pdfDirectionWidth = 12.0
	pdfRowHeight      = 7.0
)

// PDFExporter writes matrices as a printable landscape A4 grid.
type PDFExporter struct {
	// Title overrides the default "<Weekday> schedule" page title.
	Title string
}

// Name returns the format name
func (e *PDFExporter) Name() string {
	return "pdf"
}

// Export implements the Exporter interface for PDF.
func (e *PDFExporter) Export(w io.Writer, m *model.Matrix) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(e.title(m), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, e.title(m), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	dateWidth := e.dateColumnWidth(pdf, len(m.Columns))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(0xe0, 0xe0, 0xe0)
	pdf.CellFormat(pdfFlightWidth, pdfRowHeight, "Flight", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfRouteWidth, pdfRowHeight, "Route", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfDirectionWidth, pdfRowHeight, "A/D", "1", 0, "C", true, 0, "")
	for _, c := range m.Columns {
		pdf.CellFormat(dateWidth, pdfRowHeight, c.Label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range m.Rows {
		pdf.CellFormat(pdfFlightWidth, pdfRowHeight, row.Key.Flight, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfRouteWidth, pdfRowHeight, row.Key.Route, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfDirectionWidth, pdfRowHeight, row.Key.Direction.Code(), "1", 0, "C", false, 0, "")
		for i := range m.Columns {
			var cell string
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			pdf.CellFormat(dateWidth, pdfRowHeight, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf export: %w", err)
	}
	return nil
}

func (e *PDFExporter) title(m *model.Matrix) string {
	if e.Title != "" {
		return e.Title
	}
	return m.Weekday.String() + " schedule"
}

// dateColumnWidth spreads the dated columns across the page width left over
// by the key columns.
func (e *PDFExporter) dateColumnWidth(pdf *gofpdf.Fpdf, columns int) float64 {
	if columns == 0 {
		return 0
	}
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right - pdfFlightWidth - pdfRouteWidth - pdfDirectionWidth
	return usable / float64(columns)
}

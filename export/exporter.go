package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/avolio/flightgrid/model"
)

// Exporter writes one matrix to an output stream in a specific format.
type Exporter interface {
	// Name returns the format name
	Name() string

	// Export writes the matrix to w
	Export(w io.Writer, m *model.Matrix) error
}

// ForName returns the exporter for a format name: "csv", "json" or "pdf".
func ForName(name string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{Indent: true}, nil
	case "pdf":
		return &PDFExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", name)
	}
}

// Names returns the supported format names.
func Names() []string {
	return []string{"csv", "json", "pdf"}
}

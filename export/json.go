package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/avolio/flightgrid/model"
)

// JSONExporter writes matrices as JSON.
type JSONExporter struct {
	// Indent enables two-space indented output.
	Indent bool
}

// Name returns the format name
func (e *JSONExporter) Name() string {
	return "json"
}

// Export implements the Exporter interface for JSON.
func (e *JSONExporter) Export(w io.Writer, m *model.Matrix) error {
	enc := json.NewEncoder(w)
	if e.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("json export: %w", err)
	}
	return nil
}

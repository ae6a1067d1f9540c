package source

import (
	"fmt"
	"os"

	"github.com/avolio/flightgrid/format"
	"github.com/avolio/flightgrid/model"
)

// Loader converts raw document content into pages.
type Loader interface {
	// Name returns the loader name
	Name() string

	// Load converts document content into pages
	Load(data []byte) ([]model.Page, error)
}

// ForFormat returns the loader for a detected format.
func ForFormat(f format.Format) (Loader, error) {
	switch {
	case f == format.LayoutJSON:
		return &LayoutJSONLoader{}, nil
	case f == format.HTML:
		return &HTMLLoader{}, nil
	case f == format.Text:
		return &TextLoader{}, nil
	case f.IsImage():
		return &ImageLoader{}, nil
	default:
		return nil, fmt.Errorf("no loader for %s input: %w", f, format.ErrUnknownFormat)
	}
}

// Load sniffs the content format and converts the document into pages. The
// filename is used only as a format hint; it may be empty.
func Load(filename string, data []byte) ([]model.Page, error) {
	f := format.Sniff(filename, data)
	loader, err := ForFormat(f)
	if err != nil {
		return nil, err
	}
	pages, err := loader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s source: %w", loader.Name(), err)
	}
	return pages, nil
}

// LoadFile reads a document from disk and converts it into pages.
func LoadFile(filename string) ([]model.Page, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Load(filename, data)
}

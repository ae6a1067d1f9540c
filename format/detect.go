// Package format provides input format detection for schedule documents.
package format

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when document content matches no supported
// format signature.
var ErrUnknownFormat = errors.New("unknown document format")

// Format represents a supported schedule document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// LayoutJSON indicates a layout-dump JSON document.
	LayoutJSON
	// HTML indicates an HTML document.
	HTML
	// Text indicates a plain text document.
	Text
	// PNG indicates a PNG page scan.
	PNG
	// JPEG indicates a JPEG page scan.
	JPEG
	// TIFF indicates a TIFF page scan.
	TIFF
	// BMP indicates a BMP page scan.
	BMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case LayoutJSON:
		return "LayoutJSON"
	case HTML:
		return "HTML"
	case Text:
		return "Text"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case LayoutJSON:
		return ".json"
	case HTML:
		return ".html"
	case Text:
		return ".txt"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	default:
		return ""
	}
}

// IsImage reports whether the format is a page scan that must go through
// OCR before parsing.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF, BMP:
		return true
	default:
		return false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return LayoutJSON
	case ".html", ".htm":
		return HTML
	case ".txt", ".text":
		return Text
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	default:
		return Unknown
	}
}

// DetectFromMagic checks content bytes to determine format. Image and JSON
// signatures are checked first; NUL-free content with no other signature is
// treated as plain text. Returns Unknown for binary content with no known
// signature.
func DetectFromMagic(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	// PNG magic: \x89PNG
	if len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G' {
		return PNG
	}

	// JPEG magic: \xFF\xD8\xFF
	if len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}

	// TIFF magic: II*\x00 (little endian) or MM\x00* (big endian)
	if len(data) >= 4 {
		if data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00 {
			return TIFF
		}
		if data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A {
			return TIFF
		}
	}

	// BMP magic: BM
	if len(data) >= 2 && data[0] == 'B' && data[1] == 'M' {
		return BMP
	}

	trimmed := trimLeadingSpace(data)
	if len(trimmed) == 0 {
		return Unknown
	}

	// Layout dumps are JSON objects or arrays.
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return LayoutJSON
	}

	if detectHTMLMagic(trimmed) {
		return HTML
	}

	if looksLikeText(data) {
		return Text
	}

	return Unknown
}

// Sniff determines the format from content first, falling back to the
// filename extension when the content signal is weak. A strong content
// signature (image, JSON, HTML) always wins over the extension.
func Sniff(filename string, data []byte) Format {
	magic := DetectFromMagic(data)
	if magic != Unknown && magic != Text {
		return magic
	}
	if f := Detect(filename); f != Unknown {
		return f
	}
	return magic
}

// trimLeadingSpace skips leading ASCII whitespace.
func trimLeadingSpace(data []byte) []byte {
	start := 0
	for start < len(data) {
		switch data[start] {
		case ' ', '\t', '\n', '\r':
			start++
		default:
			return data[start:]
		}
	}
	return nil
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	upper := strings.ToUpper(string(sample))

	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// Bare table fragments are accepted as HTML schedule pages.
	if strings.HasPrefix(upper, "<TABLE") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML.
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

// looksLikeText reports whether the leading bytes are plausible schedule
// text. High bytes are allowed; text documents may be Windows-1252 rather
// than UTF-8. Form feed is the page separator and is allowed.
func looksLikeText(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	for _, b := range sample {
		if b == 0x00 {
			return false
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' {
			return false
		}
	}
	return true
}

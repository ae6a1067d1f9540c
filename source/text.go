package source

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/avolio/flightgrid/model"
)

// TextLoader reads plain-text schedule documents. Pages are separated by
// form feed; lines keep their reading order. Content that is not valid
// UTF-8 is decoded as Windows-1252, the encoding legacy schedule exports
// ship in.
type TextLoader struct{}

// Name returns the loader name
func (l *TextLoader) Name() string {
	return "text"
}

// Load splits the text into pages and lines. An all-blank document yields
// no pages.
func (l *TextLoader) Load(data []byte) ([]model.Page, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	chunks := strings.Split(text, "\f")
	pages := make([]model.Page, 0, len(chunks))
	for i, chunk := range chunks {
		lines := splitLines(chunk)
		if i == len(chunks)-1 && len(lines) == 0 {
			// A trailing form feed leaves an empty final chunk.
			break
		}
		pages = append(pages, model.Page{Number: i + 1, Lines: lines})
	}
	return pages, nil
}

// decodeText returns the content as a string, falling back to Windows-1252
// when the bytes are not valid UTF-8.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(decoded), nil
}

// splitLines splits a page chunk into lines, dropping carriage returns and
// trailing blank lines.
func splitLines(chunk string) []string {
	raw := strings.Split(chunk, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimRight(line, "\r")
	}
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

package source

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/avolio/flightgrid/model"
)

// HTMLLoader reads HTML schedule pages. Table elements are collected in DOM
// order as geometry-free blocks; block-level text outside tables becomes
// lines. The whole document is one page: without geometry all blocks share
// one column, so day headers apply until the next header replaces them.
type HTMLLoader struct{}

// Name returns the loader name
func (l *HTMLLoader) Name() string {
	return "html"
}

// Load parses an HTML document into a single page.
func (l *HTMLLoader) Load(data []byte) ([]model.Page, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	page := model.Page{Number: 1}
	l.traverse(doc, &page)
	return []model.Page{page}, nil
}

// traverse recursively processes DOM nodes, collecting tables and text lines.
func (l *HTMLLoader) traverse(n *html.Node, page *model.Page) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}

		switch n.Data {
		case "table":
			if block := parseTable(n); len(block.Rows) > 0 {
				page.Tables = append(page.Tables, block)
			}
			return

		case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "blockquote", "pre":
			if text := textContent(n); text != "" {
				page.Lines = append(page.Lines, text)
			}
			return

		case "div":
			if !isBlockContainer(n) {
				if text := textContent(n); text != "" {
					page.Lines = append(page.Lines, text)
				}
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.traverse(c, page)
	}
}

// parseTable extracts the cell grid of an HTML table element, visiting
// thead, tbody and direct tr children in document order.
func parseTable(tableNode *html.Node) model.TableBlock {
	var block model.TableBlock

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					appendTableRow(&block, tr)
				}
			}
		case "tr":
			appendTableRow(&block, c)
		}
	}
	return block
}

// appendTableRow adds one tr's cell texts to the block, skipping empty rows.
func appendTableRow(block *model.TableBlock, tr *html.Node) {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, textContent(c))
		}
	}
	if len(row) > 0 {
		block.Rows = append(block.Rows, row)
	}
}

// textContent returns the whitespace-normalized text of a node and its
// children, skipping non-content elements.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		if n.Type == html.ElementNode && shouldSkipElement(n.Data) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// shouldSkipElement returns true if the element should be skipped during
// content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// isBlockContainer returns true if the element has block-level children of
// its own.
func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "article", "section":
				return true
			}
		}
	}
	return false
}

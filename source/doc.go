// Package source loads schedule documents into pages. Each loader converts
// one input format (layout-dump JSON, HTML, plain text, page scans) into the
// line-and-table page shape the parser consumes. Format routing is handled
// by Load; individual loaders can be used directly when the format is known.
package source

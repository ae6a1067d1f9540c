// Package rows extracts raw flight rows from schedule document content.
//
// Two input shapes exist: structured table grids and free text lines. Each
// supported extraction strategy implements the [Strategy] interface and
// registers itself under a [Kind] in a package registry. Callers either name
// a strategy explicitly or let [Detect] probe the document: pages carrying
// table blocks select the structured strategy, pages with only text lines
// select the token-stream strategy. The token-regex variant, which captures
// both time columns from a single line, is opt-in only.
//
// Strategies are stateless and return positional [model.RawRow] values;
// attribution of rows to calendar dates, normalization and filtering happen
// in the schedule package.
package rows

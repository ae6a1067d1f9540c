package rows

import (
	"strings"

	"github.com/avolio/flightgrid/model"
)

// TokenStream extracts rows from whitespace-tokenized text lines. Tokens are
// sliced into consecutive five-token groups [Flight, Route, A/D, Type, Time]
// left to right, so several flights packed on one physical line are all
// recovered. The single time token lands in ETA for arrivals and in ETD
// otherwise.
type TokenStream struct{}

// NewTokenStream creates the token-stream line strategy.
func NewTokenStream() *TokenStream {
	return &TokenStream{}
}

// Name returns the strategy name
func (s *TokenStream) Name() string {
	return "token-stream"
}

// GridRows is a no-op for the token-stream strategy; lines are its only input.
func (s *TokenStream) GridRows(grid [][]string, start int) ([]model.RawRow, int) {
	return nil, 0
}

// LineRows slices the line into five-token groups until fewer than five
// tokens remain. A non-empty remainder means the trailing group failed the
// shape check and counts as one rejected row.
func (s *TokenStream) LineRows(line string) ([]model.RawRow, int) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, 0
	}

	var extracted []model.RawRow
	for len(tokens) >= 5 {
		group := tokens[:5]
		tokens = tokens[5:]

		row := model.RawRow{
			Flight:    group[0],
			Route:     group[1],
			Direction: group[2],
			Type:      group[3],
		}
		if model.ParseDirection(group[2]) == model.DirectionArrival {
			row.ETA = group[4]
		} else {
			row.ETD = group[4]
		}
		extracted = append(extracted, row)
	}

	rejected := 0
	if len(tokens) > 0 {
		rejected = 1
	}
	return extracted, rejected
}

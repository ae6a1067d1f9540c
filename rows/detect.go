package rows

import "github.com/avolio/flightgrid/model"

// Detect probes a document and picks the extraction strategy: structured
// when any page carries a table block, token-stream when only text lines are
// present. The token-regex variant is never auto-selected. An empty document
// resolves to structured, which extracts nothing from it.
func Detect(pages []model.Page) Kind {
	hasLines := false
	for _, p := range pages {
		if p.HasTables() {
			return KindStructured
		}
		if len(p.Lines) > 0 {
			hasLines = true
		}
	}
	if hasLines {
		return KindTokenStream
	}
	return KindStructured
}

// Resolve maps a kind to its registered strategy, running the Detect probe
// for KindAuto.
func Resolve(kind Kind, pages []model.Page) (Strategy, Kind) {
	if kind == KindAuto {
		kind = Detect(pages)
	}
	s, ok := Get(kind)
	if !ok {
		// Unregistered kinds map to the structured strategy.
		s, _ = Get(KindStructured)
		kind = KindStructured
	}
	return s, kind
}

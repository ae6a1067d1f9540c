package source

import (
	"reflect"
	"testing"
)

func TestHTMLLoadTables(t *testing.T) {
	data := []byte(`<!DOCTYPE html>
<html>
<head><title>Schedule</title></head>
<body>
	<h2>Winter schedule</h2>
	<table>
		<thead><tr><th>Mon 2 Feb 2026</th></tr></thead>
		<tbody>
			<tr><td>Flight</td><td>Route</td><td>A/D</td><td>Type</td><td>ETA</td><td>ETD</td></tr>
			<tr><td> DX100 </td><td>FCO</td><td>A</td><td>PAX</td><td>08:10</td><td></td></tr>
		</tbody>
	</table>
	<table>
		<tr><td>DX200</td><td>LHR</td><td>P</td><td>PAX</td><td></td><td>11:45</td></tr>
	</table>
</body>
</html>`)

	pages, err := (&HTMLLoader{}).Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Load() returned %d pages, want 1", len(pages))
	}

	p := pages[0]
	if len(p.Tables) != 2 {
		t.Fatalf("page has %d tables, want 2", len(p.Tables))
	}

	if got := p.Tables[0].FirstCell(); got != "Mon 2 Feb 2026" {
		t.Errorf("table 0 FirstCell() = %q", got)
	}
	wantRow := []string{"DX100", "FCO", "A", "PAX", "08:10", ""}
	if !reflect.DeepEqual(p.Tables[0].Rows[2], wantRow) {
		t.Errorf("table 0 data row = %v, want %v", p.Tables[0].Rows[2], wantRow)
	}
	if p.Tables[0].HasGeometry() {
		t.Error("HTML tables carry no geometry")
	}

	if got := p.Tables[1].FirstCell(); got != "DX200" {
		t.Errorf("table 1 FirstCell() = %q", got)
	}

	found := false
	for _, line := range p.Lines {
		if line == "Winter schedule" {
			found = true
		}
	}
	if !found {
		t.Errorf("heading text missing from lines: %v", p.Lines)
	}
}

func TestHTMLTableFragment(t *testing.T) {
	data := []byte(`<table><tr><td>Mon 2 Feb 2026</td></tr><tr><td>DX100</td><td>FCO</td></tr></table>`)

	pages, err := (&HTMLLoader{}).Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages[0].Tables) != 1 {
		t.Fatalf("fragment produced %d tables, want 1", len(pages[0].Tables))
	}
	if pages[0].Tables[0].RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", pages[0].Tables[0].RowCount())
	}
}

func TestHTMLSkipsNonContent(t *testing.T) {
	data := []byte(`<html><body>
		<script>var x = "DX999 should not appear";</script>
		<style>.cell { color: red; }</style>
		<p>DX100 FCO A PAX 08:10</p>
	</body></html>`)

	pages, err := (&HTMLLoader{}).Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(pages[0].Lines) != 1 || pages[0].Lines[0] != "DX100 FCO A PAX 08:10" {
		t.Errorf("lines = %v, want the paragraph only", pages[0].Lines)
	}
}

func TestHTMLEmptyDocument(t *testing.T) {
	pages, err := (&HTMLLoader{}).Load([]byte(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Load() returned %d pages, want 1", len(pages))
	}
	if pages[0].HasTables() || len(pages[0].Lines) != 0 {
		t.Errorf("empty document produced content: %+v", pages[0])
	}
}

func TestHTMLWhitespaceNormalization(t *testing.T) {
	data := []byte("<table><tr><td>  Mon \n\t 2   Feb 2026 </td></tr></table>")

	pages, err := (&HTMLLoader{}).Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := pages[0].Tables[0].FirstCell(); got != "Mon 2 Feb 2026" {
		t.Errorf("FirstCell() = %q, want collapsed whitespace", got)
	}
}

package source

import (
	"reflect"
	"strings"
	"testing"
)

func TestTextLoadPages(t *testing.T) {
	data := []byte("Mon 2 Feb 2026\r\nDX100 FCO A PAX 08:10\n\f Tue 3 Feb 2026\nDX200 LHR P PAX 11:45\n")

	pages, err := (&TextLoader{}).Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Load() returned %d pages, want 2", len(pages))
	}

	want := []string{"Mon 2 Feb 2026", "DX100 FCO A PAX 08:10"}
	if !reflect.DeepEqual(pages[0].Lines, want) {
		t.Errorf("page 0 lines = %q, want %q", pages[0].Lines, want)
	}
	if pages[0].Number != 1 || pages[1].Number != 2 {
		t.Errorf("page numbers = %d, %d", pages[0].Number, pages[1].Number)
	}
	if pages[1].Lines[0] != " Tue 3 Feb 2026" {
		t.Errorf("page 1 first line = %q", pages[1].Lines[0])
	}
}

func TestTextTrailingFormFeed(t *testing.T) {
	pages, err := (&TextLoader{}).Load([]byte("DX100 FCO A PAX 08:10\n\f"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("Load() returned %d pages, want 1", len(pages))
	}
}

func TestTextWindows1252Fallback(t *testing.T) {
	// "Malmö" and an en dash, encoded as Windows-1252.
	data := []byte{'M', 'a', 'l', 'm', 0xF6, ' ', 0x96, ' ', 'A', 'R', 'N'}

	pages, err := (&TextLoader{}).Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := pages[0].Lines[0]
	if !strings.Contains(got, "Malmö") {
		t.Errorf("line = %q, want decoded ö", got)
	}
	if !strings.Contains(got, "–") {
		t.Errorf("line = %q, want decoded en dash", got)
	}
}

func TestTextUTF8Passthrough(t *testing.T) {
	pages, err := (&TextLoader{}).Load([]byte("Malmö – ARN\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if pages[0].Lines[0] != "Malmö – ARN" {
		t.Errorf("line = %q", pages[0].Lines[0])
	}
}

func TestTextBlankDocument(t *testing.T) {
	pages, err := (&TextLoader{}).Load([]byte("  \n\n\t\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("blank document produced %d pages", len(pages))
	}
}

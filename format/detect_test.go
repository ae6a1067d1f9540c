package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{LayoutJSON, "LayoutJSON"},
		{HTML, "HTML"},
		{Text, "Text"},
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{TIFF, "TIFF"},
		{BMP, "BMP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{LayoutJSON, ".json"},
		{HTML, ".html"},
		{Text, ".txt"},
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{TIFF, ".tif"},
		{BMP, ".bmp"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_IsImage(t *testing.T) {
	images := []Format{PNG, JPEG, TIFF, BMP}
	for _, f := range images {
		if !f.IsImage() {
			t.Errorf("%v.IsImage() = false, want true", f)
		}
	}
	others := []Format{Unknown, LayoutJSON, HTML, Text}
	for _, f := range others {
		if f.IsImage() {
			t.Errorf("%v.IsImage() = true, want false", f)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"schedule.json", LayoutJSON},
		{"schedule.JSON", LayoutJSON},
		{"schedule.html", HTML},
		{"schedule.HTML", HTML},
		{"schedule.htm", HTML},
		{"schedule.txt", Text},
		{"schedule.text", Text},
		{"scan.png", PNG},
		{"scan.jpg", JPEG},
		{"scan.jpeg", JPEG},
		{"scan.tif", TIFF},
		{"scan.tiff", TIFF},
		{"scan.bmp", BMP},
		{"schedule.pdf", Unknown},
		{"schedule", Unknown},
		{"", Unknown},
		{"/path/to/feb.json", LayoutJSON},
		{"/path/to/feb.txt", Text},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PNG magic bytes",
			data: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
			want: PNG,
		},
		{
			name: "JPEG magic bytes",
			data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10},
			want: JPEG,
		},
		{
			name: "TIFF little endian",
			data: []byte{'I', 'I', 0x2A, 0x00, 0x08},
			want: TIFF,
		},
		{
			name: "TIFF big endian",
			data: []byte{'M', 'M', 0x00, 0x2A, 0x00},
			want: TIFF,
		},
		{
			name: "BMP magic bytes",
			data: []byte{'B', 'M', 0x36, 0x00, 0x00, 0x00},
			want: BMP,
		},
		{
			name: "JSON object",
			data: []byte(`{"pages": []}`),
			want: LayoutJSON,
		},
		{
			name: "JSON array with leading whitespace",
			data: []byte("  \n\t[{\"number\": 1}]"),
			want: LayoutJSON,
		},
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "HTML table fragment",
			data: []byte("<table><tr><td>Mon 2 Feb 2026</td></tr></table>"),
			want: HTML,
		},
		{
			name: "plain schedule text",
			data: []byte("Mon 2 Feb 2026\nDX100 FCO A PAX 08:10\n"),
			want: Text,
		},
		{
			name: "text with form feed page break",
			data: []byte("Mon 2 Feb 2026\fTue 3 Feb 2026"),
			want: Text,
		},
		{
			name: "windows-1252 high bytes",
			data: []byte{'M', 'o', 'n', ' ', 0x96, ' ', 'F', 'e', 'b'},
			want: Text,
		},
		{
			name: "binary with NUL",
			data: []byte{'a', 0x00, 'b'},
			want: Unknown,
		},
		{
			name: "control byte garbage",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			want: Unknown,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     Format
	}{
		{
			name:     "magic beats extension",
			filename: "mislabeled.txt",
			data:     []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A},
			want:     PNG,
		},
		{
			name:     "extension refines weak text signal",
			filename: "fragment.html",
			data:     []byte("<div><table><tr><td>x</td></tr></table></div>"),
			want:     HTML,
		},
		{
			name:     "text content without extension",
			filename: "schedule",
			data:     []byte("Mon 2 Feb 2026\nDX100 FCO A PAX 08:10\n"),
			want:     Text,
		},
		{
			name:     "json content without extension",
			filename: "dump",
			data:     []byte(`{"pages": []}`),
			want:     LayoutJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.filename, tt.data); got != tt.want {
				t.Errorf("Sniff(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

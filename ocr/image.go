package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// pngMagic is the PNG file signature prefix.
var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// NormalizeImage converts a page scan to PNG, the input Tesseract handles
// most reliably. PNG data passes through unchanged; JPEG, TIFF and BMP
// scans are decoded and re-encoded.
func NormalizeImage(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) {
		return data, nil
	}

	img, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding scan: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding %s scan as png: %w", kind, err)
	}
	return buf.Bytes(), nil
}

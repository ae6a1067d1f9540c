package source

import (
	"fmt"

	"github.com/avolio/flightgrid/model"
	"github.com/avolio/flightgrid/ocr"
)

// ImageLoader reads scanned schedule pages through OCR. The recognized text
// is then loaded like a plain-text document. Requires the ocr build tag;
// without it Load fails with ocr.ErrOCRNotEnabled.
type ImageLoader struct {
	// Language optionally overrides the OCR language ("eng" by default).
	Language string
}

// Name returns the loader name
func (l *ImageLoader) Name() string {
	return "image"
}

// Load recognizes the scan and converts the resulting text into pages.
func (l *ImageLoader) Load(data []byte) ([]model.Page, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if l.Language != "" {
		if err := client.SetLanguage(l.Language); err != nil {
			return nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}

	text, err := client.RecognizeImage(data)
	if err != nil {
		return nil, err
	}
	return (&TextLoader{}).Load([]byte(text))
}

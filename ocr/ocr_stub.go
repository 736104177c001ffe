//go:build !ocr

// Package ocr provides OCR (Optical Character Recognition) text
// extraction from images.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. Recognition functions return ErrOCRNotEnabled; image validation
// still works.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable OCR
// support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client wraps Tesseract for OCR operations.
// In this stub implementation all methods return ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled in the stub implementation.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op in the stub implementation.
func (c *Client) Close() error {
	return nil
}

// Recognize returns ErrOCRNotEnabled in the stub implementation.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled in the stub implementation.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// ExtractText validates the image, then returns ErrOCRNotEnabled. The
// validation step runs first so that callers get the more specific
// error for data that is not a decodable image at all.
func ExtractText(imageData []byte) (string, error) {
	if err := ValidateImage(imageData); err != nil {
		return "", err
	}
	return "", ErrOCRNotEnabled
}

// Package parsekit provides a unified text-extraction interface over
// heterogeneous document formats: PDF, Office Open XML (DOCX, XLSX,
// PPTX), images (via OCR), JSON, XML/HTML, and plain text.
//
// Callers supply either a file path or a raw byte buffer and receive
// extracted text without knowing the underlying format ahead of time.
// Format identification runs along two axes: file paths classify by
// extension, byte buffers by content sniffing (magic bytes and
// structural markers).
//
// Basic usage:
//
//	p := parsekit.New()
//	text, err := p.ParseFile("report.docx")
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	p := parsekit.New(
//	    parsekit.WithMaxSize(10<<20),
//	    parsekit.WithStrictMode(true),
//	)
//	text, err := p.ParseBytes(data)
//
// A Parser is an immutable value after construction and is safe for
// concurrent use. Unrecognized input never fails classification: it
// degrades to plain-text extraction. Callers that need strictness can
// check DetectFormat before parsing.
//
// OCR for image formats requires the "ocr" build tag and a system
// Tesseract installation; without the tag, image extraction returns
// ocr.ErrOCRNotEnabled.
package parsekit

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/parsekit/format"
)

// Parser extracts text from documents according to its immutable
// configuration.
type Parser struct {
	cfg Config
}

// New creates a Parser with the given options applied over defaults
// (lenient mode, depth limit 100, no size limit, UTF-8).
func New(opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{cfg: cfg}
}

// Config returns a copy of the parser's configuration.
func (p *Parser) Config() Config {
	return p.cfg
}

// StrictMode reports whether the parser runs in strict mode.
func (p *Parser) StrictMode() bool {
	return p.cfg.StrictMode
}

// Parse returns the trimmed text of a string input.
// Empty input is an error.
func (p *Parser) Parse(input string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	return strings.TrimSpace(input), nil
}

// ParseFile reads and extracts text from the file at path.
//
// The format is classified by file extension; content sniffing runs
// only when the extension is unrecognized, so a misleading extension
// wins over the file's actual content here. Use ParseBytes for pure
// content-based routing.
func (p *Parser) ParseFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	tag := format.DetectPath(path)
	if tag == format.Unknown {
		tag = format.DetectBytes(data)
	}
	return p.dispatch(tag, data)
}

// ParseBytes extracts text from an in-memory document, classifying it
// purely by content. The buffer is only read, never retained.
// Empty input is an error.
func (p *Parser) ParseBytes(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}
	return p.dispatch(format.DetectBytes(data), data)
}

// DetectFormat classifies a file path by extension without reading
// the file.
func (p *Parser) DetectFormat(path string) format.Format {
	return format.DetectPath(path)
}

// DetectFormatBytes classifies a byte buffer by content.
func (p *Parser) DetectFormatBytes(data []byte) format.Format {
	return format.DetectBytes(data)
}

// Supports reports whether the path's extension maps to a known
// format.
func (p *Parser) Supports(path string) bool {
	return format.DetectPath(path) != format.Unknown
}

// SupportedFormats returns the file extensions the parser recognizes.
func SupportedFormats() []string {
	return format.SupportedExtensions()
}

// ParsePDF extracts text from PDF bytes.
func (p *Parser) ParsePDF(data []byte) (string, error) {
	return p.dispatch(format.PDF, data)
}

// ParseDOCX extracts text from DOCX bytes.
func (p *Parser) ParseDOCX(data []byte) (string, error) {
	return p.dispatch(format.DOCX, data)
}

// ParseXLSX extracts text from XLSX bytes.
func (p *Parser) ParseXLSX(data []byte) (string, error) {
	return p.dispatch(format.XLSX, data)
}

// ParsePPTX extracts text from PPTX bytes.
func (p *Parser) ParsePPTX(data []byte) (string, error) {
	return p.dispatch(format.PPTX, data)
}

// ParseJSON pretty-prints JSON bytes; invalid JSON comes back as
// plain text rather than an error.
func (p *Parser) ParseJSON(data []byte) (string, error) {
	return p.dispatch(format.JSON, data)
}

// ParseXML strips markup from XML or HTML bytes and returns the text
// content.
func (p *Parser) ParseXML(data []byte) (string, error) {
	return p.dispatch(format.XML, data)
}

// ParseText decodes plain-text bytes per the configured encoding.
func (p *Parser) ParseText(data []byte) (string, error) {
	return p.dispatch(format.Text, data)
}

// OCRImage runs OCR over image bytes (PNG, JPEG, TIFF, BMP). The
// specific image format is sniffed from the data.
func (p *Parser) OCRImage(data []byte) (string, error) {
	tag := format.DetectBytes(data)
	if !tag.IsImage() {
		tag = format.PNG // still routes to the OCR backend, which validates
	}
	return p.dispatch(tag, data)
}

// ParseFile extracts text from a file using a default parser.
func ParseFile(path string) (string, error) {
	return New().ParseFile(path)
}

// ParseBytes extracts text from a byte buffer using a default parser.
func ParseBytes(data []byte) (string, error) {
	return New().ParseBytes(data)
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	text := parsekit.Must(parsekit.ParseFile("document.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

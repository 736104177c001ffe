// Package pdfdoc provides PDF text extraction.
//
// It wraps ledongthuc/pdf, a pure-Go PDF reader, so no CGO or system
// libraries are required. Extraction walks the document page by page;
// pages whose content streams cannot be decoded are skipped rather
// than failing the whole document.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NoTextSentinel is returned as a successful result when a PDF is
// structurally valid but contains no extractable text, typically a
// scanned or image-based document. Callers wanting OCR should route
// such documents to the OCR engine themselves.
const NoTextSentinel = "PDF contains no extractable text (might be scanned/image-based)"

// ExtractText extracts plain text from a PDF document held in memory.
//
// A structurally invalid document returns an error. A valid document
// with no text content returns NoTextSentinel with a nil error.
func ExtractText(data []byte) (result string, err error) {
	// The underlying reader panics on some malformed object graphs;
	// surface those as errors like any other structural failure.
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = fmt.Errorf("parsing PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; partial text beats no text.
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}

		if text.Len() > 0 {
			text.WriteByte('\n')
		}
		text.WriteString(pageText)
	}

	result = strings.TrimSpace(text.String())
	if result == "" {
		return NoTextSentinel, nil
	}
	return result, nil
}

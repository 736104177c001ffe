package parsekit

import (
	"fmt"

	"github.com/tsawler/parsekit/docx"
	"github.com/tsawler/parsekit/format"
	"github.com/tsawler/parsekit/jsondoc"
	"github.com/tsawler/parsekit/ocr"
	"github.com/tsawler/parsekit/pdfdoc"
	"github.com/tsawler/parsekit/pptx"
	"github.com/tsawler/parsekit/textenc"
	"github.com/tsawler/parsekit/xlsx"
	"github.com/tsawler/parsekit/xmldoc"
)

// dispatch routes classified input to its extraction backend.
//
// The size limit is enforced here, once, so that every entry point and
// every format receives identical enforcement; backends never check
// size themselves. All backend failures come back classified as
// *BackendError. The switch over the tag is exhaustive: Unknown and
// Text share the plain-text path, so there is no failing arm.
func (p *Parser) dispatch(tag format.Format, data []byte) (string, error) {
	if p.cfg.MaxSize > 0 && int64(len(data)) > p.cfg.MaxSize {
		return "", &SizeError{Size: int64(len(data)), Limit: p.cfg.MaxSize}
	}

	switch tag {
	case format.PDF:
		return p.extractPDF(data)
	case format.DOCX:
		text, err := docx.ExtractText(data)
		return text, classifyBackendError(tag, err)
	case format.XLSX:
		text, err := xlsx.ExtractText(data)
		return text, classifyBackendError(tag, err)
	case format.PPTX:
		text, err := pptx.ExtractText(data)
		return text, classifyBackendError(tag, err)
	case format.PNG, format.JPEG, format.TIFF, format.BMP:
		text, err := ocr.ExtractText(data)
		return text, classifyBackendError(tag, err)
	case format.JSON:
		return p.extractJSON(data)
	case format.XML:
		text, err := xmldoc.Extract(data, p.cfg.StrictMode)
		return text, classifyBackendError(tag, err)
	case format.Text, format.Unknown:
		return p.extractText(data)
	default:
		// Unreachable with the closed tag set; treat like Unknown.
		return p.extractText(data)
	}
}

// extractPDF runs the PDF backend. A structurally valid document with
// no text is a successful extraction carrying a sentinel message, not
// an error; that distinction is made by the backend.
func (p *Parser) extractPDF(data []byte) (string, error) {
	text, err := pdfdoc.ExtractText(data)
	if err != nil {
		return "", classifyBackendError(format.PDF, err)
	}
	return text, nil
}

// extractJSON pretty-prints JSON input. Invalid JSON is not an error:
// the raw text is returned unmodified. In strict mode the configured
// depth bound is enforced first.
func (p *Parser) extractJSON(data []byte) (string, error) {
	if p.cfg.StrictMode && p.cfg.MaxDepth > 0 {
		depth, err := jsondoc.Depth(data)
		if err == nil && depth > int(p.cfg.MaxDepth) {
			return "", classifyBackendError(format.JSON,
				fmt.Errorf("nesting depth %d exceeds maximum %d", depth, p.cfg.MaxDepth))
		}
	}

	pretty, err := jsondoc.Pretty(data)
	if err != nil {
		// Sniffing saw a '{' or '[' but the body is not valid JSON;
		// fall back to treating it as plain text.
		return p.extractText(data)
	}
	return pretty, nil
}

// extractText decodes plain text per the configured encoding. The
// *textenc.EncodingError cause stays reachable through errors.As on
// the returned *BackendError.
func (p *Parser) extractText(data []byte) (string, error) {
	text, err := textenc.Decode(data, p.cfg.Encoding, p.cfg.StrictMode)
	if err != nil {
		return "", classifyBackendError(format.Text, err)
	}
	return text, nil
}

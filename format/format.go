// Package format provides file format detection for the parsekit library.
//
// Detection runs along two independent axes: DetectPath classifies by
// file extension, and DetectBytes classifies by inspecting leading bytes
// and structural markers. Neither ever fails; unrecognized input resolves
// to Unknown (extensions) or Text (content), and both of those route to
// the plain-text extraction path downstream.
package format

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// XLSX indicates a spreadsheet document (.xlsx, or legacy .xls).
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) document.
	PPTX
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a BMP image.
	BMP
	// JSON indicates a JSON document.
	JSON
	// XML indicates an XML or HTML document. HTML is folded into XML
	// because both are extracted the same way: strip markup, keep text.
	XML
	// Text indicates plain text (including Markdown and CSV).
	Text
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	case XLSX:
		return "xlsx"
	case PPTX:
		return "pptx"
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	case JSON:
		return "json"
	case XML:
		return "xml"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// MIME returns the canonical MIME type for the format. Unknown maps to
// application/octet-stream.
func (f Format) MIME() string {
	switch f {
	case PDF:
		return "application/pdf"
	case DOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case PPTX:
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case TIFF:
		return "image/tiff"
	case BMP:
		return "image/bmp"
	case JSON:
		return "application/json"
	case XML:
		return "application/xml"
	case Text:
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// IsImage reports whether the format is routed to the OCR engine.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF, BMP:
		return true
	}
	return false
}

// extensionTable maps a lowercase file extension (without the leading
// dot) to its format. Built once at startup and never mutated, so it is
// safe for unsynchronized concurrent reads.
var extensionTable = map[string]Format{
	"pdf":      PDF,
	"docx":     DOCX,
	"xlsx":     XLSX,
	"xls":      XLSX,
	"pptx":     PPTX,
	"png":      PNG,
	"jpg":      JPEG,
	"jpeg":     JPEG,
	"tiff":     TIFF,
	"tif":      TIFF,
	"bmp":      BMP,
	"json":     JSON,
	"xml":      XML,
	"html":     XML,
	"htm":      XML,
	"txt":      Text,
	"text":     Text,
	"md":       Text,
	"markdown": Text,
	"csv":      Text,
}

// SupportedExtensions returns the file extensions (without the leading
// dot) that classify to a known format. The result is a fresh slice in
// stable order; callers may modify it freely.
func SupportedExtensions() []string {
	return []string{
		"pdf", "docx", "xlsx", "xls", "pptx",
		"png", "jpg", "jpeg", "tiff", "tif", "bmp",
		"json", "xml", "html", "htm",
		"txt", "text", "md", "markdown", "csv",
	}
}

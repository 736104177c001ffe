package format

import (
	"bytes"
	"strings"
)

// DetectPath determines the format from a file path's extension.
//
// The extension is the substring after the last '.' in the final path
// segment, compared case-insensitively. A path with no extension, an
// empty path, or an unrecognized extension returns Unknown. Paths
// ending in a separator (directory-like paths) also return Unknown.
//
// A bare dot-prefixed name with no further dot (e.g. ".json") is
// treated as having that whole trailing token as its extension, so
// ".json" classifies as JSON. This is deliberate: such names are far
// more often "extension only" than hidden files in the inputs this
// library sees.
func DetectPath(path string) Format {
	if path == "" {
		return Unknown
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return Unknown
	}

	base := path
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndexByte(base, '.')
	if dot < 0 || dot == len(base)-1 {
		return Unknown
	}
	ext := strings.ToLower(base[dot+1:])

	if f, ok := extensionTable[ext]; ok {
		return f
	}
	return Unknown
}

// Magic byte signatures with a fixed width. Checked before any textual
// sniffing because they are unambiguous at their full length.
var (
	magicPDF     = []byte("%PDF")
	magicPNG     = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	magicJPEG    = []byte{0xFF, 0xD8, 0xFF}
	magicBMP     = []byte("BM")
	magicTIFFLE  = []byte("II\x2A\x00")
	magicTIFFBE  = []byte("MM\x00\x2A")
	magicOLE     = []byte{0xD0, 0xCF, 0x11, 0xE0}
	magicZIP     = []byte("PK")
	magicXMLDecl = []byte("<?xml")
)

// zipPeekWindow bounds how far into a ZIP archive the sniffer searches
// for Office directory markers. Local file headers carry entry names
// inline, so the first couple of kilobytes are enough to tell the three
// Office Open XML families apart without parsing the archive.
const zipPeekWindow = 2000

// DetectBytes determines the format from a byte buffer's content,
// independent of any file name.
//
// Checks run in a fixed priority order: fixed-width binary magic
// numbers first (PDF, images, OLE), then the ZIP family, then textual
// sniffs (XML/HTML, JSON). The order matters because short signatures
// can be prefixes of longer content; first match wins.
//
// An empty buffer classifies as Text rather than failing: emptiness is
// a policy decision for the parsing operation, not for the sniffer.
// Unrecognized content likewise falls back to Text.
func DetectBytes(data []byte) Format {
	if len(data) == 0 {
		return Text
	}

	if bytes.HasPrefix(data, magicPDF) {
		return PDF
	}
	if bytes.HasPrefix(data, magicPNG) {
		return PNG
	}
	if bytes.HasPrefix(data, magicJPEG) {
		return JPEG
	}
	if bytes.HasPrefix(data, magicBMP) {
		return BMP
	}
	if bytes.HasPrefix(data, magicTIFFLE) || bytes.HasPrefix(data, magicTIFFBE) {
		return TIFF
	}

	// OLE compound document: legacy binary Office. Folded into XLSX;
	// legacy Word binaries share this signature and will misroute.
	// Known limitation, deliberately preserved.
	if bytes.HasPrefix(data, magicOLE) {
		return XLSX
	}

	if bytes.HasPrefix(data, magicZIP) {
		return detectOfficeFormat(data)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, magicXMLDecl) || bytes.HasPrefix(trimmed, []byte("<!")) {
		return XML
	}
	if window := lowerPrefix(trimmed, 14); strings.Contains(window, "<!doctype") || strings.Contains(window, "<html") {
		return XML
	}

	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}

	return Text
}

// detectOfficeFormat disambiguates the ZIP-based Office Open XML
// formats by searching the leading window of the archive for the
// directory prefixes each family writes. This is a bounded best-effort
// inspection, not an archive parse. A ZIP with no recognizable marker
// defaults to XLSX, the most commonly parsed Office format.
func detectOfficeFormat(data []byte) Format {
	window := data
	if len(window) > zipPeekWindow {
		window = window[:zipPeekWindow]
	}

	switch {
	case bytes.Contains(window, []byte("word/")):
		return DOCX
	case bytes.Contains(window, []byte("xl/")):
		return XLSX
	case bytes.Contains(window, []byte("ppt/")):
		return PPTX
	default:
		return XLSX
	}
}

// lowerPrefix returns up to n leading bytes of data, lowercased.
func lowerPrefix(data []byte, n int) string {
	if len(data) > n {
		data = data[:n]
	}
	return strings.ToLower(string(data))
}

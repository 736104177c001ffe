// Package docx provides DOCX (Office Open XML word processing)
// text extraction.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.Reader
	document  *documentXML
}

// NewReader opens a DOCX document held in memory.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return r, nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses word/document.xml.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	return xml.Unmarshal(data, r.document)
}

// Text returns the document's text content. Paragraphs are separated
// by newlines; table cells within a row are separated by tabs. The
// result has leading and trailing whitespace trimmed.
func (r *Reader) Text() string {
	if r.document == nil || r.document.Body == nil {
		return ""
	}

	var b strings.Builder
	for _, p := range r.document.Body.Paragraphs {
		b.WriteString(p.text())
		b.WriteByte('\n')
	}
	for _, tbl := range r.document.Body.Tables {
		for _, row := range tbl.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				cellParts := make([]string, 0, len(cell.Paragraphs))
				for _, p := range cell.Paragraphs {
					cellParts = append(cellParts, p.text())
				}
				cells = append(cells, strings.Join(cellParts, " "))
			}
			b.WriteString(strings.Join(cells, "\t"))
			b.WriteByte('\n')
		}
	}

	return strings.TrimSpace(b.String())
}

// ExtractText extracts text from a DOCX document held in memory.
func ExtractText(data []byte) (string, error) {
	r, err := NewReader(data)
	if err != nil {
		return "", err
	}
	return r.Text(), nil
}

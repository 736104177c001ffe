// Package xlsx provides XLSX (Office Open XML spreadsheet) text
// extraction.
package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
)

// Reader provides access to XLSX document content.
type Reader struct {
	zipReader     *zip.Reader
	workbook      *workbookXML
	sharedStrings []string
	sheetRels     map[string]string // relationship ID -> target path
}

// NewReader opens an XLSX workbook held in memory.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
		sheetRels: make(map[string]string),
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	if err := r.parseWorkbook(); err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}

	// Shared strings are optional.
	_ = r.parseSharedStrings()

	return r, nil
}

// validate checks that required XLSX files exist.
func (r *Reader) validate() error {
	required := []string{
		"xl/workbook.xml",
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

// parseRelationships parses the workbook relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil // Relationships are optional; sheet paths fall back to convention.
	}

	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return err
	}

	for _, rel := range rels.Relationship {
		r.sheetRels[rel.ID] = rel.Target
	}

	return nil
}

// parseWorkbook parses the main workbook file.
func (r *Reader) parseWorkbook() error {
	data, err := r.getFileContent("xl/workbook.xml")
	if err != nil {
		return err
	}

	r.workbook = &workbookXML{}
	return xml.Unmarshal(data, r.workbook)
}

// parseSharedStrings parses the shared strings table.
func (r *Reader) parseSharedStrings() error {
	data, err := r.getFileContent("xl/sharedStrings.xml")
	if err != nil {
		return err
	}

	var sst sharedStringsXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return err
	}

	r.sharedStrings = make([]string, len(sst.SI))
	for i, si := range sst.SI {
		if si.T != "" {
			r.sharedStrings[i] = si.T
		} else {
			// Rich text: concatenate all runs.
			var text strings.Builder
			for _, run := range si.R {
				text.WriteString(run.T)
			}
			r.sharedStrings[i] = text.String()
		}
	}

	return nil
}

// sheetPath resolves the archive path for a sheet, preferring the
// relationship target and falling back to the conventional location.
func (r *Reader) sheetPath(s sheetXML, index int) string {
	if target, ok := r.sheetRels[s.RID]; ok && target != "" {
		if strings.HasPrefix(target, "/") {
			return strings.TrimPrefix(target, "/")
		}
		return path.Join("xl", target)
	}
	return fmt.Sprintf("xl/worksheets/sheet%d.xml", index+1)
}

// cellValue resolves a cell to its text content.
func (r *Reader) cellValue(c cellXML) string {
	switch c.Type {
	case "s": // shared string
		idx, err := strconv.Atoi(c.Value)
		if err != nil || idx < 0 || idx >= len(r.sharedStrings) {
			return ""
		}
		return r.sharedStrings[idx]
	case "inlineStr":
		return c.InlineString.T
	case "b": // boolean
		if c.Value == "1" {
			return "TRUE"
		}
		return "FALSE"
	default: // numbers, formula results, plain strings
		return c.Value
	}
}

// Text returns the workbook's content as text. Each sheet is prefixed
// with "Sheet: <name>", followed by its rows with cells separated by
// tabs.
func (r *Reader) Text() (string, error) {
	var b strings.Builder

	for i, sheet := range r.workbook.Sheets.Sheet {
		b.WriteString(fmt.Sprintf("Sheet: %s\n", sheet.Name))

		data, err := r.getFileContent(r.sheetPath(sheet, i))
		if err != nil {
			// Sheet listed in the workbook but missing from the
			// archive; emit the header and move on.
			b.WriteByte('\n')
			continue
		}

		var ws worksheetXML
		if err := xml.Unmarshal(data, &ws); err != nil {
			return "", fmt.Errorf("parsing worksheet %q: %w", sheet.Name, err)
		}

		for _, row := range ws.SheetData.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, c := range row.Cells {
				cells = append(cells, r.cellValue(c))
			}
			b.WriteString(strings.Join(cells, "\t"))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// ExtractText extracts text from an XLSX workbook held in memory.
func ExtractText(data []byte) (string, error) {
	r, err := NewReader(data)
	if err != nil {
		return "", err
	}
	return r.Text()
}

// Package pptx provides PPTX (Office Open XML presentation) text
// extraction.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// Reader provides access to PPTX document content.
type Reader struct {
	zipReader  *zip.Reader
	slidePaths []string
}

// NewReader opens a PPTX document held in memory.
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

	if err := r.resolveSlides(); err != nil {
		return nil, fmt.Errorf("resolving slides: %w", err)
	}

	return r, nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"ppt/presentation.xml",
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

// resolveSlides determines slide paths in presentation order, using
// the slide ID list and presentation relationships. If either part is
// missing it falls back to the slide files in name order.
func (r *Reader) resolveSlides() error {
	ordered, err := r.slidesFromPresentation()
	if err == nil && len(ordered) > 0 {
		r.slidePaths = ordered
		return nil
	}

	for _, f := range r.zipReader.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			r.slidePaths = append(r.slidePaths, f.Name)
		}
	}
	sort.Strings(r.slidePaths)
	return nil
}

// slidesFromPresentation reads the slide order from presentation.xml
// and resolves each slide's relationship ID to its archive path.
func (r *Reader) slidesFromPresentation() ([]string, error) {
	presData, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var pres presentationXML
	if err := xml.Unmarshal(presData, &pres); err != nil {
		return nil, err
	}

	relsData, err := r.getFileContent("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, err
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(relsData, &rels); err != nil {
		return nil, err
	}

	targets := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		targets[rel.ID] = rel.Target
	}

	var paths []string
	for _, id := range pres.SlideIDList.SlideIDs {
		target, ok := targets[id.RID]
		if !ok {
			continue
		}
		if strings.HasPrefix(target, "/") {
			paths = append(paths, strings.TrimPrefix(target, "/"))
		} else {
			paths = append(paths, path.Join("ppt", target))
		}
	}
	return paths, nil
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slidePaths)
}

// Text returns the text content of all slides in presentation order.
// Text runs within a paragraph are concatenated; paragraphs are
// separated by newlines, slides by blank lines.
func (r *Reader) Text() (string, error) {
	var slides []string

	for _, p := range r.slidePaths {
		data, err := r.getFileContent(p)
		if err != nil {
			continue
		}

		var slide slideXML
		if err := xml.Unmarshal(data, &slide); err != nil {
			return "", fmt.Errorf("parsing slide %q: %w", p, err)
		}

		text := slide.text()
		if text != "" {
			slides = append(slides, text)
		}
	}

	return strings.Join(slides, "\n\n"), nil
}

// ExtractText extracts text from a PPTX document held in memory.
func ExtractText(data []byte) (string, error) {
	r, err := NewReader(data)
	if err != nil {
		return "", err
	}
	return r.Text()
}

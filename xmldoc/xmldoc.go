// Package xmldoc provides markup stripping for XML and HTML
// documents: tags are discarded and the concatenated text content is
// returned.
//
// HTML is handled by the tolerant parser from golang.org/x/net/html,
// which never fails on malformed markup. XML is tokenized with
// encoding/xml; outside strict mode, tokenization errors terminate the
// scan and whatever text was collected so far is returned.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract strips markup from data and returns the concatenated text
// content, with text nodes separated by single spaces.
//
// In strict mode a malformed XML document is an error; otherwise
// extraction is best-effort and never fails.
func Extract(data []byte, strict bool) (string, error) {
	if looksLikeHTML(data) {
		return extractHTML(data)
	}
	return extractXML(data, strict)
}

// looksLikeHTML reports whether the content should go through the
// HTML parser rather than the XML tokenizer.
func looksLikeHTML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	window := trimmed
	if len(window) > 64 {
		window = window[:64]
	}
	lower := strings.ToLower(string(window))
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}

// extractHTML walks the parsed HTML tree collecting text nodes,
// skipping script and style elements.
func extractHTML(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		// html.Parse only fails on reader errors, which cannot happen
		// with a bytes.Reader, but keep the path honest.
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}

// extractXML tokenizes the document and collects character data.
func extractXML(data []byte, strict bool) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = strict
	if !strict {
		dec.AutoClose = xml.HTMLAutoClose
		dec.Entity = xml.HTMLEntity
	}
	// Accept any declared charset; transcoding happens elsewhere.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var parts []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if strict {
				return "", fmt.Errorf("XML parse error: %w", err)
			}
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			if text := strings.TrimSpace(string(cd)); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, " "), nil
}

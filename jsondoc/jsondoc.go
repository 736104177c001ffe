// Package jsondoc provides JSON pretty-printing for the text
// extraction pipeline.
//
// JSON is the one format whose "extracted text" is the document
// itself, reformatted for readability. Invalid JSON is not an error
// at this layer: callers fall back to returning the raw text.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pretty decodes data as JSON and re-encodes it with two-space
// indentation. Numbers pass through verbatim (no float rounding).
// Returns an error if data is not valid JSON; the caller decides
// whether that is fatal or a passthrough case.
func Pretty(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	// Reject trailing garbage after the first value.
	if dec.More() {
		return "", fmt.Errorf("invalid JSON: trailing data after top-level value")
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("re-encoding JSON: %w", err)
	}
	return string(out), nil
}

// Depth returns the maximum nesting depth of the JSON value in data,
// counting objects and arrays. Invalid JSON returns an error. Used to
// enforce a configured depth bound before pretty-printing in strict
// contexts.
func Depth(data []byte) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	depth, maxDepth := 0, 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
				if depth > maxDepth {
					maxDepth = depth
				}
			case '}', ']':
				depth--
			}
		}
	}
	if depth != 0 {
		return 0, fmt.Errorf("invalid JSON: unbalanced delimiters")
	}
	return maxDepth, nil
}

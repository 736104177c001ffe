// Package textenc decodes plain-text input into UTF-8 strings
// according to a declared source encoding.
//
// Encodings are resolved by IANA name through golang.org/x/text. Input
// that is invalid under the declared encoding either fails (strict
// mode) or degrades: invalid UTF-8 is re-read as Windows-1252, the
// most common real-world mislabeling, so every byte still maps to some
// character instead of being dropped.
package textenc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// EncodingError reports input that is invalid under the declared
// encoding in strict mode, or an encoding name that cannot be
// resolved.
type EncodingError struct {
	Encoding string
	Reason   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid input for encoding %s: %s", e.Encoding, e.Reason)
}

// Decode converts data from the named source encoding to a UTF-8
// string. An empty name means UTF-8.
//
// In strict mode, bytes that are invalid under the declared encoding
// return an *EncodingError. Otherwise decoding is lenient: invalid
// UTF-8 falls back to Windows-1252, and other encodings substitute
// the Unicode replacement character.
func Decode(data []byte, encodingName string, strict bool) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	name := encodingName
	if name == "" {
		name = "UTF-8"
	}

	if isUTF8(name) {
		if utf8.Valid(data) {
			return string(data), nil
		}
		if strict {
			return "", &EncodingError{Encoding: "UTF-8", Reason: "invalid UTF-8 byte sequence"}
		}
		// Lenient fallback: reinterpret as Windows-1252. Every byte is
		// defined there, so this cannot fail.
		out, _ := charmap.Windows1252.NewDecoder().Bytes(data)
		return string(out), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", &EncodingError{Encoding: name, Reason: "unsupported encoding"}
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if strict {
			return "", &EncodingError{Encoding: name, Reason: err.Error()}
		}
		// Best effort: keep whatever decoded.
	}
	decoded := string(out)

	// x/text decoders substitute U+FFFD rather than failing; in strict
	// mode a substitution the input did not contain is an error.
	if strict && strings.ContainsRune(decoded, utf8.RuneError) && !bytes.Contains(data, []byte("�")) {
		return "", &EncodingError{Encoding: name, Reason: "undecodable byte sequence"}
	}

	return decoded, nil
}

// isUTF8 reports whether name denotes UTF-8.
func isUTF8(name string) bool {
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}

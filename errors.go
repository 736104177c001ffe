package parsekit

import (
	"errors"
	"fmt"

	"github.com/tsawler/parsekit/format"
)

// ErrEmptyInput is returned when text or byte input is present but has
// zero length. It is never returned for empty results: a document with
// no extractable text is a success carrying a sentinel message.
var ErrEmptyInput = errors.New("input cannot be empty")

// ErrSizeExceeded is the sentinel matched by errors.Is for inputs that
// exceed the configured maximum size. The concrete error is a
// *SizeError carrying the numbers.
var ErrSizeExceeded = errors.New("input exceeds maximum allowed size")

// SizeError reports input larger than the configured MaxSize.
type SizeError struct {
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("input size %d exceeds maximum allowed size %d", e.Size, e.Limit)
}

// Is reports a match against ErrSizeExceeded.
func (e *SizeError) Is(target error) bool {
	return target == ErrSizeExceeded
}

// BackendError wraps a failure from an extraction backend. The message
// always begins with a fixed prefix keyed by backend family, so
// callers can pattern-match on the prefix without depending on backend
// internals. The underlying cause is preserved for errors.Is/As.
type BackendError struct {
	// Format is the format whose backend failed.
	Format format.Format
	// Err is the backend's diagnostic, preserved as the message suffix.
	Err error
}

func (e *BackendError) Error() string {
	return familyPrefix(e.Format) + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// familyPrefix returns the fixed message prefix for a backend family.
// These prefixes are a cross-format contract; changing one breaks
// callers that match on it.
func familyPrefix(f format.Format) string {
	switch {
	case f == format.PDF:
		return "Failed to parse PDF: "
	case f == format.DOCX:
		return "Failed to parse DOCX file: "
	case f == format.XLSX:
		return "Failed to parse Excel file: "
	case f == format.PPTX:
		return "Failed to parse PowerPoint file: "
	case f.IsImage():
		return "Failed to load image: "
	case f == format.JSON:
		return "Failed to parse JSON: "
	case f == format.XML:
		return "XML parse error: "
	default:
		return "Failed to parse text: "
	}
}

// classifyBackendError wraps a raw backend failure in a *BackendError
// for the given format. A nil error stays nil; an error that is
// already classified passes through unchanged.
func classifyBackendError(f format.Format, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Format: f, Err: err}
}

package pdfdoc

import (
	"fmt"
	"strings"
	"testing"
)

// buildMinimalPDF assembles a tiny but well-formed PDF with a single
// empty page. Cross-reference offsets are computed from the assembled
// body so the file is valid regardless of formatting changes.
func buildMinimalPDF(t *testing.T) []byte {
	t.Helper()

	header := "%PDF-1.4\n"
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n",
	}

	var b strings.Builder
	b.WriteString(header)
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		b.WriteString(obj)
	}

	xrefPos := b.Len()
	b.WriteString(fmt.Sprintf("xref\n0 %d\n", len(objects)+1))
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		b.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	b.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefPos))

	return []byte(b.String())
}

func TestExtractText_TextlessPDFReturnsSentinel(t *testing.T) {
	data := buildMinimalPDF(t)

	got, err := ExtractText(data)
	if err != nil {
		t.Fatalf("ExtractText() error = %v, want nil", err)
	}
	if got != NoTextSentinel {
		t.Errorf("ExtractText() = %q, want sentinel %q", got, NoTextSentinel)
	}
}

func TestExtractText_MalformedPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("this is not a pdf at all")},
		{"header only", []byte("%PDF-1.4\n")},
		{"truncated body", []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.data)
			if err == nil {
				t.Fatalf("ExtractText(%q) error = nil, want error", tt.data)
			}
			if got != "" {
				t.Errorf("ExtractText(%q) = %q, want empty result on error", tt.data, got)
			}
		})
	}
}

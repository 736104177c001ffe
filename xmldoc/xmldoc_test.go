package xmldoc

import (
	"strings"
	"testing"
)

func TestExtract_XML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple element", `<?xml version="1.0"?><root>hello</root>`, "hello"},
		{"nested elements", `<a><b>one</b><c>two</c></a>`, "one two"},
		{"attributes ignored", `<a href="x">link text</a>`, "link text"},
		{"entities decoded", `<a>fish &amp; chips</a>`, "fish & chips"},
		{"whitespace collapsed", "<a>\n  spaced\n  <b>out</b>\n</a>", "spaced out"},
		{"empty document", ``, ""},
		{"no text content", `<a><b/></a>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract([]byte(tt.input), false)
			if err != nil {
				t.Fatalf("Extract(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtract_MalformedXML(t *testing.T) {
	input := `<a><b>partial text</a>`

	// Lax mode: best effort, no error.
	got, err := Extract([]byte(input), false)
	if err != nil {
		t.Fatalf("Extract(lax) error = %v", err)
	}
	if !strings.Contains(got, "partial text") {
		t.Errorf("Extract(lax) = %q, want collected text", got)
	}

	// Strict mode: surfaced as an error.
	if _, err := Extract([]byte(input), true); err == nil {
		t.Error("Extract(strict) error = nil, want error")
	}
}

func TestExtract_HTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		skip  []string
	}{
		{
			"basic page",
			`<!DOCTYPE html><html><head><title>Title</title></head><body><p>Hello</p><p>World</p></body></html>`,
			[]string{"Title", "Hello", "World"},
			nil,
		},
		{
			"script and style stripped",
			`<html><head><style>p{color:red}</style></head><body><script>var x=1;</script><p>visible</p></body></html>`,
			[]string{"visible"},
			[]string{"color:red", "var x=1"},
		},
		{
			"unclosed tags tolerated",
			`<html><body><p>first<p>second</body>`,
			[]string{"first", "second"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract([]byte(tt.input), true)
			if err != nil {
				t.Fatalf("Extract(%q) error = %v", tt.input, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Extract() = %q, want it to contain %q", got, want)
				}
			}
			for _, skip := range tt.skip {
				if strings.Contains(got, skip) {
					t.Errorf("Extract() = %q, want %q stripped", got, skip)
				}
			}
		})
	}
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"<!DOCTYPE html><html></html>", true},
		{"<!doctype HTML>", true},
		{"<html lang=\"en\">", true},
		{"  \n<html>", true},
		{`<?xml version="1.0"?><root/>`, false},
		{"<a>text</a>", false},
		{"plain text", false},
	}

	for _, tt := range tests {
		if got := looksLikeHTML([]byte(tt.input)); got != tt.want {
			t.Errorf("looksLikeHTML(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

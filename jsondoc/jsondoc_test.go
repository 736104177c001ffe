package jsondoc

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"object", `{"a":1}`, "{\n  \"a\": 1\n}"},
		{"array", `[1,2,3]`, "[\n  1,\n  2,\n  3\n]"},
		{"nested", `{"a":{"b":[1,2]}}`, "{\n  \"a\": {\n    \"b\": [\n      1,\n      2\n    ]\n  }\n}"},
		{"string value", `{"s":"hi"}`, "{\n  \"s\": \"hi\"\n}"},
		{"large number preserved", `{"n":12345678901234567890}`, "{\n  \"n\": 12345678901234567890\n}"},
		{"bare scalar", `42`, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pretty([]byte(tt.input))
			if err != nil {
				t.Fatalf("Pretty(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Pretty(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPretty_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "hello world"},
		{"unterminated object", `{"a":`},
		{"trailing garbage", `{"a":1} extra`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Pretty([]byte(tt.input)); err == nil {
				t.Errorf("Pretty(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestPretty_RoundTrip(t *testing.T) {
	input := `{"name":"Alice","tags":["a","b"],"nested":{"n":1.5,"ok":true},"null":null}`

	pretty, err := Pretty([]byte(input))
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}

	var original, reparsed any
	if err := json.Unmarshal([]byte(input), &original); err != nil {
		t.Fatalf("unmarshal original: %v", err)
	}
	if err := json.Unmarshal([]byte(pretty), &reparsed); err != nil {
		t.Fatalf("unmarshal pretty output: %v", err)
	}
	if !reflect.DeepEqual(original, reparsed) {
		t.Errorf("round-trip mismatch:\noriginal: %#v\nreparsed: %#v", original, reparsed)
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`42`, 0},
		{`{}`, 1},
		{`{"a":1}`, 1},
		{`{"a":{"b":1}}`, 2},
		{`[[[1]]]`, 3},
		{`{"a":[{"b":[]}]}`, 4},
	}

	for _, tt := range tests {
		got, err := Depth([]byte(tt.input))
		if err != nil {
			t.Fatalf("Depth(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestDepth_Unbalanced(t *testing.T) {
	if _, err := Depth([]byte(`{"a":[1`)); err == nil {
		t.Error("Depth(unbalanced) error = nil, want error")
	}
}

package textenc

import (
	"errors"
	"testing"
)

func TestDecode_UTF8(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("hello"), "hello"},
		{"multibyte", []byte("héllo wörld"), "héllo wörld"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, "UTF-8", false)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	// 0xE9 is 'é' in Windows-1252 but invalid as a standalone UTF-8 byte.
	data := []byte{'c', 'a', 'f', 0xE9}

	t.Run("lenient falls back to windows-1252", func(t *testing.T) {
		got, err := Decode(data, "UTF-8", false)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if got != "café" {
			t.Errorf("Decode() = %q, want %q", got, "café")
		}
	})

	t.Run("strict fails", func(t *testing.T) {
		_, err := Decode(data, "UTF-8", true)
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("Decode() error = %v, want *EncodingError", err)
		}
		if encErr.Encoding != "UTF-8" {
			t.Errorf("EncodingError.Encoding = %q, want UTF-8", encErr.Encoding)
		}
	})
}

func TestDecode_NamedEncoding(t *testing.T) {
	// "café" in ISO-8859-1.
	data := []byte{'c', 'a', 'f', 0xE9}

	got, err := Decode(data, "ISO-8859-1", false)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "café" {
		t.Errorf("Decode() = %q, want %q", got, "café")
	}
}

func TestDecode_DefaultEncodingIsUTF8(t *testing.T) {
	got, err := Decode([]byte("plain"), "", false)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "plain" {
		t.Errorf("Decode() = %q, want %q", got, "plain")
	}
}

func TestDecode_UnsupportedEncoding(t *testing.T) {
	_, err := Decode([]byte("data"), "NOT-A-REAL-ENCODING", false)
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("Decode() error = %v, want *EncodingError", err)
	}
}

package tomlerr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"humane/locate"
	"humane/source"
)

func TestValidate(t *testing.T) {
	if err := Validate(source.New("ok.toml", []byte("a = 1\n[s]\nb = \"x\"\n"))); err != nil {
		t.Errorf("Expected valid document, got %v", err)
	}
	if err := Validate(source.New("bad.toml", []byte("a = !\n"))); err == nil {
		t.Error("Expected error for invalid document")
	}
}

// TestPositionParseError: ParseError несёт строку и байтовое смещение
func TestPositionParseError(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{name: "bad value first line", content: "a = !\n", wantLine: 1},
		{name: "bad value second line", content: "a = 1\nb = !\n", wantLine: 2},
		{name: "unterminated string", content: "key = \"val\n", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := source.New("bad.toml", []byte(tt.content))
			decodeErr := Validate(doc)
			if decodeErr == nil {
				t.Fatal("Expected decode error")
			}

			pos, ok := Position(decodeErr, doc)
			if !ok {
				t.Fatalf("Expected position for %v", decodeErr)
			}
			if pos.Line != tt.wantLine {
				t.Errorf("Expected line %d, got %d (%q)", tt.wantLine, pos.Line, pos.Cause)
			}
			if pos.Column < 0 {
				t.Errorf("Expected non-negative column, got %d", pos.Column)
			}
			if pos.Cause == "" {
				t.Error("Expected non-empty cause")
			}
			if strings.Contains(pos.Cause, "toml:") {
				t.Errorf("Expected bare message without prefix, got %q", pos.Cause)
			}
		})
	}
}

func TestPositionNotLocated(t *testing.T) {
	doc := source.New("x.toml", []byte("a = 1\n"))
	if _, ok := Position(errors.New("boom"), doc); ok {
		t.Error("Expected no position for opaque error")
	}
}

// TestDumpDefaultContext: у toml узкое окно по умолчанию (одна строка
// контекста с каждой стороны)
func TestDumpDefaultContext(t *testing.T) {
	doc := source.New("bad.toml", []byte("a = 1\nb = !\nc = 3\nd = 4\n"))
	decodeErr := Validate(doc)
	if decodeErr == nil {
		t.Fatal("Expected decode error")
	}

	var buf bytes.Buffer
	if err := Dump(&buf, decodeErr, doc, Options{}); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "--> bad.toml:2:") {
		t.Errorf("Expected header with line 2, got:\n%s", out)
	}
	if !strings.Contains(out, "a = 1") || !strings.Contains(out, "c = 3") {
		t.Errorf("Expected one context line on each side, got:\n%s", out)
	}
	if strings.Contains(out, "d = 4") {
		t.Errorf("Expected line 4 outside the default window, got:\n%s", out)
	}
}

func TestDumpNoPosition(t *testing.T) {
	doc := source.New("x.toml", []byte("a = 1\n"))

	var buf bytes.Buffer
	err := Dump(&buf, errors.New("boom"), doc, Options{})
	if !errors.Is(err, locate.ErrNoPosition) {
		t.Errorf("Expected ErrNoPosition, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestRegistered(t *testing.T) {
	a, ok := locate.ForPath("config.toml")
	if !ok {
		t.Fatal("Expected adapter for .toml")
	}
	if a.Name != "toml" {
		t.Errorf("Expected adapter %q, got %q", "toml", a.Name)
	}
}

package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// Flags encodes metadata about how a document was obtained and normalized.
type Flags uint8

const (
	// Virtual indicates the document was created from memory (test, stdin, etc.).
	Virtual Flags = 1 << iota
	// HadBOM indicates a UTF-8 byte order mark was stripped on load.
	HadBOM
	// NormalizedCRLF indicates CRLF line endings were rewritten to LF.
	NormalizedCRLF
	// NormalizedNFC indicates the content was renormalized to Unicode NFC.
	NormalizedNFC
)

// Document holds one text document with a precomputed line index.
// Content is normalized on construction (BOM stripped, CRLF folded to LF,
// NFC), so byte offsets reported by decoders running over Content agree with
// the line index. A Document is immutable after construction.
type Document struct {
	Path    string
	Content []byte
	Flags   Flags

	lineIdx []uint32 // byte offsets of every '\n'
}

// Load reads a document from disk and normalizes it.
func Load(path string) (*Document, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, flags := normalize(content)
	return &Document{
		Path:    normalizePath(path),
		Content: content,
		Flags:   flags,
		lineIdx: buildLineIndex(content),
	}, nil
}

// New creates a virtual document (test, stdin, or generated content).
// The content goes through the same normalization as Load.
func New(name string, content []byte) *Document {
	content, flags := normalize(content)
	return &Document{
		Path:    name,
		Content: content,
		Flags:   flags | Virtual,
		lineIdx: buildLineIndex(content),
	}
}

// LineCount returns the number of lines in the document. A trailing newline
// does not open a new line, so "a\n" has one line and "" has zero.
func (d *Document) LineCount() int {
	if len(d.Content) == 0 {
		return 0
	}
	if d.Content[len(d.Content)-1] == '\n' {
		return len(d.lineIdx)
	}
	return len(d.lineIdx) + 1
}

// Line возвращает строку с заданным номером (1-based) без завершающего \n.
// Если строка не существует, возвращает пустую строку.
func (d *Document) Line(lineNum int) string {
	if lineNum < 1 {
		return ""
	}
	n, err := safecast.Conv[uint32](lineNum)
	if err != nil {
		return ""
	}

	var start, end, lenLineIdx, lenContent uint32
	lenLineIdx, err = safecast.Conv[uint32](len(d.lineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(d.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case n == 1:
		start = 0
	case (n - 2) < lenLineIdx:
		start = d.lineIdx[n-2] + 1
	default:
		return ""
	}

	if (n - 1) < lenLineIdx {
		end = d.lineIdx[n-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(d.Content[start:end])
}

// Lines returns every line of the document in order.
func (d *Document) Lines() []string {
	count := d.LineCount()
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, d.Line(i))
	}
	return out
}

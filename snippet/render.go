package snippet

import (
	"fmt"
	"io"
	"strings"

	"humane/source"
)

// panelIndent prefixes every notes-panel row under the block.
const panelIndent = "    "

// Render produces the block rows for req, without trailing newlines.
// On any validation failure it returns no rows at all: callers never see a
// partial block.
func Render(doc *source.Document, req Request) ([]string, error) {
	win, err := extractWindow(doc, req.Line, req.Context)
	if err != nil {
		return nil, err
	}
	if req.Column < 0 {
		return nil, fmt.Errorf("%w: column %d is negative", ErrOutOfRange, req.Column)
	}
	for _, note := range req.Notes {
		if strings.ContainsAny(note, "\n\r") {
			return nil, fmt.Errorf("%w: note %q spans multiple lines", ErrInvalidNote, note)
		}
	}

	switch req.Style {
	case StyleNu:
		return renderNu(doc, req, win), nil
	default:
		return renderClassic(doc, req, win), nil
	}
}

// Write renders req and writes the rows to w, one per line. Nothing is
// written when rendering fails.
func Write(w io.Writer, doc *source.Document, req Request) error {
	rows, err := Render(doc, req)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.Join(rows, "\n")+"\n")
	return err
}

func renderClassic(doc *source.Document, req Request, win window) []string {
	width := gutterWidth(win)
	path := req.Path
	if path == "" {
		path = doc.Path
	}

	rows := make([]string, 0, win.end-win.start+4)
	rows = append(rows, classicHeader(width, path, req.Line, req.Column))
	for n := win.start; n <= win.end; n++ {
		text := doc.Line(n)
		switch {
		case n < req.Line:
			rows = append(rows, classicBefore(n, width, text))
		case n == req.Line:
			rows = append(rows, classicTarget(n, width, text))
			if req.Column > 0 {
				rows = append(rows, classicCaret(width, req.Column))
			}
		default:
			rows = append(rows, classicAfter(n, width, text))
		}
	}
	rows = append(rows, classicClosing(width, req.Cause))

	for _, row := range panelRows(req.Notes) {
		rows = append(rows, panelIndent+row)
	}
	return rows
}

package snippet

import (
	"fmt"

	"humane/source"
)

// window is the inclusive range of 1-based line numbers shown in a block.
type window struct {
	start int
	end   int
}

// extractWindow clamps [line-radius, line+radius] to the document bounds.
// The target line itself is never clamped: a line outside the document is an
// error, not a request for the nearest one.
func extractWindow(doc *source.Document, line, radius int) (window, error) {
	if doc == nil || doc.LineCount() == 0 {
		return window{}, fmt.Errorf("%w: cannot point into empty input", ErrEmptyDocument)
	}
	if radius < 0 {
		return window{}, fmt.Errorf("%w: context %d is negative", ErrInvalidRadius, radius)
	}
	if line < 1 || line > doc.LineCount() {
		return window{}, fmt.Errorf("%w: line %d is not within 1..%d", ErrOutOfRange, line, doc.LineCount())
	}

	start := line - radius
	if start < 1 {
		start = 1
	}
	end := line + radius
	if end > doc.LineCount() {
		end = doc.LineCount()
	}
	return window{start: start, end: end}, nil
}

// Package tomlerr locates and renders BurntSushi/toml decode errors.
// Importing it registers the "toml" adapter for .toml files.
package tomlerr

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"humane/locate"
	"humane/snippet"
	"humane/source"
)

// DefaultContext is the context radius Dump uses when Options.Context is 0.
// TOML errors tend to be line-local, so the default window is tight.
const DefaultContext = 1

func init() {
	locate.Register(locate.Adapter{
		Name:       "toml",
		Extensions: []string{".toml"},
		Context:    DefaultContext,
		Validate:   Validate,
		Position:   Position,
	})
}

// Validate decodes the document and returns the toml library's verdict.
func Validate(doc *source.Document) error {
	var v map[string]any
	return toml.Unmarshal(doc.Content, &v)
}

// Position extracts a location from a toml.ParseError. The parser reports a
// line and a byte offset; the rune column is derived from the offset. When
// the two disagree the parser's line wins and the column is left unknown.
func Position(err error, doc *source.Document) (locate.Position, bool) {
	var pe toml.ParseError
	if !errors.As(err, &pe) {
		return locate.Position{}, false
	}

	cause := pe.Message
	if cause == "" {
		cause = pe.Error()
	}

	lc := doc.LineColForOffset(pe.Position.Start)
	if pe.Position.Line >= 1 && lc.Line != pe.Position.Line {
		return locate.Position{Cause: cause, Line: pe.Position.Line}, true
	}
	return locate.Position{Cause: cause, Line: lc.Line, Column: lc.Col}, true
}

// Options configures Dump.
type Options struct {
	// Context is the context radius; 0 applies DefaultContext.
	Context int
	// Notes are rendered in the panel under the block.
	Notes []string
	// Style selects the block layout.
	Style snippet.Style
	// Path overrides the displayed document path.
	Path string
}

// Dump renders a block for a decode error to w. It fails with
// locate.ErrNoPosition when the error carries no location, and writes
// nothing then.
func Dump(w io.Writer, decodeErr error, doc *source.Document, opts Options) error {
	pos, ok := Position(decodeErr, doc)
	if !ok {
		return fmt.Errorf("%w: %w", locate.ErrNoPosition, decodeErr)
	}
	ctx := opts.Context
	if ctx == 0 {
		ctx = DefaultContext
	}
	return snippet.Write(w, doc, snippet.Request{
		Cause:   pos.Cause,
		Line:    pos.Line,
		Column:  pos.Column,
		Context: ctx,
		Notes:   opts.Notes,
		Style:   opts.Style,
		Path:    opts.Path,
	})
}

// Package jsonerr locates and renders encoding/json decode errors.
// Importing it registers the "json" adapter for .json files.
package jsonerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"humane/locate"
	"humane/snippet"
	"humane/source"
)

// DefaultContext is the context radius Dump uses when Options.Context is 0.
const DefaultContext = snippet.DefaultContext

func init() {
	locate.Register(locate.Adapter{
		Name:       "json",
		Extensions: []string{".json"},
		Context:    DefaultContext,
		Validate:   Validate,
		Position:   Position,
	})
}

// Validate decodes the document and returns encoding/json's verdict.
func Validate(doc *source.Document) error {
	var v any
	return json.Unmarshal(doc.Content, &v)
}

// Position extracts a line and rune column from a *json.SyntaxError or a
// *json.UnmarshalTypeError. Both carry the byte offset after which decoding
// stopped; the offending byte sits one before it.
func Position(err error, doc *source.Document) (locate.Position, bool) {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		lc := doc.LineColForOffset(int(syn.Offset) - 1)
		return locate.Position{Cause: syn.Error(), Line: lc.Line, Column: lc.Col}, true
	}

	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		lc := doc.LineColForOffset(int(typ.Offset) - 1)
		return locate.Position{Cause: typ.Error(), Line: lc.Line, Column: lc.Col}, true
	}

	return locate.Position{}, false
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

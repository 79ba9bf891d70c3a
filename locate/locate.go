// Package locate defines the contract between format-specific error adapters
// and everything that renders their findings. An adapter knows how to decode
// one format and how to pull a line/column out of that decoder's errors; the
// registry maps file extensions to adapters so callers can dispatch on path
// alone. Adapter packages (jsonerr, tomlerr, yamlerr) register themselves on
// import, database/sql style.
package locate

import (
	"errors"

	"humane/source"
)

// ErrNoPosition reports a decode error that carries no usable location.
var ErrNoPosition = errors.New("no position in error")

// Position is a located cause: where a decode failed and why, in terms the
// snippet renderer understands. Column 0 means the format library reported
// no column.
type Position struct {
	Cause  string
	Line   int
	Column int
}

// Adapter binds one document format to its decode and locate logic.
type Adapter struct {
	// Name identifies the format ("json", "toml", ...).
	Name string
	// Extensions lists the file extensions handled, with leading dots.
	Extensions []string
	// Context is the window radius the format prefers in rendered blocks.
	// Zero falls back to the renderer's default.
	Context int
	// Validate decodes the document and returns the library's verdict.
	Validate func(doc *source.Document) error
	// Position extracts a location from an error produced by this format's
	// decoder. ok is false when the error carries no position; callers fall
	// back to the raw error text then.
	Position func(err error, doc *source.Document) (Position, bool)
}

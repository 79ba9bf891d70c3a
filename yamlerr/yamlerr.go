// Package yamlerr locates and renders gopkg.in/yaml.v3 decode errors.
// Importing it registers the "yaml" adapter for .yaml and .yml files.
//
// yaml.v3 exposes no structured position type: syntax errors embed the line
// in their message and type errors carry per-entry "line N:" strings. Both
// carry no column, so positions reported here always leave Column at 0 and
// blocks render without a caret row.
package yamlerr

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"humane/locate"
	"humane/snippet"
	"humane/source"
)

// DefaultContext is the context radius Dump uses when Options.Context is 0.
const DefaultContext = snippet.DefaultContext

var (
	syntaxLineRe = regexp.MustCompile(`^yaml: line (\d+): (.+)$`)
	typeLineRe   = regexp.MustCompile(`^line (\d+): (.+)$`)
)

func init() {
	locate.Register(locate.Adapter{
		Name:       "yaml",
		Extensions: []string{".yaml", ".yml"},
		Context:    DefaultContext,
		Validate:   Validate,
		Position:   Position,
	})
}

// Validate decodes the document and returns the yaml library's verdict.
// Note that an empty document is valid YAML (it decodes to null).
func Validate(doc *source.Document) error {
	var v any
	return yaml.Unmarshal(doc.Content, &v)
}

// Position extracts a line from a yaml.v3 error. For a *yaml.TypeError the
// first located entry wins; for other errors the "yaml: line N:" message
// prefix is parsed. ok is false when no line can be recovered.
func Position(err error, doc *source.Document) (locate.Position, bool) {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		for _, msg := range te.Errors {
			if pos, ok := matchLine(typeLineRe, msg); ok {
				return pos, true
			}
		}
		return locate.Position{}, false
	}

	return matchLine(syntaxLineRe, err.Error())
}

func matchLine(re *regexp.Regexp, msg string) (locate.Position, bool) {
	m := re.FindStringSubmatch(msg)
	if m == nil {
		return locate.Position{}, false
	}
	line, err := strconv.Atoi(m[1])
	if err != nil || line < 1 {
		return locate.Position{}, false
	}
	return locate.Position{Cause: m[2], Line: line}, true
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

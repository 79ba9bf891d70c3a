package snippet

// Style selects the block layout.
type Style uint8

const (
	// StyleClassic is the arrow-header layout with a left rail hugging the
	// target line.
	StyleClassic Style = iota
	// StyleNu is the compact layout with the cause on the first row.
	StyleNu
)

// DefaultContext is the context radius used by callers that do not pick one.
const DefaultContext = 2

// Request describes one block to render.
type Request struct {
	// Cause is the one-line explanation shown on the closing row.
	Cause string
	// Line is the 1-based target line. It must exist in the document.
	Line int
	// Column is the 1-based rune column. Zero means the column is unknown:
	// the caret row is omitted and the header keeps its trailing colon.
	// Columns past the end of the line are allowed; the caret floats.
	Column int
	// Context is the number of lines shown on each side of the target.
	// Zero shows the target line only.
	Context int
	// Notes are rendered in a box under the block, one row per note.
	Notes []string
	// Style selects the layout; the zero value is StyleClassic.
	Style Style
	// Path overrides the document path in the header when non-empty.
	Path string
}

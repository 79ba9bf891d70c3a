package snippet

import (
	"strconv"
	"strings"
)

// classicHeader is the location row above the window. With an unknown column
// the trailing colon stays, marking the spot where a column would go.
func classicHeader(width int, path string, line, col int) string {
	head := strings.Repeat(" ", width) + "  --> " + path + ":" + strconv.Itoa(line) + ":"
	if col > 0 {
		head += strconv.Itoa(col)
	}
	return head
}

// classicCaret is the rail row pointing at the column, inserted directly
// under the target line. The caret lands in the same cell as rune `col` of
// the line text; columns past the end of the line float further right.
func classicCaret(width, col int) string {
	return "│ " + strings.Repeat(" ", width) + " │ " + strings.Repeat(" ", col-1) + "↑"
}

// classicClosing terminates the rail and carries the cause. The ❯ sits in
// the same cell as the gutter bars above it, so the cause aligns with the
// line text.
func classicClosing(width int, cause string) string {
	return "╰─" + strings.Repeat("─", width) + "─❯ " + cause
}

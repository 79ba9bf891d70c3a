package snippet

import (
	"strconv"
	"strings"

	"humane/source"
)

// renderNu produces the compact layout: cause first, a location bracket
// hanging off the rail, a plain numbered window, a dotted caret rail, and
// help lines for notes.
//
//	  × Unbalanced quotes
//	   ╭─[config.toml:3:3]
//	 1 │ a
//	 2 │ b
//	 3 │ c=
//	   ·   ▲
//	 4 │ d
//	 5 │ e
//	   ╰────
//	  help: Check the quotes
//
// The ╭, │, · and ╰ all share one column, and the ▲ lands in the same cell
// as rune `Column` of the target line.
func renderNu(doc *source.Document, req Request, win window) []string {
	width := gutterWidth(win)
	rail := strings.Repeat(" ", width+2)
	path := req.Path
	if path == "" {
		path = doc.Path
	}

	loc := path + ":" + strconv.Itoa(req.Line)
	if req.Column > 0 {
		loc += ":" + strconv.Itoa(req.Column)
	}

	rows := make([]string, 0, win.end-win.start+5)
	rows = append(rows, "  × "+req.Cause)
	rows = append(rows, rail+"╭─["+loc+"]")
	for n := win.start; n <= win.end; n++ {
		rows = append(rows, " "+formatLineNumber(n, width)+" │ "+doc.Line(n))
		if n == req.Line && req.Column > 0 {
			rows = append(rows, rail+"·"+strings.Repeat(" ", req.Column)+"▲")
		}
	}
	rows = append(rows, rail+"╰────")
	for _, note := range req.Notes {
		rows = append(rows, "  help: "+note)
	}
	return rows
}

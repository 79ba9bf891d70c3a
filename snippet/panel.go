package snippet

import (
	"strings"
	"unicode/utf8"
)

// panelRows lays the notes out in a rounded box, one note per row with
// single-rune padding and a separator rule between neighbours:
//
//	╭──────────────────╮
//	│ Check the quotes │
//	├──────────────────┤
//	│ Or the brackets  │
//	╰──────────────────╯
//
// Every row is exactly inner+4 runes wide, where inner is the rune count of
// the longest note. Width is measured in runes, matching the rest of the
// block geometry.
func panelRows(notes []string) []string {
	if len(notes) == 0 {
		return nil
	}

	inner := 0
	for _, note := range notes {
		if n := utf8.RuneCountInString(note); n > inner {
			inner = n
		}
	}

	rule := strings.Repeat("─", inner+2)
	rows := make([]string, 0, 2*len(notes)+1)
	rows = append(rows, "╭"+rule+"╮")
	for i, note := range notes {
		if i > 0 {
			rows = append(rows, "├"+rule+"┤")
		}
		pad := strings.Repeat(" ", inner-utf8.RuneCountInString(note))
		rows = append(rows, "│ "+note+pad+" │")
	}
	rows = append(rows, "╰"+rule+"╯")
	return rows
}

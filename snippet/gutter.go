package snippet

import "fmt"

// gutterWidth returns the digit count of the highest line number shown, which
// sets the width of the number field for every row of the block.
func gutterWidth(win window) int {
	return countDigits(win.end)
}

func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}

// formatLineNumber right-aligns n in a field of the given width.
func formatLineNumber(n, width int) string {
	return fmt.Sprintf("%*d", width, n)
}

// Classic gutter rows. Lines above the target carry no rail: the target's ╭
// corner opens it, rows below continue it with │.

func classicBefore(num, width int, text string) string {
	return "  " + formatLineNumber(num, width) + " │ " + text
}

func classicTarget(num, width int, text string) string {
	return "╭╴" + formatLineNumber(num, width) + " │ " + text
}

func classicAfter(num, width int, text string) string {
	return "│ " + formatLineNumber(num, width) + " │ " + text
}

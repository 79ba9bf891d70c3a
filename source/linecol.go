package source

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// LineCol represents a human-readable position in a document.
// Line is 1-based; Col is the 1-based rune index within the line.
type LineCol struct {
	Line int
	Col  int
}

// LineColForOffset converts a byte offset in Content into a line and a rune
// column. Offsets are clamped into [0, len(Content)], so positions reported
// one past the end of the input (common for unexpected-EOF decode errors)
// resolve to the cell after the last rune.
func (d *Document) LineColForOffset(off int) LineCol {
	if off < 0 {
		off = 0
	}
	if off > len(d.Content) {
		off = len(d.Content)
	}

	u, err := safecast.Conv[uint32](off)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}

	line, startOff := d.lineForOffset(u)
	col := utf8.RuneCount(d.Content[startOff:u]) + 1
	return LineCol{Line: line, Col: col}
}

// lineForOffset находит номер строки (1-based) и байтовое смещение её начала
// бинарным поиском по индексу переводов строки.
func (d *Document) lineForOffset(off uint32) (line int, startOff uint32) {
	if len(d.lineIdx) == 0 {
		return 1, 0
	}

	// бинпоиск: находим индекс последнего \n строго перед off
	lo, hi := 0, len(d.lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if d.lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	idx := hi

	if idx < 0 {
		return 1, 0
	}
	return idx + 2, d.lineIdx[idx] + 1
}

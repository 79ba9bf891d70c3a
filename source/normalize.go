package source

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// normalize приводит содержимое к каноническому виду: BOM убран, CRLF
// заменён на LF, юникод в форме NFC. Возвращает флаги выполненных замен.
func normalize(content []byte) ([]byte, Flags) {
	var flags Flags

	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= HadBOM
	}

	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= NormalizedCRLF
	}

	if !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= NormalizedNFC
	}

	return content, flags
}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// Package snippet renders compiler-style error blocks for positions in text
// documents.
//
// # Purpose
//
//   - Turn (document, line, column, cause) into the familiar terminal block:
//     a path header, a numbered context window, a caret under the offending
//     column, and a closing row carrying the cause.
//   - Keep the geometry deterministic and byte-stable so callers can diff,
//     golden-test, and pipe the output.
//
// # Scope
//
// Package snippet performs no IO beyond the io.Writer handed to Write, no
// document parsing, and no colorization. It does not decide where an error
// is; callers (format adapters, CLI) supply the position. Documents come
// from package source.
//
// # Output contract
//
// Rendering is pure: the same document and request always produce the same
// rows, and a failed render produces no rows at all. Two styles are
// supported. StyleClassic is the primary contract:
//
//	   --> config.toml:3:3
//	  1 │ a
//	  2 │ b
//	╭╴3 │ c=
//	│   │   ↑
//	│ 4 │ d
//	│ 5 │ e
//	╰───❯ Unbalanced quotes
//
// StyleNu is a compact alternative with the cause on top. Columns are
// 1-based rune indices; a zero column means "unknown" and suppresses the
// caret row. All layout math counts runes, so tab stops and double-width
// glyphs may render ragged on some terminals.
package snippet

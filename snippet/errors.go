package snippet

import "errors"

// Sentinel errors returned by Render and Write. Failure sites wrap these
// with %w and the offending values, so match with errors.Is.
var (
	// ErrOutOfRange reports a target line outside the document or a
	// negative column.
	ErrOutOfRange = errors.New("position out of range")
	// ErrEmptyDocument reports a document with no lines to point at.
	ErrEmptyDocument = errors.New("document has no lines")
	// ErrInvalidRadius reports a negative context radius.
	ErrInvalidRadius = errors.New("invalid context radius")
	// ErrInvalidNote reports a note that cannot occupy a single panel row.
	ErrInvalidNote = errors.New("invalid note")
)

// Package langerr provides the PositionedError value type the lexer uses
// for diagnostics that carry a source position.
package langerr

import (
	"fmt"
	"strings"
)

// The Kind values produced by the lexer's error path, one per taxonomy
// entry in design note §7.
const (
	KindUnterminatedString      = "unterminated-string"
	KindUnterminatedComment     = "unterminated-block-comment"
	KindInvalidEscape           = "invalid-escape"
	KindInvalidSuffix           = "invalid-number-suffix"
	KindInvalidExponent         = "invalid-exponent"
	KindMalformedCharOrLifetime = "malformed-char-or-lifetime"
	KindUnknownByte             = "unknown-byte"

	// KindInvalidIdentifier is not in the lexical taxonomy itself but
	// shares its Error-token path: the underscore-identifier policy in
	// lexconf.Config rejects a lexeme shape, not a malformed literal.
	KindInvalidIdentifier = "invalid-identifier"
)

// PositionedError is a diagnostic tied to a specific (row, column) in the
// source, optionally with the full source line it occurred on so a caller
// can render a caret under the offending column. It is returned as a value,
// never panicked: lexical errors are produced as token.Error tokens wrapping
// one of these. The grammar toolkit does not use this type.
type PositionedError struct {
	// Kind labels the taxonomy of the error, e.g. "unterminated-string",
	// "invalid-number-suffix". Never shown to a human directly;
	// used by callers that want to distinguish error classes without
	// string-matching Message.
	Kind string

	Row, Column int
	Message     string
	SourceLine  string
}

// New builds a PositionedError with no source line attached.
func New(kind string, row, col int, format string, args ...interface{}) PositionedError {
	return PositionedError{
		Kind:    kind,
		Row:     row,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithSourceLine attaches the full line of source the error occurred on.
func (e PositionedError) WithSourceLine(line string) PositionedError {
	e.SourceLine = line
	return e
}

// Error satisfies the error interface with a single-line rendering.
func (e PositionedError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("error: %s", e.Message)
	}
	return fmt.Sprintf("error: around line %d, column %d: %s", e.Row, e.Column, e.Message)
}

// FullMessage renders the error preceded by the offending source line and a
// caret pointing at Column, when a source line was attached.
func (e PositionedError) FullMessage() string {
	if e.SourceLine == "" {
		return e.Error()
	}
	return e.SourceLineWithCursor() + "\n" + e.Error()
}

// SourceLineWithCursor renders the offending source line with a caret line
// beneath it pointing at Column. Returns "" if no source line is attached.
func (e PositionedError) SourceLineWithCursor() string {
	if e.SourceLine == "" {
		return ""
	}
	cursor := strings.Repeat(" ", max(0, e.Column-1)) + "^"
	return e.SourceLine + "\n" + cursor
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

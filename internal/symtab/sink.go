package symtab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sink receives one formatted "<id> <value>" line per insertion into a
// Table. It is owned exclusively by the lexer that created it and flushed
// once at end of stream, per design note §5.
type Sink interface {
	WriteEntry(id int, value string) error
	Close() error
}

// fileSink is a Sink backed by a buffered file writer.
type fileSink struct {
	f *os.File
	w *bufio.Writer
}

// OpenFileSink creates (or truncates) the file at path and returns a Sink
// writing into it. Failure to open the sink is fatal to the lexing run, per
// design note §7.
func OpenFileSink(path string) (Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create symbol table sink %q: %w", path, err)
	}
	return &fileSink{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *fileSink) WriteEntry(id int, value string) error {
	_, err := s.w.WriteString(strconv.Itoa(id) + " " + value + "\n")
	return err
}

func (s *fileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// NopSink discards every entry. Useful for running the lexer without
// materializing table files, e.g. in tests.
type NopSink struct{}

func (NopSink) WriteEntry(int, string) error { return nil }
func (NopSink) Close() error                 { return nil }

// WriterSink wraps an arbitrary io.Writer (never closed by this Sink;
// Close is a no-op) so callers can capture table output in memory, as the
// tests in this repository do.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) WriteEntry(id int, value string) error {
	_, err := fmt.Fprintf(s.W, "%d %s\n", id, value)
	return err
}

func (s WriterSink) Close() error { return nil }

// FormatChar renders a rune the way the char_literal_table formats its
// values: printable runes pass through unchanged; the control characters
// named in design note §4.1.6 are rendered with their backslash escape.
func FormatChar(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	case '"':
		return `\"`
	case 0:
		return `\0`
	default:
		return string(r)
	}
}

// EscapeString renders a decoded string literal's runtime value with the
// same escapes FormatChar uses, applied rune-by-rune, for contexts where an
// escaped rendering of a string value is wanted, such as the partial literal
// shown in an unterminated-string diagnostic. The string_literal_table
// itself stores the un-escaped runtime value per design note §6, so this is
// not used there.
func EscapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(FormatChar(r))
	}
	return sb.String()
}

// Package lexer implements L.scan, the token-recognition state machine
// described in design note §4.1.3, built on package buffer and package cursor.
package lexer

import (
	"io"

	"github.com/dekarrin/langtoolkit/internal/buffer"
	"github.com/dekarrin/langtoolkit/internal/cursor"
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/lexconf"
	"github.com/dekarrin/langtoolkit/internal/symtab"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// Sinks holds the five symbol-table sinks the lexer writes to, per design
// §4.1.6. Each is owned exclusively by the Lexer that receives it and
// flushed once, at Close.
type Sinks struct {
	Identifier     symtab.Sink
	CharLiteral    symtab.Sink
	StringLiteral  symtab.Sink
	IntegerLiteral symtab.Sink
	FloatLiteral   symtab.Sink
}

// NopSinks returns a Sinks that discards every entry, for tests that only
// care about the token stream.
func NopSinks() Sinks {
	return Sinks{
		Identifier:     symtab.NopSink{},
		CharLiteral:    symtab.NopSink{},
		StringLiteral:  symtab.NopSink{},
		IntegerLiteral: symtab.NopSink{},
		FloatLiteral:   symtab.NopSink{},
	}
}

// Lexer is a pull iterator over a byte source: the caller invokes Next
// repeatedly until it returns a token.EndOfText token. It never suspends
// except for the blocking read inside a buffer refill (design note §5).
type Lexer struct {
	cur *cursor.Cursor
	cfg lexconf.Config

	idents  *symtab.Table[string]
	chars   *symtab.Table[rune]
	strs    *symtab.Table[string]
	ints    *symtab.Table[string]
	floats  *symtab.Table[string]
	sinks   Sinks

	done bool
	err  error // sticky fatal I/O error, distinct from lexical Error tokens
}

// New constructs a Lexer reading from r using cfg, writing de-duplicated
// lexemes to sinks as they are first seen.
func New(r io.Reader, cfg lexconf.Config, sinks Sinks) (*Lexer, error) {
	buf, err := buffer.New(r, cfg.PageSize)
	if err != nil {
		return nil, err
	}

	return &Lexer{
		cur:    cursor.New(buf),
		cfg:    cfg,
		idents: symtab.New[string](),
		chars:  symtab.New[rune](),
		strs:   symtab.New[string](),
		ints:   symtab.New[string](),
		floats: symtab.New[string](),
		sinks:  sinks,
	}, nil
}

// Err returns the sticky fatal I/O error from a failed buffer refill, if
// any. Once set, every subsequent Next returns an EndOfText token.
func (lx *Lexer) Err() error {
	return lx.err
}

// IdentifierTable, CharLiteralTable, StringLiteralTable, IntegerLiteralTable,
// and FloatLiteralTable expose the five symbol tables built up over the
// lexing run, for callers that want the final id→lexeme mapping beyond what
// was already streamed to the sinks.
func (lx *Lexer) IdentifierTable() *symtab.Table[string]     { return lx.idents }
func (lx *Lexer) CharLiteralTable() *symtab.Table[rune]      { return lx.chars }
func (lx *Lexer) StringLiteralTable() *symtab.Table[string]  { return lx.strs }
func (lx *Lexer) IntegerLiteralTable() *symtab.Table[string] { return lx.ints }
func (lx *Lexer) FloatLiteralTable() *symtab.Table[string]   { return lx.floats }

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentChar(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b) || b == '_'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Next returns the next token in the stream. At true end-of-input it
// returns a token.EndOfText token forever after. It never panics and never
// loops forever (design note §8 "lexer totality").
func (lx *Lexer) Next() token.Token {
	if lx.done || lx.err != nil {
		return token.Token{Kind: token.EndOfText, Pos: lx.cur.Position()}
	}

	lx.skipWhitespace()

	startPos := lx.cur.Position()
	ch, ok, err := lx.cur.Peek()
	if err != nil {
		lx.err = err
		lx.done = true
		return token.Token{Kind: token.EndOfText, Pos: startPos}
	}
	if !ok {
		lx.done = true
		return token.Token{Kind: token.EndOfText, Pos: startPos}
	}

	switch {
	case isASCIIAlpha(ch) || ch == '_':
		return lx.scanIdentOrKeyword(startPos)
	case isASCIIDigit(ch):
		return lx.scanNumber(startPos)
	case ch == '"':
		return lx.scanString(startPos)
	case ch == '\'':
		return lx.scanCharOrLifetime(startPos)
	case ch == '/':
		return lx.scanSlashOrComment(startPos)
	default:
		return lx.scanPunct(startPos, ch)
	}
}

func (lx *Lexer) skipWhitespace() {
	for {
		ch, ok, err := lx.cur.Peek()
		if err != nil {
			lx.err = err
			return
		}
		if !ok || !isSpace(ch) {
			return
		}
		lx.cur.Advance()
	}
}

// advance consumes one byte, trusting the caller already confirmed via Peek
// that there was one to take; it sets lx.err/done on an unexpected failure.
func (lx *Lexer) advance() byte {
	b, ok, err := lx.cur.Advance()
	if err != nil {
		lx.err = err
		lx.done = true
		return 0
	}
	if !ok {
		lx.done = true
		return 0
	}
	return b
}

func (lx *Lexer) peek() (byte, bool) {
	b, ok, err := lx.cur.Peek()
	if err != nil {
		lx.err = err
		return 0, false
	}
	return b, ok
}

func (lx *Lexer) peekAhead(k int) (byte, bool) {
	b, ok, err := lx.cur.PeekAhead(k)
	if err != nil {
		lx.err = err
		return 0, false
	}
	return b, ok
}

// errTok builds an Error token carrying a langerr.PositionedError tagged
// with kind (one of the langerr.Kind* taxonomy constants). This lexer
// streams its input through a double-buffered slab and never retains a
// full source line, so the PositionedError carries no SourceLine; callers
// that want a caret rendering attach one themselves from a line they kept.
func errTok(kind string, pos token.Position, format string, args ...interface{}) token.Token {
	return token.Token{Kind: token.Error, Pos: pos, Err: langerr.New(kind, pos.Row, pos.Column, format, args...)}
}

package lexer

import (
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/symtab"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// scanString handles a double-quoted string literal, per design note §4.1.3
// "String literal": it consumes bytes until an unescaped closing quote,
// including any raw newline, which is ordinary string content rather than a
// terminator. The opening quote has already been peeked but not consumed.
func (lx *Lexer) scanString(start token.Position) token.Token {
	lx.advance() // opening '"'

	var decoded []byte
	for {
		ch, ok := lx.peek()
		if !ok {
			return errTok(langerr.KindUnterminatedString, start, "unterminated string literal (partial: \"%s\")", symtab.EscapeString(string(decoded)))
		}

		if ch == '"' {
			lx.advance()
			break
		}

		if ch == '\\' {
			lx.advance()
			r, err := lx.readEscape()
			if err != nil {
				return errTok(langerr.KindInvalidEscape, start, "invalid string literal: %s", err)
			}
			decoded = append(decoded, []byte(string(r))...)
			continue
		}

		decoded = append(decoded, lx.advance())
	}

	s := string(decoded)
	id, inserted := lx.strs.IDOrInsert(s)
	if inserted {
		lx.writeEntry(lx.sinks.StringLiteral, id, s)
	}
	return token.Token{Kind: token.StringLiteral, Pos: start, StringValue: s, SymbolID: id}
}

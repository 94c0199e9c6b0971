package lexer

import (
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// scanIdentOrKeyword handles identifiers, keywords, and the standalone "_"
// token, per design note §4.1.3 "Identifier or keyword" and §9's Open Question
// resolution (underscore-prefixed identifiers are accepted by default).
func (lx *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	var lexeme []byte

	for {
		ch, ok := lx.peek()
		if !ok || !isIdentChar(ch) {
			break
		}
		lexeme = append(lexeme, lx.advance())
		if lx.done {
			break
		}
	}

	s := string(lexeme)

	if s == "_" {
		return token.Token{Kind: token.Underscore, Pos: start}
	}

	if s[0] == '_' && lx.cfg.RejectUnderscoreIdents {
		return errTok(langerr.KindInvalidIdentifier, start, "identifier %q may not begin with '_' followed by further characters", s)
	}

	if kw, ok := token.Keywords[s]; ok {
		return token.Token{Kind: kw, Pos: start, Lexeme: s}
	}

	id, inserted := lx.idents.IDOrInsert(s)
	if inserted {
		lx.writeEntry(lx.sinks.Identifier, id, s)
	}
	return token.Token{Kind: token.Identifier, Pos: start, Lexeme: s, SymbolID: id}
}

// writeEntry appends a formatted symbol-table entry to sink, sticking any
// write failure onto lx.err; a table-sink write failure is as fatal as a
// buffer-refill failure (design note §7 "failure to... create a table sink is
// fatal").
func (lx *Lexer) writeEntry(sink interface {
	WriteEntry(id int, value string) error
}, id int, value string) {
	if err := sink.WriteEntry(id, value); err != nil && lx.err == nil {
		lx.err = err
	}
}

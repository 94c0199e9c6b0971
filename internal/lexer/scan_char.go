package lexer

import (
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/symtab"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// scanCharOrLifetime disambiguates a char literal ('a', '\n') from a
// lifetime or loop label ('a, 'static, '_), per design note §4.1.3. Both begin with
// a single quote; the distinguishing lookahead is whether a second quote
// closes the literal. Char literals are scanned over single bytes, not full
// UTF-8 runes — this lexer is byte-oriented throughout.
func (lx *Lexer) scanCharOrLifetime(start token.Position) token.Token {
	lx.advance() // opening '

	ch, ok := lx.peek()
	if !ok {
		return errTok(langerr.KindMalformedCharOrLifetime, start, "unterminated character literal")
	}

	if ch == '\\' {
		lx.advance()
		r, err := lx.readEscape()
		if err != nil {
			return errTok(langerr.KindInvalidEscape, start, "invalid character literal: %s", err)
		}
		return lx.closeCharLiteral(start, r)
	}

	if ch == '\'' {
		return errTok(langerr.KindMalformedCharOrLifetime, start, "empty character literal")
	}

	if next, ok := lx.peekAhead(1); ok && next == '\'' {
		r := rune(lx.advance())
		lx.advance() // closing '
		return lx.emitCharLiteral(start, r)
	}

	if isASCIIAlpha(ch) || ch == '_' {
		var lexeme []byte
		lexeme = append(lexeme, '\'')
		for {
			c, ok := lx.peek()
			if !ok || !isIdentChar(c) {
				break
			}
			lexeme = append(lexeme, lx.advance())
		}

		ident := string(lexeme[1:])
		if ident == "static" {
			return token.Token{Kind: token.KwStaticLifetime, Pos: start, Lexeme: string(lexeme)}
		}
		return token.Token{Kind: token.LifetimeOrLabel, Pos: start, Lexeme: string(lexeme)}
	}

	return errTok(langerr.KindMalformedCharOrLifetime, start, "invalid character literal")
}

// closeCharLiteral expects and consumes the closing quote of an escaped
// char literal whose value has already been decoded.
func (lx *Lexer) closeCharLiteral(start token.Position, r rune) token.Token {
	ch, ok := lx.peek()
	if !ok || ch != '\'' {
		return errTok(langerr.KindMalformedCharOrLifetime, start, "unterminated character literal")
	}
	lx.advance()
	return lx.emitCharLiteral(start, r)
}

func (lx *Lexer) emitCharLiteral(start token.Position, r rune) token.Token {
	id, inserted := lx.chars.IDOrInsert(r)
	if inserted {
		lx.writeEntry(lx.sinks.CharLiteral, id, symtab.FormatChar(r))
	}
	return token.Token{Kind: token.CharLiteral, Pos: start, CharValue: r, SymbolID: id}
}

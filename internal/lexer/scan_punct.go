package lexer

import (
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// twoByte consumes a second byte if it matches want, returning the combined
// lexeme and true, or leaves the cursor untouched and returns false.
func (lx *Lexer) twoByte(first byte, want byte) (string, bool) {
	if ch, ok := lx.peek(); ok && ch == want {
		lx.advance()
		return string(first) + string(want), true
	}
	return "", false
}

// scanPunct dispatches punctuation, operators, and delimiters, per design
// §4.1.3. ch has already been peeked but not consumed. A byte matching none
// of the recognized punctuation becomes an Unknown token.
func (lx *Lexer) scanPunct(start token.Position, ch byte) token.Token {
	switch ch {
	case '.':
		if next, ok := lx.peekAhead(1); ok && isASCIIDigit(next) {
			return lx.scanDotNumber(start)
		}
		lx.advance()
		if c, ok := lx.peek(); !ok || c != '.' {
			return token.Token{Kind: token.Dot, Pos: start, Lexeme: "."}
		}
		lx.advance() // second '.'

		if c, ok := lx.peek(); ok && c == '.' {
			lx.advance()
			return token.Token{Kind: token.DotDotDot, Pos: start, Lexeme: "..."}
		}
		if c, ok := lx.peek(); ok && c == '=' {
			lx.advance()
			return token.Token{Kind: token.DotDotEq, Pos: start, Lexeme: "..="}
		}
		return token.Token{Kind: token.DotDot, Pos: start, Lexeme: ".."}

	case '+':
		lx.advance()
		if _, ok := lx.twoByte('+', '='); ok {
			return token.Token{Kind: token.PlusEq, Pos: start, Lexeme: "+="}
		}
		return token.Token{Kind: token.Plus, Pos: start, Lexeme: "+"}

	case '-':
		lx.advance()
		if c, ok := lx.peek(); ok && c == '>' {
			lx.advance()
			return token.Token{Kind: token.RArrow, Pos: start, Lexeme: "->"}
		}
		if _, ok := lx.twoByte('-', '='); ok {
			return token.Token{Kind: token.MinusEq, Pos: start, Lexeme: "-="}
		}
		return token.Token{Kind: token.Minus, Pos: start, Lexeme: "-"}

	case '*':
		lx.advance()
		if _, ok := lx.twoByte('*', '='); ok {
			return token.Token{Kind: token.StarEq, Pos: start, Lexeme: "*="}
		}
		return token.Token{Kind: token.Star, Pos: start, Lexeme: "*"}

	case '%':
		lx.advance()
		if _, ok := lx.twoByte('%', '='); ok {
			return token.Token{Kind: token.PercentEq, Pos: start, Lexeme: "%="}
		}
		return token.Token{Kind: token.Percent, Pos: start, Lexeme: "%"}

	case '^':
		lx.advance()
		if _, ok := lx.twoByte('^', '='); ok {
			return token.Token{Kind: token.CaretEq, Pos: start, Lexeme: "^="}
		}
		return token.Token{Kind: token.Caret, Pos: start, Lexeme: "^"}

	case '!':
		lx.advance()
		if _, ok := lx.twoByte('!', '='); ok {
			return token.Token{Kind: token.NotEq, Pos: start, Lexeme: "!="}
		}
		return token.Token{Kind: token.Not, Pos: start, Lexeme: "!"}

	case '=':
		lx.advance()
		if c, ok := lx.peek(); ok && c == '>' {
			lx.advance()
			return token.Token{Kind: token.FatArrow, Pos: start, Lexeme: "=>"}
		}
		if _, ok := lx.twoByte('=', '='); ok {
			return token.Token{Kind: token.EqEq, Pos: start, Lexeme: "=="}
		}
		return token.Token{Kind: token.Eq, Pos: start, Lexeme: "="}

	case '<':
		lx.advance()
		if c, ok := lx.peek(); ok && c == '-' {
			lx.advance()
			return token.Token{Kind: token.LArrow, Pos: start, Lexeme: "<-"}
		}
		if c, ok := lx.peek(); ok && c == '<' {
			lx.advance()
			if _, ok := lx.twoByte('<', '='); ok {
				return token.Token{Kind: token.ShlEq, Pos: start, Lexeme: "<<="}
			}
			return token.Token{Kind: token.Shl, Pos: start, Lexeme: "<<"}
		}
		if _, ok := lx.twoByte('<', '='); ok {
			return token.Token{Kind: token.LtEq, Pos: start, Lexeme: "<="}
		}
		return token.Token{Kind: token.Lt, Pos: start, Lexeme: "<"}

	case '>':
		lx.advance()
		if c, ok := lx.peek(); ok && c == '>' {
			lx.advance()
			if _, ok := lx.twoByte('>', '='); ok {
				return token.Token{Kind: token.ShrEq, Pos: start, Lexeme: ">>="}
			}
			return token.Token{Kind: token.Shr, Pos: start, Lexeme: ">>"}
		}
		if _, ok := lx.twoByte('>', '='); ok {
			return token.Token{Kind: token.GtEq, Pos: start, Lexeme: ">="}
		}
		return token.Token{Kind: token.Gt, Pos: start, Lexeme: ">"}

	case '&':
		lx.advance()
		if c, ok := lx.peek(); ok && c == '&' {
			lx.advance()
			return token.Token{Kind: token.AndAnd, Pos: start, Lexeme: "&&"}
		}
		if _, ok := lx.twoByte('&', '='); ok {
			return token.Token{Kind: token.AndEq, Pos: start, Lexeme: "&="}
		}
		return token.Token{Kind: token.And, Pos: start, Lexeme: "&"}

	case '|':
		lx.advance()
		if c, ok := lx.peek(); ok && c == '|' {
			lx.advance()
			return token.Token{Kind: token.OrOr, Pos: start, Lexeme: "||"}
		}
		if _, ok := lx.twoByte('|', '='); ok {
			return token.Token{Kind: token.OrEq, Pos: start, Lexeme: "|="}
		}
		return token.Token{Kind: token.Or, Pos: start, Lexeme: "|"}

	case ':':
		lx.advance()
		if c, ok := lx.peek(); ok && c == ':' {
			lx.advance()
			return token.Token{Kind: token.PathSep, Pos: start, Lexeme: "::"}
		}
		return token.Token{Kind: token.Colon, Pos: start, Lexeme: ":"}

	case ';':
		lx.advance()
		return token.Token{Kind: token.Semi, Pos: start, Lexeme: ";"}
	case ',':
		lx.advance()
		return token.Token{Kind: token.Comma, Pos: start, Lexeme: ","}
	case '@':
		lx.advance()
		return token.Token{Kind: token.At, Pos: start, Lexeme: "@"}
	case '#':
		lx.advance()
		return token.Token{Kind: token.Pound, Pos: start, Lexeme: "#"}
	case '$':
		lx.advance()
		return token.Token{Kind: token.Dollar, Pos: start, Lexeme: "$"}
	case '?':
		lx.advance()
		return token.Token{Kind: token.Question, Pos: start, Lexeme: "?"}
	case '~':
		lx.advance()
		return token.Token{Kind: token.Tilde, Pos: start, Lexeme: "~"}
	case '(':
		lx.advance()
		return token.Token{Kind: token.LParen, Pos: start, Lexeme: "("}
	case ')':
		lx.advance()
		return token.Token{Kind: token.RParen, Pos: start, Lexeme: ")"}
	case '[':
		lx.advance()
		return token.Token{Kind: token.LBracket, Pos: start, Lexeme: "["}
	case ']':
		lx.advance()
		return token.Token{Kind: token.RBracket, Pos: start, Lexeme: "]"}
	case '{':
		lx.advance()
		return token.Token{Kind: token.LBrace, Pos: start, Lexeme: "{"}
	case '}':
		lx.advance()
		return token.Token{Kind: token.RBrace, Pos: start, Lexeme: "}"}
	}

	b := lx.advance()
	return token.Token{Kind: token.Unknown, Pos: start, Unk: rune(b)}
}

// scanDotNumber handles a float literal that begins with '.', e.g. ".5" or
// ".5e10", per design note §4.1.3's number rule read together with the punctuation
// table: a bare '.' not followed by a digit is always the Dot token, decided
// by scanPunct's one-byte lookahead before this is ever called.
func (lx *Lexer) scanDotNumber(start token.Position) token.Token {
	lexeme := []byte{lx.advance()} // the '.'
	lexeme = append(lexeme, lx.consumeDigitsAndUnderscores()...)

	if ch, ok := lx.peek(); ok && (ch == 'e' || ch == 'E') {
		expLexeme := []byte{lx.advance()}
		if sign, ok := lx.peek(); ok && (sign == '+' || sign == '-') {
			expLexeme = append(expLexeme, lx.advance())
		}
		digits := lx.consumeDigitsAndUnderscores()
		if len(digits) == 0 {
			lexeme = append(lexeme, expLexeme...)
			return errTok(langerr.KindInvalidExponent, start, "invalid exponent in numeric literal %q: missing exponent digits", string(lexeme))
		}
		expLexeme = append(expLexeme, digits...)
		lexeme = append(lexeme, expLexeme...)
	}

	if ch, ok := lx.peek(); ok && isIdentChar(ch) {
		var suffix []byte
		for {
			ch, ok := lx.peek()
			if !ok || !isIdentChar(ch) {
				break
			}
			suffix = append(suffix, lx.advance())
		}
		return errTok(langerr.KindInvalidSuffix, start, "invalid suffix '%s' on numeric literal %q", string(suffix), string(lexeme))
	}

	s := string(lexeme)
	id, inserted := lx.floats.IDOrInsert(s)
	if inserted {
		lx.writeEntry(lx.sinks.FloatLiteral, id, s)
	}
	return token.Token{Kind: token.FloatLiteral, Pos: start, Lexeme: s, SymbolID: id}
}

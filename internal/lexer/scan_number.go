package lexer

import (
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// scanNumber handles integer and float literals per design note §4.1.3 "Number".
func (lx *Lexer) scanNumber(start token.Position) token.Token {
	var lexeme []byte
	isFloat := false

	// integer portion: greedy digits and '_', with '_' only ever appearing
	// after at least one digit has been consumed (guaranteed here since the
	// dispatcher only enters this rule on seeing a digit).
	lexeme = append(lexeme, lx.consumeDigitsAndUnderscores()...)

	// fractional portion, unless this is range syntax ("..") in disguise.
	if ch, ok := lx.peek(); ok && ch == '.' {
		if next, ok2 := lx.peekAhead(1); !(ok2 && next == '.') {
			isFloat = true
			lexeme = append(lexeme, lx.advance()) // the '.'
			lexeme = append(lexeme, lx.consumeDigitsAndUnderscores()...)
		}
		// else: "..", "..=", or "..." follows — leave it for the next call.
	}

	// exponent.
	if ch, ok := lx.peek(); ok && (ch == 'e' || ch == 'E') {
		expStart := len(lexeme)
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
		isFloat = true
		_ = expStart
		lexeme = append(lexeme, expLexeme...)
	}

	// illegal trailing suffix: any alphanumeric/underscore run glued
	// directly onto the literal that isn't part of the grammar above.
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
	if isFloat {
		id, inserted := lx.floats.IDOrInsert(s)
		if inserted {
			lx.writeEntry(lx.sinks.FloatLiteral, id, s)
		}
		return token.Token{Kind: token.FloatLiteral, Pos: start, Lexeme: s, SymbolID: id}
	}

	id, inserted := lx.ints.IDOrInsert(s)
	if inserted {
		lx.writeEntry(lx.sinks.IntegerLiteral, id, s)
	}
	return token.Token{Kind: token.IntegerLiteral, Pos: start, Lexeme: s, SymbolID: id}
}

func (lx *Lexer) consumeDigitsAndUnderscores() []byte {
	var out []byte
	for {
		ch, ok := lx.peek()
		if !ok || !(isASCIIDigit(ch) || ch == '_') {
			break
		}
		out = append(out, lx.advance())
	}
	return out
}

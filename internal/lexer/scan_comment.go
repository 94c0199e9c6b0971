package lexer

import (
	"github.com/dekarrin/langtoolkit/internal/langerr"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// scanSlashOrComment disambiguates the Slash/SlashEq operators from a line
// comment ("// ...") or a nestable block comment ("/* ... */"), per design
// §4.1.3. The leading '/' has been peeked but not consumed.
func (lx *Lexer) scanSlashOrComment(start token.Position) token.Token {
	lx.advance() // first '/'

	ch, ok := lx.peek()
	if ok && ch == '/' {
		return lx.scanLineComment(start)
	}
	if ok && ch == '*' {
		return lx.scanBlockComment(start)
	}
	if ok && ch == '=' {
		lx.advance()
		return token.Token{Kind: token.SlashEq, Pos: start, Lexeme: "/="}
	}
	return token.Token{Kind: token.Slash, Pos: start, Lexeme: "/"}
}

func (lx *Lexer) scanLineComment(start token.Position) token.Token {
	lx.advance() // second '/'

	var body []byte
	for {
		ch, ok := lx.peek()
		if !ok || ch == '\n' {
			break
		}
		body = append(body, lx.advance())
	}
	return token.Token{Kind: token.Comment, Pos: start, Lexeme: string(body)}
}

func (lx *Lexer) scanBlockComment(start token.Position) token.Token {
	lx.advance() // the '*'

	var body []byte
	depth := 1
	for depth > 0 {
		ch, ok := lx.peek()
		if !ok {
			return errTok(langerr.KindUnterminatedComment, start, "unterminated block comment")
		}

		if ch == '/' {
			if next, ok2 := lx.peekAhead(1); ok2 && next == '*' {
				body = append(body, lx.advance(), lx.advance())
				depth++
				continue
			}
		} else if ch == '*' {
			if next, ok2 := lx.peekAhead(1); ok2 && next == '/' {
				lx.advance()
				lx.advance()
				depth--
				continue
			}
		}

		body = append(body, lx.advance())
	}

	return token.Token{Kind: token.Comment, Pos: start, Lexeme: string(body)}
}

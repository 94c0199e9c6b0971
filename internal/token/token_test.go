package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "Let", KwLet.String())
	assert.Equal(t, "Identifier", Identifier.String())
	assert.Equal(t, "EndOfText", EndOfText.String())
}

func Test_Kind_HasSymbolID(t *testing.T) {
	testCases := []struct {
		kind Kind
		want bool
	}{
		{Identifier, true},
		{CharLiteral, true},
		{StringLiteral, true},
		{IntegerLiteral, true},
		{FloatLiteral, true},
		{KwLet, false},
		{Comment, false},
		{Plus, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.kind.HasSymbolID(), "%s", tc.kind)
	}
}

func Test_Position_Before(t *testing.T) {
	assert.True(t, Position{Row: 1, Column: 1}.Before(Position{Row: 1, Column: 2}))
	assert.True(t, Position{Row: 1, Column: 9}.Before(Position{Row: 2, Column: 1}))
	assert.False(t, Position{Row: 2, Column: 1}.Before(Position{Row: 1, Column: 9}))
	assert.False(t, Position{Row: 1, Column: 1}.Before(Position{Row: 1, Column: 1}))
}

func Test_Position_String(t *testing.T) {
	assert.Equal(t, "3:7", Position{Row: 3, Column: 7}.String())
}

func Test_Token_String(t *testing.T) {
	withID := Token{Kind: Identifier, SymbolID: 4}
	assert.Equal(t, "Identifier(4)", withID.String())

	bare := Token{Kind: KwReturn}
	assert.Equal(t, "Return", bare.String())
}

func Test_Keywords_lookupIsExhaustiveForStrictAndReserved(t *testing.T) {
	for _, lexeme := range []string{
		// strict
		"as", "break", "const", "continue", "crate", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
		"move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct",
		"super", "trait", "true", "type", "unsafe", "use", "where", "while",
		"async", "await", "dyn",
		// reserved
		"abstract", "become", "box", "do", "final", "macro", "override", "priv",
		"typeof", "unsized", "virtual", "yield", "try",
		// weak
		"macro_rules", "union",
	} {
		_, ok := Keywords[lexeme]
		assert.True(t, ok, "expected %q to be a recognized keyword", lexeme)
	}
	_, ok := Keywords["notakeyword"]
	assert.False(t, ok)
}

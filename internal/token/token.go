// Package token defines the tagged-union Token type produced by the lexer
// and the Position of the source byte that began it.
package token

import (
	"fmt"

	"github.com/dekarrin/langtoolkit/internal/langerr"
)

// Kind discriminates the variant a Token holds. Every Kind is either
// nullary (keywords, punctuation, delimiters) or carries exactly one
// payload field on Token, as described in design note §3.
type Kind int

const (
	// --- strict keywords ---
	KwAs Kind = iota
	KwBreak
	KwConst
	KwContinue
	KwCrate
	KwElse
	KwEnum
	KwExtern
	KwFalse
	KwFn
	KwFor
	KwIf
	KwImpl
	KwIn
	KwLet
	KwLoop
	KwMatch
	KwMod
	KwMove
	KwMut
	KwPub
	KwRef
	KwReturn
	KwSelfValue
	KwSelfType
	KwStatic
	KwStruct
	KwSuper
	KwTrait
	KwTrue
	KwType
	KwUnsafe
	KwUse
	KwWhere
	KwWhile
	KwAsync
	KwAwait
	KwDyn

	// --- reserved keywords ---
	KwAbstract
	KwBecome
	KwBox
	KwDo
	KwFinal
	KwMacro
	KwOverride
	KwPriv
	KwTypeof
	KwUnsized
	KwVirtual
	KwYield
	KwTry

	// --- weak keywords ---
	KwMacroRules
	KwUnion
	KwStaticLifetime

	// --- punctuation & delimiters ---
	Plus
	PlusEq
	Minus
	MinusEq
	Star
	StarEq
	Slash
	SlashEq
	Percent
	PercentEq
	Caret
	CaretEq
	Not
	NotEq
	Eq
	EqEq
	Lt
	LtEq
	Gt
	GtEq
	RArrow
	FatArrow
	LArrow
	AndAnd
	OrOr
	Shl
	ShlEq
	Shr
	ShrEq
	And
	AndEq
	Or
	OrEq
	Dot
	DotDot
	DotDotEq
	DotDotDot
	Colon
	PathSep
	Semi
	Comma
	At
	Pound
	Dollar
	Question
	Tilde
	Underscore
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// --- literals (payload-bearing) ---
	CharLiteral
	StringLiteral
	IntegerLiteral
	FloatLiteral

	// --- identifier-like (payload-bearing) ---
	Identifier
	LifetimeOrLabel
	Comment

	// --- diagnostic ---
	Error

	// --- fallback ---
	Unknown

	// EndOfText is emitted after the last real token (and on every later
	// call to the lexer's Next), and never written to output.txt.
	EndOfText
)

// Keywords maps every strict, reserved, and weak keyword lexeme to its
// Kind. It is consulted by the identifier rule on a miss-to-keyword
// lookup; anything not present here is an ordinary Identifier.
var Keywords = map[string]Kind{
	"as": KwAs, "break": KwBreak, "const": KwConst, "continue": KwContinue,
	"crate": KwCrate, "else": KwElse, "enum": KwEnum, "extern": KwExtern,
	"false": KwFalse, "fn": KwFn, "for": KwFor, "if": KwIf, "impl": KwImpl,
	"in": KwIn, "let": KwLet, "loop": KwLoop, "match": KwMatch, "mod": KwMod,
	"move": KwMove, "mut": KwMut, "pub": KwPub, "ref": KwRef, "return": KwReturn,
	"self": KwSelfValue, "Self": KwSelfType, "static": KwStatic, "struct": KwStruct,
	"super": KwSuper, "trait": KwTrait, "true": KwTrue, "type": KwType,
	"unsafe": KwUnsafe, "use": KwUse, "where": KwWhere, "while": KwWhile,
	"async": KwAsync, "await": KwAwait, "dyn": KwDyn,

	"abstract": KwAbstract, "become": KwBecome, "box": KwBox, "do": KwDo,
	"final": KwFinal, "macro": KwMacro, "override": KwOverride, "priv": KwPriv,
	"typeof": KwTypeof, "unsized": KwUnsized, "virtual": KwVirtual,
	"yield": KwYield, "try": KwTry,

	"macro_rules": KwMacroRules, "union": KwUnion,
}

// kindNames gives the Kind rendering used in output.txt and in error
// messages. Nullary kinds render as their bare name; payload kinds are
// suffixed with "(id)" by the caller, not here.
var kindNames = map[Kind]string{
	KwAs: "As", KwBreak: "Break", KwConst: "Const", KwContinue: "Continue",
	KwCrate: "Crate", KwElse: "Else", KwEnum: "Enum", KwExtern: "Extern",
	KwFalse: "False", KwFn: "Fn", KwFor: "For", KwIf: "If", KwImpl: "Impl",
	KwIn: "In", KwLet: "Let", KwLoop: "Loop", KwMatch: "Match", KwMod: "Mod",
	KwMove: "Move", KwMut: "Mut", KwPub: "Pub", KwRef: "Ref", KwReturn: "Return",
	KwSelfValue: "SelfValue", KwSelfType: "SelfType", KwStatic: "Static",
	KwStruct: "Struct", KwSuper: "Super", KwTrait: "Trait", KwTrue: "True",
	KwType: "Type", KwUnsafe: "Unsafe", KwUse: "Use", KwWhere: "Where",
	KwWhile: "While", KwAsync: "Async", KwAwait: "Await", KwDyn: "Dyn",

	KwAbstract: "Abstract", KwBecome: "Become", KwBox: "Box", KwDo: "Do",
	KwFinal: "Final", KwMacro: "Macro", KwOverride: "Override", KwPriv: "Priv",
	KwTypeof: "Typeof", KwUnsized: "Unsized", KwVirtual: "Virtual",
	KwYield: "Yield", KwTry: "Try",

	KwMacroRules: "MacroRules", KwUnion: "Union", KwStaticLifetime: "StaticLifetime",

	Plus: "Plus", PlusEq: "PlusEq", Minus: "Minus", MinusEq: "MinusEq",
	Star: "Star", StarEq: "StarEq", Slash: "Slash", SlashEq: "SlashEq",
	Percent: "Percent", PercentEq: "PercentEq", Caret: "Caret", CaretEq: "CaretEq",
	Not: "Not", NotEq: "NotEq", Eq: "Eq", EqEq: "EqEq", Lt: "Lt", LtEq: "LtEq",
	Gt: "Gt", GtEq: "GtEq", RArrow: "RArrow", FatArrow: "FatArrow", LArrow: "LArrow",
	AndAnd: "AndAnd", OrOr: "OrOr", Shl: "Shl", ShlEq: "ShlEq", Shr: "Shr", ShrEq: "ShrEq",
	And: "And", AndEq: "AndEq", Or: "Or", OrEq: "OrEq",
	Dot: "Dot", DotDot: "DotDot", DotDotEq: "DotDotEq", DotDotDot: "DotDotDot",
	Colon: "Colon", PathSep: "PathSep", Semi: "Semi", Comma: "Comma",
	At: "At", Pound: "Pound", Dollar: "Dollar", Question: "Question",
	Tilde: "Tilde", Underscore: "Underscore",
	LParen: "LParen", RParen: "RParen", LBracket: "LBracket", RBracket: "RBracket",
	LBrace: "LBrace", RBrace: "RBrace",

	CharLiteral: "CharLiteral", StringLiteral: "StringLiteral",
	IntegerLiteral: "IntegerLiteral", FloatLiteral: "FloatLiteral",

	Identifier: "Identifier", LifetimeOrLabel: "LifetimeOrLabel", Comment: "Comment",

	Error: "Error", Unknown: "Unknown", EndOfText: "EndOfText",
}

// String gives the bare Kind name, e.g. "Let" or "IntegerLiteral".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// HasSymbolID returns whether tokens of this Kind are assigned an id in one
// of the five symbol tables and therefore render as "Kind(id)" rather than
// bare "Kind" in output.txt.
func (k Kind) HasSymbolID() bool {
	switch k {
	case Identifier, CharLiteral, StringLiteral, IntegerLiteral, FloatLiteral:
		return true
	}
	return false
}

// Position is a 1-indexed (row, column) pair identifying the first byte of
// a lexeme. The zero value is invalid; a fresh cursor starts at (1, 1).
type Position struct {
	Row, Column int
}

// Before returns whether p sorts strictly before o in (row, column) order.
func (p Position) Before(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Column < o.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Token is a value-typed tagged union over every lexical variant. Only the
// payload field matching Kind is meaningful; the rest are zero values.
// Tokens are constructed by the lexer and never mutated afterward.
type Token struct {
	Kind Kind
	Pos  Position

	// Lexeme holds the raw source text for Identifier, IntegerLiteral,
	// FloatLiteral, LifetimeOrLabel, and Comment (without its delimiters).
	Lexeme string

	// StringValue holds the escape-decoded runtime value of a StringLiteral.
	StringValue string

	// CharValue holds the escape-decoded rune of a CharLiteral.
	CharValue rune

	// Err holds the positioned diagnostic of an Error token, rendered via
	// its FullMessage/SourceLineWithCursor for a human-readable report.
	Err langerr.PositionedError

	// Unk holds the offending byte of an Unknown token.
	Unk rune

	// SymbolID is the dense, insertion-ordered id assigned by the symbol
	// table matching Kind, valid only when Kind.HasSymbolID() is true.
	SymbolID int
}

// String renders the token the way output.txt does: the bare kind name, or
// "Kind(id)" for kinds with an assigned symbol-table id.
func (t Token) String() string {
	if t.Kind.HasSymbolID() {
		return fmt.Sprintf("%s(%d)", t.Kind, t.SymbolID)
	}
	return t.Kind.String()
}

package ll1table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
	"github.com/dekarrin/langtoolkit/internal/grammar"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Parse(`
		E -> T E'
		E' -> + T E' | - T E' | ε
		T -> F T'
		T' -> * F T' | div F T' | mod F T' | ε
		F -> number | ( E )
	`)
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return g
}

func Test_Build_isLL1ForExpressionGrammar(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar(t)
	sets := firstfollow.Compute(g)
	tbl := Build(g, sets)

	assert.True(tbl.IsLL1())
	assert.Empty(tbl.Conflicts)

	ref, ok := tbl.Get("F", "number")
	if assert.True(ok) {
		assert.Equal("F", ref.LHS)
		assert.Equal([]string{"number"}, []string(g.Productions("F")[ref.Index]))
	}

	ref, ok = tbl.Get("E'", grammar.EndOfInput)
	if assert.True(ok) {
		assert.True(g.Productions("E'")[ref.Index].IsEpsilon())
	}

	_, ok = tbl.Get("E", "*")
	assert.False(ok, "no entry should exist for (E, *)")
}

func Test_Build_recordsConflictAndLaterEntryWins(t *testing.T) {
	assert := assert.New(t)

	// An ambiguous grammar: both alternatives of S share "a" in FIRST,
	// so table[S, a] collides. The later production must win per the
	// documented "last writer wins" policy.
	g, err := grammar.Parse("S -> a | a b")
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	sets := firstfollow.Compute(g)
	tbl := Build(g, sets)

	assert.False(tbl.IsLL1())
	if assert.Len(tbl.Conflicts, 1) {
		c := tbl.Conflicts[0]
		assert.Equal("S", c.NonTerminal)
		assert.Equal("a", c.Terminal)
		assert.Equal(1, c.Kept.Index)
		assert.Equal(0, c.Discarded.Index)
	}

	ref, ok := tbl.Get("S", "a")
	if assert.True(ok) {
		assert.Equal(1, ref.Index)
	}
}

func Test_Conflict_String(t *testing.T) {
	c := Conflict{
		NonTerminal: "S",
		Terminal:    "a",
		Kept:        grammar.ProductionRef{LHS: "S", Index: 1},
		Discarded:   grammar.ProductionRef{LHS: "S", Index: 0},
	}
	assert.Contains(t, c.String(), "conflict at (S, a)")
}

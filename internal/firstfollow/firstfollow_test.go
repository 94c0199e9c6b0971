package firstfollow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/langtoolkit/internal/grammar"
)

// exprGrammar builds the expression grammar design note §8 scenario 7 names:
//
//	E  -> T E'
//	E' -> + T E' | - T E' | ε
//	T  -> F T'
//	T' -> * F T' | div F T' | mod F T' | ε
//	F  -> number | ( E )
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

func setOf(items ...string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}

func Test_Compute_FIRST(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar(t)
	sets := Compute(g)

	assert.Equal(setOf("number", "("), map[string]bool(sets.First["E"]))
	assert.Equal(setOf("number", "("), map[string]bool(sets.First["T"]))
	assert.Equal(setOf("number", "("), map[string]bool(sets.First["F"]))
	assert.Equal(setOf("+", "-", Epsilon), map[string]bool(sets.First["E'"]))
	assert.Equal(setOf("*", "div", "mod", Epsilon), map[string]bool(sets.First["T'"]))
}

func Test_Compute_FOLLOW(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar(t)
	sets := Compute(g)

	assert.Equal(setOf(grammar.EndOfInput, ")"), map[string]bool(sets.Follow["E"]))
	assert.Equal(setOf(grammar.EndOfInput, ")"), map[string]bool(sets.Follow["E'"]))
	assert.Equal(setOf("+", "-", grammar.EndOfInput, ")"), map[string]bool(sets.Follow["T"]))
	assert.Equal(setOf("+", "-", grammar.EndOfInput, ")"), map[string]bool(sets.Follow["T'"]))
	assert.Equal(setOf("*", "div", "mod", "+", "-", grammar.EndOfInput, ")"), map[string]bool(sets.Follow["F"]))
}

func Test_Compute_fixedPointIsStable(t *testing.T) {
	// Testable property from design note §8: additional iterations after the
	// fixed point change nothing. Compute already iterates to a fixed
	// point internally; calling it twice on the same grammar must yield
	// identical sets.
	assert := assert.New(t)
	g := exprGrammar(t)

	a := Compute(g)
	b := Compute(g)

	for nt := range a.First {
		assert.Equal(map[string]bool(a.First[nt]), map[string]bool(b.First[nt]), "FIRST(%s)", nt)
	}
	for nt := range a.Follow {
		assert.Equal(map[string]bool(a.Follow[nt]), map[string]bool(b.Follow[nt]), "FOLLOW(%s)", nt)
	}
}

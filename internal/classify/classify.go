// Package classify implements G.classify: pure predicates over a grammar's
// productions that assign it the most restrictive Chomsky class it
// satisfies, per design note §4.2.1.
package classify

import "github.com/dekarrin/langtoolkit/internal/grammar"

// Class is a grammar's Chomsky classification.
type Class int

const (
	Unknown Class = iota
	ContextSensitive
	ContextFree
	LeftLinear
	RightLinear
	Regular
)

func (c Class) String() string {
	switch c {
	case Regular:
		return "Regular"
	case RightLinear:
		return "Right-Linear"
	case LeftLinear:
		return "Left-Linear"
	case ContextFree:
		return "Context-Free"
	case ContextSensitive:
		return "Context-Sensitive"
	default:
		return "Unknown"
	}
}

// Classify returns the most restrictive class g's productions satisfy, per
// the precedence Regular ⊂ {Right-Linear, Left-Linear} ⊂ Context-Free ⊂
// Context-Sensitive fixed by design note §4.2.1 and design note §9's Open Question
// resolution (tested in that order; the first predicate that matches every
// production in the grammar wins).
func Classify(g *grammar.Grammar) Class {
	if isRegular(g) {
		return Regular
	}
	if isRightLinear(g) {
		return RightLinear
	}
	if isLeftLinear(g) {
		return LeftLinear
	}
	if isContextFree(g) {
		return ContextFree
	}
	if isContextSensitive(g) {
		return ContextSensitive
	}
	return Unknown
}

// isRegular: every production has a single non-terminal on the LHS (always
// true of Grammar's shape) and an RHS matching "T" or "T N".
func isRegular(g *grammar.Grammar) bool {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			if !isRegularProduction(g, p) {
				return false
			}
		}
	}
	return true
}

func isRegularProduction(g *grammar.Grammar, p grammar.Production) bool {
	switch len(p) {
	case 1:
		return g.IsTerminal(p[0])
	case 2:
		return g.IsTerminal(p[0]) && g.IsNonTerminal(p[1])
	default:
		return false
	}
}

// isRightLinear: RHS is a single terminal, or a terminal followed by a
// non-terminal sequence in which only the last position may be a
// non-terminal — i.e. "T" or "T N" (design note §4.2.1 gives this as the minimal
// accepted form, identical to the Regular predicate's shape).
func isRightLinear(g *grammar.Grammar) bool {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			if !isRegularProduction(g, p) {
				return false
			}
		}
	}
	return true
}

// isLeftLinear is isRightLinear's mirror: "T" or "N T".
func isLeftLinear(g *grammar.Grammar) bool {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			if !isLeftLinearProduction(g, p) {
				return false
			}
		}
	}
	return true
}

func isLeftLinearProduction(g *grammar.Grammar, p grammar.Production) bool {
	switch len(p) {
	case 1:
		return g.IsTerminal(p[0])
	case 2:
		return g.IsNonTerminal(p[0]) && g.IsTerminal(p[1])
	default:
		return false
	}
}

// isContextFree: LHS is a single non-terminal, which is already guaranteed
// by Grammar's shape (every production is indexed under exactly one
// non-terminal name), so this always holds for any Grammar value that
// passed Validate.
func isContextFree(g *grammar.Grammar) bool {
	return true
}

// isContextSensitive: |LHS| >= 1, |RHS| >= 1, |LHS| <= |RHS| — the
// classical non-contracting condition. Grammar only ever models a
// single-non-terminal LHS (length 1), so this reduces to "every RHS is
// non-empty," and the explicit S -> ε exception design note §4.2.1 calls out is
// deliberately NOT applied here.
func isContextSensitive(g *grammar.Grammar) bool {
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			if p.IsEpsilon() {
				return false
			}
		}
	}
	return true
}

// Package firstfollow implements G.first_follow: fixed-point FIRST/FOLLOW
// set computation over an internal/grammar.Grammar, per design note §4.2.2.
package firstfollow

import (
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/util"
)

// Epsilon is the marker FIRST sets use to record that a symbol or sequence
// can derive the empty string.
const Epsilon = grammar.EpsilonSymbol

// Sets holds the FIRST and FOLLOW tables computed for a Grammar. FIRST is
// keyed by every symbol (terminal and non-terminal); FOLLOW is keyed by
// non-terminal only. Both are computed once by Compute and must not be
// mutated afterward, per design note §5.
type Sets struct {
	First  map[string]util.Set[string]
	Follow map[string]util.Set[string]
}

// Compute runs the standard fixed-point iteration for FIRST and then for
// FOLLOW, reusing the already-computed FIRST sets rather than
// recomputing them inside the FOLLOW loop, per design note §9's REDESIGN FLAG
// ("FIRST is computed once and reused").
func Compute(g *grammar.Grammar) Sets {
	first := computeFirst(g)
	follow := computeFollow(g, first)
	return Sets{First: first, Follow: follow}
}

func computeFirst(g *grammar.Grammar) map[string]util.Set[string] {
	first := make(map[string]util.Set[string])

	for _, t := range g.Terminals() {
		first[t] = util.NewSet(map[string]bool{t: true})
	}
	for _, nt := range g.NonTerminals() {
		first[nt] = util.NewSet[string]()
	}

	for {
		changed := false

		for _, nt := range g.NonTerminals() {
			for _, p := range g.Productions(nt) {
				before := first[nt].Len()
				firstOfSequence(p, first, first[nt])
				if first[nt].Len() != before {
					changed = true
				}
			}
		}

		if !changed {
			break
		}
	}

	return first
}

// firstOfSequence unions FIRST(p) into dst, following the standard rule:
// FIRST(X1), and if ε ∈ FIRST(X1) continue to X2, etc.; if every symbol is
// nullable (or p is epsilon), ε is added to dst.
func firstOfSequence(p grammar.Production, first map[string]util.Set[string], dst util.Set[string]) {
	if p.IsEpsilon() {
		dst.Add(Epsilon)
		return
	}

	for _, sym := range p {
		symFirst := first[sym]
		for t := range symFirst {
			if t != Epsilon {
				dst.Add(t)
			}
		}
		if !symFirst.Has(Epsilon) {
			return
		}
	}
	// every symbol in p was nullable
	dst.Add(Epsilon)
}

func computeFollow(g *grammar.Grammar, first map[string]util.Set[string]) map[string]util.Set[string] {
	follow := make(map[string]util.Set[string])
	for _, nt := range g.NonTerminals() {
		follow[nt] = util.NewSet[string]()
	}
	follow[g.Start].Add(grammar.EndOfInput)

	for {
		changed := false

		for _, A := range g.NonTerminals() {
			for _, p := range g.Productions(A) {
				for i, sym := range p {
					if !g.IsNonTerminal(sym) {
						continue
					}
					before := follow[sym].Len()

					beta := p[i+1:]
					betaFirst := util.NewSet[string]()
					firstOfSequence(beta, first, betaFirst)

					for t := range betaFirst {
						if t != Epsilon {
							follow[sym].Add(t)
						}
					}
					if len(beta) == 0 || betaFirst.Has(Epsilon) {
						follow[sym].AddAll(follow[A])
					}

					if follow[sym].Len() != before {
						changed = true
					}
				}
			}
		}

		if !changed {
			break
		}
	}

	return follow
}

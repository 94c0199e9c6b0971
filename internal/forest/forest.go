// Package forest implements G.forest: enumeration of every derivation tree
// of a sentence under an arbitrary context-free grammar, per design note §4.2.5.
// It works over the same Grammar type as internal/ll1parse but, instead of
// that package's single deterministic derivation, runs a memoized top-down
// search over all derivations, caching the trees for each (symbol, i, j)
// span rather than recomputing them.
package forest

import "github.com/dekarrin/langtoolkit/internal/grammar"

// Eliminate returns a new Grammar equivalent to g except that every
// production list has had ε-productions eliminated by the pre-pass spec
// §4.2.5 describes: nullable non-terminals are computed by fixed point,
// then every production A -> X1...Xn is expanded into every variant
// obtained by optionally dropping each occurrence of a nullable
// non-terminal, except the all-dropped variant, with explicit A -> ε
// productions themselves dropped and duplicate variants deduplicated.
//
// The returned grammar shares no state with g and is safe to pass to
// Parse.
func Eliminate(g *grammar.Grammar) *grammar.Grammar {
	nullable := computeNullable(g)

	out := grammar.New(g.Start)
	for _, nt := range g.NonTerminals() {
		seen := make(map[string]bool)
		for _, p := range g.Productions(nt) {
			for _, variant := range variants(p, nullable) {
				if len(variant) == 0 {
					continue // drop the fully-empty variant and explicit A -> ε
				}
				key := grammar.Production(variant).String()
				if seen[key] {
					continue
				}
				seen[key] = true
				out.AddProduction(nt, variant)
			}
		}
	}
	return out
}

// computeNullable finds every non-terminal that can derive the empty
// string, by fixed point: nullable iff some production is ε, or every
// symbol of some production is itself already nullable.
func computeNullable(g *grammar.Grammar) map[string]bool {
	nullable := make(map[string]bool)

	for {
		changed := false
		for _, nt := range g.NonTerminals() {
			if nullable[nt] {
				continue
			}
			for _, p := range g.Productions(nt) {
				if isNullableProduction(p, nullable) {
					nullable[nt] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	return nullable
}

func isNullableProduction(p grammar.Production, nullable map[string]bool) bool {
	if p.IsEpsilon() {
		return true
	}
	for _, sym := range p {
		if !nullable[sym] {
			return false
		}
	}
	return true
}

// variants enumerates every one of the 2^k subsequences of p obtained by
// optionally deleting each occurrence of a nullable non-terminal, where k
// is the number of such occurrences. Positions that are not nullable
// non-terminals are always kept.
func variants(p grammar.Production, nullable map[string]bool) [][]string {
	var droppable []int
	for i, sym := range p {
		if nullable[sym] {
			droppable = append(droppable, i)
		}
	}

	k := len(droppable)
	out := make([][]string, 0, 1<<uint(k))
	for mask := 0; mask < (1 << uint(k)); mask++ {
		drop := make(map[int]bool, k)
		for bit, idx := range droppable {
			if mask&(1<<uint(bit)) != 0 {
				drop[idx] = true
			}
		}
		var variant []string
		for i, sym := range p {
			if drop[i] {
				continue
			}
			variant = append(variant, sym)
		}
		out = append(out, variant)
	}
	return out
}

// memoKey addresses one (non-terminal, i, j) cell of the top-down
// enumeration's memo table.
type memoKey struct {
	Symbol string
	I, J   int
}

// Parse enumerates every derivation tree of tokens[0:len(tokens)] under g
// (which must already be ε-free — callers pass g through Eliminate
// first), per design note §4.2.5's memoized top-down algorithm. An empty result
// means tokens is not derivable from g.Start.
func Parse(g *grammar.Grammar, tokens []string) []*grammar.ParseNode {
	memo := make(map[memoKey][]*grammar.ParseNode)
	return parseSymbol(g, g.Start, 0, len(tokens), tokens, memo)
}

func parseSymbol(g *grammar.Grammar, symbol string, i, j int, tokens []string, memo map[memoKey][]*grammar.ParseNode) []*grammar.ParseNode {
	key := memoKey{symbol, i, j}
	if trees, ok := memo[key]; ok {
		return trees
	}

	// memoize before recursing so a grammar that (incorrectly) contains a
	// direct left-recursive-but-epsilon-free cycle cannot infinite-loop;
	// the (symbol, i, j) argument space is finite and the in-progress
	// entry is overwritten once computed.
	memo[key] = nil

	var trees []*grammar.ParseNode
	if g.IsTerminal(symbol) {
		if i+1 == j && tokens[i] == symbol {
			trees = []*grammar.ParseNode{grammar.Leaf(symbol)}
		}
	} else {
		for _, p := range g.Productions(symbol) {
			trees = append(trees, parseProduction(g, symbol, p, i, j, tokens, memo)...)
		}
	}

	memo[key] = trees
	return trees
}

// parseProduction enumerates every Internal(A, ...) tree derivable from
// production p spanning tokens[i:j].
func parseProduction(g *grammar.Grammar, lhs string, p grammar.Production, i, j int, tokens []string, memo map[memoKey][]*grammar.ParseNode) []*grammar.ParseNode {
	if len(p) == 0 {
		return nil // ε-free grammar: a bare epsilon production cannot match a non-empty span
	}

	if len(p) == 1 {
		childTrees := parseSymbol(g, p[0], i, j, tokens, memo)
		out := make([]*grammar.ParseNode, len(childTrees))
		for k, c := range childTrees {
			out[k] = grammar.Internal(lhs, []*grammar.ParseNode{c})
		}
		return out
	}

	childLists := childCombinations(g, p, i, j, tokens, memo)
	out := make([]*grammar.ParseNode, len(childLists))
	for k, children := range childLists {
		out[k] = grammar.Internal(lhs, children)
	}
	return out
}

// childCombinations enumerates every way to split [i, j) into len(p)
// consecutive non-empty sub-intervals (by choosing len(p)-1 cut points
// from {i+1, ..., j-1}), and for each split, the Cartesian product of the
// per-symbol derivation trees.
func childCombinations(g *grammar.Grammar, p grammar.Production, i, j int, tokens []string, memo map[memoKey][]*grammar.ParseNode) [][]*grammar.ParseNode {
	n := len(p)
	if j-i < n {
		return nil // not enough tokens for n non-empty symbols
	}

	var results [][]*grammar.ParseNode
	var cuts func(start, remaining int, bounds []int)
	cuts = func(start, remaining int, bounds []int) {
		if remaining == 0 {
			results = append(results, combine(g, p, bounds, tokens, memo)...)
			return
		}
		// leave enough room for the rest of the (remaining) symbols, each
		// needing at least one token.
		maxCut := j - remaining
		for cut := start + 1; cut <= maxCut; cut++ {
			cuts(cut, remaining-1, append(bounds, cut))
		}
	}
	cuts(i, n-1, []int{i})
	return results
}

// combine takes one chosen set of cut points (bounds = [i, c1, c2, ...,
// j]) and returns the Cartesian product of each symbol's derivation trees
// over its sub-interval.
func combine(g *grammar.Grammar, p grammar.Production, bounds []int, tokens []string, memo map[memoKey][]*grammar.ParseNode) [][]*grammar.ParseNode {
	var recur func(idx int, acc []*grammar.ParseNode) [][]*grammar.ParseNode
	recur = func(idx int, acc []*grammar.ParseNode) [][]*grammar.ParseNode {
		if idx == len(p) {
			cp := make([]*grammar.ParseNode, len(acc))
			copy(cp, acc)
			return [][]*grammar.ParseNode{cp}
		}
		lo, hi := bounds[idx], bounds[idx+1]
		var out [][]*grammar.ParseNode
		for _, tree := range parseSymbol(g, p[idx], lo, hi, tokens, memo) {
			out = append(out, recur(idx+1, append(acc, tree))...)
		}
		return out
	}
	return recur(0, nil)
}

// String renders t as a single-line bracket tree, e.g. "S(NP(Det(the) N(dog)) VP(...))".
func String(t *grammar.ParseNode) string {
	if t == nil {
		return ""
	}
	if t.Terminal {
		return t.Symbol
	}
	s := t.Symbol + "("
	for i, c := range t.Children {
		if i > 0 {
			s += " "
		}
		s += String(c)
	}
	return s + ")"
}

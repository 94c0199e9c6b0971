// Package grammar implements G.sym: the terminal/non-terminal symbol sets
// and production records the rest of the grammar toolkit builds on, per
// design note §3 and §4.2. It is pure and state-free, mirroring TunaQuest's
// internal/tunascript.Grammar in shape (rule map + ordered productions)
// though generalized from a single hand-written scripting grammar to an
// arbitrary user-supplied one.
package grammar

import (
	"fmt"

	"github.com/dekarrin/langtoolkit/internal/util"
)

// EpsilonSymbol is the canonical epsilon marker accepted on input in place
// of an empty RHS, per design note §4.2.2 ("ε is represented as the empty string
// or the literal ε; implementations MUST treat both identically").
const EpsilonSymbol = "ε"

// EndOfInput is the lookahead marker FOLLOW sets and the LL(1) parser's
// input cursor use to denote the end of the token stream.
const EndOfInput = "$"

// Production is an ordered sequence of symbol names. A production with zero
// symbols represents the epsilon production.
type Production []string

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return EpsilonSymbol
	}
	s := ""
	for i, sym := range p {
		if i > 0 {
			s += " "
		}
		s += sym
	}
	return s
}

// ProductionRef names a production by its left-hand side and its index
// into that non-terminal's production list, per design note §3's ProductionRef —
// the value an LL1Table cell holds so a lookup yields the actual RHS.
type ProductionRef struct {
	LHS   string
	Index int
}

// Grammar is a mapping from non-terminal name to an ordered list of
// productions, plus the disjoint terminal/non-terminal symbol sets
// computed as productions are added, per design note §3's Grammar invariant.
type Grammar struct {
	Start string

	order       []string // non-terminals, in order of first appearance
	productions map[string][]Production

	terminals    map[string]bool
	nonTerminals map[string]bool
}

// New creates an empty Grammar with the given start symbol. start is
// registered as a non-terminal immediately, even before any production
// naming it is added, so an empty grammar still reports it via
// NonTerminals.
func New(start string) *Grammar {
	g := &Grammar{
		Start:        start,
		productions:  make(map[string][]Production),
		terminals:    make(map[string]bool),
		nonTerminals: make(map[string]bool),
	}
	g.registerNonTerminal(start)
	return g
}

func (g *Grammar) registerNonTerminal(name string) {
	if !g.nonTerminals[name] {
		g.nonTerminals[name] = true
		g.order = append(g.order, name)
	}
	delete(g.terminals, name)
}

// AddProduction appends a production to lhs's rule, registering lhs as a
// non-terminal and every RHS symbol not already known as a non-terminal as
// a terminal, per design note §3's "every symbol on any RHS is a member of
// exactly one of the two sets." A later production that uses a symbol as a
// non-terminal promotes it out of terminals retroactively.
func (g *Grammar) AddProduction(lhs string, rhs []string) {
	g.registerNonTerminal(lhs)

	prod := make(Production, 0, len(rhs))
	for _, sym := range rhs {
		if sym == "" || sym == EpsilonSymbol {
			continue
		}
		prod = append(prod, sym)
		if !g.nonTerminals[sym] {
			g.terminals[sym] = true
		}
	}

	g.productions[lhs] = append(g.productions[lhs], prod)
}

// Productions returns nonterm's productions in the order they were added.
func (g *Grammar) Productions(nonterm string) []Production {
	return g.productions[nonterm]
}

// NonTerminals returns every non-terminal, in order of first appearance as
// an LHS (or as the start symbol).
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals returns every terminal symbol, order unspecified.
func (g *Grammar) Terminals() []string {
	out := make([]string, 0, len(g.terminals))
	for t := range g.terminals {
		out = append(out, t)
	}
	return out
}

// IsTerminal reports whether sym is a known terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals[sym]
}

// IsNonTerminal reports whether sym is a known non-terminal.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonTerminals[sym]
}

// Validate checks the invariants design note §3 requires: the start symbol has at
// least one production, and every non-terminal has at least one production.
// Every RHS symbol is known as exactly one of terminal or non-terminal by
// construction: a symbol that never appears as an LHS is a terminal, so the
// only non-terminal that can lack productions is the start symbol New
// registers.
func (g *Grammar) Validate() error {
	if len(g.productions[g.Start]) == 0 {
		return fmt.Errorf("grammar: start symbol %q has no productions", g.Start)
	}

	var empty []string
	for _, nt := range g.order {
		if len(g.productions[nt]) == 0 {
			empty = append(empty, fmt.Sprintf("%q", nt))
		}
	}
	if len(empty) > 0 {
		return fmt.Errorf("grammar: non-terminal%s %s %s no productions",
			plural(len(empty)), util.MakeTextList(empty), haveOrHas(len(empty)))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func haveOrHas(n int) string {
	if n == 1 {
		return "has"
	}
	return "have"
}

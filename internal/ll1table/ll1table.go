// Package ll1table implements G.ll1_table: the LL(1) parsing-table builder
// consuming FIRST/FOLLOW, per design note §4.2.3.
package ll1table

import (
	"fmt"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/util"
)

// cellKey is the (non-terminal, terminal) address of one table cell.
type cellKey struct {
	NonTerminal string
	Terminal    string
}

// Table is the LL(1) parsing table: cell (A, a) holds the ProductionRef to
// use when A is on top of the parse stack and a is the lookahead. Table
// values are immutable once Build returns, per design note §5.
type Table struct {
	Start string
	Cells map[cellKey]grammar.ProductionRef

	// Conflicts records every (A, a) cell that received more than one
	// production during construction, in the order they were detected.
	// The grammar is reported non-LL(1) iff Conflicts is non-empty.
	Conflicts []Conflict
}

// Conflict records a collision at one table cell: two productions both
// wanted the same (non-terminal, lookahead) entry. Per design note §4.2.3's
// conflict policy, the later production always wins; Conflict just makes
// that decision visible to a caller.
type Conflict struct {
	NonTerminal string
	Terminal    string
	Kept        grammar.ProductionRef
	Discarded   grammar.ProductionRef
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at (%s, %s): kept production %d, discarded %d",
		c.NonTerminal, c.Terminal, c.Kept.Index, c.Discarded.Index)
}

// Get returns the ProductionRef for (A, lookahead), or ok=false if the
// table has no entry there.
func (t *Table) Get(nonTerminal, lookahead string) (grammar.ProductionRef, bool) {
	ref, ok := t.Cells[cellKey{nonTerminal, lookahead}]
	return ref, ok
}

// IsLL1 reports whether construction found zero conflicts.
func (t *Table) IsLL1() bool {
	return len(t.Conflicts) == 0
}

// Build constructs the LL(1) table for g from its already-computed
// FIRST/FOLLOW sets, per design note §4.2.3's algorithm: for each production
// A -> α, set table[A, t] = α for every t in FIRST(α)\{ε}; if ε is in
// FIRST(α), also set table[A, t] for every t in FOLLOW(A) (including $).
// On a collision, the later production wins and the collision is recorded
// in Conflicts rather than returned as an error — the caller decides
// whether a non-LL(1) grammar is fatal.
func Build(g *grammar.Grammar, sets firstfollow.Sets) *Table {
	t := &Table{Start: g.Start, Cells: make(map[cellKey]grammar.ProductionRef)}

	set := func(A, a string, ref grammar.ProductionRef) {
		key := cellKey{A, a}
		if existing, ok := t.Cells[key]; ok {
			t.Conflicts = append(t.Conflicts, Conflict{
				NonTerminal: A,
				Terminal:    a,
				Kept:        ref,
				Discarded:   existing,
			})
		}
		t.Cells[key] = ref
	}

	for _, A := range g.NonTerminals() {
		for i, alpha := range g.Productions(A) {
			ref := grammar.ProductionRef{LHS: A, Index: i}

			firstAlpha := firstOfProduction(alpha, sets.First)
			for a := range firstAlpha {
				if a != firstfollow.Epsilon {
					set(A, a, ref)
				}
			}

			if firstAlpha.Has(firstfollow.Epsilon) {
				for b := range sets.Follow[A] {
					set(A, b, ref)
				}
			}
		}
	}

	return t
}

func firstOfProduction(p grammar.Production, first map[string]util.Set[string]) util.Set[string] {
	if p.IsEpsilon() {
		return util.Set[string]{firstfollow.Epsilon: true}
	}

	result := util.Set[string]{}
	for _, sym := range p {
		symFirst := first[sym]
		nullable := false
		for t := range symFirst {
			if t == firstfollow.Epsilon {
				nullable = true
				continue
			}
			result[t] = true
		}
		if !nullable {
			return result
		}
	}
	result[firstfollow.Epsilon] = true
	return result
}

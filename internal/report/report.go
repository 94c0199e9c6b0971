// Package report renders the grammar toolkit's intermediate and final
// results — FIRST/FOLLOW sets, LL(1) tables, parse traces, and parse
// forests — as plain text, for the cmd/* programs to print. Per design note
// §4.2.5's explicit pretty-printing non-goal, there is no diagram output;
// every renderer here produces a string, grounded in TunaQuest's
// internal/tunascript.LL1Table.String, which builds a [][]string grid and
// hands it to rosed.Edit("").InsertTableOpts for bordered table layout.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
	"github.com/dekarrin/langtoolkit/internal/forest"
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/ll1parse"
	"github.com/dekarrin/langtoolkit/internal/ll1table"
)

// tableWidth is the wrap width rosed uses for every rendered table in
// this package, matching the 80-column terminal TunaQuest's
// LL1Table.String assumes.
const tableWidth = 80

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func setString(set map[string]bool) string {
	return "{" + strings.Join(sortedStrings(set), ", ") + "}"
}

// FirstFollow renders sets.First and sets.Follow as one three-column table
// (Symbol, FIRST, FOLLOW) with one row per non-terminal of g, in
// g.NonTerminals order.
func FirstFollow(g *grammar.Grammar, sets firstfollow.Sets) string {
	data := [][]string{{"Symbol", "FIRST", "FOLLOW"}}
	for _, nt := range g.NonTerminals() {
		data = append(data, []string{nt, setString(sets.First[nt]), setString(sets.Follow[nt])})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, rosed.Options{TableBorders: true}).
		String()
}

// LL1Table renders tbl as a (non-terminal x terminal) grid of productions,
// plus any conflicts found during Build, mirroring the shape of
// TunaQuest's LL1Table.String.
func LL1Table(g *grammar.Grammar, tbl *ll1table.Table) string {
	terms := g.Terminals()
	sort.Strings(terms)
	terms = append(terms, grammar.EndOfInput)
	nts := g.NonTerminals()

	data := [][]string{append([]string{""}, terms...)}
	for _, nt := range nts {
		row := []string{nt}
		for _, t := range terms {
			ref, ok := tbl.Get(nt, t)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, g.Productions(ref.LHS)[ref.Index].String())
		}
		data = append(data, row)
	}

	out := rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, rosed.Options{TableBorders: true}).
		String()

	if len(tbl.Conflicts) > 0 {
		var b strings.Builder
		b.WriteString(out)
		b.WriteString("\nconflicts:\n")
		for _, c := range tbl.Conflicts {
			b.WriteString("  " + c.String() + "\n")
		}
		return b.String()
	}
	return out
}

// Trace renders every step of a ll1parse.Trace, one per line, numbered.
func Trace(tr ll1parse.Trace) string {
	var b strings.Builder
	for i, step := range tr {
		fmt.Fprintf(&b, "%3d: %s\n", i+1, step.Description)
	}
	return b.String()
}

// ParseTree renders one ParseNode as an indented outline, the same shape
// forest.String uses for a single tree but with one symbol per line
// instead of inline brackets, for a ll1parse.Result.Tree.
func ParseTree(n *grammar.ParseNode) string {
	var b strings.Builder
	writeTree(&b, n, 0)
	return b.String()
}

func writeTree(b *strings.Builder, n *grammar.ParseNode, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Symbol)
	b.WriteString("\n")
	for _, c := range n.Children {
		writeTree(b, c, depth+1)
	}
}

// Forest renders every tree in trees, numbered, each via forest.String's
// inline bracket notation.
func Forest(trees []*grammar.ParseNode) string {
	var b strings.Builder
	for i, t := range trees {
		fmt.Fprintf(&b, "tree %d: %s\n", i+1, forest.String(t))
	}
	return b.String()
}

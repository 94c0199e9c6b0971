// Package ll1parse implements G.ll1_parse: the stack-driven table parser
// with synchronization-set recovery, per design note §4.2.4. Its core loop
// is an explicit symbol stack paired with a parse-tree-node stack of the
// same depth, extended with panic-mode recovery.
package ll1parse

import (
	"fmt"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/ll1table"
	"github.com/dekarrin/langtoolkit/internal/util"
)

// Step is one recorded action of a parse: a match, an expansion, a
// diagnostic, or a recovery sync point, per design note §4.2.4's "emit a trace
// step."
type Step struct {
	Description string
}

// Trace is the ordered sequence of Steps a Parse run produced.
type Trace []Step

func (tr *Trace) record(format string, args ...interface{}) {
	*tr = append(*tr, Step{Description: fmt.Sprintf(format, args...)})
}

// Result is everything one Parse call produces: the partial or complete
// parse tree built so far, whether the input was accepted, and the trace
// of every step taken.
type Result struct {
	Tree   *grammar.ParseNode
	Accept bool
	Trace  Trace
	Errors []string
}

// Parse runs the table-driven LL(1) parse of tokens (a sequence of
// terminal names, NOT including the trailing end-marker — Parse appends
// grammar.EndOfInput itself) against tbl, using sets.Follow for panic-mode
// recovery synchronization sets, per design note §4.2.4.
func Parse(g *grammar.Grammar, tbl *ll1table.Table, sets firstfollow.Sets, tokens []string) Result {
	input := append(append([]string{}, tokens...), grammar.EndOfInput)
	pos := 0
	lookahead := func() string { return input[pos] }
	advance := func() { pos++ }

	var stack util.Stack[string]
	stack.Push(grammar.EndOfInput)
	stack.Push(tbl.Start)

	root := grammar.Internal(tbl.Start, nil)
	var nodeStack util.Stack[*grammar.ParseNode]
	nodeStack.Push(root)

	var trace Trace
	var errs []string

	// currentContext tracks the most recently expanded non-terminal (not
	// necessarily the one whose production pushed the terminal now on top
	// of the stack), used as the recovery context design note §4.2.4 calls
	// "FOLLOW(previous-nonterminal-context)" when a terminal on top of the
	// stack fails to match the lookahead.
	currentContext := tbl.Start

	for stack.Peek() != grammar.EndOfInput {
		top := stack.Peek()
		la := lookahead()

		if g.IsTerminal(top) {
			if top == la {
				node := nodeStack.Peek()
				node.Terminal = true
				node.Symbol = top
				node.Children = nil
				stack.Pop()
				nodeStack.Pop()
				trace.record("match terminal %q", top)
				advance()
				continue
			}

			errs = append(errs, fmt.Sprintf("expected terminal %q, found %q", top, la))
			trace.record("error: expected %q, found %q", top, la)

			syncSet := sets.Follow[currentContext]
			for lookahead() != grammar.EndOfInput && !syncSet.Has(lookahead()) {
				advance()
			}
			trace.record("panic-mode: synchronized on %q (context %s)", lookahead(), currentContext)
			stack.Pop()
			nodeStack.Pop()
			continue
		}

		// top is a non-terminal.
		ref, ok := tbl.Get(top, la)
		if !ok {
			errs = append(errs, fmt.Sprintf("no rule for (%s, %s)", top, la))
			trace.record("error: no table entry for (%s, %s)", top, la)

			syncSet := sets.Follow[top]
			for lookahead() != grammar.EndOfInput && !syncSet.Has(lookahead()) {
				advance()
			}
			trace.record("panic-mode: popped %s, synchronized on %q", top, lookahead())
			stack.Pop()
			nodeStack.Pop()
			continue
		}

		prod := g.Productions(ref.LHS)[ref.Index]
		trace.record("expand %s -> %s", top, prod.String())

		stack.Pop()
		node := nodeStack.Pop()
		currentContext = top

		var children []*grammar.ParseNode
		if !prod.IsEpsilon() {
			for i := len(prod) - 1; i >= 0; i-- {
				stack.Push(prod[i])
			}
		}
		for range prod {
			children = append(children, &grammar.ParseNode{})
		}
		node.Symbol = top
		node.Terminal = false
		node.Children = children
		for i := len(children) - 1; i >= 0; i-- {
			nodeStack.Push(children[i])
		}
	}

	// Accept: stack empty (top == $) and lookahead == $, per design note §4.2.4 —
	// the loop only exits once the stack has reached that state, so
	// whether any panic-mode recovery happened along the way is recorded
	// in Errors/Trace but does not itself block acceptance.
	accept := lookahead() == grammar.EndOfInput
	return Result{Tree: root, Accept: accept, Trace: trace, Errors: errs}
}

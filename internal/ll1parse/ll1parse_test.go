package ll1parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/ll1table"
)

func exprGrammar(t *testing.T) (*grammar.Grammar, *ll1table.Table, firstfollow.Sets) {
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
	sets := firstfollow.Compute(g)
	tbl := ll1table.Build(g, sets)
	return g, tbl, sets
}

func Test_Parse_acceptsScenario7(t *testing.T) {
	// design note §8 scenario 7: "number mod number div number * number" parses
	// to success against this exact grammar.
	assert := assert.New(t)
	g, tbl, sets := exprGrammar(t)

	tokens := strings.Fields("number mod number div number * number")
	result := Parse(g, tbl, sets, tokens)

	assert.True(result.Accept)
	assert.Empty(result.Errors)
	assert.NotNil(result.Tree)
}

func Test_Parse_singleNumber(t *testing.T) {
	assert := assert.New(t)
	g, tbl, sets := exprGrammar(t)

	result := Parse(g, tbl, sets, []string{"number"})

	assert.True(result.Accept)
	assert.Empty(result.Errors)
}

func Test_Parse_parenthesized(t *testing.T) {
	assert := assert.New(t)
	g, tbl, sets := exprGrammar(t)

	result := Parse(g, tbl, sets, strings.Fields("( number + number )"))

	assert.True(result.Accept)
	assert.Empty(result.Errors)
}

func Test_Parse_recoversFromMismatchedTerminal(t *testing.T) {
	// "number number" is invalid (two numbers with no operator); the
	// parser should report an error and still terminate with a trace,
	// rather than looping forever.
	assert := assert.New(t)
	g, tbl, sets := exprGrammar(t)

	result := Parse(g, tbl, sets, strings.Fields("number number"))

	assert.NotEmpty(result.Errors)
	assert.NotEmpty(result.Trace)
}

func Test_Parse_treeLeavesReadLeftToRightEqualInput(t *testing.T) {
	// Forest soundness property from design note §8, adapted to the single-tree
	// LL(1) parser: leaves of the accepted tree, read left to right,
	// reproduce the terminal input (epsilon leaves contribute nothing).
	assert := assert.New(t)
	g, tbl, sets := exprGrammar(t)

	tokens := strings.Fields("number + number * number")
	result := Parse(g, tbl, sets, tokens)
	if !assert.True(result.Accept) {
		return
	}

	var leaves []string
	var collect func(n *grammar.ParseNode)
	collect = func(n *grammar.ParseNode) {
		if n == nil {
			return
		}
		if n.Terminal {
			if n.Symbol != grammar.EpsilonSymbol {
				leaves = append(leaves, n.Symbol)
			}
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(result.Tree)

	assert.Equal(tokens, leaves)
}

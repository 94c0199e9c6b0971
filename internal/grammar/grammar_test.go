package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Grammar_AddProduction_inferSymbolClasses(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	g.AddProduction("S", []string{"a", "S"})
	g.AddProduction("S", []string{"b"})

	assert.True(g.IsNonTerminal("S"))
	assert.True(g.IsTerminal("a"))
	assert.True(g.IsTerminal("b"))
	assert.False(g.IsNonTerminal("a"))
}

func Test_Grammar_AddProduction_forwardReferencePromotesToNonTerminal(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	// B is used on S's RHS before B's own rule is added; it must end up a
	// non-terminal once its own production is seen.
	g.AddProduction("S", []string{"B"})
	g.AddProduction("B", []string{"x"})

	assert.True(g.IsNonTerminal("B"))
	assert.False(g.IsTerminal("B"))
	assert.True(g.IsTerminal("x"))
}

func Test_Grammar_AddProduction_epsilon(t *testing.T) {
	assert := assert.New(t)

	g := New("S")
	g.AddProduction("S", nil)
	g.AddProduction("S", []string{"ε"})

	prods := g.Productions("S")
	if assert.Len(prods, 2) {
		assert.True(prods[0].IsEpsilon())
		assert.True(prods[1].IsEpsilon())
	}
}

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() *Grammar
		expectErr bool
	}{
		{
			name: "start has no productions",
			build: func() *Grammar {
				return New("S")
			},
			expectErr: true,
		},
		{
			name: "RHS symbol with no rule of its own is a terminal",
			build: func() *Grammar {
				g := New("S")
				g.AddProduction("S", []string{"A"})
				return g
			},
			expectErr: false,
		},
		{
			name: "well formed",
			build: func() *Grammar {
				g := New("S")
				g.AddProduction("S", []string{"a"})
				return g
			},
			expectErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			err := tc.build().Validate()
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Production_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(EpsilonSymbol, Production(nil).String())
	assert.Equal("a S", Production([]string{"a", "S"}).String())
}

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		expectErr bool
		start     string
		check     func(t *testing.T, g *Grammar)
	}{
		{
			name:  "single rule no alternatives",
			text:  "S -> a b",
			start: "S",
			check: func(t *testing.T, g *Grammar) {
				assert.Equal(t, []Production{{"a", "b"}}, g.Productions("S"))
			},
		},
		{
			name:  "alternatives with pipe",
			text:  "S -> a | b | c",
			start: "S",
			check: func(t *testing.T, g *Grammar) {
				assert.Len(t, g.Productions("S"), 3)
			},
		},
		{
			name:  "epsilon via literal symbol",
			text:  "S -> ε",
			start: "S",
			check: func(t *testing.T, g *Grammar) {
				assert.True(t, g.Productions("S")[0].IsEpsilon())
			},
		},
		{
			name:  "epsilon via blank alternative",
			text:  "S -> a |",
			start: "S",
			check: func(t *testing.T, g *Grammar) {
				if assert.Len(t, g.Productions("S"), 2) {
					assert.True(t, g.Productions("S")[1].IsEpsilon())
				}
			},
		},
		{
			name:  "multiple rules separated by newline",
			text:  "S -> A B\nA -> a\nB -> b",
			start: "S",
			check: func(t *testing.T, g *Grammar) {
				assert.Equal(t, "S", g.Start)
				assert.True(t, g.IsNonTerminal("A"))
				assert.True(t, g.IsNonTerminal("B"))
			},
		},
		{
			name:  "multiple rules separated by semicolon",
			text:  "S -> A; A -> a",
			start: "S",
			check: func(t *testing.T, g *Grammar) {
				assert.True(t, g.IsNonTerminal("A"))
			},
		},
		{
			name:      "empty text",
			text:      "",
			expectErr: true,
		},
		{
			name:      "missing arrow",
			text:      "S a b",
			expectErr: true,
		},
		{
			name:      "empty left hand side",
			text:      " -> a",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g, err := Parse(tc.text)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.start, g.Start)
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

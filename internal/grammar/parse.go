package grammar

import (
	"fmt"
	"strings"
)

// Parse reads the textual grammar notation the CLI programs accept: one
// rule per `;`-or-newline-separated statement, `LHS -> RHS1 | RHS2 | ...`,
// symbols whitespace-separated, `ε` or a blank RHS for the epsilon
// production. The first LHS encountered becomes the start symbol. This is
// grounded in TunaQuest's parseGrammar/parseRule
// (internal/tunascript/grammar.go), generalized from one hardcoded
// scripting grammar to an arbitrary caller-supplied one.
func Parse(text string) (*Grammar, error) {
	stmts := splitStatements(text)

	var g *Grammar
	for _, stmt := range stmts {
		lhs, rhsAlts, err := parseRuleLine(stmt)
		if err != nil {
			return nil, err
		}

		if g == nil {
			g = New(lhs)
		}

		for _, rhs := range rhsAlts {
			g.AddProduction(lhs, rhs)
		}
	}

	if g == nil {
		return nil, fmt.Errorf("grammar: empty grammar text")
	}
	return g, nil
}

// splitStatements breaks text into one string per rule, splitting first on
// ';' and then on newlines, so either an inline or one-rule-per-line style
// is accepted.
func splitStatements(text string) []string {
	var out []string
	for _, semiPart := range strings.Split(text, ";") {
		for _, line := range strings.Split(semiPart, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

// parseRuleLine parses one "LHS -> RHS | RHS2 ..." statement into its LHS
// name and the list of RHS symbol sequences (each possibly empty, for
// epsilon).
func parseRuleLine(stmt string) (lhs string, rhsAlts [][]string, err error) {
	sides := strings.SplitN(stmt, "->", 2)
	if len(sides) != 2 {
		return "", nil, fmt.Errorf("grammar: not a rule of form 'LHS -> RHS | RHS2 ...': %q", stmt)
	}

	lhs = strings.TrimSpace(sides[0])
	if lhs == "" {
		return "", nil, fmt.Errorf("grammar: empty left-hand side in %q", stmt)
	}

	for _, altText := range strings.Split(sides[1], "|") {
		altText = strings.TrimSpace(altText)

		if altText == "" || altText == EpsilonSymbol {
			rhsAlts = append(rhsAlts, nil)
			continue
		}

		rhsAlts = append(rhsAlts, strings.Fields(altText))
	}

	return lhs, rhsAlts, nil
}

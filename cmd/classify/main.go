/*
Classify reads a context-free grammar and reports its most restrictive
Chomsky classification: Regular, Right-Linear, Left-Linear, Context-Free,
Context-Sensitive, or Unknown.

Input format (batch mode, read from stdin unless -i is given): a
whitespace-separated list of non-terminals on one line, then a
whitespace-separated list of terminals on the next line, then one
production line per rule in the form "LHS -> RHS" (both sides
whitespace-tokenized; an RHS of "ε" or nothing is the epsilon production),
terminated by a blank line, followed by one line naming the start symbol.

Usage:

	classify [flags]

The flags are:

	-i, --interactive
		Read the same five-part input interactively via a GNU-readline
		backed prompt instead of from a single batch of stdin.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/langtoolkit/internal/classify"
	"github.com/dekarrin/langtoolkit/internal/grammar"
)

const (
	// ExitSuccess indicates a grammar was read and classified.
	ExitSuccess = iota

	// ExitParseError indicates the input did not describe a valid grammar.
	ExitParseError
)

var flagInteractive = pflag.BoolP("interactive", "i", false, "Read input interactively via a readline prompt instead of batch stdin")

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	var lineSource func() (string, bool)
	if *flagInteractive {
		rl, err := readline.NewEx(&readline.Config{Prompt: "> "})
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitParseError
		}
		defer rl.Close()
		lineSource = func() (string, bool) {
			line, err := rl.Readline()
			if err != nil {
				return "", false
			}
			return line, true
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		lineSource = func() (string, bool) {
			if !scanner.Scan() {
				return "", false
			}
			return scanner.Text(), true
		}
	}

	g, err := readGrammar(lineSource)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitParseError
	}

	class := classify.Classify(g)
	fmt.Println(class.String())
	return ExitSuccess
}

// readGrammar consumes the five-part input format next() yields lines for:
// non-terminals, terminals, production lines until a blank line, then the
// start symbol.
func readGrammar(next func() (string, bool)) (*grammar.Grammar, error) {
	// The non-terminal and terminal lists are declarative documentation
	// only: Grammar.AddProduction infers each symbol's class from how it
	// is used, the same way grammar.Parse does for the "LHS -> RHS | ..."
	// notation the other CLIs accept.
	if _, ok := next(); !ok {
		return nil, io.ErrUnexpectedEOF
	}
	if _, ok := next(); !ok {
		return nil, io.ErrUnexpectedEOF
	}

	type rule struct {
		lhs string
		rhs []string
	}
	var rules []rule
	for {
		line, ok := next()
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		if strings.TrimSpace(line) == "" {
			break
		}

		lhs, rhs, err := splitProductionLine(line)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule{lhs: lhs, rhs: rhs})
	}

	startLine, ok := next()
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	start := strings.TrimSpace(startLine)
	if start == "" {
		return nil, fmt.Errorf("classify: empty start-symbol line")
	}

	g := grammar.New(start)
	for _, r := range rules {
		g.AddProduction(r.lhs, r.rhs)
	}
	return g, nil
}

// splitProductionLine parses one "LHS -> RHS" line, where RHS is "ε" or
// blank for an epsilon production.
func splitProductionLine(line string) (lhs string, rhs []string, err error) {
	sides := strings.SplitN(line, "->", 2)
	if len(sides) != 2 {
		return "", nil, fmt.Errorf("classify: not a rule of the form 'LHS -> RHS': %q", line)
	}

	lhs = strings.TrimSpace(sides[0])
	if lhs == "" {
		return "", nil, fmt.Errorf("classify: empty left-hand side in %q", line)
	}

	rhsText := strings.TrimSpace(sides[1])
	if rhsText == "" || rhsText == grammar.EpsilonSymbol {
		return lhs, nil, nil
	}
	return lhs, strings.Fields(rhsText), nil
}

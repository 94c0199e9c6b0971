/*
Forest enumerates and renders every derivation tree of a sentence under a
possibly-ambiguous context-free grammar, after an ε-elimination pre-pass.

With no -g flag, the built-in sample attachment-ambiguous grammar is used:

	S   -> NP VP
	NP  -> Det N | NP PP
	VP  -> V NP | VP PP
	PP  -> P NP
	Det -> the | a
	N   -> cat | dog | telescope | park
	V   -> saw | walked
	P   -> in | with

Usage:

	forest [flags] <token> [<token> ...]

The flags are:

	-g, --grammar FILE
		Read the grammar from FILE instead of the built-in sample, in the
		"LHS -> RHS | RHS2 ..." textual notation internal/grammar parses.

Each positional argument is one terminal token of the sentence to parse,
e.g.:

	forest the dog saw a cat in the park
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/langtoolkit/internal/forest"
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/report"
)

const sampleGrammar = `
S -> NP VP
NP -> Det N | NP PP
VP -> V NP | VP PP
PP -> P NP
Det -> the | a
N -> cat | dog | telescope | park
V -> saw | walked
P -> in | with
`

const (
	// ExitSuccess indicates the sentence was parsed (whether or not any
	// trees were found; an empty forest is a reported rejection, not a
	// program failure).
	ExitSuccess = iota

	// ExitGrammarError indicates the grammar file could not be read or
	// parsed.
	ExitGrammarError

	// ExitUsageError indicates no sentence tokens were given.
	ExitUsageError
)

var flagGrammar = pflag.StringP("grammar", "g", "", "Grammar file to read instead of the built-in sample")

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	text := sampleGrammar
	if *flagGrammar != "" {
		data, err := os.ReadFile(*flagGrammar)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitGrammarError
		}
		text = string(data)
	}

	g, err := grammar.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitGrammarError
	}

	tokens := pflag.Args()
	if len(tokens) == 0 {
		fmt.Fprintln(os.Stderr, "usage: forest [flags] <token> [<token> ...]")
		return ExitUsageError
	}

	efree := forest.Eliminate(g)
	trees := forest.Parse(efree, tokens)

	if len(trees) == 0 {
		fmt.Println("no derivation (0 trees)")
		return ExitSuccess
	}

	fmt.Printf("%d tree(s):\n", len(trees))
	fmt.Print(report.Forest(trees))
	return ExitSuccess
}

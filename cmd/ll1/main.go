/*
Ll1 builds the LL(1) parsing table for a grammar and parses a line of
whitespace-separated terminal names from stdin against it, printing the
table, any conflicts, the parse trace, and the accept/reject verdict.

With no -g flag, the built-in sample expression grammar from this
toolkit's test scenarios is used:

	E  -> T E'
	E' -> + T E' | - T E' | ε
	T  -> F T'
	T' -> * F T' | div F T' | mod F T' | ε
	F  -> number | ( E )

Usage:

	ll1 [flags]

The flags are:

	-g, --grammar FILE
		Read the grammar from FILE instead of using the built-in sample,
		in the "LHS -> RHS | RHS2 ..." textual notation internal/grammar
		parses.

	--cache FILE
		Load a previously-saved LL(1) table from FILE if present, else
		build it and save it there for next time.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/langtoolkit/internal/firstfollow"
	"github.com/dekarrin/langtoolkit/internal/grammar"
	"github.com/dekarrin/langtoolkit/internal/ll1parse"
	"github.com/dekarrin/langtoolkit/internal/ll1table"
	"github.com/dekarrin/langtoolkit/internal/report"
)

const sampleGrammar = `
E -> T E'
E' -> + T E' | - T E' | ε
T -> F T'
T' -> * F T' | div F T' | mod F T' | ε
F -> number | ( E )
`

const (
	// ExitSuccess indicates the table was built and the input line parsed
	// (whether accepted or rejected; rejection is a reported result, not
	// a program failure).
	ExitSuccess = iota

	// ExitGrammarError indicates the grammar file could not be read or
	// parsed.
	ExitGrammarError

	// ExitIOError indicates a fatal I/O failure reading stdin or the
	// cache file.
	ExitIOError
)

var (
	flagGrammar = pflag.StringP("grammar", "g", "", "Grammar file to read instead of the built-in sample")
	flagCache   = pflag.String("cache", "", "LL(1) table cache file to load from or save to")
)

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

	tbl, sets, err := loadOrBuildTable(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitIOError
	}

	fmt.Println(report.FirstFollow(g, sets))
	fmt.Println(report.LL1Table(g, tbl))

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fmt.Fprintln(os.Stderr, "ERROR: expected a line of whitespace-separated terminal names on stdin")
		return ExitIOError
	}
	tokens := strings.Fields(scanner.Text())

	result := ll1parse.Parse(g, tbl, sets, tokens)
	fmt.Println(report.Trace(result.Trace))
	if result.Accept {
		fmt.Println("accept")
	} else {
		fmt.Println("reject")
	}
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, "parse error:", e)
	}

	return ExitSuccess
}

// loadOrBuildTable loads *flagCache if it exists and is readable, else
// builds the table fresh and, if --cache was given, saves it for next
// time. FIRST/FOLLOW are always (re)computed: they are cheap relative to
// table construction and the cache only persists the Table itself, kept
// as an optional convenience for repeated runs against the same grammar.
func loadOrBuildTable(g *grammar.Grammar) (*ll1table.Table, firstfollow.Sets, error) {
	sets := firstfollow.Compute(g)

	if *flagCache != "" {
		if f, err := os.Open(*flagCache); err == nil {
			defer f.Close()
			tbl, err := ll1table.Load(f)
			if err == nil {
				return tbl, sets, nil
			}
		}
	}

	tbl := ll1table.Build(g, sets)

	if *flagCache != "" {
		f, err := os.Create(*flagCache)
		if err != nil {
			return nil, firstfollow.Sets{}, err
		}
		defer f.Close()
		if err := tbl.SaveTo(f); err != nil {
			return nil, firstfollow.Sets{}, err
		}
	}

	return tbl, sets, nil
}

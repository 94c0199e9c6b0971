package lexer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dekarrin/langtoolkit/internal/lexconf"
	"github.com/dekarrin/langtoolkit/internal/symtab"
	"github.com/dekarrin/langtoolkit/internal/token"
)

// Stats summarizes a completed Run: how many tokens of each Kind were
// produced and how many of those were Error tokens, for cmd/lexer to report
// a one-line summary after writing the output files.
type Stats struct {
	Total  int
	Errors int
	Counts map[token.Kind]int

	// Diagnostics holds the FullMessage of every Error token encountered,
	// in order, for a caller to print after the run completes.
	Diagnostics []string
}

// tableFiles names the five symbol-table output files a Run writes into
// Config.OutDir, per design note §4.1.6.
var tableFiles = map[string]string{
	"identifier": "identifier_table.txt",
	"char":       "char_literal_table.txt",
	"string":     "string_literal_table.txt",
	"int":        "integer_literal_table.txt",
	"float":      "float_literal_table.txt",
}

// Run drives a Lexer to completion over r, writing output.txt (one rendered
// token per line, prefixed with a run-id comment line) and the five
// symbol-table files into cfg.OutDir, and returns aggregate Stats. It opens
// its own sinks; the caller only supplies an io.Reader and a Config.
func Run(r io.Reader, cfg lexconf.Config) (Stats, error) {
	if err := cfg.EnsureOutDir(); err != nil {
		return Stats{}, fmt.Errorf("lexer run: %w", err)
	}

	sinks, closeSinks, err := openFileSinks(cfg.OutDir)
	if err != nil {
		return Stats{}, fmt.Errorf("lexer run: %w", err)
	}
	defer closeSinks()

	outPath := filepath.Join(cfg.OutDir, "output.txt")
	outFile, err := os.Create(outPath)
	if err != nil {
		return Stats{}, fmt.Errorf("lexer run: create %q: %w", outPath, err)
	}
	defer outFile.Close()
	out := bufio.NewWriter(outFile)
	defer out.Flush()

	runID := uuid.New()
	fmt.Fprintf(out, "# run %s\n", runID)

	lx, err := New(r, cfg, sinks)
	if err != nil {
		return Stats{}, fmt.Errorf("lexer run: %w", err)
	}

	stats := Stats{Counts: make(map[token.Kind]int)}
	for {
		tok := lx.Next()
		if tok.Kind == token.EndOfText {
			break
		}

		stats.Total++
		stats.Counts[tok.Kind]++
		if tok.Kind == token.Error {
			stats.Errors++
			stats.Diagnostics = append(stats.Diagnostics, tok.Err.FullMessage())
		}

		// output.txt records one line per non-whitespace, non-comment
		// token per design note §6; comments are still counted in Stats but
		// never written to the rendered stream.
		if tok.Kind == token.Comment {
			continue
		}

		if _, werr := fmt.Fprintln(out, tok.String()); werr != nil {
			return stats, fmt.Errorf("lexer run: write %q: %w", outPath, werr)
		}
	}

	if lx.Err() != nil {
		return stats, lx.Err()
	}
	return stats, nil
}

// openFileSinks opens the five symbol-table sinks under outDir, closing
// whichever ones already succeeded if a later one fails to open.
func openFileSinks(outDir string) (Sinks, func(), error) {
	opened := make([]symtab.Sink, 0, 5)
	closeAll := func() {
		for _, s := range opened {
			s.Close()
		}
	}

	open := func(key string) (symtab.Sink, error) {
		s, err := symtab.OpenFileSink(filepath.Join(outDir, tableFiles[key]))
		if err != nil {
			return nil, err
		}
		opened = append(opened, s)
		return s, nil
	}

	ident, err := open("identifier")
	if err != nil {
		return Sinks{}, closeAll, err
	}
	char, err := open("char")
	if err != nil {
		return Sinks{}, closeAll, err
	}
	str, err := open("string")
	if err != nil {
		return Sinks{}, closeAll, err
	}
	intLit, err := open("int")
	if err != nil {
		return Sinks{}, closeAll, err
	}
	floatLit, err := open("float")
	if err != nil {
		return Sinks{}, closeAll, err
	}

	return Sinks{
		Identifier:     ident,
		CharLiteral:    char,
		StringLiteral:  str,
		IntegerLiteral: intLit,
		FloatLiteral:   floatLit,
	}, closeAll, nil
}

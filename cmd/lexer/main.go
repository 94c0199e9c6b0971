/*
Lexer tokenizes a Rust-like systems-programming source file.

It reads the given source file, runs the full double-buffered lexer over it,
and writes output.txt plus the five symbol-table files (identifier,
char-literal, string-literal, integer-literal, float-literal) into the
output directory. A one-line summary of token counts and errors is printed
to stdout when done.

Usage:

	lexer [flags] <source-file>

The flags are:

	-o, --out-dir DIR
		Directory to write output.txt and the symbol-table files into.
		Defaults to the current directory.

	-c, --config FILE
		TOML configuration file overriding page size and the
		underscore-identifier policy. See internal/lexconf for the format.

	-v, --version
		Print the current version and exit.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/langtoolkit/internal/lexconf"
	"github.com/dekarrin/langtoolkit/internal/lexer"
	"github.com/dekarrin/langtoolkit/internal/version"
)

const (
	// ExitSuccess indicates the source file was lexed and all output
	// written successfully.
	ExitSuccess = iota

	// ExitUsageError indicates the command line was malformed.
	ExitUsageError

	// ExitIOError indicates a fatal failure opening the source file,
	// creating an output file, or writing to one.
	ExitIOError
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Print the current version and exit")
	flagOutDir  = pflag.StringP("out-dir", "o", ".", "Directory to write output.txt and the symbol-table files into")
	flagConfig  = pflag.StringP("config", "c", "", "TOML configuration file overriding lexer defaults")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return ExitSuccess
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexer [flags] <source-file>")
		return ExitUsageError
	}
	sourcePath := pflag.Arg(0)

	cfg := lexconf.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = lexconf.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return ExitIOError
		}
	}
	cfg.OutDir = *flagOutDir

	src, err := os.Open(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitIOError
	}
	defer src.Close()

	stats, err := lexer.Run(src, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitIOError
	}

	for _, diag := range stats.Diagnostics {
		fmt.Fprintln(os.Stderr, diag)
	}

	fmt.Printf("%d tokens, %d errors, written to %s\n", stats.Total, stats.Errors, cfg.OutDir)
	return ExitSuccess
}

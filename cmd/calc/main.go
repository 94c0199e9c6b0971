/*
Calc evaluates one arithmetic expression per line of stdin over the fixed
alphabet {Number, + - * / ( )}, printing the integer result or an error.
Division truncates toward zero; division by zero is reported as an error
on that line, never a crash.

Usage:

	calc
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dekarrin/langtoolkit/internal/calcexpr"
)

const (
	// ExitSuccess indicates every line of input was read, whether or not
	// some individual expressions reported an error.
	ExitSuccess = iota

	// ExitIOError indicates a fatal failure reading stdin.
	ExitIOError
)

func main() {
	os.Exit(run())
}

func run() int {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		result, err := calcexpr.EvalString(line)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			continue
		}
		fmt.Println(result)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return ExitIOError
	}
	return ExitSuccess
}

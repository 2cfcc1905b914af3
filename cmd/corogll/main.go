// Package main provides the CLI entry point for corogll.
//
// Usage:
//
//	corogll < input.expr
//	echo 'a + b * c' | corogll
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ezbrandt/corogll"
)

const version = "corogll version 0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "print version information")
	showHelp := flag.Bool("h", false, "print usage")
	flag.BoolVar(showHelp, "help", false, "print usage")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}
	if *showHelp {
		printUsage()
		return
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`corogll - lex and parse a C-family expression

Usage:
  corogll < input.expr

Reads a single expression from stdin and writes an indented print of its
concrete syntax tree to stdout. A ".corogll.toml" in the working
directory, or the path named by $COROGLL_CONFIG, can set the indent width
and whether trivia nodes are shown.

Options:
  -version   print version information
  -h, -help  print this message`)
}

func run(in io.Reader, out io.Writer) error {
	source, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	cfg := loadConfig()

	tree, parseErr := corogll.ParseExpression(string(source))
	defer tree.Release()

	printNode(out, tree.Root, 0, cfg)

	for _, e := range tree.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e.Message)
	}
	if parseErr != nil {
		return nil
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezbrandt/corogll/syntax"
)

// printNode writes an indented, one-node-per-line print of tree rooted at
// node: kind name, and for a leaf its exact text in quotes. Trivia nodes
// (whitespace, comments, error characters) are included only when the
// config asks for them — by default the tree reads as the grammar shapes
// it, not as every raw byte of input.
func printNode(out io.Writer, node *syntax.SyntaxNode, depth int, cfg config) {
	if node == nil {
		return
	}
	if node.Kind().IsTrivia() && !cfg.ShowTrivia {
		return
	}

	indent := strings.Repeat(" ", depth*cfg.IndentWidth)
	if node.IsLeaf() {
		fmt.Fprintf(out, "%s%s %q\n", indent, node.Kind(), node.Text())
		return
	}

	fmt.Fprintf(out, "%s%s\n", indent, node.Kind())
	for _, child := range node.Children() {
		printNode(out, child, depth+1, cfg)
	}
}

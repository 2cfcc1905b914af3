// Package corogll lexes and parses a C-family expression language with a
// trivia-aware lexer and a fork/memoize recursive-descent grammar. See
// SPEC_FULL.md for the full component breakdown; this file is just the two
// public entry points, Lex and ParseExpression.
package corogll

import (
	"github.com/ezbrandt/corogll/arena"
	"github.com/ezbrandt/corogll/grammar"
	"github.com/ezbrandt/corogll/lexer"
	"github.com/ezbrandt/corogll/parserrt"
	"github.com/ezbrandt/corogll/syntax"
)

// SyntaxTree bundles a parsed expression's root node with the arena that
// backs its interned strings — the simpler of the two
// designs §9 considered: one owner for tree and arena together, rather than
// exposing the arena as a separate resource the caller must keep alive and
// eventually release itself.
type SyntaxTree struct {
	Root   *syntax.SyntaxNode
	Source string
	Errors []*syntax.SyntaxError

	arena *arena.Arena
}

// Release returns the tree's arena memory. A tree is usable (its Root can
// still be walked and printed) after Release; only the interned string
// backing storage is freed, the same trade a typst-style document makes
// once nothing further will be interned into it.
func (t *SyntaxTree) Release() {
	t.arena.Release()
}

// Lex tokenizes text in full, returning every token (including the
// trailing Eof) plus any lexer errors recorded along the way. Lexer errors
// never stop tokenization early — an illegal character or an unterminated
// literal is recorded and scanning continues, per the lexer's
// continue-and-record error model.
func Lex(text string) (*syntax.TokenList, []*syntax.SyntaxError) {
	ar := arena.New()
	tokens, errs := lexer.Lex(text, ar)
	return tokens, errs
}

// ParseExpression lexes and parses text as a single expression. A
// tokenization or parse error never produces a nil tree: the lexer
// continues past illegal input, and an unrecoverable parse error is
// swallowed into a single Error node spanning the remaining tokens, so the
// caller always gets a tree — report err for diagnostics.
func ParseExpression(text string) (*SyntaxTree, error) {
	ar := arena.New()
	tokenList, lexErrs := lexer.Lex(text, ar)

	ctx := parserrt.NewContext(tokenList.Tokens)
	root, err := grammar.ParseRoot(ctx)
	if err != nil {
		root = ctx.RecoverRemaining(err, root)
	}

	errs := make([]*syntax.SyntaxError, 0, len(lexErrs)+len(root.Errors()))
	errs = append(errs, lexErrs...)
	errs = append(errs, root.Errors()...)

	tree := &SyntaxTree{Root: root, Source: text, Errors: errs, arena: ar}
	return tree, err
}

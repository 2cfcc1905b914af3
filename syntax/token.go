package syntax

import (
	"github.com/ezbrandt/corogll/lexpos"
	"github.com/ezbrandt/corogll/rational"
)

// Token is a single lexical unit produced by the lexer: a punctuation
// symbol, a keyword, a name, a literal, or the end-of-file marker. Text
// always holds the exact source slice the token was scanned from
// (including quotes, escapes, and any "@" verbatim marker), so building a
// leaf straight from it reconstructs the original bytes.
//
// Decoded payloads (NumericValue, DecodedText) are carried alongside the
// raw text rather than replacing it, since the concrete tree must round
// trip exactly while the grammar and any downstream consumer want the
// evaluated value.
type Token struct {
	Kind SyntaxKind
	Span lexpos.Span
	Text string

	// Leading and Trailing hold the trivia (whitespace, comments, error
	// characters) immediately surrounding the token: Leading may span
	// multiple lines, Trailing stops at the first line break.
	Leading  []*SyntaxNode
	Trailing []*SyntaxNode

	// Verbatim is set for a Name scanned from "@ident" — an identifier
	// spelled to escape keyword-ness.
	Verbatim bool

	// NumericValue holds the evaluated value of a NumericLiteral token.
	NumericValue rational.Rational

	// DecodedText holds the escape-expanded value of a CharLiteral or
	// StringLiteral token (Text itself keeps the raw, quoted source).
	DecodedText string

	// Suffix holds a literal's type suffix (e.g. a trailing identifier
	// glued onto a string or numeric literal with no space), if any. A
	// suffix carries no trivia of its own — it is lexically adjacent to
	// the literal it follows.
	Suffix *Token
}

// Leaf converts the token into a tree leaf carrying its exact source text.
func (t Token) Leaf() *SyntaxNode {
	return Leaf(t.Kind, t.Text)
}

// AppendTo appends the token's leading trivia, the token itself, its
// optional literal suffix, and its trailing trivia onto children, in that
// order — the sequence a concrete tree needs to round trip the source
// exactly at the point this token was consumed.
func (t Token) AppendTo(children []*SyntaxNode) []*SyntaxNode {
	children = append(children, t.Leading...)
	children = append(children, t.Leaf())
	if t.Suffix != nil {
		children = append(children, t.Suffix.Leaf())
	}
	children = append(children, t.Trailing...)
	return children
}

// TokenList is the flat output of lexing: every token in the source,
// including the trailing Eof, plus the source text they were scanned from.
type TokenList struct {
	Tokens []Token
	Source string
}

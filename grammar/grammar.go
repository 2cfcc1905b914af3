// Package grammar implements the expression grammar as a set of recursive
// rules over a parserrt.Context: precedence-climbing binary operators, the
// unary-prefix/meta-expression family, postfix invoke and access chains,
// and the two lookahead ambiguities (parenthesized-vs-cast,
// specialization-vs-less-than) resolved via Context.Fork.
package grammar

import (
	"fmt"

	"github.com/ezbrandt/corogll/parserrt"
	"github.com/ezbrandt/corogll/syntax"
)

// flags carries the single contextual bit the grammar needs to thread
// through recursive calls: whether the current position is being parsed as
// a type expression (the parenthesized type of a cast, the right-hand side
// of an `as`, or a specialization argument), where the binary-operator loop
// and the call and index postfixes are suppressed.
type flags uint8

const flagTypeExpr flags = 1 << 0

func (f flags) typeExpr() bool { return f&flagTypeExpr != 0 }

// precedence levels, lowest to highest, matching the chain a full
// expression climbs through before reaching a primary.
type precedence int

const (
	precExpression precedence = iota
	precAssignment
	precTernary
	precCoalescing
	precLogicalOr
	precLogicalAnd
	precEquality
	precRelation
	precOr
	precXor
	precAnd
	precShift
	precAdditive
	precMultiplicative
	precUnaryPrefix
	precTypeCast
	precUnaryPostfix
	precInvoke
	precAccess
	precPrimary
)

// ParseRoot parses a single expression and requires the token stream to be
// fully consumed afterward. Any error — an unconsumed primary, a missing
// closing delimiter deep in a postfix chain, trailing tokens after the
// expression — is left for the caller to recover from; this rule itself
// never swallows anything.
//
// On trailing input the already-parsed expression is still returned
// alongside the error: the expression itself parsed fine, so the caller
// gets a usable tree to fold the leftover tokens onto instead of losing it,
// matching the original's ParseRoot (original_source/CoroGLL/Parser.cpp),
// which flags the trailing-input error but still returns the parsed syntax.
func ParseRoot(ctx *parserrt.Context) (*syntax.SyntaxNode, error) {
	node, err := ParseExpression(ctx, 0, precExpression)
	if err != nil {
		return nil, err
	}
	if !ctx.AtEnd() {
		return node, fmt.Errorf("expected end of input, found %s", ctx.Peek().Kind.Name())
	}
	return node, nil
}

func memoKey(name string, fl flags, prec precedence) string {
	return fmt.Sprintf("%s:%d:%d", name, fl, prec)
}

// Package parserrt is the generalized-parsing runtime the grammar package
// is built on: position-keyed memoization ("frames") and ambiguity
// resolution between competing parses ("forks").
//
// The original parser drives this with suspendable coroutine tasks —
// a rule body awaits ctx.parse(otherRule), awaits ctx.fork(n) to branch into
// n concurrently scheduled alternatives, and the runtime interleaves all
// live tasks breadth-first so the least-advanced one always runs next.
// Go has no stackful coroutines, so this runtime gets the same externally
// observable behavior (each rule's result memoized per position, forks
// resolved by the same preference order) a different way: a fork's
// alternatives are ordinary closures run one after another from a
// snapshotted position, and resolution happens once all of them have
// produced a result rather than by interleaved scheduling. Determinism
// doesn't depend on scheduling order here, since nothing in the grammar
// observes partial progress of a sibling alternative.
package parserrt

import (
	"fmt"

	"github.com/ezbrandt/corogll/lexpos"
	"github.com/ezbrandt/corogll/syntax"
)

// frameState mirrors the three states a memo entry passes through: not yet
// computed, computed successfully, or computed as a failure.
type frameState int

const (
	framePending frameState = iota
	frameReady
	frameError
)

type memoKey struct {
	pos int
	rule string
}

type frame struct {
	state   frameState
	node    *syntax.SyntaxNode
	err     error
	endPos  int
}

// Context drives a single parse: a cursor over the token stream plus the
// memoization table every rule invocation consults before doing any work.
type Context struct {
	tokens []syntax.Token
	pos    int
	memo   map[memoKey]*frame

	// forkSeq counts the fork alternatives run over this context's lifetime.
	// Ties between equally-good results are broken by each alternative's
	// index within its own Fork call, not by this counter.
	forkSeq int
}

// NewContext creates a parsing context over a finished token stream. tokens
// must end with an Eof token.
func NewContext(tokens []syntax.Token) *Context {
	return &Context{tokens: tokens, memo: make(map[memoKey]*frame)}
}

// Pos returns the current token index.
func (c *Context) Pos() int { return c.pos }

// Seek restores the cursor to a previously observed position — used by a
// fork alternative that needs to retry from where the fork started.
func (c *Context) Seek(pos int) { c.pos = pos }

// Peek returns the token at the cursor without consuming it.
func (c *Context) Peek() syntax.Token {
	return c.tokens[c.pos]
}

// PeekAt returns the token offset tokens ahead of the cursor, clamped to
// the final (Eof) token.
func (c *Context) PeekAt(offset int) syntax.Token {
	i := c.pos + offset
	if i >= len(c.tokens) {
		i = len(c.tokens) - 1
	}
	return c.tokens[i]
}

// AtEnd reports whether the cursor has reached the Eof token.
func (c *Context) AtEnd() bool {
	return c.Peek().Kind == syntax.Eof
}

// Eat consumes the current token if its kind matches and appends its
// leading trivia, leaf, suffix, and trailing trivia onto children. It
// reports false and leaves the cursor untouched on a mismatch.
func (c *Context) Eat(kind syntax.SyntaxKind, children []*syntax.SyntaxNode) ([]*syntax.SyntaxNode, bool) {
	tok := c.Peek()
	if tok.Kind != kind {
		return children, false
	}
	c.pos++
	return tok.AppendTo(children), true
}

// EatAny consumes the current token if its kind is in set.
func (c *Context) EatAny(set syntax.SyntaxSet, children []*syntax.SyntaxNode) ([]*syntax.SyntaxNode, bool) {
	tok := c.Peek()
	if !set.Contains(tok.Kind) {
		return children, false
	}
	c.pos++
	return tok.AppendTo(children), true
}

// Advance unconditionally consumes the current token and appends it to
// children, with no kind check. Used once a caller has already classified
// the token itself (for example while assembling a multi-token operator
// like ">>" out of two adjacent ">" tokens).
func (c *Context) Advance(children []*syntax.SyntaxNode) []*syntax.SyntaxNode {
	tok := c.Peek()
	c.pos++
	return tok.AppendTo(children)
}

// Missing appends a zero-width placeholder labeling the syntax that was
// looked for but not found at this position, so the tree still has a slot
// for it and a consumer can report what belonged there. Not every Missing
// slot is itself an error (the ternary's omitted true-branch is legal
// syntax); the caller is responsible for also recording a parse error when
// the gap actually is one.
func (c *Context) Missing(children []*syntax.SyntaxNode, expected string) []*syntax.SyntaxNode {
	node := syntax.MissingExpected(expected)
	return append(children, node)
}

// Fail builds the standard "expected X, found Y" error for the current
// token, without consuming it.
func (c *Context) Fail(expected string) error {
	tok := c.Peek()
	return fmt.Errorf("expected %s, found %s", expected, tok.Kind.Name())
}

// Memo runs produce at most once per (rule, current position) pair: the
// first call computes and caches the result (the frame becomes Ready or
// Error), every later call at the same position replays the cached
// outcome and fast-forwards (or leaves, on Error) the cursor accordingly.
// This is what keeps left-recursive-looking grammars (an expression whose
// first alternative re-enters "parse an expression") terminating: the
// second attempt at the same position hits the cache instead of recursing
// forever.
func (c *Context) Memo(rule string, produce func() (*syntax.SyntaxNode, error)) (*syntax.SyntaxNode, error) {
	key := memoKey{pos: c.pos, rule: rule}
	if f, ok := c.memo[key]; ok {
		switch f.state {
		case frameReady:
			c.pos = f.endPos
			return f.node, nil
		case frameError:
			return nil, f.err
		default:
			// A rule recursing into itself at the same position with no
			// progress made yet: treat as immediate failure rather than
			// looping.
			return nil, fmt.Errorf("left recursion detected in rule %q", rule)
		}
	}

	c.memo[key] = &frame{state: framePending}
	node, err := produce()
	if err != nil {
		c.memo[key] = &frame{state: frameError, err: err}
		c.pos = key.pos
		return nil, err
	}
	c.memo[key] = &frame{state: frameReady, node: node, endPos: c.pos}
	return node, nil
}

// forkResult is one alternative's outcome: a position snapshot, whatever
// it produced, and this alternative's declaration order (used to break
// ties).
type forkResult struct {
	seq    int
	node   *syntax.SyntaxNode
	err    error
	endPos int
}

// Fork tries every alternative from the same starting position and keeps
// the best outcome, per the same preference order the original scheduler
// applies when pruning forks at a frame:
//  1. a successful parse beats a failed one;
//  2. between two successful parses, the one that consumed more tokens
//     (progressed furthest) wins;
//  3. between two failed parses, the one whose error occurred furthest
//     along wins;
//  4. ties are broken by declaration order (the earlier alternative wins).
func (c *Context) Fork(alts ...func() (*syntax.SyntaxNode, error)) (*syntax.SyntaxNode, error) {
	start := c.pos
	results := make([]forkResult, 0, len(alts))
	for i, alt := range alts {
		c.pos = start
		node, err := alt()
		results = append(results, forkResult{seq: i, node: node, err: err, endPos: c.pos})
	}
	c.forkSeq += len(alts)

	best := results[0]
	for _, r := range results[1:] {
		if betterFork(r, best) {
			best = r
		}
	}
	c.pos = best.endPos
	return best.node, best.err
}

func betterFork(a, b forkResult) bool {
	aOK, bOK := a.err == nil, b.err == nil
	if aOK != bOK {
		return aOK
	}
	if aOK {
		if a.endPos != b.endPos {
			return a.endPos > b.endPos
		}
		return a.seq < b.seq
	}
	if a.endPos != b.endPos {
		return a.endPos > b.endPos
	}
	return a.seq < b.seq
}

// RecoverRemaining swallows an unrecoverable error at the root of a parse:
// it consumes every token left at the cursor, including Eof, and wraps
// their raw text in an error node carrying cause as the witness. This
// guarantees ParseExpression always returns a usable (if erroneous) tree
// instead of failing outright or looping forever trying to resynchronize.
//
// prefix is the expression already parsed successfully before cause was hit
// (for example ParseRoot's trailing-input error, where the expression
// itself is fine and only what follows it is not) — it is kept as the
// first child instead of being discarded, so a caller never loses valid,
// already-parsed structure to an error recorded further on. Pass nil when
// nothing parsed successfully at all (the error node then becomes the
// whole tree, as before).
func (c *Context) RecoverRemaining(cause error, prefix *syntax.SyntaxNode) *syntax.SyntaxNode {
	start := c.pos
	var children []*syntax.SyntaxNode
	for !c.AtEnd() {
		tok := c.Peek()
		children = tok.AppendTo(children)
		c.pos++
	}
	// The Eof token's trivia joins the error node; the cursor stays on Eof
	// so Peek and AtEnd remain valid afterward.
	children = c.tokens[c.pos].AppendTo(children)

	var text string
	for _, child := range children {
		text += child.IntoText()
	}
	span := lexpos.Span{Start: c.tokens[start].Span.Start, End: c.tokens[len(c.tokens)-1].Span.End}
	err := syntax.NewSyntaxError(cause.Error())
	err.Span = span
	remainder := syntax.ErrorNode(err, text)
	if prefix == nil {
		return remainder
	}
	return syntax.Inner(prefix.Kind(), []*syntax.SyntaxNode{prefix, remainder})
}

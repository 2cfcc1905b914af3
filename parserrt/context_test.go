package parserrt

import (
	"fmt"
	"testing"

	"github.com/ezbrandt/corogll/lexpos"
	"github.com/ezbrandt/corogll/syntax"
)

// tok builds a trivia-free token of the given kind and text, ending the
// stream with a trailing Eof is the caller's responsibility.
func tok(kind syntax.SyntaxKind, text string) syntax.Token {
	return syntax.Token{Kind: kind, Text: text, Span: lexpos.Detached}
}

func tokens(toks ...syntax.Token) []syntax.Token {
	return append(toks, tok(syntax.Eof, ""))
}

func TestEatMatchAndMismatch(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Plus, "+")))
	children, ok := ctx.Eat(syntax.Plus, nil)
	if !ok {
		t.Fatal("expected Eat(Plus) to succeed")
	}
	if len(children) != 1 || children[0].Text() != "+" {
		t.Errorf("children = %v, want one leaf with text %q", children, "+")
	}
	if ctx.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", ctx.Pos())
	}

	ctx2 := NewContext(tokens(tok(syntax.Plus, "+")))
	_, ok = ctx2.Eat(syntax.Minus, nil)
	if ok {
		t.Fatal("expected Eat(Minus) to fail on a Plus token")
	}
	if ctx2.Pos() != 0 {
		t.Error("a failed Eat should not move the cursor")
	}
}

func TestEatAny(t *testing.T) {
	set := syntax.SyntaxSetOf(syntax.Plus, syntax.Minus)
	ctx := NewContext(tokens(tok(syntax.Minus, "-")))
	_, ok := ctx.EatAny(set, nil)
	if !ok {
		t.Fatal("expected EatAny to match Minus")
	}
	if ctx.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", ctx.Pos())
	}
}

func TestAdvanceUnconditional(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Gt, ">")))
	children := ctx.Advance(nil)
	if len(children) != 1 || children[0].Text() != ">" {
		t.Errorf("children = %v", children)
	}
	if ctx.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", ctx.Pos())
	}
}

func TestPeekAtClampsToEof(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a")))
	far := ctx.PeekAt(50)
	if far.Kind != syntax.Eof {
		t.Errorf("PeekAt far past the end = %s, want Eof", far.Kind)
	}
}

func TestAtEnd(t *testing.T) {
	ctx := NewContext(tokens())
	if !ctx.AtEnd() {
		t.Error("an empty token stream should already be at end")
	}
}

func TestMemoCachesSuccessAndFastForwards(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a")))
	calls := 0
	produce := func() (*syntax.SyntaxNode, error) {
		calls++
		children, _ := ctx.Eat(syntax.Name, nil)
		return syntax.Inner(syntax.WordExpression, children), nil
	}

	node1, err := ctx.Memo("word", produce)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	endPos := ctx.Pos()

	ctx.Seek(0)
	node2, err := ctx.Memo("word", produce)
	if err != nil {
		t.Fatalf("unexpected error on cached call: %v", err)
	}
	if calls != 1 {
		t.Errorf("produce called %d times, want 1 (second call should hit the cache)", calls)
	}
	if node1 != node2 {
		t.Error("expected the cached call to return the same node")
	}
	if ctx.Pos() != endPos {
		t.Errorf("Pos() after cached call = %d, want %d (fast-forward)", ctx.Pos(), endPos)
	}
}

func TestMemoCachesFailureAndResetsPosition(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Plus, "+")))
	calls := 0
	produce := func() (*syntax.SyntaxNode, error) {
		calls++
		ctx.Seek(ctx.Pos() + 1)
		return nil, fmt.Errorf("boom")
	}

	_, err := ctx.Memo("bad", produce)
	if err == nil {
		t.Fatal("expected an error")
	}
	if ctx.Pos() != 0 {
		t.Errorf("Pos() after a failed Memo call = %d, want 0 (reset to start)", ctx.Pos())
	}

	_, err2 := ctx.Memo("bad", produce)
	if err2 == nil {
		t.Fatal("expected the cached error to be replayed")
	}
	if calls != 1 {
		t.Errorf("produce called %d times, want 1 (failure should be cached too)", calls)
	}
}

func TestMemoDetectsLeftRecursion(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a")))
	var rule func() (*syntax.SyntaxNode, error)
	rule = func() (*syntax.SyntaxNode, error) {
		// Re-enters the same rule at the same position before making any
		// progress: must fail fast instead of recursing forever.
		return ctx.Memo("expr", rule)
	}
	_, err := ctx.Memo("expr", rule)
	if err == nil {
		t.Fatal("expected left recursion to be detected")
	}
}

func TestForkPrefersSuccessOverFailure(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a")))
	fail := func() (*syntax.SyntaxNode, error) { return nil, fmt.Errorf("nope") }
	succeed := func() (*syntax.SyntaxNode, error) {
		children, _ := ctx.Eat(syntax.Name, nil)
		return syntax.Inner(syntax.WordExpression, children), nil
	}

	node, err := ctx.Fork(fail, succeed)
	if err != nil {
		t.Fatalf("expected the successful alternative to win, got error: %v", err)
	}
	if node.Kind() != syntax.WordExpression {
		t.Errorf("Kind() = %s, want WordExpression", node.Kind())
	}
}

func TestForkPrefersLongestSuccessfulMatch(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a"), tok(syntax.Name, "b")))
	short := func() (*syntax.SyntaxNode, error) {
		children, _ := ctx.Eat(syntax.Name, nil)
		return syntax.Inner(syntax.WordExpression, children), nil
	}
	long := func() (*syntax.SyntaxNode, error) {
		var children []*syntax.SyntaxNode
		children, _ = ctx.Eat(syntax.Name, children)
		children, _ = ctx.Eat(syntax.Name, children)
		return syntax.Inner(syntax.ArgumentList, children), nil
	}

	node, err := ctx.Fork(short, long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind() != syntax.ArgumentList {
		t.Errorf("Kind() = %s, want ArgumentList (the longer match should win)", node.Kind())
	}
	if ctx.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", ctx.Pos())
	}
}

func TestForkBreaksTiesByDeclarationOrder(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a")))
	first := func() (*syntax.SyntaxNode, error) {
		children, _ := ctx.Eat(syntax.Name, nil)
		return syntax.Inner(syntax.WordExpression, children), nil
	}
	second := func() (*syntax.SyntaxNode, error) {
		children, _ := ctx.Eat(syntax.Name, nil)
		return syntax.Inner(syntax.WildcardExpression, children), nil
	}

	node, err := ctx.Fork(first, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Kind() != syntax.WordExpression {
		t.Errorf("Kind() = %s, want WordExpression (the first declared alternative should win a tie)", node.Kind())
	}
}

func TestForkAllFailuresPrefersFurthestProgress(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a"), tok(syntax.Name, "b")))
	shallow := func() (*syntax.SyntaxNode, error) {
		return nil, fmt.Errorf("shallow failure")
	}
	deep := func() (*syntax.SyntaxNode, error) {
		ctx.Eat(syntax.Name, nil)
		ctx.Eat(syntax.Name, nil)
		return nil, fmt.Errorf("deep failure")
	}

	_, err := ctx.Fork(shallow, deep)
	if err == nil || err.Error() != "deep failure" {
		t.Errorf("err = %v, want the furthest-progress failure", err)
	}
}

func TestRecoverRemainingConsumesEverythingIntoOneErrorNode(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a"), tok(syntax.Plus, "+")))
	node := ctx.RecoverRemaining(fmt.Errorf("could not parse"), nil)
	if node.Kind() != syntax.Error {
		t.Fatalf("Kind() = %s, want Error", node.Kind())
	}
	if !ctx.AtEnd() {
		t.Error("expected RecoverRemaining to consume the whole stream, including Eof")
	}
	if got := node.IntoText(); got != "a+" {
		t.Errorf("IntoText() = %q, want %q", got, "a+")
	}
	errs := node.Errors()
	if len(errs) != 1 || errs[0].Message != "could not parse" {
		t.Errorf("Errors() = %v", errs)
	}
}

func TestRecoverRemainingKeepsParsedPrefix(t *testing.T) {
	ctx := NewContext(tokens(tok(syntax.Name, "a"), tok(syntax.Plus, "+")))
	prefix := syntax.Leaf(syntax.Name, "ok")
	// Advance the cursor partway to simulate a successful parse before the
	// error, mirroring how grammar.ParseRoot reaches RecoverRemaining:
	// it has already consumed everything up to the point where the
	// trailing-input error was detected.
	ctx.Eat(syntax.Name, nil)
	node := ctx.RecoverRemaining(fmt.Errorf("trailing input"), prefix)
	if node.Kind() != prefix.Kind() {
		t.Fatalf("Kind() = %s, want %s (the prefix's own kind)", node.Kind(), prefix.Kind())
	}
	children := node.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2 (prefix, remainder)", len(children))
	}
	if children[0] != prefix {
		t.Error("expected the first child to be the supplied prefix, unchanged")
	}
	if children[1].Kind() != syntax.Error {
		t.Errorf("second child Kind() = %s, want Error", children[1].Kind())
	}
	if got := children[1].IntoText(); got != "+" {
		t.Errorf("remainder IntoText() = %q, want %q", got, "+")
	}
}

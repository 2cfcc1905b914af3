package lexer

import (
	"strings"
	"testing"

	"github.com/ezbrandt/corogll/arena"
	"github.com/ezbrandt/corogll/syntax"
)

func lexAll(t *testing.T, src string) []syntax.Token {
	t.Helper()
	ar := arena.New()
	tokens, _ := Lex(src, ar)
	return tokens.Tokens
}

// roundTrip reconstructs the exact source bytes from a token stream by
// concatenating each token's leading trivia, text, suffix, and trailing
// trivia in order.
func roundTrip(tokens []syntax.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		for _, t := range tok.Leading {
			sb.WriteString(t.Text())
		}
		sb.WriteString(tok.Text)
		if tok.Suffix != nil {
			sb.WriteString(tok.Suffix.Text)
		}
		for _, t := range tok.Trailing {
			sb.WriteString(t.Text())
		}
	}
	return sb.String()
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"a + b * c",
		"  // comment\nfoo(bar, baz)  ",
		"/* block\ncomment */ x <= y",
		"a<b>c",
		"x.y->z::w",
		"\"a string\" 'c' @\"verbatim\"\"\" 0x1.8p+1",
		"",
		"   \t  ",
	}
	for _, src := range sources {
		tokens := lexAll(t, src)
		if got := roundTrip(tokens); got != src {
			t.Errorf("round trip mismatch for %q: got %q", src, got)
		}
	}
}

func TestTokenKinds(t *testing.T) {
	tokens := lexAll(t, "foo + 1")
	var kinds []syntax.SyntaxKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []syntax.SyntaxKind{syntax.Name, syntax.Plus, syntax.NumericLiteral, syntax.Eof}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestTrailingTriviaStopsAfterFirstLineBreak(t *testing.T) {
	// A line comment ends trailing trivia immediately (it always consumes
	// through the newline itself), so nothing from the next line leaks in.
	tokens := lexAll(t, "a // c\n  b")
	a := tokens[0]
	if len(a.Trailing) == 0 || !strings.Contains(a.Trailing[len(a.Trailing)-1].Text(), "\n") {
		t.Fatalf("expected a's trailing trivia to end with the line comment's newline, got %+v", a.Trailing)
	}
	b := tokens[1]
	if len(b.Leading) == 0 {
		t.Fatal("expected leading trivia on 'b' for the indentation before it")
	}
	if strings.Contains(roundTrip(tokens), "\n\n") {
		t.Fatal("the newline should not be duplicated across tokens")
	}
}

func TestTrailingTriviaHoldsAtMostOneNewline(t *testing.T) {
	// A run of whitespace spanning a blank line must not collapse into one
	// trivia node carrying both newlines: trailing trivia stops at the
	// first newline, and the blank second line belongs to the next token's
	// leading trivia instead.
	tokens := lexAll(t, "a\n\nb")
	a := tokens[0]
	if len(a.Trailing) != 1 {
		t.Fatalf("got %d trailing trivia nodes on 'a', want 1: %+v", len(a.Trailing), a.Trailing)
	}
	if got := a.Trailing[0].Text(); got != "\n" {
		t.Errorf("a's trailing trivia = %q, want a single newline", got)
	}

	b := tokens[1]
	if len(b.Leading) == 0 {
		t.Fatal("expected leading trivia on 'b' to carry the blank line")
	}
	if got := b.Leading[0].Text(); got != "\n" {
		t.Errorf("b's first leading trivia = %q, want a single newline", got)
	}
	for _, tr := range b.Leading {
		if strings.Count(tr.Text(), "\n") > 1 {
			t.Errorf("leading trivia node %q carries more than one newline", tr.Text())
		}
	}
	if got := roundTrip(tokens); got != "a\n\nb" {
		t.Errorf("round trip mismatch: got %q", got)
	}
}

func TestKeywordsLexAsKeywordsUnlessVerbatim(t *testing.T) {
	tokens := lexAll(t, "true @true")
	if tokens[0].Kind != syntax.True {
		t.Errorf("got %s, want True", tokens[0].Kind)
	}
	if tokens[1].Kind != syntax.Name || !tokens[1].Verbatim {
		t.Errorf("expected @true to lex as a verbatim Name, got %s verbatim=%v", tokens[1].Kind, tokens[1].Verbatim)
	}
}

func TestNumericLiteralValues(t *testing.T) {
	tests := []struct {
		src        string
		wantNum    int64
		wantDen    int64
	}{
		{"1.5", 3, 2},
		{"0.1", 1, 10},
		{"0x1.8p+1", 3, 1},
		{"1e2", 100, 1},
		{"0b101", 5, 1},
		{"0o17", 15, 1},
	}
	for _, tt := range tests {
		tokens := lexAll(t, tt.src)
		got := tokens[0].NumericValue
		if got.Num != tt.wantNum || got.Den != tt.wantDen {
			t.Errorf("%s: got %d/%d, want %d/%d", tt.src, got.Num, got.Den, tt.wantNum, tt.wantDen)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tokens := lexAll(t, `"a\nbA"`)
	if got, want := tokens[0].DecodedText, "a\nbA"; got != want {
		t.Errorf("got decoded text %q, want %q", got, want)
	}
}

func TestVerbatimStringDoublesQuote(t *testing.T) {
	tokens := lexAll(t, `@"a""b"`)
	if got, want := tokens[0].DecodedText, `a"b`; got != want {
		t.Errorf("got decoded text %q, want %q", got, want)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	ar := arena.New()
	_, errs := Lex(`"abc`, ar)
	if len(errs) == 0 {
		t.Fatal("expected an unterminated-string-literal error")
	}
}

func TestGtNeverMerges(t *testing.T) {
	// The lexer always emits a single bare Gt; ">>"/">="/">>=" synthesis is
	// the grammar's job, not the lexer's.
	tokens := lexAll(t, ">>= >=")
	var kinds []syntax.SyntaxKind
	for _, tok := range tokens {
		if tok.Kind != syntax.Eof {
			kinds = append(kinds, tok.Kind)
		}
	}
	for _, k := range kinds {
		if k != syntax.Gt && k != syntax.Eq {
			t.Errorf("expected only bare Gt/Eq tokens, got %s", k)
		}
	}
	if len(kinds) != 5 {
		t.Errorf("got %d tokens %v, want 5 (>, >, =, >, =)", len(kinds), kinds)
	}
}

func TestIllegalCharacterBecomesErrorCharTrivia(t *testing.T) {
	tokens := lexAll(t, "a `")
	found := false
	for _, tr := range tokens[0].Trailing {
		if tr.Kind() == syntax.ErrorChar {
			found = true
		}
	}
	if !found {
		t.Error("expected a stray backtick to appear as ErrorChar trivia")
	}
}

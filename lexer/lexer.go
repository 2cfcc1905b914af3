// Package lexer turns source text into a flat stream of tokens, each
// carrying the trivia (whitespace, comments, stray characters) that
// surrounds it, so the parser and later a pretty-printer can reconstruct
// the exact original bytes.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ezbrandt/corogll/arena"
	"github.com/ezbrandt/corogll/lexpos"
	"github.com/ezbrandt/corogll/rational"
	"github.com/ezbrandt/corogll/syntax"
)

var keywords = map[string]syntax.SyntaxKind{
	"abstract": syntax.Abstract, "alignof": syntax.Alignof, "and": syntax.And,
	"as": syntax.As, "async": syntax.Async, "await": syntax.Await,
	"bitcast": syntax.Bitcast, "break": syntax.Break, "bool": syntax.Bool,
	"case": syntax.Case, "cast": syntax.Cast, "concept": syntax.Concept,
	"const": syntax.Const, "continue": syntax.Continue, "contract": syntax.Contract,
	"declof": syntax.Declof, "default": syntax.Default, "do": syntax.Do,
	"dyncast": syntax.Dyncast, "else": syntax.Else, "f32": syntax.F32,
	"f64": syntax.F64, "false": syntax.False, "final": syntax.Final,
	"for": syntax.For, "goto": syntax.Goto, "i8": syntax.I8,
	"i16": syntax.I16, "i32": syntax.I32, "i64": syntax.I64,
	"iword": syntax.Iword, "if": syntax.If, "import": syntax.Import,
	"in": syntax.In, "internal": syntax.Internal, "nameof": syntax.Nameof,
	"null": syntax.Null, "operator": syntax.Operator, "or": syntax.Or,
	"override": syntax.Override, "private": syntax.Private, "protected": syntax.Protected,
	"public": syntax.Public, "return": syntax.Return, "sizeof": syntax.Sizeof,
	"static": syntax.Static, "struct": syntax.Struct, "switch": syntax.Switch,
	"template": syntax.Template, "this": syntax.This, "true": syntax.True,
	"typeof": syntax.Typeof, "u8": syntax.U8, "u16": syntax.U16,
	"u32": syntax.U32, "u64": syntax.U64, "uword": syntax.Uword,
	"using": syntax.Using, "virtual": syntax.Virtual, "void": syntax.Void,
	"while": syntax.While, "yield": syntax.Yield,
}

// Lexer scans a source string into a Token stream.
type Lexer struct {
	sc      *Scanner
	tracker *lexpos.Tracker
	arena   *arena.Arena
	errors  []*syntax.SyntaxError
}

// New creates a lexer over text. Strings interned during lexing (names,
// decoded literal bodies) are allocated from ar.
func New(text string, ar *arena.Arena) *Lexer {
	return &Lexer{sc: NewScanner(text), tracker: lexpos.NewTracker(), arena: ar}
}

// Errors returns the lexical errors collected during lexing: unterminated
// literals and comments, newlines inside string literals, invalid escape
// sequences, and empty numeric exponents. None of them stops lexing.
// Illegal characters are not reported here — they are preserved as
// ErrorChar trivia so the tree still round trips.
func (l *Lexer) Errors() []*syntax.SyntaxError { return l.errors }

func (l *Lexer) addError(span lexpos.Span, message string) {
	err := syntax.NewSyntaxError(message)
	err.Span = span
	l.errors = append(l.errors, err)
}

// Lex scans text to completion and returns every token, ending with Eof.
func Lex(text string, ar *arena.Arena) (*syntax.TokenList, []*syntax.SyntaxError) {
	l := New(text, ar)
	var tokens []syntax.Token
	for {
		tok := l.ScanToken()
		tokens = append(tokens, tok)
		if tok.Kind == syntax.Eof {
			break
		}
	}
	return &syntax.TokenList{Tokens: tokens, Source: text}, l.errors
}

func (l *Lexer) breakLine() {
	l.tracker.BreakLine(l.sc.Cursor())
}

func (l *Lexer) span(start int) lexpos.Span {
	return lexpos.Span{Start: start, End: l.sc.Cursor()}
}

// ScanToken scans and returns the next token, including the trivia
// surrounding it: multi-line trivia before, single-line trivia after.
func (l *Lexer) ScanToken() syntax.Token {
	leading := l.scanTrivia(true)
	start := l.sc.Cursor()

	if l.sc.Done() {
		return l.finish(syntax.Eof, start, leading)
	}

	r := l.sc.Peek()
	switch {
	case r == '\'':
		return l.scanCharLiteral(leading)
	case r == '"':
		return l.scanStringLiteral(leading)
	case r == '@':
		if l.sc.Scout(1) == '"' {
			return l.scanVerbatimStringLiteral(leading)
		}
		return l.scanWord(leading, true)
	case r == '(':
		l.sc.Eat()
		return l.finish(syntax.LeftParen, start, leading)
	case r == ')':
		l.sc.Eat()
		return l.finish(syntax.RightParen, start, leading)
	case r == '{':
		l.sc.Eat()
		return l.finish(syntax.LeftBrace, start, leading)
	case r == '}':
		l.sc.Eat()
		return l.finish(syntax.RightBrace, start, leading)
	case r == '[':
		l.sc.Eat()
		return l.finish(syntax.LeftBracket, start, leading)
	case r == ']':
		l.sc.Eat()
		return l.finish(syntax.RightBracket, start, leading)
	case r == ',':
		l.sc.Eat()
		return l.finish(syntax.Comma, start, leading)
	case r == ';':
		l.sc.Eat()
		return l.finish(syntax.Semicolon, start, leading)
	case r == '.':
		return l.scanDot(leading, start)
	case r == ':':
		l.sc.Eat()
		if l.sc.EatIf(':') {
			return l.finish(syntax.ColonColon, start, leading)
		}
		return l.finish(syntax.Colon, start, leading)
	case r == '?':
		l.sc.Eat()
		if l.sc.EatIf('?') {
			return l.finish(syntax.QuestionQuestion, start, leading)
		}
		return l.finish(syntax.Question, start, leading)
	case r == '+':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.PlusEq, start, leading)
		}
		if l.sc.EatIf('+') {
			return l.finish(syntax.PlusPlus, start, leading)
		}
		return l.finish(syntax.Plus, start, leading)
	case r == '-':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.MinusEq, start, leading)
		}
		if l.sc.EatIf('-') {
			return l.finish(syntax.MinusMinus, start, leading)
		}
		if l.sc.EatIf('>') {
			return l.finish(syntax.Arrow, start, leading)
		}
		return l.finish(syntax.Minus, start, leading)
	case r == '*':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.StarEq, start, leading)
		}
		return l.finish(syntax.Star, start, leading)
	case r == '/':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.SlashEq, start, leading)
		}
		return l.finish(syntax.Slash, start, leading)
	case r == '%':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.PercentEq, start, leading)
		}
		return l.finish(syntax.Percent, start, leading)
	case r == '=':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.EqEq, start, leading)
		}
		if l.sc.EatIf('>') {
			return l.finish(syntax.FatArrow, start, leading)
		}
		return l.finish(syntax.Eq, start, leading)
	case r == '<':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.LtEq, start, leading)
		}
		if l.sc.EatIf('<') {
			if l.sc.EatIf('=') {
				return l.finish(syntax.ShlEq, start, leading)
			}
			return l.finish(syntax.Shl, start, leading)
		}
		return l.finish(syntax.Lt, start, leading)
	case r == '>':
		// `>>`, `>=`, and `>>=` are synthesized by the parser from
		// adjacent Gt tokens — the lexer never looks past a single `>`,
		// so that `a<b>>c` lexes as two closing angle brackets rather
		// than one shift operator.
		l.sc.Eat()
		return l.finish(syntax.Gt, start, leading)
	case r == '!':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.BangEq, start, leading)
		}
		return l.finish(syntax.Bang, start, leading)
	case r == '&':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.AmpEq, start, leading)
		}
		if l.sc.EatIf('&') {
			return l.finish(syntax.AmpAmp, start, leading)
		}
		return l.finish(syntax.Amp, start, leading)
	case r == '|':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.PipeEq, start, leading)
		}
		if l.sc.EatIf('|') {
			return l.finish(syntax.PipePipe, start, leading)
		}
		return l.finish(syntax.Pipe, start, leading)
	case r == '~':
		l.sc.Eat()
		return l.finish(syntax.Tilde, start, leading)
	case r == '^':
		l.sc.Eat()
		if l.sc.EatIf('=') {
			return l.finish(syntax.CaretEq, start, leading)
		}
		return l.finish(syntax.Caret, start, leading)
	case isNumChar(r):
		return l.scanNumericLiteral(leading)
	case isNameStart(r):
		return l.scanWord(leading, false)
	default:
		// scanTrivia already swallowed every illegal char, invalid UTF-8
		// (decoded as U+FFFD) included, and every token-start char is
		// handled above; this branch is a fallback that records the rune
		// as an error and emits it as an ErrorChar token.
		l.sc.Eat()
		l.addError(l.span(start), illegalCharError(r))
		return l.finish(syntax.ErrorChar, start, leading)
	}
}

func (l *Lexer) scanDot(leading []*syntax.SyntaxNode, start int) syntax.Token {
	l.sc.Eat()
	if l.sc.At(".") {
		if l.sc.At("..") {
			l.sc.Advance(2)
			return l.finish(syntax.DotDotDot, start, leading)
		}
		l.sc.Eat()
		return l.finish(syntax.DotDot, start, leading)
	}
	if isNumChar(l.sc.Peek()) {
		l.sc.Jump(start)
		return l.scanNumericLiteral(leading)
	}
	return l.finish(syntax.Dot, start, leading)
}

// finish builds a token of kind starting at byte offset start, attaching
// leading trivia and scanning the trailing (single-line) trivia that
// follows.
func (l *Lexer) finish(kind syntax.SyntaxKind, start int, leading []*syntax.SyntaxNode) syntax.Token {
	text := l.sc.Get(start, l.sc.Cursor())
	trailing := l.scanTrivia(false)
	return syntax.Token{
		Kind:     kind,
		Span:     lexpos.Span{Start: start, End: l.sc.Cursor() - len(trailingText(trailing))},
		Text:     text,
		Leading:  leading,
		Trailing: trailing,
	}
}

func trailingText(trivia []*syntax.SyntaxNode) string {
	var sb strings.Builder
	for _, t := range trivia {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// scanTrivia consumes whitespace, comments, and illegal characters.
// multiLine controls whether scanning continues across a line break: true
// for leading trivia (which may span any number of blank lines), false for
// trailing trivia (which stops right after the first newline, including
// it, and leaves everything past it for the next token's leading trivia).
func (l *Lexer) scanTrivia(multiLine bool) []*syntax.SyntaxNode {
	var trivia []*syntax.SyntaxNode
	startLine := l.tracker.Line()

	for !l.sc.Done() {
		r := l.sc.Peek()
		switch {
		case isWhitespaceChar(r):
			trivia = append(trivia, l.scanWhiteSpaceTrivia())
			if !multiLine && l.tracker.Line() != startLine {
				return trivia
			}
		case r == '/' && l.sc.Scout(1) == '/':
			trivia = append(trivia, l.scanLineCommentTrivia())
			if !multiLine {
				return trivia
			}
		case r == '/' && l.sc.Scout(1) == '*':
			trivia = append(trivia, l.scanBlockCommentTrivia())
			if !multiLine && l.tracker.Line() != startLine {
				return trivia
			}
		case isErrorChar(r):
			trivia = append(trivia, l.scanErrorCharTrivia())
		default:
			return trivia
		}
	}
	return trivia
}

func (l *Lexer) scanWhiteSpaceTrivia() *syntax.SyntaxNode {
	start := l.sc.Cursor()
	for !l.sc.Done() {
		switch l.sc.Peek() {
		case '\n':
			l.sc.Eat()
			l.breakLine()
			return syntax.Leaf(syntax.WhiteSpace, l.sc.Get(start, l.sc.Cursor()))
		case '\r':
			if l.sc.Scout(1) == '\n' {
				l.sc.Advance(2)
			} else {
				l.sc.Eat()
			}
			l.breakLine()
			return syntax.Leaf(syntax.WhiteSpace, l.sc.Get(start, l.sc.Cursor()))
		case ' ', '\t', '\v', '\f':
			l.sc.Eat()
		default:
			return syntax.Leaf(syntax.WhiteSpace, l.sc.Get(start, l.sc.Cursor()))
		}
	}
	return syntax.Leaf(syntax.WhiteSpace, l.sc.Get(start, l.sc.Cursor()))
}

func (l *Lexer) scanLineCommentTrivia() *syntax.SyntaxNode {
	start := l.sc.Cursor()
	l.sc.Advance(2)
	for !l.sc.Done() {
		switch l.sc.Peek() {
		case '\n':
			l.sc.Eat()
			l.breakLine()
			return syntax.Leaf(syntax.LineComment, l.sc.Get(start, l.sc.Cursor()))
		case '\r':
			if l.sc.Scout(1) == '\n' {
				l.sc.Advance(2)
			} else {
				l.sc.Eat()
			}
			l.breakLine()
			return syntax.Leaf(syntax.LineComment, l.sc.Get(start, l.sc.Cursor()))
		default:
			l.sc.Eat()
		}
	}
	return syntax.Leaf(syntax.LineComment, l.sc.Get(start, l.sc.Cursor()))
}

func (l *Lexer) scanBlockCommentTrivia() *syntax.SyntaxNode {
	start := l.sc.Cursor()
	l.sc.Advance(2)
	for !l.sc.Done() {
		switch l.sc.Peek() {
		case '\n':
			l.sc.Eat()
			l.breakLine()
		case '*':
			if l.sc.Scout(1) == '/' {
				l.sc.Advance(2)
				return syntax.Leaf(syntax.BlockComment, l.sc.Get(start, l.sc.Cursor()))
			}
			l.sc.Eat()
		default:
			l.sc.Eat()
		}
	}
	l.addError(l.span(start), "unterminated block comment")
	return syntax.Leaf(syntax.BlockComment, l.sc.Get(start, l.sc.Cursor()))
}

func (l *Lexer) scanErrorCharTrivia() *syntax.SyntaxNode {
	start := l.sc.Cursor()
	for !l.sc.Done() && isErrorChar(l.sc.Peek()) {
		l.sc.Eat()
	}
	return syntax.Leaf(syntax.ErrorChar, l.sc.Get(start, l.sc.Cursor()))
}

func (l *Lexer) scanWord(leading []*syntax.SyntaxNode, verbatim bool) syntax.Token {
	start := l.sc.Cursor()
	if verbatim {
		l.sc.Eat() // '@'
	}
	identStart := l.sc.Cursor()
	l.sc.EatWhile(isNameChar)
	ident := l.sc.Get(identStart, l.sc.Cursor())

	if !verbatim {
		if kind, ok := keywords[ident]; ok {
			return l.finish(kind, start, leading)
		}
	}
	tok := l.finish(syntax.Name, start, leading)
	tok.Verbatim = verbatim
	if l.arena != nil {
		ident = l.arena.InternString(ident)
	}
	tok.DecodedText = ident
	return tok
}

// scanLiteralSuffix scans an optional type suffix glued onto a literal
// with no trivia in between.
func (l *Lexer) scanLiteralSuffix() *syntax.Token {
	if l.sc.Done() {
		return nil
	}
	start := l.sc.Cursor()
	r := l.sc.Peek()
	switch {
	case r == '@':
		l.sc.Eat()
		identStart := l.sc.Cursor()
		l.sc.EatWhile(isNameChar)
		text := l.sc.Get(start, l.sc.Cursor())
		ident := l.sc.Get(identStart, l.sc.Cursor())
		if l.arena != nil {
			ident = l.arena.InternString(ident)
		}
		return &syntax.Token{Kind: syntax.Name, Span: l.span(start), Text: text, Verbatim: true, DecodedText: ident}
	case isNameChar(r):
		l.sc.EatWhile(isNameChar)
		text := l.sc.Get(start, l.sc.Cursor())
		if kind, ok := keywords[text]; ok {
			return &syntax.Token{Kind: kind, Span: l.span(start), Text: text}
		}
		ident := text
		if l.arena != nil {
			ident = l.arena.InternString(ident)
		}
		return &syntax.Token{Kind: syntax.Name, Span: l.span(start), Text: text, DecodedText: ident}
	}
	return nil
}

func (l *Lexer) scanEscapeSequence() string {
	r := l.sc.Peek()
	switch r {
	case '\'':
		l.sc.Eat()
		return "'"
	case '"':
		l.sc.Eat()
		return "\""
	case '\\':
		l.sc.Eat()
		return "\\"
	case '0':
		l.sc.Eat()
		return "\x00"
	case 'a':
		l.sc.Eat()
		return "\a"
	case 'b':
		l.sc.Eat()
		return "\b"
	case 'f':
		l.sc.Eat()
		return "\f"
	case 'n':
		l.sc.Eat()
		return "\n"
	case 'r':
		l.sc.Eat()
		return "\r"
	case 't':
		l.sc.Eat()
		return "\t"
	case 'v':
		l.sc.Eat()
		return "\v"
	case 'u':
		l.sc.Eat()
		return l.scanUnicodeEscape(4)
	case 'U':
		l.sc.Eat()
		return l.scanUnicodeEscape(8)
	}
	start := l.sc.Cursor()
	l.sc.Eat()
	l.addError(l.span(start), invalidEscapeError(r))
	return ""
}

// scanUnicodeEscape scans exactly digits hex digits and encodes the
// resulting code point as UTF-8.
func (l *Lexer) scanUnicodeEscape(digits int) string {
	start := l.sc.Cursor()
	var value rune
	for i := 0; i < digits; i++ {
		d, ok := hexDigit(l.sc.Peek())
		if !ok {
			l.addError(l.span(start), "incomplete unicode escape sequence")
			return ""
		}
		l.sc.Eat()
		value = value*16 + rune(d)
	}
	if !utf8.ValidRune(value) {
		l.addError(l.span(start), "unicode escape sequence is not a valid code point")
		return ""
	}
	return string(value)
}

func (l *Lexer) scanCharLiteral(leading []*syntax.SyntaxNode) syntax.Token {
	start := l.sc.Cursor()
	l.sc.Eat() // opening '

	var decoded strings.Builder
	segStart := l.sc.Cursor()
	for !l.sc.Done() {
		switch l.sc.Peek() {
		case '\'':
			decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
			l.sc.Eat()
			return l.finishLiteral(syntax.CharLiteral, start, leading, decoded.String())
		case '\\':
			decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
			l.sc.Eat()
			decoded.WriteString(l.scanEscapeSequence())
			segStart = l.sc.Cursor()
		default:
			l.sc.Eat()
		}
	}
	l.addError(l.span(start), "unterminated character literal")
	decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
	return l.finishLiteral(syntax.CharLiteral, start, leading, decoded.String())
}

func (l *Lexer) scanStringLiteral(leading []*syntax.SyntaxNode) syntax.Token {
	start := l.sc.Cursor()
	l.sc.Eat() // opening "

	var decoded strings.Builder
	segStart := l.sc.Cursor()
	for !l.sc.Done() {
		switch l.sc.Peek() {
		case '"':
			decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
			l.sc.Eat()
			return l.finishLiteral(syntax.StringLiteral, start, leading, decoded.String())
		case '\\':
			decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
			l.sc.Eat()
			decoded.WriteString(l.scanEscapeSequence())
			segStart = l.sc.Cursor()
		case '\n':
			l.addError(l.span(l.sc.Cursor()), "newline in string literal")
			decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
			l.sc.Eat()
			l.breakLine()
			segStart = l.sc.Cursor()
		default:
			l.sc.Eat()
		}
	}
	l.addError(l.span(start), "unterminated string literal")
	decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
	return l.finishLiteral(syntax.StringLiteral, start, leading, decoded.String())
}

func (l *Lexer) scanVerbatimStringLiteral(leading []*syntax.SyntaxNode) syntax.Token {
	start := l.sc.Cursor()
	l.sc.Advance(2) // '@"'

	var decoded strings.Builder
	segStart := l.sc.Cursor()
	for !l.sc.Done() {
		switch l.sc.Peek() {
		case '"':
			if l.sc.Scout(1) == '"' {
				decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
				decoded.WriteByte('"')
				l.sc.Advance(2)
				segStart = l.sc.Cursor()
				continue
			}
			decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
			l.sc.Eat()
			return l.finishLiteral(syntax.StringLiteral, start, leading, decoded.String())
		case '\n':
			l.sc.Eat()
			l.breakLine()
		default:
			l.sc.Eat()
		}
	}
	l.addError(l.span(start), "unterminated verbatim string literal")
	decoded.WriteString(l.sc.Get(segStart, l.sc.Cursor()))
	return l.finishLiteral(syntax.StringLiteral, start, leading, decoded.String())
}

func (l *Lexer) finishLiteral(kind syntax.SyntaxKind, start int, leading []*syntax.SyntaxNode, decoded string) syntax.Token {
	end := l.sc.Cursor()
	suffix := l.scanLiteralSuffix()
	tok := l.finish(kind, start, leading)
	// The suffix is carried separately in tok.Suffix, not in tok.Text.
	tok.Text = l.sc.Get(start, end)
	tok.Span.End = end
	if l.arena != nil {
		decoded = l.arena.InternString(decoded)
	}
	tok.DecodedText = decoded
	tok.Suffix = suffix
	return tok
}

func (l *Lexer) scanNumericLiteral(leading []*syntax.SyntaxNode) syntax.Token {
	start := l.sc.Cursor()

	radix := 10
	if l.sc.Peek() == '0' {
		l.sc.Eat()
		switch l.sc.Peek() {
		case 'b', 'B':
			l.sc.Eat()
			radix = 2
		case 'o', 'O':
			l.sc.Eat()
			radix = 8
		case 'x', 'X':
			l.sc.Eat()
			radix = 16
		}
	}

	value := rational.Zero()
	for {
		d, ok := digitForRadix(l.sc.Peek(), radix)
		if !ok {
			break
		}
		l.sc.Eat()
		value = value.AddIntDigit(int64(radix), int64(d))
	}

	if l.sc.Peek() == '.' {
		l.sc.Eat()
		for {
			d, ok := digitForRadix(l.sc.Peek(), radix)
			if !ok {
				break
			}
			l.sc.Eat()
			value = value.AddFracDigit(int64(radix), int64(d))
		}
	}

	var expBase int64 = -1
	switch l.sc.Peek() {
	case 'e', 'E':
		l.sc.Eat()
		expBase = 10
	case 'p', 'P':
		l.sc.Eat()
		expBase = 2
	}
	if expBase > 0 {
		neg := false
		if l.sc.Peek() == '-' {
			neg = true
			l.sc.Eat()
		} else if l.sc.Peek() == '+' {
			l.sc.Eat()
		}
		expStart := l.sc.Cursor()
		exp := int64(0)
		for {
			d, ok := digitForRadix(l.sc.Peek(), 10)
			if !ok {
				break
			}
			l.sc.Eat()
			exp = exp*10 + int64(d)
		}
		if l.sc.Cursor() == expStart {
			l.addError(l.span(expStart), "invalid numeric exponent")
		} else {
			if neg {
				exp = -exp
			}
			value = value.ApplyExponent(expBase, exp)
		}
	}
	value = value.Reduce()

	end := l.sc.Cursor()
	suffix := l.scanLiteralSuffix()
	tok := l.finish(syntax.NumericLiteral, start, leading)
	tok.Text = l.sc.Get(start, end)
	tok.Span.End = end
	tok.NumericValue = value
	tok.Suffix = suffix
	return tok
}

func isWhitespaceChar(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}

func isNumChar(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameChar(r rune) bool {
	return isNameStart(r) || isNumChar(r)
}

func isTokenStartChar(r rune) bool {
	if isWhitespaceChar(r) || isNameStart(r) || isNumChar(r) {
		return true
	}
	switch r {
	case '\'', '"', '@', '(', ')', '{', '}', '[', ']', '.', ',', ':', ';',
		'?', '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '~', '^':
		return true
	}
	return false
}

func isErrorChar(r rune) bool {
	return !isTokenStartChar(r)
}

func digitForRadix(r rune, radix int) (int, bool) {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'z':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		d = int(r-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}

func hexDigit(r rune) (int, bool) {
	return digitForRadix(r, 16)
}

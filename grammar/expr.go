package grammar

import (
	"github.com/ezbrandt/corogll/parserrt"
	"github.com/ezbrandt/corogll/syntax"
)

// ParseExpression parses everything at precedence or tighter: it climbs
// down to a unary expression, then repeatedly absorbs binary operators
// whose precedence is at or above precedence (a right-associative operator
// at exactly precedence is allowed to recurse into itself; a
// left-associative one is not — the caller's own loop picks up from
// there), and finally considers the ternary conditional if precedence
// allows it.
func ParseExpression(ctx *parserrt.Context, fl flags, prec precedence) (*syntax.SyntaxNode, error) {
	return ctx.Memo(memoKey("expr", fl, prec), func() (*syntax.SyntaxNode, error) {
		left, err := ParseUnaryExpression(ctx, fl)
		if err != nil {
			return nil, err
		}
		if fl.typeExpr() {
			return left, nil
		}

		for {
			kind, opPrec, rightAssoc, width, ok := classifyOperator(ctx)
			if !ok || opPrec < prec || (opPrec == prec && !rightAssoc) {
				break
			}

			children := []*syntax.SyntaxNode{left}
			for i := 0; i < width; i++ {
				children = ctx.Advance(children)
			}

			rhsFlags := fl
			if kind == syntax.AsExpression {
				rhsFlags |= flagTypeExpr
			}
			right, err := ParseExpression(ctx, rhsFlags, opPrec)
			if err != nil {
				return nil, err
			}
			children = append(children, right)
			left = syntax.Inner(kind, children)
		}

		if prec <= precTernary && ctx.Peek().Kind == syntax.Question {
			return parseTernary(ctx, fl, left)
		}
		return left, nil
	})
}

func parseTernary(ctx *parserrt.Context, fl flags, cond *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{cond}
	children, _ = ctx.Eat(syntax.Question, children)

	if ctx.Peek().Kind == syntax.Colon {
		// "a ? : b" — no true-branch; leave a Missing slot for it.
		children = ctx.Missing(children, "expression")
		children, _ = ctx.Eat(syntax.Colon, children)
	} else {
		trueExpr, err := ParseExpression(ctx, fl, precExpression)
		if err != nil {
			return nil, err
		}
		children = append(children, trueExpr)
		if ctx.Peek().Kind != syntax.Colon {
			return nil, ctx.Fail("':'")
		}
		children, _ = ctx.Eat(syntax.Colon, children)
	}

	falseExpr, err := ParseExpression(ctx, fl, precExpression)
	if err != nil {
		return nil, err
	}
	children = append(children, falseExpr)
	return syntax.Inner(syntax.TernaryExpression, children), nil
}

// classifyOperator inspects the token(s) at the cursor and, if they form a
// binary operator, reports its kind, precedence, associativity, and how
// many raw tokens it spans — without consuming anything. width is greater
// than 1 only for the ">"-family operators that share a lexeme with the
// specialization-closing ">".
func classifyOperator(ctx *parserrt.Context) (kind syntax.SyntaxKind, prec precedence, rightAssoc bool, width int, ok bool) {
	switch ctx.Peek().Kind {
	case syntax.Plus:
		return syntax.AdditionExpression, precAdditive, false, 1, true
	case syntax.Minus:
		return syntax.SubtractionExpression, precAdditive, false, 1, true
	case syntax.Star:
		return syntax.MultiplicationExpression, precMultiplicative, false, 1, true
	case syntax.Slash:
		return syntax.DivisionExpression, precMultiplicative, false, 1, true
	case syntax.Percent:
		return syntax.ModuloExpression, precMultiplicative, false, 1, true
	case syntax.Eq:
		return syntax.AssignmentExpression, precAssignment, true, 1, true
	case syntax.PlusEq:
		return syntax.AddAssignExpression, precAssignment, true, 1, true
	case syntax.MinusEq:
		return syntax.SubAssignExpression, precAssignment, true, 1, true
	case syntax.StarEq:
		return syntax.MulAssignExpression, precAssignment, true, 1, true
	case syntax.SlashEq:
		return syntax.DivAssignExpression, precAssignment, true, 1, true
	case syntax.PercentEq:
		return syntax.ModAssignExpression, precAssignment, true, 1, true
	case syntax.EqEq:
		return syntax.EqualExpression, precEquality, false, 1, true
	case syntax.BangEq:
		return syntax.NotEqualExpression, precEquality, false, 1, true
	case syntax.Lt:
		// Relation operators right-associate here so that a chain like
		// "a < b > c" nests as LessThan(a, GreaterThan(b, c)) rather than
		// grouping left: the name on the left of "<" still gets first
		// shot at the specialization fork in the primary postfix loop,
		// and this is what keeps that fork's "less-than" alternative
		// composing correctly with a second relational operator on its
		// right instead of splitting the chain at the first operator.
		return syntax.LessThanExpression, precRelation, true, 1, true
	case syntax.LtEq:
		return syntax.LessEqualExpression, precRelation, true, 1, true
	case syntax.Shl:
		return syntax.ShiftLeftExpression, precShift, false, 1, true
	case syntax.ShlEq:
		return syntax.ShiftLeftAssignExpression, precAssignment, true, 1, true
	case syntax.AmpAmp:
		return syntax.LogicalAndExpression, precLogicalAnd, false, 1, true
	case syntax.PipePipe:
		return syntax.LogicalOrExpression, precLogicalOr, false, 1, true
	case syntax.Amp:
		return syntax.BitwiseAndExpression, precAnd, false, 1, true
	case syntax.AmpEq:
		return syntax.BitwiseAndAssignExpression, precAssignment, true, 1, true
	case syntax.Pipe:
		return syntax.BitwiseOrExpression, precOr, false, 1, true
	case syntax.PipeEq:
		return syntax.BitwiseOrAssignExpression, precAssignment, true, 1, true
	case syntax.Caret:
		return syntax.BitwiseXorExpression, precXor, false, 1, true
	case syntax.CaretEq:
		return syntax.BitwiseXorAssignExpression, precAssignment, true, 1, true
	case syntax.QuestionQuestion:
		return syntax.CoalescingExpression, precCoalescing, true, 1, true
	case syntax.As:
		return syntax.AsExpression, precRelation, false, 1, true
	case syntax.Gt:
		return classifyGt(ctx)
	default:
		return 0, 0, false, 0, false
	}
}

// classifyGt disambiguates a ">" token from the synthesized ">=", ">>", and
// ">>=" compound operators, which the lexer never produces directly since
// it has no lookahead across the specialization-closing uses of a bare
// ">". The trivia-emptiness checks below are what make that reconstruction
// exact: any whitespace or comment between two adjacent symbol tokens rules
// out fusing them into a wider operator.
func classifyGt(ctx *parserrt.Context) (kind syntax.SyntaxKind, prec precedence, rightAssoc bool, width int, ok bool) {
	t0 := ctx.Peek()
	if len(t0.Trailing) != 0 {
		return syntax.GreaterThanExpression, precRelation, true, 1, true
	}
	t1 := ctx.PeekAt(1)
	if len(t1.Leading) != 0 {
		return syntax.GreaterThanExpression, precRelation, true, 1, true
	}

	switch t1.Kind {
	case syntax.Gt:
		if len(t1.Trailing) == 0 {
			t2 := ctx.PeekAt(2)
			if t2.Kind == syntax.Eq && len(t2.Leading) == 0 {
				return syntax.ShiftRightAssignExpression, precAssignment, true, 3, true
			}
		}
		return syntax.ShiftRightExpression, precShift, false, 2, true
	case syntax.Eq:
		return syntax.GreaterEqualExpression, precRelation, true, 2, true
	default:
		return syntax.GreaterThanExpression, precRelation, true, 1, true
	}
}

// ParseUnaryExpression parses a single unary-prefix operator applied to its
// operand (itself parsed at unary-prefix precedence, so a run of prefixes
// like "!!x" nests correctly) or falls through to a primary expression.
// The meta-expression keywords (await, cast, bitcast, dyncast, sizeof,
// alignof, nameof, typeof, declof, default) take the same one-operand
// shape as the symbolic prefixes; they build a MetaExpression node with
// the keyword itself as the operator.
func ParseUnaryExpression(ctx *parserrt.Context, fl flags) (*syntax.SyntaxNode, error) {
	tok := ctx.Peek()
	kind, ok := unaryOperatorKind(tok.Kind)
	if !ok {
		return ParsePrimaryExpression(ctx, fl)
	}

	children, _ := ctx.Eat(tok.Kind, nil)
	operand, err := ParseExpression(ctx, fl, precUnaryPrefix)
	if err != nil {
		return nil, err
	}
	children = append(children, operand)
	return syntax.Inner(kind, children), nil
}

func unaryOperatorKind(tok syntax.SyntaxKind) (kind syntax.SyntaxKind, ok bool) {
	switch tok {
	case syntax.Plus:
		return syntax.UnaryPlusExpression, true
	case syntax.Minus:
		return syntax.UnaryMinusExpression, true
	case syntax.Bang:
		return syntax.NotExpression, true
	case syntax.Tilde:
		return syntax.BitNotExpression, true
	case syntax.PlusPlus:
		return syntax.PreIncrementExpression, true
	case syntax.MinusMinus:
		return syntax.PreDecrementExpression, true
	case syntax.Await, syntax.Cast, syntax.Bitcast, syntax.Dyncast,
		syntax.Sizeof, syntax.Alignof, syntax.Nameof, syntax.Typeof,
		syntax.Declof, syntax.Default:
		return syntax.MetaExpression, true
	default:
		return 0, false
	}
}

// isTypeExpression reports whether node's kind is one that could plausibly
// name a type — a word, a scope access chain, a specialization, or a
// meta-expression — which is the gate for whether a following "<" is even
// worth forking into a specialization attempt.
func isTypeExpression(node *syntax.SyntaxNode) bool {
	switch node.Kind() {
	case syntax.WordExpression, syntax.ScopeAccessExpression,
		syntax.SpecializationExpression, syntax.MetaExpression:
		return true
	}
	return false
}

// followsSpecialization reports whether kind is a token that could not
// legally start a new postfix continuation right after a closed
// specialization — meaning a specialization parse ending just before one
// is almost certainly a misparse of what was actually "a < b > c".
func followsSpecialization(kind syntax.SyntaxKind) bool {
	if kind.IsKeyword() {
		return true
	}
	switch kind {
	case syntax.Name, syntax.LeftParen, syntax.CharLiteral,
		syntax.StringLiteral, syntax.NumericLiteral:
		return true
	}
	return false
}

// ParsePrimaryExpression parses a single primary (name, literal, wildcard,
// or parenthesized/cast form) and then its postfix chain: invoke
// continuations (call, index, specialization) and access continuations
// (direct, indirect, scope), applied left to right.
func ParsePrimaryExpression(ctx *parserrt.Context, fl flags) (*syntax.SyntaxNode, error) {
	expr, err := parsePrimaryAtom(ctx, fl)
	if err != nil {
		return nil, err
	}

postfix:
	for {
		tok := ctx.Peek()
		switch {
		case tok.Kind == syntax.LeftParen && !fl.typeExpr():
			expr, err = parseCallExpression(ctx, fl, expr)
			if err != nil {
				return nil, err
			}
		case tok.Kind == syntax.LeftBracket && !fl.typeExpr():
			expr, err = parseIndexExpression(ctx, fl, expr)
			if err != nil {
				return nil, err
			}
		case tok.Kind == syntax.Lt:
			if fl.typeExpr() {
				expr, err = parseSpecializationContinuation(ctx, fl, expr)
				if err != nil {
					return nil, err
				}
				continue
			}
			if !isTypeExpression(expr) {
				break postfix
			}
			before := ctx.Pos()
			result, err := ctx.Fork(
				func() (*syntax.SyntaxNode, error) { return expr, nil },
				func() (*syntax.SyntaxNode, error) { return parseSpecializationContinuation(ctx, fl, expr) },
			)
			if err != nil {
				return nil, err
			}
			if ctx.Pos() == before {
				// The less-than alternative won: leave "<" for the
				// binary-operator loop above us.
				break postfix
			}
			expr = result
		case tok.Kind == syntax.Dot:
			expr, err = parseDirectAccess(ctx, expr)
			if err != nil {
				return nil, err
			}
		case tok.Kind == syntax.Arrow:
			expr, err = parseIndirectAccess(ctx, expr)
			if err != nil {
				return nil, err
			}
		case tok.Kind == syntax.ColonColon:
			expr, err = parseScopeAccess(ctx, expr)
			if err != nil {
				return nil, err
			}
		case tok.Kind == syntax.PlusPlus:
			children, _ := ctx.Eat(syntax.PlusPlus, []*syntax.SyntaxNode{expr})
			expr = syntax.Inner(syntax.PostIncrementExpression, children)
		case tok.Kind == syntax.MinusMinus:
			children, _ := ctx.Eat(syntax.MinusMinus, []*syntax.SyntaxNode{expr})
			expr = syntax.Inner(syntax.PostDecrementExpression, children)
		default:
			break postfix
		}
	}
	return expr, nil
}

func parsePrimaryAtom(ctx *parserrt.Context, fl flags) (*syntax.SyntaxNode, error) {
	tok := ctx.Peek()
	switch {
	case tok.Kind == syntax.Name && !tok.Verbatim && tok.Text == "_":
		children, _ := ctx.Eat(syntax.Name, nil)
		return syntax.Inner(syntax.WildcardExpression, children), nil
	case tok.Kind == syntax.Name || tok.Kind.IsKeyword():
		children, _ := ctx.Eat(tok.Kind, nil)
		return syntax.Inner(syntax.WordExpression, children), nil
	case tok.Kind == syntax.CharLiteral || tok.Kind == syntax.StringLiteral || tok.Kind == syntax.NumericLiteral:
		children, _ := ctx.Eat(tok.Kind, nil)
		return syntax.Inner(syntax.LiteralExpression, children), nil
	case tok.Kind == syntax.LeftParen:
		if fl.typeExpr() {
			return nil, ctx.Fail("expression")
		}
		return ctx.Fork(
			func() (*syntax.SyntaxNode, error) { return parseParensExpression(ctx, fl) },
			func() (*syntax.SyntaxNode, error) { return parseCastExpression(ctx, fl) },
		)
	default:
		return nil, ctx.Fail("expression")
	}
}

func parseParensExpression(ctx *parserrt.Context, fl flags) (*syntax.SyntaxNode, error) {
	children, ok := ctx.Eat(syntax.LeftParen, nil)
	if !ok {
		return nil, ctx.Fail("'('")
	}
	inner, err := ParseExpression(ctx, fl, precExpression)
	if err != nil {
		return nil, err
	}
	children = append(children, inner)
	children, ok = ctx.Eat(syntax.RightParen, children)
	if !ok {
		return nil, ctx.Fail("')'")
	}
	return syntax.Inner(syntax.ParenthesizedExpression, children), nil
}

// parseCastExpression parses the C-style "(Type)expr" form: the
// parenthesized part is parsed under flagTypeExpr, which prunes it down to
// a bare unary chain with no binary operators or call/index postfixes, so
// "(a + b)" can never be misread as a cast of "a" with a stray "+ b"
// left over — that parse fails outright here and the parenthesized
// alternative wins the fork instead.
func parseCastExpression(ctx *parserrt.Context, fl flags) (*syntax.SyntaxNode, error) {
	children, ok := ctx.Eat(syntax.LeftParen, nil)
	if !ok {
		return nil, ctx.Fail("'('")
	}
	typeExpr, err := ParseExpression(ctx, fl|flagTypeExpr, precExpression)
	if err != nil {
		return nil, err
	}
	children = append(children, typeExpr)
	children, ok = ctx.Eat(syntax.RightParen, children)
	if !ok {
		return nil, ctx.Fail("')'")
	}
	operand, err := ParseExpression(ctx, fl, precTypeCast)
	if err != nil {
		return nil, err
	}
	children = append(children, operand)
	return syntax.Inner(syntax.CastExpression, children), nil
}

func parseArgument(ctx *parserrt.Context, fl flags) (*syntax.SyntaxNode, error) {
	tok := ctx.Peek()
	if (tok.Kind == syntax.Name || tok.Kind.IsKeyword()) && ctx.PeekAt(1).Kind == syntax.Colon {
		children, _ := ctx.Eat(tok.Kind, nil)
		children, _ = ctx.Eat(syntax.Colon, children)
		value, err := ParseExpression(ctx, fl, precExpression)
		if err != nil {
			return nil, err
		}
		children = append(children, value)
		return syntax.Inner(syntax.Argument, children), nil
	}

	value, err := ParseExpression(ctx, fl, precExpression)
	if err != nil {
		return nil, err
	}
	return syntax.Inner(syntax.Argument, []*syntax.SyntaxNode{value}), nil
}

func parseArgumentList(ctx *parserrt.Context, fl flags, closing syntax.SyntaxKind) (*syntax.SyntaxNode, error) {
	var children []*syntax.SyntaxNode
	if ctx.Peek().Kind == closing {
		return syntax.Inner(syntax.ArgumentList, children), nil
	}

	arg, err := parseArgument(ctx, fl)
	if err != nil {
		return nil, err
	}
	children = append(children, arg)

	for ctx.Peek().Kind == syntax.Comma {
		children = ctx.Advance(children)
		if ctx.Peek().Kind == closing {
			break
		}
		arg, err = parseArgument(ctx, fl)
		if err != nil {
			return nil, err
		}
		children = append(children, arg)
	}
	return syntax.Inner(syntax.ArgumentList, children), nil
}

func parseCallExpression(ctx *parserrt.Context, fl flags, callee *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{callee}
	children, _ = ctx.Eat(syntax.LeftParen, children)
	args, err := parseArgumentList(ctx, fl, syntax.RightParen)
	if err != nil {
		return nil, err
	}
	children = append(children, args)
	children, ok := ctx.Eat(syntax.RightParen, children)
	if !ok {
		return nil, ctx.Fail("')'")
	}
	return syntax.Inner(syntax.CallExpression, children), nil
}

func parseIndexExpression(ctx *parserrt.Context, fl flags, callee *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{callee}
	children, _ = ctx.Eat(syntax.LeftBracket, children)
	args, err := parseArgumentList(ctx, fl, syntax.RightBracket)
	if err != nil {
		return nil, err
	}
	children = append(children, args)
	children, ok := ctx.Eat(syntax.RightBracket, children)
	if !ok {
		return nil, ctx.Fail("']'")
	}
	return syntax.Inner(syntax.IndexExpression, children), nil
}

func parseSpecializationContinuation(ctx *parserrt.Context, fl flags, callee *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{callee}
	children, _ = ctx.Eat(syntax.Lt, children)
	args, err := parseArgumentList(ctx, fl|flagTypeExpr, syntax.Gt)
	if err != nil {
		return nil, err
	}
	children = append(children, args)
	children, ok := ctx.Eat(syntax.Gt, children)
	if !ok {
		return nil, ctx.Fail("'>'")
	}
	if followsSpecialization(ctx.Peek().Kind) {
		return nil, ctx.Fail("end of specialization")
	}
	return syntax.Inner(syntax.SpecializationExpression, children), nil
}

func accessName(ctx *parserrt.Context, children []*syntax.SyntaxNode) ([]*syntax.SyntaxNode, bool) {
	tok := ctx.Peek()
	if tok.Kind != syntax.Name && !tok.Kind.IsKeyword() {
		return children, false
	}
	return ctx.Eat(tok.Kind, children)
}

func parseDirectAccess(ctx *parserrt.Context, left *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{left}
	children, _ = ctx.Eat(syntax.Dot, children)
	children, ok := accessName(ctx, children)
	if !ok {
		return nil, ctx.Fail("name")
	}
	return syntax.Inner(syntax.DirectAccessExpression, children), nil
}

func parseIndirectAccess(ctx *parserrt.Context, left *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{left}
	children, _ = ctx.Eat(syntax.Arrow, children)
	children, ok := accessName(ctx, children)
	if !ok {
		return nil, ctx.Fail("name")
	}
	return syntax.Inner(syntax.IndirectAccessExpression, children), nil
}

func parseScopeAccess(ctx *parserrt.Context, left *syntax.SyntaxNode) (*syntax.SyntaxNode, error) {
	children := []*syntax.SyntaxNode{left}
	children, _ = ctx.Eat(syntax.ColonColon, children)
	children, ok := accessName(ctx, children)
	if !ok {
		return nil, ctx.Fail("name")
	}
	return syntax.Inner(syntax.ScopeAccessExpression, children), nil
}

// Package syntax provides the syntax kind enumeration, the trivia/token/
// expression node types, and syntax-kind sets shared by the lexer, the
// parser runtime, and the expression grammar.
package syntax

// SyntaxKind is a flat tag enumerating every concrete node variant: trivia,
// tokens, and expression shapes. Operator-carrying expression variants
// (unary, binary, invoke, access) use their own kind as the operator
// discriminator — there is no separate operator field to switch on
// downstream.
type SyntaxKind uint8

const (
	// End is the zero value; it never appears in a real tree.
	End SyntaxKind = iota
	// Error marks a node that could not be parsed as anything else.
	Error

	// --- Trivia ---
	BlockComment
	LineComment
	WhiteSpace
	ErrorChar

	// --- Token literal kinds ---
	CharLiteral
	StringLiteral
	NumericLiteral
	Name
	Eof
	Missing

	// --- Punctuation ---
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Colon
	ColonColon
	Dot
	DotDot
	DotDotDot
	Question
	QuestionQuestion
	Plus
	PlusPlus
	PlusEq
	Minus
	MinusMinus
	MinusEq
	Arrow
	Star
	StarEq
	Slash
	SlashEq
	Percent
	PercentEq
	Eq
	EqEq
	FatArrow
	Lt
	LtEq
	Shl
	ShlEq
	Gt
	Bang
	BangEq
	Amp
	AmpAmp
	AmpEq
	Pipe
	PipePipe
	PipeEq
	Tilde
	Caret
	CaretEq

	// --- Reserved keywords (§6 vocabulary) ---
	Abstract
	Alignof
	And
	As
	Async
	Await
	Bitcast
	Break
	Bool
	Case
	Cast
	Concept
	Const
	Continue
	Contract
	Declof
	Default
	Do
	Dyncast
	Else
	F32
	F64
	False
	Final
	For
	Goto
	I8
	I16
	I32
	I64
	Iword
	If
	Import
	In
	Internal
	Nameof
	Null
	Operator
	Or
	Override
	Private
	Protected
	Public
	Return
	Sizeof
	Static
	Struct
	Switch
	Template
	This
	True
	Typeof
	U8
	U16
	U32
	U64
	Uword
	Using
	Virtual
	Void
	While
	Yield

	// --- Unary expression variants (operator == kind) ---
	UnaryPlusExpression
	UnaryMinusExpression
	NotExpression
	BitNotExpression
	PreIncrementExpression
	PreDecrementExpression
	PostIncrementExpression
	PostDecrementExpression

	// --- Binary expression variants (operator == kind) ---
	AdditionExpression
	SubtractionExpression
	MultiplicationExpression
	DivisionExpression
	ModuloExpression
	AssignmentExpression
	AddAssignExpression
	SubAssignExpression
	MulAssignExpression
	DivAssignExpression
	ModAssignExpression
	EqualExpression
	NotEqualExpression
	LessThanExpression
	LessEqualExpression
	GreaterThanExpression
	GreaterEqualExpression
	ShiftLeftExpression
	ShiftLeftAssignExpression
	ShiftRightExpression
	ShiftRightAssignExpression
	LogicalAndExpression
	LogicalOrExpression
	BitwiseAndExpression
	BitwiseAndAssignExpression
	BitwiseOrExpression
	BitwiseOrAssignExpression
	BitwiseXorExpression
	BitwiseXorAssignExpression
	CoalescingExpression
	AsExpression

	// --- Invoke postfix variants (operator == kind) ---
	CallExpression
	IndexExpression
	SpecializationExpression

	// --- Access postfix variants (operator == kind) ---
	DirectAccessExpression
	IndirectAccessExpression
	ScopeAccessExpression

	// --- Other expression variants ---
	CastExpression
	LiteralExpression
	MetaExpression
	ParenthesizedExpression
	TernaryExpression
	WordExpression
	WildcardExpression
	ArgumentList
	Argument
)

var kindNames = [...]string{
	End:                        "End",
	Error:                      "Error",
	BlockComment:               "BlockComment",
	LineComment:                "LineComment",
	WhiteSpace:                 "WhiteSpace",
	ErrorChar:                  "ErrorChar",
	CharLiteral:                "CharLiteral",
	StringLiteral:              "StringLiteral",
	NumericLiteral:             "NumericLiteral",
	Name:                       "Name",
	Eof:                        "Eof",
	Missing:                    "Missing",
	LeftParen:                  "LeftParen",
	RightParen:                 "RightParen",
	LeftBrace:                  "LeftBrace",
	RightBrace:                 "RightBrace",
	LeftBracket:                "LeftBracket",
	RightBracket:               "RightBracket",
	Comma:                      "Comma",
	Semicolon:                  "Semicolon",
	Colon:                      "Colon",
	ColonColon:                 "ColonColon",
	Dot:                        "Dot",
	DotDot:                     "DotDot",
	DotDotDot:                  "DotDotDot",
	Question:                   "Question",
	QuestionQuestion:           "QuestionQuestion",
	Plus:                       "Plus",
	PlusPlus:                   "PlusPlus",
	PlusEq:                     "PlusEq",
	Minus:                      "Minus",
	MinusMinus:                 "MinusMinus",
	MinusEq:                    "MinusEq",
	Arrow:                      "Arrow",
	Star:                       "Star",
	StarEq:                     "StarEq",
	Slash:                      "Slash",
	SlashEq:                    "SlashEq",
	Percent:                    "Percent",
	PercentEq:                  "PercentEq",
	Eq:                         "Eq",
	EqEq:                       "EqEq",
	FatArrow:                   "FatArrow",
	Lt:                         "Lt",
	LtEq:                       "LtEq",
	Shl:                        "Shl",
	ShlEq:                      "ShlEq",
	Gt:                         "Gt",
	Bang:                       "Bang",
	BangEq:                     "BangEq",
	Amp:                        "Amp",
	AmpAmp:                     "AmpAmp",
	AmpEq:                      "AmpEq",
	Pipe:                       "Pipe",
	PipePipe:                   "PipePipe",
	PipeEq:                     "PipeEq",
	Tilde:                      "Tilde",
	Caret:                      "Caret",
	CaretEq:                    "CaretEq",
	Abstract:                   "abstract",
	Alignof:                    "alignof",
	And:                        "and",
	As:                         "as",
	Async:                      "async",
	Await:                      "await",
	Bitcast:                    "bitcast",
	Break:                      "break",
	Bool:                       "bool",
	Case:                       "case",
	Cast:                       "cast",
	Concept:                    "concept",
	Const:                      "const",
	Continue:                   "continue",
	Contract:                   "contract",
	Declof:                     "declof",
	Default:                    "default",
	Do:                         "do",
	Dyncast:                    "dyncast",
	Else:                       "else",
	F32:                        "f32",
	F64:                        "f64",
	False:                      "false",
	Final:                      "final",
	For:                        "for",
	Goto:                       "goto",
	I8:                         "i8",
	I16:                        "i16",
	I32:                        "i32",
	I64:                        "i64",
	Iword:                      "iword",
	If:                         "if",
	Import:                     "import",
	In:                         "in",
	Internal:                   "internal",
	Nameof:                     "nameof",
	Null:                       "null",
	Operator:                   "operator",
	Or:                         "or",
	Override:                   "override",
	Private:                    "private",
	Protected:                  "protected",
	Public:                     "public",
	Return:                     "return",
	Sizeof:                     "sizeof",
	Static:                     "static",
	Struct:                     "struct",
	Switch:                     "switch",
	Template:                   "template",
	This:                       "this",
	True:                       "true",
	Typeof:                     "typeof",
	U8:                         "u8",
	U16:                        "u16",
	U32:                        "u32",
	U64:                        "u64",
	Uword:                      "uword",
	Using:                      "using",
	Virtual:                    "virtual",
	Void:                       "void",
	While:                      "while",
	Yield:                      "yield",
	UnaryPlusExpression:        "UnaryPlusExpression",
	UnaryMinusExpression:       "UnaryMinusExpression",
	NotExpression:              "NotExpression",
	BitNotExpression:           "BitNotExpression",
	PreIncrementExpression:     "PreIncrementExpression",
	PreDecrementExpression:     "PreDecrementExpression",
	PostIncrementExpression:    "PostIncrementExpression",
	PostDecrementExpression:    "PostDecrementExpression",
	AdditionExpression:         "AdditionExpression",
	SubtractionExpression:      "SubtractionExpression",
	MultiplicationExpression:   "MultiplicationExpression",
	DivisionExpression:         "DivisionExpression",
	ModuloExpression:           "ModuloExpression",
	AssignmentExpression:       "AssignmentExpression",
	AddAssignExpression:        "AddAssignExpression",
	SubAssignExpression:        "SubAssignExpression",
	MulAssignExpression:        "MulAssignExpression",
	DivAssignExpression:        "DivAssignExpression",
	ModAssignExpression:        "ModAssignExpression",
	EqualExpression:            "EqualExpression",
	NotEqualExpression:         "NotEqualExpression",
	LessThanExpression:         "LessThanExpression",
	LessEqualExpression:        "LessEqualExpression",
	GreaterThanExpression:      "GreaterThanExpression",
	GreaterEqualExpression:     "GreaterEqualExpression",
	ShiftLeftExpression:        "ShiftLeftExpression",
	ShiftLeftAssignExpression:  "ShiftLeftAssignExpression",
	ShiftRightExpression:       "ShiftRightExpression",
	ShiftRightAssignExpression: "ShiftRightAssignExpression",
	LogicalAndExpression:       "LogicalAndExpression",
	LogicalOrExpression:        "LogicalOrExpression",
	BitwiseAndExpression:       "BitwiseAndExpression",
	BitwiseAndAssignExpression: "BitwiseAndAssignExpression",
	BitwiseOrExpression:        "BitwiseOrExpression",
	BitwiseOrAssignExpression:  "BitwiseOrAssignExpression",
	BitwiseXorExpression:       "BitwiseXorExpression",
	BitwiseXorAssignExpression: "BitwiseXorAssignExpression",
	CoalescingExpression:       "CoalescingExpression",
	AsExpression:               "AsExpression",
	CallExpression:             "CallExpression",
	IndexExpression:            "IndexExpression",
	SpecializationExpression:   "SpecializationExpression",
	DirectAccessExpression:     "DirectAccessExpression",
	IndirectAccessExpression:   "IndirectAccessExpression",
	ScopeAccessExpression:      "ScopeAccessExpression",
	CastExpression:             "CastExpression",
	LiteralExpression:          "LiteralExpression",
	MetaExpression:             "MetaExpression",
	ParenthesizedExpression:    "ParenthesizedExpression",
	TernaryExpression:          "TernaryExpression",
	WordExpression:             "WordExpression",
	WildcardExpression:         "WildcardExpression",
	ArgumentList:               "ArgumentList",
	Argument:                   "Argument",
}

// Name returns the kind's identifier-like name, used for error messages and
// pretty-printing. Hand-written rather than generated: the kind set is
// small and stable enough that a lookup table carries no real maintenance
// cost.
func (k SyntaxKind) Name() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// String implements fmt.Stringer.
func (k SyntaxKind) String() string {
	return k.Name()
}

// IsTrivia reports whether the kind is a trivia variant.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case BlockComment, LineComment, WhiteSpace, ErrorChar:
		return true
	}
	return false
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k SyntaxKind) IsKeyword() bool {
	return k >= Abstract && k <= Yield
}

// IsPunctuation reports whether the kind is a lexer-tokenized symbol.
func (k SyntaxKind) IsPunctuation() bool {
	return k >= LeftParen && k <= CaretEq
}

// IsExpression reports whether the kind is an expression-node variant.
func (k SyntaxKind) IsExpression() bool {
	return k >= UnaryPlusExpression && k <= Argument
}

// IsUnaryOperator reports whether the kind is a unary expression variant.
func (k SyntaxKind) IsUnaryOperator() bool {
	return k >= UnaryPlusExpression && k <= PostDecrementExpression
}

// IsBinaryOperator reports whether the kind is a binary expression variant.
func (k SyntaxKind) IsBinaryOperator() bool {
	return k >= AdditionExpression && k <= AsExpression
}

// IsInvokeOperator reports whether the kind is a postfix invoke variant.
func (k SyntaxKind) IsInvokeOperator() bool {
	return k >= CallExpression && k <= SpecializationExpression
}

// IsAccessOperator reports whether the kind is a postfix access variant.
func (k SyntaxKind) IsAccessOperator() bool {
	return k >= DirectAccessExpression && k <= ScopeAccessExpression
}

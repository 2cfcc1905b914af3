package syntax

// SyntaxSet is a set of syntax kinds implemented as a bitset spread across
// four words, giving 256 bits of capacity — enough for every SyntaxKind in
// this package, plus headroom for growth.
//
// Based on rust-analyzer's TokenSet:
// https://github.com/rust-lang/rust-analyzer/blob/master/crates/parser/src/token_set.rs
type SyntaxSet struct {
	words [4]uint64
}

const maxSetBit = 256

// NewSyntaxSet creates a new empty set.
func NewSyntaxSet() SyntaxSet {
	return SyntaxSet{}
}

// SyntaxSetOf creates a set containing the given kinds.
func SyntaxSetOf(kinds ...SyntaxKind) SyntaxSet {
	s := SyntaxSet{}
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add inserts a syntax kind into the set and returns the new set.
// Panics if the kind's discriminator is >= 256.
func (s SyntaxSet) Add(kind SyntaxKind) SyntaxSet {
	if int(kind) >= maxSetBit {
		panic("SyntaxSet.Add: kind discriminator out of range")
	}
	s.words[kind/64] |= 1 << (kind % 64)
	return s
}

// Remove removes a syntax kind from the set and returns the new set.
// Does nothing if the kind is not present.
func (s SyntaxSet) Remove(kind SyntaxKind) SyntaxSet {
	if int(kind) >= maxSetBit {
		panic("SyntaxSet.Remove: kind discriminator out of range")
	}
	s.words[kind/64] &^= 1 << (kind % 64)
	return s
}

// Union combines two syntax sets.
func (s SyntaxSet) Union(other SyntaxSet) SyntaxSet {
	var out SyntaxSet
	for i := range s.words {
		out.words[i] = s.words[i] | other.words[i]
	}
	return out
}

// Contains returns true if the set contains the given syntax kind.
func (s SyntaxSet) Contains(kind SyntaxKind) bool {
	if int(kind) >= maxSetBit {
		return false
	}
	return s.words[kind/64]&(1<<(kind%64)) != 0
}

// IsEmpty returns true if the set contains no kinds.
func (s SyntaxSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Predefined syntax sets grouping kinds by the role they play in an
// expression. The grammar package decides its lookahead by switching on
// kinds directly and does not consult these sets.

// UnaryPrefixSet contains the kinds that can open a unary-prefix expression:
// sign, logical/bitwise negation, pre-increment/decrement, and the
// meta-expression keywords that themselves take a single operand.
var UnaryPrefixSet = SyntaxSetOf(
	Plus, Minus, Bang, Tilde, PlusPlus, MinusMinus,
	Await, Cast, Bitcast, Dyncast, Sizeof, Alignof, Nameof, Typeof, Declof, Default,
)

// BinaryOpSet contains every binary operator kind, assignment forms
// included.
var BinaryOpSet = SyntaxSetOf(
	AdditionExpression, SubtractionExpression, MultiplicationExpression,
	DivisionExpression, ModuloExpression, AssignmentExpression,
	AddAssignExpression, SubAssignExpression, MulAssignExpression,
	DivAssignExpression, ModAssignExpression, EqualExpression,
	NotEqualExpression, LessThanExpression, LessEqualExpression,
	GreaterThanExpression, GreaterEqualExpression, ShiftLeftExpression,
	ShiftLeftAssignExpression, ShiftRightExpression, ShiftRightAssignExpression,
	LogicalAndExpression, LogicalOrExpression, BitwiseAndExpression,
	BitwiseAndAssignExpression, BitwiseOrExpression, BitwiseOrAssignExpression,
	BitwiseXorExpression, BitwiseXorAssignExpression, CoalescingExpression,
	AsExpression,
)

// PrimaryStartSet contains the kinds that can open a primary expression:
// literals, names, `this`, parenthesized/wildcard forms, and the
// fundamental type keywords used as cast/type targets.
var PrimaryStartSet = SyntaxSetOf(
	CharLiteral, StringLiteral, NumericLiteral, Name, This,
	True, False, Null,
	LeftParen, LeftBracket,
	Bool, Void, F32, F64,
	I8, I16, I32, I64, Iword,
	U8, U16, U32, U64, Uword,
)

// TypeLikePrimarySet contains the kinds that can open something that reads
// as a type: a name, a fundamental type keyword, `const`, a pointer or
// reference marker (`*`, `&`, `&&`), or `[`.
var TypeLikePrimarySet = SyntaxSetOf(
	Name,
	Bool, Void, F32, F64,
	I8, I16, I32, I64, Iword,
	U8, U16, U32, U64, Uword,
	Const, Star, Amp, AmpAmp, LeftBracket,
)

// InvokeStartSet contains the kinds that open a postfix invoke
// (call/index/specialization) continuation.
var InvokeStartSet = SyntaxSetOf(LeftParen, LeftBracket, Lt)

// AccessStartSet contains the kinds that open a postfix access
// (direct/indirect/scope) continuation.
var AccessStartSet = SyntaxSetOf(Dot, Arrow, ColonColon)

// ArgumentStartSet contains the kinds that can start an argument in an
// argument list: any primary-expression starter, any unary-prefix starter,
// or a named-argument identifier.
var ArgumentStartSet = PrimaryStartSet.Union(UnaryPrefixSet)

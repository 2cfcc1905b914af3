package lexpos

// Span is a byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Detached is the span used for synthesized nodes that have no source
// location of their own.
var Detached = Span{Start: -1, End: -1}

// IsDetached reports whether the span refers to real source text.
func (s Span) IsDetached() bool {
	return s.Start < 0
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if s.IsDetached() {
		return 0
	}
	return s.End - s.Start
}

// Union returns the smallest span covering both s and other. A detached
// operand is ignored; if both are detached the result is detached.
func (s Span) Union(other Span) Span {
	switch {
	case s.IsDetached():
		return other
	case other.IsDetached():
		return s
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Spanned pairs a value with the source span it was produced from.
type Spanned[T any] struct {
	Value T
	Span  Span
}

// NewSpanned wraps a value with its span.
func NewSpanned[T any](value T, span Span) Spanned[T] {
	return Spanned[T]{Value: value, Span: span}
}

// SpannedDetached wraps a value with a detached span.
func SpannedDetached[T any](value T) Spanned[T] {
	return Spanned[T]{Value: value, Span: Detached}
}

// Map transforms the wrapped value, preserving the span.
func (s Spanned[T]) Map(f func(T) T) Spanned[T] {
	return Spanned[T]{Value: f(s.Value), Span: s.Span}
}

// Package rational implements exact rational arithmetic for the numeric
// literals the lexer scans: integer part, optional fractional part in any
// of the supported radices, and an optional exponent.
package rational

import "fmt"

// Rational is an exact value Num/Den, always kept with Den > 0 and reduced
// to lowest terms by Reduce.
type Rational struct {
	Num int64
	Den int64
}

// Zero is the rational 0/1.
func Zero() Rational {
	return Rational{Num: 0, Den: 1}
}

// FromInt wraps a whole number as a rational.
func FromInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// Reduce divides Num and Den by their GCD and normalizes the sign of Den.
func (r Rational) Reduce() Rational {
	if r.Den == 0 {
		return r
	}
	if r.Den < 0 {
		r.Num, r.Den = -r.Num, -r.Den
	}
	g := gcd(abs(r.Num), r.Den)
	if g > 1 {
		r.Num /= g
		r.Den /= g
	}
	return r
}

// AddIntDigit folds one more integer-part digit into the value, scanned
// most-significant-digit first: value*radix + digit.
func (r Rational) AddIntDigit(radix, digit int64) Rational {
	return Rational{Num: r.Num*radix + digit, Den: r.Den}
}

// AddFracDigit folds one more fractional digit in, scanning left to right
// after the radix point. Every call rescales both numerator and
// denominator together so the value stays exact at every step — unlike a
// scanner that only updates the numerator and forgets the denominator,
// which silently turns the fraction into a different, wrong integer.
func (r Rational) AddFracDigit(radix, digit int64) Rational {
	return Rational{Num: r.Num*radix + digit, Den: r.Den * radix}
}

// ApplyExponent multiplies the value by base^exp (exp may be negative) and
// reduces the result.
func (r Rational) ApplyExponent(base, exp int64) Rational {
	if exp == 0 {
		return r.Reduce()
	}
	if exp > 0 {
		return Rational{Num: r.Num * ipow(base, exp), Den: r.Den}.Reduce()
	}
	return Rational{Num: r.Num, Den: r.Den * ipow(base, -exp)}.Reduce()
}

// Add returns r+o.
func (r Rational) Add(o Rational) Rational {
	return Rational{Num: r.Num*o.Den + o.Num*r.Den, Den: r.Den * o.Den}.Reduce()
}

// Mul returns r*o.
func (r Rational) Mul(o Rational) Rational {
	return Rational{Num: r.Num * o.Num, Den: r.Den * o.Den}.Reduce()
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{Num: -r.Num, Den: r.Den}
}

// Equal reports whether r and o denote the same value once both are
// reduced to lowest terms.
func (r Rational) Equal(o Rational) bool {
	a, b := r.Reduce(), o.Reduce()
	return a.Num == b.Num && a.Den == b.Den
}

// Float64 returns the nearest float64 approximation of the value.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// String renders the value as "n" when it is a whole number, else "n/d".
func (r Rational) String() string {
	red := r.Reduce()
	if red.Den == 1 {
		return fmt.Sprintf("%d", red.Num)
	}
	return fmt.Sprintf("%d/%d", red.Num, red.Den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func ipow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

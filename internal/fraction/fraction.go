// Package fraction implements exact rational numbers over int64.
//
// Every Fraction is kept reduced: numerator and denominator share no common
// factor, the denominator is positive, and zero is 0/1. Operations that
// would overflow int64 return ErrOverflow instead of wrapping.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

var (
	// ErrZeroDenominator is returned for x/0 and for dividing by zero.
	ErrZeroDenominator = errors.New("zero denominator")
	// ErrOverflow is returned when a result does not fit in int64.
	ErrOverflow = errors.New("fraction overflow")
	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("invalid fraction syntax")
)

// Fraction is a reduced rational number. The zero value is 0/1.
type Fraction struct {
	num int64
	den int64 // 0 only in the zero value, read as 1
}

// New returns num/den in lowest terms.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if num == 0 {
		return Fraction{num: 0, den: 1}, nil
	}
	g := gcd(abs64(num), abs64(den))
	un, ud := abs64(num)/g, abs64(den)/g
	neg := (num < 0) != (den < 0)
	if ud > math.MaxInt64 {
		return Fraction{}, ErrOverflow
	}
	n, err := signed(un, neg)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{num: n, den: int64(ud)}, nil
}

// FromInt returns n/1.
func FromInt(n int64) Fraction { return Fraction{num: n, den: 1} }

// Num returns the numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the (positive) denominator.
func (f Fraction) Den() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// Add returns a + b.
func Add(a, b Fraction) (Fraction, error) {
	return combine(a, b, false)
}

// Sub returns a - b.
func Sub(a, b Fraction) (Fraction, error) {
	return combine(a, b, true)
}

// Mul returns a * b.
func Mul(a, b Fraction) (Fraction, error) {
	// Cross-reduce first to keep intermediates small.
	g1 := gcd(abs64(a.num), abs64(b.Den()))
	g2 := gcd(abs64(b.num), abs64(a.Den()))
	n, err := mulChecked(a.num/int64(g1), b.num/int64(g2))
	if err != nil {
		return Fraction{}, err
	}
	d, err := mulChecked(a.Den()/int64(g2), b.Den()/int64(g1))
	if err != nil {
		return Fraction{}, err
	}
	return New(n, d)
}

// Div returns a / b.
func Div(a, b Fraction) (Fraction, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Fraction{}, err
	}
	return Mul(a, inv)
}

// Neg returns -f.
func (f Fraction) Neg() (Fraction, error) {
	if f.num == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{num: -f.num, den: f.Den()}, nil
}

// Inverse returns 1/f.
func (f Fraction) Inverse() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return New(f.Den(), f.num)
}

// Cmp compares a and b exactly and returns -1, 0 or +1.
func Cmp(a, b Fraction) int {
	// Denominators are positive, so sign(a-b) == sign(a.num*b.den - b.num*a.den).
	return cmp128(a.num, b.Den(), b.num, a.Den())
}

// Equal reports whether a == b.
func (f Fraction) Equal(o Fraction) bool { return Cmp(f, o) == 0 }

// Less reports whether f < o.
func (f Fraction) Less(o Fraction) bool { return Cmp(f, o) < 0 }

// Float64 returns the nearest float64 value.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.Den())
}

// String returns "n" for integers and "n/d" otherwise.
func (f Fraction) String() string {
	if f.Den() == 1 {
		return strconv.FormatInt(f.num, 10)
	}
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Den(), 10)
}

// Parse reads "a" or "a/b".
func Parse(s string) (Fraction, error) {
	numText, denText, hasSlash := strings.Cut(strings.TrimSpace(s), "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !hasSlash {
		return FromInt(num), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return New(num, den)
}

func combine(a, b Fraction, subtract bool) (Fraction, error) {
	ad, bd := a.Den(), b.Den()
	g := int64(gcd(uint64(ad), uint64(bd)))
	// a/ad ± b/bd over lcm(ad, bd).
	left, err := mulChecked(a.num, bd/g)
	if err != nil {
		return Fraction{}, err
	}
	right, err := mulChecked(b.num, ad/g)
	if err != nil {
		return Fraction{}, err
	}
	var n int64
	if subtract {
		n, err = subChecked(left, right)
	} else {
		n, err = addChecked(left, right)
	}
	if err != nil {
		return Fraction{}, err
	}
	d, err := mulChecked(ad/g, bd)
	if err != nil {
		return Fraction{}, err
	}
	return New(n, d)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func signed(u uint64, neg bool) (int64, error) {
	if neg {
		if u > 1<<63 {
			return 0, ErrOverflow
		}
		if u == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(u), nil
}

func mulChecked(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	if hi != 0 {
		return 0, ErrOverflow
	}
	return signed(lo, (a < 0) != (b < 0) && lo != 0)
}

func addChecked(a, b int64) (int64, error) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, ErrOverflow
	}
	return s, nil
}

func subChecked(a, b int64) (int64, error) {
	s := a - b
	if (a >= 0 && b < 0 && s < 0) || (a < 0 && b > 0 && s >= 0) {
		return 0, ErrOverflow
	}
	return s, nil
}

// cmp128 compares a*b with c*d without overflow. b and d must be positive.
func cmp128(a, b, c, d int64) int {
	ls, rs := sign(a), sign(c)
	if ls != rs {
		if ls < rs {
			return -1
		}
		return 1
	}
	if ls == 0 {
		return 0
	}
	lh, ll := bits.Mul64(abs64(a), uint64(b))
	rh, rl := bits.Mul64(abs64(c), uint64(d))
	var mag int
	switch {
	case lh != rh:
		mag = cmpU(lh, rh)
	default:
		mag = cmpU(ll, rl)
	}
	return mag * ls
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func cmpU(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

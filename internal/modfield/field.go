// Package modfield implements arithmetic in the prime field Z/pZ.
package modfield

import (
	"errors"
	"fmt"
	"strconv"

	"numkit/internal/primality"
)

var (
	// ErrNotPrime is returned by NewField for a composite or trivial modulus.
	ErrNotPrime = errors.New("modulus is not prime")
	// ErrNotInvertible is returned when inverting or dividing by zero.
	ErrNotInvertible = errors.New("element is not invertible")
)

// Field is the set of residues modulo a prime P.
type Field struct {
	p uint64
}

// Elem is a residue in [0, P). Elems are only meaningful with the Field
// that produced them.
type Elem struct {
	v uint64
}

// NewField returns the field of integers modulo p.
func NewField(p uint64) (*Field, error) {
	if !primality.IsPrime(p) {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	return &Field{p: p}, nil
}

// P returns the field modulus.
func (f *Field) P() uint64 { return f.p }

// Elem reduces v into the field. Negative values map to their positive residue.
func (f *Field) Elem(v int64) Elem {
	if v >= 0 {
		return Elem{v: uint64(v) % f.p}
	}
	// -(v+1) avoids overflow at math.MinInt64.
	r := (uint64(-(v + 1)) + 1) % f.p
	if r == 0 {
		return Elem{}
	}
	return Elem{v: f.p - r}
}

// ElemUint reduces an unsigned value into the field.
func (f *Field) ElemUint(v uint64) Elem { return Elem{v: v % f.p} }

// Add returns a + b.
func (f *Field) Add(a, b Elem) Elem {
	s := a.v + b.v
	if s >= f.p || s < a.v {
		s -= f.p
	}
	return Elem{v: s}
}

// Sub returns a - b.
func (f *Field) Sub(a, b Elem) Elem {
	if a.v >= b.v {
		return Elem{v: a.v - b.v}
	}
	return Elem{v: f.p - (b.v - a.v)}
}

// Neg returns -a.
func (f *Field) Neg(a Elem) Elem {
	if a.v == 0 {
		return a
	}
	return Elem{v: f.p - a.v}
}

// Mul returns a * b.
func (f *Field) Mul(a, b Elem) Elem {
	return Elem{v: primality.MulMod(a.v, b.v, f.p)}
}

// Pow returns a**e.
func (f *Field) Pow(a Elem, e uint64) Elem {
	return Elem{v: primality.PowMod(a.v, e, f.p)}
}

// Inv returns the multiplicative inverse of a, computed as a^(p-2).
func (f *Field) Inv(a Elem) (Elem, error) {
	if a.v == 0 {
		return Elem{}, ErrNotInvertible
	}
	return f.Pow(a, f.p-2), nil
}

// Div returns a / b.
func (f *Field) Div(a, b Elem) (Elem, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return Elem{}, err
	}
	return f.Mul(a, inv), nil
}

// Value returns the canonical residue.
func (e Elem) Value() uint64 { return e.v }

// Cmp orders elements by residue.
func (e Elem) Cmp(o Elem) int {
	switch {
	case e.v < o.v:
		return -1
	case e.v > o.v:
		return 1
	default:
		return 0
	}
}

func (e Elem) String() string { return strconv.FormatUint(e.v, 10) }

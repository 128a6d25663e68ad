// Package poly implements dense polynomials with float64 coefficients.
//
// Coefficient i multiplies x^i. Trailing coefficients whose magnitude is
// below trimEpsilon are dropped, so the zero polynomial is always [0] and
// Degree of a non-zero polynomial is the index of its last coefficient.
package poly

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	trimEpsilon  = 1e-12
	equalEpsilon = 1e-6
)

var (
	// ErrDivByZero is returned by DivMod when the divisor is the zero polynomial.
	ErrDivByZero = errors.New("polynomial division by zero")
	// ErrSyntax is returned by Parse for malformed coefficient lists.
	ErrSyntax = errors.New("invalid polynomial")
)

// Poly is an immutable polynomial. The zero value is the zero polynomial.
type Poly struct {
	c []float64
}

// New builds a polynomial from coefficients in ascending degree order.
func New(coeffs ...float64) Poly {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return trim(c)
}

func trim(c []float64) Poly {
	n := len(c)
	for n > 1 && math.Abs(c[n-1]) < trimEpsilon {
		n--
	}
	if n == 0 {
		return Poly{c: []float64{0}}
	}
	return Poly{c: c[:n]}
}

func (p Poly) coeffs() []float64 {
	if len(p.c) == 0 {
		return []float64{0}
	}
	return p.c
}

// Degree returns the degree; the zero polynomial has degree 0.
func (p Poly) Degree() int { return len(p.coeffs()) - 1 }

// Coef returns the coefficient of x^i, or 0 past the end.
func (p Poly) Coef(i int) float64 {
	c := p.coeffs()
	if i < 0 || i >= len(c) {
		return 0
	}
	return c[i]
}

// Coeffs returns a copy of the coefficients.
func (p Poly) Coeffs() []float64 {
	c := p.coeffs()
	out := make([]float64, len(c))
	copy(out, c)
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	c := p.coeffs()
	return len(c) == 1 && math.Abs(c[0]) < trimEpsilon
}

// Eval evaluates p at x using Horner's rule.
func (p Poly) Eval(x float64) float64 {
	c := p.coeffs()
	acc := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		acc = acc*x + c[i]
	}
	return acc
}

func (p Poly) Derivative() Poly {
	c := p.coeffs()
	if len(c) == 1 {
		return New()
	}
	out := make([]float64, len(c)-1)
	for i := 1; i < len(c); i++ {
		out[i-1] = c[i] * float64(i)
	}
	return trim(out)
}

// Integral returns the antiderivative whose constant term is k.
func (p Poly) Integral(k float64) Poly {
	c := p.coeffs()
	out := make([]float64, len(c)+1)
	out[0] = k
	for i, v := range c {
		out[i+1] = v / float64(i+1)
	}
	return trim(out)
}

func (p Poly) Add(q Poly) Poly {
	a, b := p.coeffs(), q.coeffs()
	out := make([]float64, max(len(a), len(b)))
	for i := range out {
		out[i] = p.Coef(i) + q.Coef(i)
	}
	return trim(out)
}

func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

func (p Poly) Neg() Poly {
	c := p.coeffs()
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = -v
	}
	return trim(out)
}

func (p Poly) Mul(q Poly) Poly {
	a, b := p.coeffs(), q.coeffs()
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return trim(out)
}

// Scale multiplies every coefficient by k.
func (p Poly) Scale(k float64) Poly {
	return p.Mul(New(k))
}

// DivMod performs long division, returning q and r with p = q·d + r and
// deg r < deg d (or r = 0).
func (p Poly) DivMod(d Poly) (Poly, Poly, error) {
	if d.IsZero() {
		return Poly{}, Poly{}, ErrDivByZero
	}
	dc := d.coeffs()
	r := p.Coeffs()
	dd := len(dc) - 1
	if len(r)-1 < dd {
		return New(), New(r...), nil
	}
	q := make([]float64, len(r)-dd)
	lead := dc[dd]
	for i := len(r) - 1; i >= dd; i-- {
		f := r[i] / lead
		q[i-dd] = f
		for j := range dc {
			r[i-dd+j] -= f * dc[j]
		}
		r[i] = 0
	}
	return trim(q), trim(r[:max(dd, 1)]), nil
}

// Equal compares coefficient-wise with a 1e-6 tolerance.
func (p Poly) Equal(q Poly) bool {
	n := max(len(p.coeffs()), len(q.coeffs()))
	for i := range n {
		if math.Abs(p.Coef(i)-q.Coef(i)) >= equalEpsilon {
			return false
		}
	}
	return true
}

// String renders p in ascending degree, e.g. "1 + 2x - x^2".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, v := range p.coeffs() {
		if math.Abs(v) < trimEpsilon {
			continue
		}
		neg := v < 0
		mag := math.Abs(v)
		if b.Len() == 0 {
			if neg {
				b.WriteByte('-')
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		if i == 0 || mag != 1 {
			b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		}
		switch {
		case i == 1:
			b.WriteByte('x')
		case i > 1:
			fmt.Fprintf(&b, "x^%d", i)
		}
	}
	return b.String()
}

// Parse reads coefficients separated by whitespace and/or commas, lowest
// degree first: "1 2 -1" is 1 + 2x - x^2.
func Parse(s string) (Poly, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return Poly{}, fmt.Errorf("%w: no coefficients", ErrSyntax)
	}
	c := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Poly{}, fmt.Errorf("%w: coefficient %d %q", ErrSyntax, i, f)
		}
		c[i] = v
	}
	return trim(c), nil
}

// Package cplx provides a small complex-number value type over float64.
package cplx

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used by Equal and String.
const Epsilon = 1e-10

var (
	// ErrDivByZero is returned when dividing by 0+0i.
	ErrDivByZero = errors.New("division by zero")
	// ErrBadRootCount is returned by Roots for n <= 0.
	ErrBadRootCount = errors.New("root count must be positive")
)

// Complex is re + im·i.
type Complex struct {
	Re, Im float64
}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// Real returns re + 0i.
func Real(re float64) Complex { return Complex{Re: re} }

func (z Complex) Add(w Complex) Complex { return Complex{z.Re + w.Re, z.Im + w.Im} }
func (z Complex) Sub(w Complex) Complex { return Complex{z.Re - w.Re, z.Im - w.Im} }
func (z Complex) Neg() Complex          { return Complex{-z.Re, -z.Im} }
func (z Complex) Conj() Complex         { return Complex{z.Re, -z.Im} }

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z / w, computed as z·conj(w) / |w|².
func (z Complex) Div(w Complex) (Complex, error) {
	den := w.Re*w.Re + w.Im*w.Im
	if den == 0 {
		return Complex{}, ErrDivByZero
	}
	n := z.Mul(w.Conj())
	return Complex{n.Re / den, n.Im / den}, nil
}

// Abs returns |z|.
func (z Complex) Abs() float64 { return math.Hypot(z.Re, z.Im) }

// Arg returns the argument of z in (-π, π].
func (z Complex) Arg() float64 { return math.Atan2(z.Im, z.Re) }

// Roots returns the n complex n-th roots of z, starting from the principal
// root and proceeding counter-clockwise.
func (z Complex) Roots(n int) ([]Complex, error) {
	if n <= 0 {
		return nil, ErrBadRootCount
	}
	r := math.Pow(z.Abs(), 1/float64(n))
	theta := z.Arg() / float64(n)
	step := 2 * math.Pi / float64(n)
	out := make([]Complex, 0, n)
	for k := range n {
		a := theta + float64(k)*step
		out = append(out, Complex{r * math.Cos(a), r * math.Sin(a)})
	}
	return out, nil
}

// Equal reports whether both parts agree within Epsilon.
func (z Complex) Equal(w Complex) bool {
	return nearly(z.Re, w.Re) && nearly(z.Im, w.Im)
}

// String renders z as "0", "a", "i", "-i", "bi", "(a + bi)" or "(a - bi)".
func (z Complex) String() string {
	reZero := nearly(z.Re, 0)
	imZero := nearly(z.Im, 0)
	switch {
	case reZero && imZero:
		return "0"
	case imZero:
		return formatFloat(z.Re)
	case reZero:
		switch {
		case nearly(z.Im, 1):
			return "i"
		case nearly(z.Im, -1):
			return "-i"
		default:
			return formatFloat(z.Im) + "i"
		}
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatFloat(z.Re))
	if z.Im > 0 {
		b.WriteString(" + ")
	} else {
		b.WriteString(" - ")
	}
	b.WriteString(formatFloat(math.Abs(z.Im)))
	b.WriteString("i)")
	return b.String()
}

func nearly(a, b float64) bool { return math.Abs(a-b) < Epsilon }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

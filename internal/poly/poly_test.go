package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTrims(t *testing.T) {
	p := New(1, 2, 0, 0)
	require.Equal(t, 1, p.Degree())
	require.Equal(t, []float64{1, 2}, p.Coeffs())

	z := New(0, 0, 0)
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Degree())

	var zero Poly
	require.True(t, zero.IsZero())
	require.Equal(t, "0", zero.String())
	require.Equal(t, 0.0, zero.Coef(5))
}

func TestEval(t *testing.T) {
	p := New(1, 2, -1) // 1 + 2x - x^2
	require.InDelta(t, 1.0, p.Eval(0), 1e-12)
	require.InDelta(t, 2.0, p.Eval(1), 1e-12)
	require.InDelta(t, -2.0, p.Eval(3), 1e-12)
}

func TestCalculus(t *testing.T) {
	p := New(1, 2, -1)
	require.True(t, p.Derivative().Equal(New(2, -2)))
	require.True(t, New(5).Derivative().IsZero())

	in := p.Integral(3)
	require.True(t, in.Equal(New(3, 1, 1, -1.0/3)), "got %v", in)
	require.True(t, in.Derivative().Equal(p))
}

func TestArithmetic(t *testing.T) {
	a := New(1, 1)  // 1 + x
	b := New(-1, 1) // -1 + x
	require.True(t, a.Mul(b).Equal(New(-1, 0, 1)))
	require.True(t, a.Add(b).Equal(New(0, 2)))
	require.True(t, a.Sub(a).IsZero())
	require.True(t, a.Neg().Equal(New(-1, -1)))
	require.True(t, a.Scale(3).Equal(New(3, 3)))
}

func TestDivMod(t *testing.T) {
	p := New(-1, 0, 1) // x^2 - 1
	q, r, err := p.DivMod(New(-1, 1))
	require.NoError(t, err)
	require.True(t, q.Equal(New(1, 1)), "q = %v", q)
	require.True(t, r.IsZero(), "r = %v", r)

	p = New(1, 0, 0, 2) // 2x^3 + 1
	d := New(1, 1)
	q, r, err = p.DivMod(d)
	require.NoError(t, err)
	require.True(t, q.Mul(d).Add(r).Equal(p))
	require.Less(t, r.Degree(), d.Degree())

	q, r, err = New(3).DivMod(New(0, 1))
	require.NoError(t, err)
	require.True(t, q.IsZero())
	require.True(t, r.Equal(New(3)))

	_, _, err = p.DivMod(New())
	require.ErrorIs(t, err, ErrDivByZero)
}

func TestString(t *testing.T) {
	cases := map[string]Poly{
		"1 + 2x - x^2": New(1, 2, -1),
		"x":            New(0, 1),
		"-x^3":         New(0, 0, 0, -1),
		"-2 + 0.5x":    New(-2, 0.5),
		"0":            New(),
	}
	for want, p := range cases {
		require.Equal(t, want, p.String())
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("1, 2 -1")
	require.NoError(t, err)
	require.True(t, p.Equal(New(1, 2, -1)))

	_, err = Parse("  ")
	require.ErrorIs(t, err, ErrSyntax)
	_, err = Parse("1 x")
	require.ErrorIs(t, err, ErrSyntax)
}

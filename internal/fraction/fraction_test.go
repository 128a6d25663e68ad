package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, n, d int64) Fraction {
	t.Helper()
	f, err := New(n, d)
	require.NoError(t, err)
	return f
}

func TestNewReduces(t *testing.T) {
	cases := []struct {
		n, d         int64
		wantN, wantD int64
	}{
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{-2, -4, 1, 2},
		{0, -7, 0, 1},
		{6, 3, 2, 1},
		{math.MinInt64, 2, math.MinInt64 / 2, 1},
	}
	for _, tc := range cases {
		f := mustNew(t, tc.n, tc.d)
		require.Equal(t, tc.wantN, f.Num(), "%d/%d", tc.n, tc.d)
		require.Equal(t, tc.wantD, f.Den(), "%d/%d", tc.n, tc.d)
	}
	_, err := New(1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)
	_, err = New(1, math.MinInt64)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestZeroValue(t *testing.T) {
	var z Fraction
	require.Equal(t, int64(1), z.Den())
	require.Equal(t, "0", z.String())
	require.True(t, z.Equal(FromInt(0)))
}

func TestArithmetic(t *testing.T) {
	half := mustNew(t, 1, 2)
	third := mustNew(t, 1, 3)

	sum, err := Add(half, third)
	require.NoError(t, err)
	require.Equal(t, "5/6", sum.String())

	diff, err := Sub(third, half)
	require.NoError(t, err)
	require.Equal(t, "-1/6", diff.String())

	prod, err := Mul(half, third)
	require.NoError(t, err)
	require.Equal(t, "1/6", prod.String())

	quot, err := Div(half, third)
	require.NoError(t, err)
	require.Equal(t, "3/2", quot.String())

	whole, err := Add(half, half)
	require.NoError(t, err)
	require.Equal(t, "1", whole.String())

	_, err = Div(half, FromInt(0))
	require.ErrorIs(t, err, ErrZeroDenominator)

	neg, err := half.Neg()
	require.NoError(t, err)
	require.Equal(t, "-1/2", neg.String())

	inv, err := mustNew(t, -3, 4).Inverse()
	require.NoError(t, err)
	require.Equal(t, "-4/3", inv.String())
}

func TestOverflow(t *testing.T) {
	big := FromInt(math.MaxInt64)
	_, err := Add(big, FromInt(1))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Mul(big, FromInt(2))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Sub(FromInt(math.MinInt64), FromInt(1))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = FromInt(math.MinInt64).Neg()
	require.ErrorIs(t, err, ErrOverflow)

	// Cross reduction keeps this product representable.
	p, err := Mul(mustNew(t, math.MaxInt64, 3), mustNew(t, 3, math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, "1", p.String())
}

func TestCmp(t *testing.T) {
	require.Equal(t, -1, Cmp(mustNew(t, 1, 3), mustNew(t, 1, 2)))
	require.Equal(t, 1, Cmp(mustNew(t, -1, 3), mustNew(t, -1, 2)))
	require.Equal(t, 0, Cmp(mustNew(t, 2, 4), mustNew(t, 1, 2)))
	require.Equal(t, -1, Cmp(mustNew(t, -1, 2), FromInt(0)))
	// Cross products exceed int64 here.
	a := mustNew(t, math.MaxInt64-1, math.MaxInt64)
	b := mustNew(t, math.MaxInt64-2, math.MaxInt64-1)
	require.Equal(t, 1, Cmp(a, b))
	require.True(t, b.Less(a))
}

func TestParse(t *testing.T) {
	cases := map[string]string{
		"3":       "3",
		"-6/8":    "-3/4",
		" 10 / 5": "2",
		"7/-14":   "-1/2",
	}
	for in, want := range cases {
		f, err := Parse(in)
		require.NoError(t, err, in)
		require.Equal(t, want, f.String(), in)
	}
	for _, in := range []string{"", "a/b", "1/", "1/2/3"} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrSyntax, in)
	}
	_, err := Parse("1/0")
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestFloat64(t *testing.T) {
	require.InDelta(t, 0.75, mustNew(t, 3, 4).Float64(), 1e-12)
}

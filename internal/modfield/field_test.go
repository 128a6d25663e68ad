package modfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustField(t *testing.T, p uint64) *Field {
	t.Helper()
	f, err := NewField(p)
	require.NoError(t, err)
	return f
}

func TestNewFieldRejectsComposite(t *testing.T) {
	for _, p := range []uint64{0, 1, 4, 9, 561} {
		_, err := NewField(p)
		require.ErrorIs(t, err, ErrNotPrime, "p=%d", p)
	}
}

func TestElemReduction(t *testing.T) {
	f := mustField(t, 7)
	cases := []struct {
		in   int64
		want uint64
	}{
		{0, 0}, {3, 3}, {7, 0}, {15, 1}, {-1, 6}, {-7, 0}, {-14, 0}, {-15, 6},
		{math.MinInt64, 6}, // -2^63 mod 7: 2^63 = 7*k + 1
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, f.Elem(tc.in).Value(), "Elem(%d)", tc.in)
	}
}

func TestFieldArithmetic(t *testing.T) {
	f := mustField(t, 13)
	a, b := f.Elem(9), f.Elem(7)
	require.Equal(t, uint64(3), f.Add(a, b).Value())
	require.Equal(t, uint64(2), f.Sub(a, b).Value())
	require.Equal(t, uint64(11), f.Sub(b, a).Value())
	require.Equal(t, uint64(11), f.Mul(a, b).Value()) // 63 = 4*13 + 11
	require.Equal(t, uint64(4), f.Neg(a).Value())
	require.Equal(t, uint64(0), f.Neg(f.Elem(0)).Value())
	require.Equal(t, uint64(1), f.Pow(a, 12).Value())

	inv, err := f.Inv(a)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Mul(a, inv).Value())

	q, err := f.Div(a, b)
	require.NoError(t, err)
	require.Equal(t, a, f.Mul(q, b))

	_, err = f.Inv(f.Elem(26))
	require.ErrorIs(t, err, ErrNotInvertible)
	_, err = f.Div(a, f.Elem(0))
	require.ErrorIs(t, err, ErrNotInvertible)

	require.Equal(t, -1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(f.Elem(22)))
	require.Equal(t, "9", a.String())
}

func TestLargePrimeField(t *testing.T) {
	const p = 18446744073709551557
	f := mustField(t, p)
	a := f.ElemUint(p - 1)
	b := f.ElemUint(p - 2)
	require.Equal(t, uint64(p-3), f.Add(a, b).Value())
	require.Equal(t, uint64(2), f.Mul(a, b).Value()) // (-1)(-2) = 2
	inv, err := f.Inv(b)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Mul(b, inv).Value())
}

func TestInverseForEveryElement(t *testing.T) {
	f := mustField(t, 101)
	for v := int64(1); v < 101; v++ {
		inv, err := f.Inv(f.Elem(v))
		require.NoError(t, err)
		require.Equal(t, uint64(1), f.Mul(f.Elem(v), inv).Value())
	}
}

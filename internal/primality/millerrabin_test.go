package primality

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowMod(t *testing.T) {
	require.Equal(t, uint64(1024%1000), PowMod(2, 10, 1000))
	require.Equal(t, uint64(0), PowMod(5, 3, 1))
	require.Equal(t, uint64(1), PowMod(7, 0, 13))
	// Fermat: a^(p-1) == 1 mod p for a large 64-bit prime.
	const p = 18446744073709551557 // largest prime below 2^64
	require.Equal(t, uint64(1), PowMod(3, p-1, p))
}

func TestMulModMatchesBig(t *testing.T) {
	cases := [][3]uint64{
		{math.MaxUint64, math.MaxUint64, math.MaxUint64 - 58},
		{1 << 63, 3, 1000000007},
		{123456789, 987654321, 1 << 61},
	}
	for _, c := range cases {
		want := new(big.Int).Mul(new(big.Int).SetUint64(c[0]), new(big.Int).SetUint64(c[1]))
		want.Mod(want, new(big.Int).SetUint64(c[2]))
		require.Equal(t, want.Uint64(), MulMod(c[0], c[1], c[2]), "%d*%d mod %d", c[0], c[1], c[2])
	}
}

func TestIsPrimeSmall(t *testing.T) {
	sieve := make([]bool, 10000)
	for i := 2; i < len(sieve); i++ {
		sieve[i] = true
	}
	for i := 2; i*i < len(sieve); i++ {
		if sieve[i] {
			for j := i * i; j < len(sieve); j += i {
				sieve[j] = false
			}
		}
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for n := range sieve {
		require.Equal(t, sieve[n], IsPrime(uint64(n)), "IsPrime(%d)", n)
		require.Equal(t, sieve[n], IsProbablePrime(uint64(n), 10, rng), "IsProbablePrime(%d)", n)
	}
}

func TestIsPrimeStrongPseudoprimes(t *testing.T) {
	// Carmichael numbers and strong pseudoprimes to small bases.
	composites := []uint64{
		561, 1105, 1729, 2047, 3215031751, 2152302898747, 3474749660383,
		341550071728321, 3825123056546413051,
		// product of two large primes
		4294967291 * 4294967279,
	}
	for _, n := range composites {
		require.False(t, IsPrime(n), "IsPrime(%d)", n)
		require.False(t, IsProbablePrime(n, 30, rand.New(rand.NewPCG(7, 7))), "IsProbablePrime(%d)", n)
	}
	primes := []uint64{2, 3, 5, 1000000007, 4294967291, 18446744073709551557}
	for _, n := range primes {
		require.True(t, IsPrime(n), "IsPrime(%d)", n)
		require.True(t, IsProbablePrime(n, 30, nil), "IsProbablePrime(%d)", n)
	}
}

func TestIsPrimeMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 43))
	for range 2000 {
		n := rng.Uint64() | 1
		want := new(big.Int).SetUint64(n).ProbablyPrime(20)
		require.Equal(t, want, IsPrime(n), "IsPrime(%d)", n)
	}
}

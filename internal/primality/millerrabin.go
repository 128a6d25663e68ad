package primality

import (
	"math/bits"
	"math/rand/v2"
)

// DefaultRounds is used when a caller passes rounds <= 0.
const DefaultRounds = 20

// deterministicWitnesses decide primality exactly for every n < 2^64.
var deterministicWitnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// PowMod returns b**e mod m. It panics if m is zero.
func PowMod(b, e, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	b %= m
	for e > 0 {
		if e&1 == 1 {
			result = MulMod(result, b, m)
		}
		b = MulMod(b, b, m)
		e >>= 1
	}
	return result
}

// MulMod returns a*b mod m using a 128-bit intermediate product.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range deterministicWitnesses {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	d, s := decompose(n)
	for _, a := range deterministicWitnesses {
		if provesComposite(a, n, d, s) {
			return false
		}
	}
	return true
}

// IsProbablePrime runs rounds of Miller–Rabin with witnesses drawn from
// [2, n-2]. A nil rng uses the global source.
func IsProbablePrime(n uint64, rounds int, rng *rand.Rand) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	d, s := decompose(n)
	for range rounds {
		var a uint64
		if rng != nil {
			a = 2 + rng.Uint64N(n-3)
		} else {
			a = 2 + rand.Uint64N(n-3)
		}
		if provesComposite(a, n, d, s) {
			return false
		}
	}
	return true
}

// decompose writes n-1 as d * 2^s with d odd.
func decompose(n uint64) (d uint64, s int) {
	d = n - 1
	for d&1 == 0 {
		d >>= 1
		s++
	}
	return d, s
}

// provesComposite reports whether a is a Miller–Rabin witness for n being
// composite. n must be odd and greater than 3.
func provesComposite(a, n, d uint64, s int) bool {
	x := PowMod(a, d, n)
	if x == 1 || x == n-1 {
		return false
	}
	for r := 1; r < s; r++ {
		x = MulMod(x, x, n)
		if x == n-1 {
			return false
		}
	}
	return true
}

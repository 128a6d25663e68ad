package bignum

import (
	"math"
	"math/bits"

	"fortio.org/safecast"
)

// BigInt represents a big signed integer.
type BigInt struct {
	neg bool
	// digits are base-10 little-endian (digits[0] is least significant).
	//
	// An empty slice is read as a single zero digit so the zero value is usable.
	digits []uint8
}

var zeroDigits = []uint8{0}

// Zero returns canonical zero.
func Zero() BigInt { return BigInt{digits: []uint8{0}} }

// One returns the BigInt value one.
func One() BigInt { return BigInt{digits: []uint8{1}} }

// FromInt64 creates a BigInt from an int64.
func FromInt64(v int64) BigInt {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	// -(v+1) is non-negative for every v < 0, including math.MinInt64.
	u := uint64(-(v + 1)) + 1
	out := FromUint64(u)
	out.neg = true
	return out
}

// FromUint64 creates a BigInt from a uint64.
func FromUint64(v uint64) BigInt {
	if v == 0 {
		return Zero()
	}
	digits := make([]uint8, 0, 20)
	for v > 0 {
		digits = append(digits, uint8(v%10)) //nolint:gosec // G115: v%10 < 10.
		v /= 10
	}
	return BigInt{digits: digits}
}

// mag returns the magnitude without copying. Callers must not mutate it.
func (x BigInt) mag() []uint8 {
	if len(x.digits) == 0 {
		return zeroDigits
	}
	return x.digits
}

// Clone returns a deep copy of x.
func (x BigInt) Clone() BigInt {
	m := x.mag()
	out := make([]uint8, len(m))
	copy(out, m)
	return BigInt{neg: x.neg, digits: out}
}

// IsNonZero reports whether any digit of the magnitude is nonzero.
func (x BigInt) IsNonZero() bool {
	for _, d := range x.mag() {
		if d != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether x is zero.
func (x BigInt) IsZero() bool { return !x.IsNonZero() }

// Sign returns the sign flag of x: -1 for negative values and +1 otherwise.
// Zero always reports +1.
func (x BigInt) Sign() int {
	if x.neg && x.IsNonZero() {
		return -1
	}
	return 1
}

// Len returns the number of decimal digits in the magnitude of x.
func (x BigInt) Len() int { return len(x.mag()) }

// Digits returns a copy of the magnitude, least significant digit first.
func (x BigInt) Digits() []uint8 {
	m := x.mag()
	out := make([]uint8, len(m))
	copy(out, m)
	return out
}

// Abs returns |x|.
func (x BigInt) Abs() BigInt {
	out := x.Clone()
	out.neg = false
	return out
}

// Neg returns -x. Negating zero yields canonical zero.
func (x BigInt) Neg() BigInt {
	if x.IsZero() {
		return Zero()
	}
	out := x.Clone()
	out.neg = !out.neg
	return out
}

// Plus returns an identical copy of x.
func (x BigInt) Plus() BigInt { return x.Clone() }

// Int64 converts x to int64 if possible.
func (x BigInt) Int64() (int64, bool) {
	m := x.mag()
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(u, 10)
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, uint64(m[i]), 0)
		if carry != 0 {
			return 0, false
		}
		u = sum
	}
	if x.neg && u == uint64(math.MaxInt64)+1 {
		return math.MinInt64, true
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, false
	}
	if x.neg {
		v = -v
	}
	return v, true
}

// normalize trims high-order zero digits and forces zero to be positive.
// It works in place on x.digits, which must be owned by x.
func (x *BigInt) normalize() {
	d := x.digits
	for len(d) > 0 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	if len(d) == 0 {
		x.neg = false
		x.digits = []uint8{0}
		return
	}
	x.digits = d
}

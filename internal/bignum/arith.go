package bignum

// Add returns a + b.
func Add(a, b BigInt) BigInt {
	if a.neg != b.neg {
		// a + b == a - (-b); flipping the raw flag lands in the same-sign case.
		return subSameSign(a, flipSign(b))
	}
	return addSameSign(a, b)
}

// Sub returns a - b.
func Sub(a, b BigInt) BigInt {
	if a.neg != b.neg {
		return addSameSign(a, flipSign(b))
	}
	return subSameSign(a, b)
}

// Mul returns a * b using schoolbook long multiplication.
func Mul(a, b BigInt) BigInt {
	am := a.mag()
	bm := b.mag()
	out := make([]uint8, len(am)+len(bm))
	for i, da := range am {
		if da == 0 {
			continue
		}
		// da*db + out[k] + carry <= 81 + 9 + 9, so uint8 never overflows.
		var carry uint8
		for j, db := range bm {
			k := i + j
			prod := da*db + out[k] + carry
			out[k] = prod % 10
			carry = prod / 10
		}
		for k := i + len(bm); carry != 0; k++ {
			sum := out[k] + carry
			out[k] = sum % 10
			carry = sum / 10
		}
	}
	res := BigInt{neg: a.neg != b.neg, digits: out}
	res.normalize()
	return res
}

// Pow returns x**n. Pow(x, 0) is one, including for x == 0.
func Pow(x BigInt, n uint64) BigInt {
	result := One()
	base := x.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}
		n >>= 1
		if n == 0 {
			break
		}
		base = Mul(base, base)
	}
	return result
}

// AddAssign sets x to x + y.
func (x *BigInt) AddAssign(y BigInt) { *x = Add(*x, y) }

// SubAssign sets x to x - y.
func (x *BigInt) SubAssign(y BigInt) { *x = Sub(*x, y) }

// MulAssign sets x to x * y.
func (x *BigInt) MulAssign(y BigInt) { *x = Mul(*x, y) }

// Inc increments x and returns the new value.
func (x *BigInt) Inc() BigInt {
	x.AddAssign(One())
	return x.Clone()
}

// PostInc increments x and returns the value it held before.
func (x *BigInt) PostInc() BigInt {
	old := x.Clone()
	x.AddAssign(One())
	return old
}

// Dec decrements x and returns the new value.
func (x *BigInt) Dec() BigInt {
	x.SubAssign(One())
	return x.Clone()
}

// PostDec decrements x and returns the value it held before.
func (x *BigInt) PostDec() BigInt {
	old := x.Clone()
	x.SubAssign(One())
	return old
}

// flipSign negates the raw sign flag without canonicalizing zero. It only
// feeds the same-sign helpers below, which normalize their results.
func flipSign(x BigInt) BigInt {
	return BigInt{neg: !x.neg, digits: x.mag()}
}

// addSameSign adds magnitudes; a and b must carry the same sign flag.
func addSameSign(a, b BigInt) BigInt {
	am := a.mag()
	bm := b.mag()
	n := max(len(am), len(bm))
	out := make([]uint8, 0, n+1)
	var carry uint8
	for i := 0; i < n || carry != 0; i++ {
		sum := carry
		if i < len(am) {
			sum += am[i]
		}
		if i < len(bm) {
			sum += bm[i]
		}
		out = append(out, sum%10)
		carry = sum / 10
	}
	res := BigInt{neg: a.neg, digits: out}
	res.normalize()
	return res
}

// subSameSign subtracts magnitudes; a and b must carry the same sign flag.
// The borrow loop always runs on the larger magnitude.
func subSameSign(a, b BigInt) BigInt {
	am := a.mag()
	bm := b.mag()
	neg := a.neg
	if cmpMag(am, bm) < 0 {
		// a - b == -(b - a)
		am, bm = bm, am
		neg = !neg
	}
	out := make([]uint8, len(am))
	copy(out, am)
	var borrow int8
	for i := 0; i < len(bm) || borrow != 0; i++ {
		d := int8(out[i]) - borrow //nolint:gosec // G115: digits are < 10.
		if i < len(bm) {
			d -= int8(bm[i]) //nolint:gosec // G115: digits are < 10.
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint8(d) //nolint:gosec // G115: d is in [0,9] here.
	}
	res := BigInt{neg: neg, digits: out}
	res.normalize()
	return res
}

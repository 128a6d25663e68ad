package bignum

// Cmp compares x and y and returns -1, 0 or +1.
//
// Values are ordered by sign first, then by digit count (valid because
// magnitudes carry no high-order zeros), then digit by digit from the most
// significant end.
func (x BigInt) Cmp(y BigInt) int {
	xs := x.Sign()
	ys := y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	xm := x.mag()
	ym := y.mag()
	if len(xm) != len(ym) {
		if xs*len(xm) < ys*len(ym) {
			return -1
		}
		return 1
	}
	for i := len(xm) - 1; i >= 0; i-- {
		if xm[i] == ym[i] {
			continue
		}
		if xs*int(xm[i]) < ys*int(ym[i]) {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether x < y.
func (x BigInt) Less(y BigInt) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x BigInt) Greater(y BigInt) bool { return y.Less(x) }

// LessEq reports whether x <= y.
func (x BigInt) LessEq(y BigInt) bool { return !x.Greater(y) }

// GreaterEq reports whether x >= y.
func (x BigInt) GreaterEq(y BigInt) bool { return !x.Less(y) }

// Equal reports whether x == y.
func (x BigInt) Equal(y BigInt) bool { return x.LessEq(y) && x.GreaterEq(y) }

// NotEqual reports whether x != y.
func (x BigInt) NotEqual(y BigInt) bool { return !x.Equal(y) }

func cmpMag(a, b []uint8) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

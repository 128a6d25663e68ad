package bignum

import (
	"math"
	"math/big"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"testing/quick"
)

var quickCfg = &quick.Config{MaxCount: 1000}

// decimal is a random signed decimal literal of up to 60 digits, leading
// zeros included.
type decimal string

func (decimal) Generate(r *rand.Rand, _ int) reflect.Value {
	var sb strings.Builder
	if r.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	n := 1 + r.Intn(60)
	for range n {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
	return reflect.ValueOf(decimal(sb.String()))
}

func canonical(r BigInt) bool {
	if len(r.digits) == 0 {
		return false
	}
	if len(r.digits) > 1 && r.digits[len(r.digits)-1] == 0 {
		return false
	}
	return !(r.neg && r.IsZero())
}

func TestQuickRoundTrip(t *testing.T) {
	err := quick.Check(func(v int64) bool {
		x := FromInt64(v)
		y, err := Parse(x.String())
		return err == nil && x.Equal(y) && y.String() == x.String()
	}, quickCfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickAgainstMathBig(t *testing.T) {
	err := quick.Check(func(a, b int64) bool {
		x, y := FromInt64(a), FromInt64(b)
		ba, bb := big.NewInt(a), big.NewInt(b)
		sum := new(big.Int).Add(ba, bb)
		diff := new(big.Int).Sub(ba, bb)
		prod := new(big.Int).Mul(ba, bb)
		return Add(x, y).String() == sum.String() &&
			Sub(x, y).String() == diff.String() &&
			Mul(x, y).String() == prod.String() &&
			x.Cmp(y) == ba.Cmp(bb)
	}, quickCfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickMultiDigitAgainstMathBig(t *testing.T) {
	err := quick.Check(func(a, b decimal) bool {
		x, errX := Parse(string(a))
		y, errY := Parse(string(b))
		if errX != nil || errY != nil {
			return false
		}
		ba, _ := new(big.Int).SetString(string(a), 10)
		bb, _ := new(big.Int).SetString(string(b), 10)
		sum, diff, prod := Add(x, y), Sub(x, y), Mul(x, y)
		return x.String() == ba.String() &&
			sum.String() == new(big.Int).Add(ba, bb).String() &&
			diff.String() == new(big.Int).Sub(ba, bb).String() &&
			prod.String() == new(big.Int).Mul(ba, bb).String() &&
			x.Cmp(y) == ba.Cmp(bb) &&
			canonical(x) && canonical(sum) && canonical(diff) && canonical(prod)
	}, &quick.Config{MaxCount: 2000})
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickAlgebraicLaws(t *testing.T) {
	err := quick.Check(func(a, b, c int64) bool {
		x, y, z := FromInt64(a), FromInt64(b), FromInt64(c)
		return Add(x, Zero()).Equal(x) &&
			Add(x, x.Neg()).Equal(Zero()) &&
			Add(x, x.Neg()).String() == "0" &&
			Add(x, y).Equal(Add(y, x)) &&
			Mul(x, y).Equal(Mul(y, x)) &&
			Add(Add(x, y), z).Equal(Add(x, Add(y, z))) &&
			Mul(x, One()).Equal(x) &&
			Mul(x, Zero()).String() == "0"
	}, quickCfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickTotalOrder(t *testing.T) {
	err := quick.Check(func(a, b, c int64) bool {
		x, y, z := FromInt64(a), FromInt64(b), FromInt64(c)
		n := 0
		if x.Less(y) {
			n++
		}
		if x.Equal(y) {
			n++
		}
		if x.Greater(y) {
			n++
		}
		if n != 1 {
			return false
		}
		if x.Less(y) && y.Less(z) && !x.Less(z) {
			return false
		}
		return true
	}, quickCfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickCanonicalResults(t *testing.T) {
	err := quick.Check(func(a, b int32) bool {
		x, y := FromInt64(int64(a)), FromInt64(int64(b))
		for _, r := range []BigInt{Add(x, y), Sub(x, y), Mul(x, y), x.Neg(), x.Abs()} {
			if !canonical(r) {
				return false
			}
		}
		return true
	}, quickCfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLargeMagnitudesAgainstMathBig(t *testing.T) {
	x := FromInt64(math.MaxInt64)
	bx := big.NewInt(math.MaxInt64)
	for i := 0; i < 6; i++ {
		x = Mul(x, x)
		bx.Mul(bx, bx)
		if x.String() != bx.String() {
			t.Fatalf("square %d: %s != %s", i, x, bx)
		}
	}
	y := Sub(x.Neg(), One())
	by := new(big.Int).Sub(new(big.Int).Neg(bx), big.NewInt(1))
	if y.String() != by.String() {
		t.Fatalf("-x-1 mismatch")
	}
}

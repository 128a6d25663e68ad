package bignum

import "testing"

// requireCanonical fails the test when x breaks a representation invariant.
func requireCanonical(t *testing.T, x BigInt) {
	t.Helper()
	if len(x.digits) == 0 {
		t.Fatalf("empty magnitude in %#v", x)
	}
	for i, d := range x.digits {
		if d > 9 {
			t.Fatalf("digit %d out of range in %v: %d", i, x.digits, d)
		}
	}
	if len(x.digits) > 1 && x.digits[len(x.digits)-1] == 0 {
		t.Fatalf("high-order zero digit in %v", x.digits)
	}
	if x.neg && x.IsZero() {
		t.Fatalf("negative zero")
	}
}

func mustParse(t *testing.T, s string) BigInt {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	requireCanonical(t, v)
	return v
}

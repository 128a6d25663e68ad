package bignum

// String renders x as ['-'] digit+. Zero renders as "0".
func (x BigInt) String() string {
	return string(x.Append(nil))
}

// Append appends the decimal form of x to dst.
func (x BigInt) Append(dst []byte) []byte {
	m := x.mag()
	if x.neg && x.IsNonZero() {
		dst = append(dst, '-')
	}
	for i := len(m) - 1; i >= 0; i-- {
		dst = append(dst, '0'+m[i])
	}
	return dst
}

// MarshalText implements encoding.TextMarshaler.
func (x BigInt) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigInt) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

package bignum

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every error returned from Parse.
var ErrInvalidFormat = errors.New("invalid integer format")

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseEmpty ParseErrKind = iota + 1
	ParseNoDigits
	ParseBadChar
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseNoDigits:
		return "no digits"
	case ParseBadChar:
		return "bad character"
	default:
		return "invalid"
	}
}

// ParseError describes why a decimal string was rejected.
type ParseError struct {
	Input  string
	Offset int // byte offset of the offending character
	Kind   ParseErrKind
}

const maxQuotedInput = 32

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	in := e.Input
	if len(in) > maxQuotedInput {
		in = in[:maxQuotedInput] + "..."
	}
	if e.Kind == ParseBadChar && e.Offset < len(e.Input) {
		return fmt.Sprintf("%v: %q: %s %q at offset %d", ErrInvalidFormat, in, e.Kind, e.Input[e.Offset], e.Offset)
	}
	return fmt.Sprintf("%v: %q: %s", ErrInvalidFormat, in, e.Kind)
}

// Unwrap lets errors.Is match ErrInvalidFormat.
func (e *ParseError) Unwrap() error { return ErrInvalidFormat }

// Parse converts decimal text of the form ['-'] digit+ into a BigInt.
//
// Leading zeros are accepted and trimmed, and "-0" yields canonical zero.
// No whitespace, '+' sign or digit separators are accepted.
func Parse(s string) (BigInt, error) {
	if s == "" {
		return BigInt{}, &ParseError{Input: s, Kind: ParseEmpty}
	}
	body := s
	off := 0
	neg := false
	if s[0] == '-' {
		neg = true
		body = s[1:]
		off = 1
	}
	if body == "" {
		return BigInt{}, &ParseError{Input: s, Offset: off, Kind: ParseNoDigits}
	}
	digits := make([]uint8, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return BigInt{}, &ParseError{Input: s, Offset: off + i, Kind: ParseBadChar}
		}
		digits[len(body)-1-i] = c - '0'
	}
	out := BigInt{neg: neg, digits: digits}
	out.normalize()
	return out, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) BigInt {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

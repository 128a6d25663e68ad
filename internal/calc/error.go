package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks lexing and parsing failures.
	ErrSyntax = errors.New("syntax error")
	// ErrUndefined marks a read of an unset variable.
	ErrUndefined = errors.New("undefined variable")
	// ErrUnsupported marks operators numkit does not implement (/ and %).
	ErrUnsupported = errors.New("not supported")
	// ErrDomain marks operands outside an operator's domain, such as a
	// negative exponent.
	ErrDomain = errors.New("domain error")
)

// Error is a positioned evaluation failure.
type Error struct {
	Pos  int    // byte offset in the normalized input
	Msg  string // what went wrong, without the position
	Kind error  // one of the sentinels above
	Err  error  // underlying cause, e.g. from the store
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("at %d: %s: %v", e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("at %d: %s", e.Pos, e.Msg)
}

// Unwrap exposes both the sentinel kind and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	var out []error
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func errorf(pos int, kind error, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

package calc

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"numkit/internal/bignum"
)

// MaxResultDigits bounds the number of digits a power may produce. It is
// checked before multiplying; the digit-vector multiply is quadratic.
const MaxResultDigits = 20_000

// Result is the outcome of one statement.
type Result struct {
	Value bignum.BigInt
	// Assigned names the variable written by an assignment, or "".
	Assigned string
}

// Eval parses and evaluates one statement against env.
func Eval(env Env, src string) (Result, error) {
	n, err := Parse(src)
	if err != nil {
		return Result{}, err
	}
	return Exec(env, n)
}

// Exec evaluates an already parsed statement.
func Exec(env Env, n Node) (Result, error) {
	if a, ok := n.(*Assign); ok {
		v, err := eval(env, a.X)
		if err != nil {
			return Result{}, err
		}
		if err := env.Set(a.Name, v); err != nil {
			return Result{}, &Error{Pos: a.At, Kind: ErrDomain, Msg: fmt.Sprintf("assign %s", a.Name), Err: err}
		}
		return Result{Value: v, Assigned: a.Name}, nil
	}
	v, err := eval(env, n)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v}, nil
}

func eval(env Env, n Node) (bignum.BigInt, error) {
	switch n := n.(type) {
	case *Lit:
		return n.Value, nil
	case *Var:
		return lookup(env, n.At, n.Name)
	case *Unary:
		x, err := eval(env, n.X)
		if err != nil {
			return bignum.BigInt{}, err
		}
		if n.Op == Minus {
			return x.Neg(), nil
		}
		return x.Plus(), nil
	case *Binary:
		return evalBinary(env, n)
	case *Step:
		return evalStep(env, n)
	case *Call:
		x, err := eval(env, n.Arg)
		if err != nil {
			return bignum.BigInt{}, err
		}
		return builtin(n.Fn, x), nil
	case *Assign:
		return bignum.BigInt{}, errorf(n.At, ErrSyntax, "assignment is only allowed as a statement")
	}
	return bignum.BigInt{}, fmt.Errorf("calc: unknown node %T", n)
}

func lookup(env Env, pos int, name string) (bignum.BigInt, error) {
	v, ok, err := env.Get(name)
	if err != nil {
		return bignum.BigInt{}, &Error{Pos: pos, Kind: ErrUndefined, Msg: fmt.Sprintf("read %s", name), Err: err}
	}
	if !ok {
		return bignum.BigInt{}, errorf(pos, ErrUndefined, "undefined variable %q", name)
	}
	return v, nil
}

func evalBinary(env Env, n *Binary) (bignum.BigInt, error) {
	l, err := eval(env, n.L)
	if err != nil {
		return bignum.BigInt{}, err
	}
	r, err := eval(env, n.R)
	if err != nil {
		return bignum.BigInt{}, err
	}
	switch n.Op {
	case Plus:
		return bignum.Add(l, r), nil
	case Minus:
		return bignum.Sub(l, r), nil
	case Star:
		return bignum.Mul(l, r), nil
	case Caret:
		return power(n.At, l, r)
	case Lt:
		return truth(l.Less(r)), nil
	case Gt:
		return truth(l.Greater(r)), nil
	case LtEq:
		return truth(l.LessEq(r)), nil
	case GtEq:
		return truth(l.GreaterEq(r)), nil
	case EqEq:
		return truth(l.Equal(r)), nil
	case BangEq:
		return truth(l.NotEqual(r)), nil
	}
	return bignum.BigInt{}, errorf(n.At, ErrUnsupported, "operator %s is not supported", n.Op)
}

func power(pos int, base, exp bignum.BigInt) (bignum.BigInt, error) {
	if exp.Sign() < 0 {
		return bignum.BigInt{}, errorf(pos, ErrDomain, "negative exponent %s", exp)
	}
	e64, ok := exp.Int64()
	if !ok {
		return bignum.BigInt{}, errorf(pos, ErrDomain, "exponent %s does not fit in int64", exp)
	}
	e, err := safecast.Conv[uint64](e64)
	if err != nil {
		return bignum.BigInt{}, &Error{Pos: pos, Kind: ErrDomain, Msg: "exponent", Err: err}
	}
	// |base| <= 1 never grows.
	if (base.Len() > 1 || base.Digits()[0] > 1) && powerDigits(base, e) > MaxResultDigits {
		return bignum.BigInt{}, errorf(pos, ErrDomain, "result of %s^%d is too large", abbrev(base), e)
	}
	return bignum.Pow(base, e), nil
}

// powerDigits bounds the digit count of |base|^e from above using
// floor(e*log10|base|)+1. |base| must be at least 2.
func powerDigits(base bignum.BigInt, e uint64) float64 {
	d := base.Digits()
	k := min(len(d), 15)
	var lead float64
	for i := len(d) - 1; i >= len(d)-k; i-- {
		lead = lead*10 + float64(d[i])
	}
	if k < len(d) {
		lead++
	}
	return math.Floor(float64(e)*(float64(len(d)-k)+math.Log10(lead))) + 1
}

func evalStep(env Env, n *Step) (bignum.BigInt, error) {
	v, err := lookup(env, n.At, n.Name)
	if err != nil {
		return bignum.BigInt{}, err
	}
	var out bignum.BigInt
	switch {
	case n.Op == PlusPlus && n.Prefix:
		out = v.Inc()
	case n.Op == PlusPlus:
		out = v.PostInc()
	case n.Prefix:
		out = v.Dec()
	default:
		out = v.PostDec()
	}
	if err := env.Set(n.Name, v); err != nil {
		return bignum.BigInt{}, &Error{Pos: n.At, Kind: ErrDomain, Msg: fmt.Sprintf("assign %s", n.Name), Err: err}
	}
	return out, nil
}

func builtin(fn string, x bignum.BigInt) bignum.BigInt {
	switch fn {
	case "abs":
		return x.Abs()
	case "sign":
		if x.IsZero() {
			return bignum.Zero()
		}
		return bignum.FromInt64(int64(x.Sign()))
	default: // digits
		return bignum.FromInt64(int64(x.Len()))
	}
}

func truth(b bool) bignum.BigInt {
	if b {
		return bignum.One()
	}
	return bignum.Zero()
}

func abbrev(x bignum.BigInt) string {
	s := x.String()
	if len(s) > 20 {
		return s[:8] + "..." + s[len(s)-8:]
	}
	return s
}

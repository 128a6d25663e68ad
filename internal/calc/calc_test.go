package calc

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"numkit/internal/bignum"
)

func evalString(t *testing.T, env Env, src string) string {
	t.Helper()
	res, err := Eval(env, src)
	require.NoError(t, err, "eval %q", src)
	return res.Value.String()
}

func TestArithmetic(t *testing.T) {
	env := NewMapEnv()
	cases := []struct{ src, want string }{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"10 - 20", "-10"},
		{"2 ^ 10", "1024"},
		{"2 ^ 3 ^ 2", "512"},
		{"2 ** 4", "16"},
		{"-2 ^ 2", "4"},
		{"-(2 ^ 3)", "-8"},
		{"- -5", "5"},
		{"+7", "7"},
		{"0 ^ 0", "1"},
		{"99999999999999999999 + 1", "100000000000000000000"},
		{"123456789 * 987654321", "121932631112635269"},
		{"-0", "0"},
		{"007", "7"},
		{"abs(-42)", "42"},
		{"sign(-42)", "-1"},
		{"sign(0)", "0"},
		{"digits(10 ^ 30)", "31"},
		{"3 < 5", "1"},
		{"3 >= 5", "0"},
		{"5 == 5", "1"},
		{"5 != 5", "0"},
		{"-1 <= -1", "1"},
		{"1 + 1 > 1", "1"},
		{"１２ ＋ ３", "15"},
		{"2 × 3 − 10", "-4"},
		{"100000000000000000000 * -1 + 1", "-99999999999999999999"},
		{"(-3) * (-3) * (-3)", "-27"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, evalString(t, env, tc.src), "eval %q", tc.src)
	}
}

func TestAssignmentAndSteps(t *testing.T) {
	env := NewMapEnv()
	res, err := Eval(env, "x = 41")
	require.NoError(t, err)
	require.Equal(t, "x", res.Assigned)

	require.Equal(t, "41", evalString(t, env, "x++"))
	require.Equal(t, "42", evalString(t, env, "x"))
	require.Equal(t, "43", evalString(t, env, "++x"))
	require.Equal(t, "43", evalString(t, env, "x--"))
	require.Equal(t, "41", evalString(t, env, "--x"))
	require.Equal(t, "-40", evalString(t, env, "-x++ + 1"))
	require.Equal(t, "42", evalString(t, env, "x"))

	require.Equal(t, "0", evalString(t, env, "y = -1 + 1"))
	require.Equal(t, "-1", evalString(t, env, "--y"))
	require.Equal(t, "0", evalString(t, env, "++y"))
	require.Equal(t, []string{"x", "y"}, env.Names())
}

func TestErrors(t *testing.T) {
	env := NewMapEnv()
	cases := []struct {
		src  string
		kind error
		pos  int
	}{
		{"7 / 2", ErrUnsupported, 2},
		{"7 % 2", ErrUnsupported, 2},
		{"1 +", ErrSyntax, 3},
		{"(1 + 2", ErrSyntax, 0},
		{"1 + 2)", ErrSyntax, 5},
		{"1 2", ErrSyntax, 2},
		{"1 # 2", ErrSyntax, 2},
		{"undefined + 1", ErrUndefined, 0},
		{"5++", ErrSyntax, 1},
		{"++5", ErrSyntax, 0},
		{"2 ^ -1", ErrDomain, 2},
		{"2 ^ 100000000000000000000", ErrDomain, 2},
		{"10 ^ 200000", ErrDomain, 3},
		{"10 ^ 20000", ErrDomain, 3},
		{"2 ^ 66500", ErrDomain, 2},
		{"foo(1)", ErrSyntax, 0},
		{"abs", ErrSyntax, 0},
		{"abs = 1", ErrSyntax, 0},
		{"1 < 2 < 3", ErrSyntax, 6},
		{"", ErrSyntax, 0},
	}
	for _, tc := range cases {
		_, err := Eval(env, tc.src)
		require.Error(t, err, "eval %q", tc.src)
		require.ErrorIs(t, err, tc.kind, "eval %q: %v", tc.src, err)
		var cerr *Error
		require.True(t, errors.As(err, &cerr), "eval %q: %T", tc.src, err)
		require.Equal(t, tc.pos, cerr.Pos, "eval %q: %v", tc.src, err)
	}
}

func TestPowerDigitsBound(t *testing.T) {
	for _, tc := range []struct {
		base string
		e    uint64
	}{
		{"2", 1}, {"2", 64}, {"9", 100}, {"10", 7}, {"99", 3}, {"-7", 31},
		{"123456789012345678901234567890", 4}, {"999999999999999999", 5},
	} {
		b := bignum.MustParse(tc.base)
		got := bignum.Pow(b, tc.e).Abs().Len()
		require.GreaterOrEqual(t, powerDigits(b, tc.e), float64(got), "%s^%d", tc.base, tc.e)
		require.LessOrEqual(t, powerDigits(b, tc.e), float64(got+1), "%s^%d", tc.base, tc.e)
	}
	require.Equal(t, float64(MaxResultDigits+1), powerDigits(bignum.FromInt64(10), MaxResultDigits))
}

func TestLargePowerWithinLimit(t *testing.T) {
	v := evalString(t, NewMapEnv(), "10 ^ 5000")
	require.Len(t, v, 5001)
	require.True(t, strings.HasPrefix(v, "1"))
	require.Equal(t, "20000", evalString(t, NewMapEnv(), "digits(10 ^ 19999)"))
	require.Equal(t, "1", evalString(t, NewMapEnv(), "1 ^ 9223372036854775807"))
	require.Equal(t, "-1", evalString(t, NewMapEnv(), "(-1) ^ 9223372036854775807"))
}

type failingEnv struct{ err error }

func (f failingEnv) Get(string) (bignum.BigInt, bool, error) { return bignum.BigInt{}, false, f.err }
func (f failingEnv) Set(string, bignum.BigInt) error        { return f.err }

func TestEnvErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk on fire")
	env := failingEnv{err: boom}

	_, err := Eval(env, "x + 1")
	require.ErrorIs(t, err, boom)

	_, err = Eval(env, "x = 1")
	require.ErrorIs(t, err, boom)
}

func TestMapEnvConcurrent(t *testing.T) {
	env := NewMapEnv()
	errs := make([]error, 8)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			_, errs[i] = Eval(env, name+" = 2 ^ 64")
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, env.Names(), 8)
}

func TestLex(t *testing.T) {
	toks, err := Lex("x1 = ++y<=3")
	require.NoError(t, err)
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []Kind{Ident, Equals, PlusPlus, Ident, LtEq, Int, EOF}, kinds)
	require.Equal(t, "x1", toks[0].Text)
	require.Equal(t, 10, toks[5].Pos)
}

func TestPretty(t *testing.T) {
	var b strings.Builder
	_, err := Eval(NewMapEnv(), "x + 7 / 2")
	Pretty(&b, "x + 7 / 2", err)
	require.Equal(t, "  x + 7 / 2\n        ^ operator '/' is not supported\n", b.String())

	b.Reset()
	Pretty(&b, "1", errors.New("plain"))
	require.Empty(t, b.String())
}

func TestIsBuiltin(t *testing.T) {
	for _, name := range []string{"abs", "sign", "digits"} {
		require.True(t, IsBuiltin(name), name)
	}
	require.False(t, IsBuiltin("x"))
	require.False(t, IsBuiltin("Abs"))
}

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"numkit/internal/bignum"
	"numkit/internal/calc"
)

var _ calc.Env = (*Store)(nil)

func openTest(t *testing.T, opts Options) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutLoad(t *testing.T) {
	fixed := time.Unix(1_700_000_000, 0)
	s := openTest(t, Options{Now: func() time.Time { return fixed }})

	big := bignum.MustParse("-123456789012345678901234567890")
	require.NoError(t, s.Put("x", big))

	got, err := s.Load("x")
	require.NoError(t, err)
	require.True(t, got.Equal(big), "got %s", got)

	e, err := s.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, fixed, e.Updated)
	require.Equal(t, "x", e.Name)

	_, err = s.Load("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEnvInterface(t *testing.T) {
	s := openTest(t, Options{})

	_, ok, err := s.Get("n")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = calc.Eval(s, "n = 2 ^ 100")
	require.NoError(t, err)
	res, err := calc.Eval(s, "n++")
	require.NoError(t, err)
	require.Equal(t, "1267650600228229401496703205376", res.Value.String())

	v, err := s.Load("n")
	require.NoError(t, err)
	require.Equal(t, "1267650600228229401496703205377", v.String())
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, Options{CacheSize: 1})
	require.NoError(t, err)
	require.NoError(t, s.Put("a", bignum.FromInt64(1)))
	require.NoError(t, s.Put("b", bignum.FromInt64(2)))
	require.NoError(t, s.Close())

	s, err = Open(dir, Options{})
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", v.String())
}

func TestDeleteAndList(t *testing.T) {
	s := openTest(t, Options{})
	for _, name := range []string{"zeta", "alpha", "_tmp", "mid1"} {
		require.NoError(t, s.Put(name, bignum.One()))
	}
	names, err := s.List()
	require.NoError(t, err)
	require.Equal(t, []string{"_tmp", "alpha", "mid1", "zeta"}, names)

	require.NoError(t, s.Delete("alpha"))
	require.ErrorIs(t, s.Delete("alpha"), ErrNotFound)
	_, ok, err := s.Get("alpha")
	require.NoError(t, err)
	require.False(t, ok)

	names, err = s.List()
	require.NoError(t, err)
	require.Equal(t, []string{"_tmp", "mid1", "zeta"}, names)
}

func TestEmptyList(t *testing.T) {
	names, err := openTest(t, Options{}).List()
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestInvalidNames(t *testing.T) {
	s := openTest(t, Options{})
	for _, name := range []string{"", "1x", "a-b", "x y", "é", "abs", "digits"} {
		require.ErrorIs(t, s.Put(name, bignum.One()), ErrInvalidName, "name %q", name)
		_, _, err := s.Get(name)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestClosed(t *testing.T) {
	s, err := Open(t.TempDir(), Options{})
	require.NoError(t, err)
	require.NoError(t, s.Put("x", bignum.One()))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Load("x")
	require.ErrorIs(t, err, ErrClosed)
	_, _, err = s.Get("x")
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Put("x", bignum.One()), ErrClosed)
	require.ErrorIs(t, s.Delete("x"), ErrClosed)
	_, err = s.List()
	require.True(t, errors.Is(err, ErrClosed))
}

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("var0"), prefixEnd([]byte("var/")))
	require.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	require.Nil(t, prefixEnd([]byte{0xff}))
}

// Package store persists named BigInt variables in a pebble database.
package store

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"

	"numkit/internal/bignum"
	"numkit/internal/calc"
)

var (
	ErrClosed      = errors.New("store: closed")
	ErrNotFound    = errors.New("store: variable not found")
	ErrInvalidName = errors.New("store: invalid variable name")
)

// recordSchema is bumped whenever record changes shape.
const recordSchema uint16 = 1

const (
	keyPrefix        = "var/"
	defaultCacheSize = 256
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type record struct {
	Schema  uint16        `msgpack:"schema"`
	Value   bignum.BigInt `msgpack:"value"`
	Updated int64         `msgpack:"updated"` // unix seconds
}

// Options configures Open.
type Options struct {
	CacheSize int              // decoded values kept in memory; 0 means 256
	Now       func() time.Time // clock for Updated stamps; nil means time.Now
}

// Entry is a stored variable with its metadata.
type Entry struct {
	Name    string
	Value   bignum.BigInt
	Updated time.Time
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	db     *pebble.DB
	cache  *lru.Cache[string, bignum.BigInt]
	now    func() time.Time
	closed bool
}

// Open opens or creates the database directory at path.
func Open(path string, opts Options) (*Store, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, bignum.BigInt](size)
	if err != nil {
		return nil, err
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, cache: cache, now: now}, nil
}

// ValidName reports whether name can be stored. Builtin function names
// are rejected since expressions could never read them back.
func ValidName(name string) bool {
	return namePattern.MatchString(name) && !calc.IsBuiltin(name)
}

func key(name string) []byte { return []byte(keyPrefix + name) }

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Load returns the value of name or ErrNotFound.
func (s *Store) Load(name string) (bignum.BigInt, error) {
	e, err := s.Lookup(name)
	return e.Value, err
}

// Lookup returns the full entry for name. It always reads through to the
// database so Updated is accurate.
func (s *Store) Lookup(name string) (Entry, error) {
	if err := checkName(name); err != nil {
		return Entry{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Entry{}, ErrClosed
	}
	rec, err := s.read(name)
	if err != nil {
		return Entry{}, err
	}
	s.cache.Add(name, rec.Value)
	return Entry{Name: name, Value: rec.Value, Updated: time.Unix(rec.Updated, 0)}, nil
}

// read must be called with s.mu held.
func (s *Store) read(name string) (record, error) {
	raw, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return record{}, err
	}
	defer closer.Close()

	var rec record
	if err := msgpack.Unmarshal(raw, &rec); err != nil {
		return record{}, fmt.Errorf("decode %s: %w", name, err)
	}
	if rec.Schema != recordSchema {
		return record{}, fmt.Errorf("decode %s: unsupported schema %d", name, rec.Schema)
	}
	return rec, nil
}

// Get implements calc.Env. A missing variable is reported as ok == false.
func (s *Store) Get(name string) (bignum.BigInt, bool, error) {
	if err := checkName(name); err != nil {
		return bignum.BigInt{}, false, err
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return bignum.BigInt{}, false, ErrClosed
	}
	if v, ok := s.cache.Get(name); ok {
		s.mu.RUnlock()
		return v, true, nil
	}
	s.mu.RUnlock()

	v, err := s.Load(name)
	if errors.Is(err, ErrNotFound) {
		return bignum.BigInt{}, false, nil
	}
	if err != nil {
		return bignum.BigInt{}, false, err
	}
	return v, true, nil
}

// Set implements calc.Env.
func (s *Store) Set(name string, v bignum.BigInt) error { return s.Put(name, v) }

// Put writes name durably and refreshes the cache.
func (s *Store) Put(name string, v bignum.BigInt) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := msgpack.Marshal(&record{Schema: recordSchema, Value: v, Updated: s.now().Unix()})
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.db.Set(key(name), data, pebble.Sync); err != nil {
		return err
	}
	s.cache.Add(name, v)
	return nil
}

// Delete removes name. It returns ErrNotFound when name is not stored.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if _, err := s.read(name); err != nil {
		return err
	}
	if err := s.db.Delete(key(name), pebble.Sync); err != nil {
		return err
	}
	s.cache.Remove(name)
	return nil
}

// List returns all stored names in ascending order.
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd([]byte(keyPrefix)),
	})
	if err != nil {
		return nil, err
	}
	var names []string
	for ok := iter.First(); ok; ok = iter.Next() {
		names = append(names, string(iter.Key()[len(keyPrefix):]))
	}
	if err := iter.Error(); err != nil {
		iter.Close()
		return nil, err
	}
	return names, iter.Close()
}

// Close flushes and closes the database. Further calls return ErrClosed;
// closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.cache.Purge()
	return s.db.Close()
}

// prefixEnd returns the smallest key greater than every key with prefix p.
func prefixEnd(p []byte) []byte {
	end := append([]byte(nil), p...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

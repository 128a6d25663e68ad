package calc

import (
	"maps"
	"slices"
	"sync"

	"numkit/internal/bignum"
)

// Env resolves and stores variables.
type Env interface {
	// Get returns the value of name; ok is false when it is unset.
	Get(name string) (v bignum.BigInt, ok bool, err error)
	Set(name string, v bignum.BigInt) error
}

// MapEnv is an in-memory Env, safe for concurrent use.
type MapEnv struct {
	mu   sync.RWMutex
	vars map[string]bignum.BigInt
}

func NewMapEnv() *MapEnv {
	return &MapEnv{vars: make(map[string]bignum.BigInt)}
}

func (e *MapEnv) Get(name string) (bignum.BigInt, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]
	return v, ok, nil
}

func (e *MapEnv) Set(name string, v bignum.BigInt) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.vars == nil {
		e.vars = make(map[string]bignum.BigInt)
	}
	e.vars[name] = v
	return nil
}

// Names returns the defined variable names in sorted order.
func (e *MapEnv) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.vars))
}

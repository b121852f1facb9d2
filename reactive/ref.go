package reactive

import (
	"sync"

	"go.uber.org/atomic"
)

type (
	// Ref is a read-only reference whose value may change over time.
	Ref[T any] interface {
		Value() T
	}

	// Versioned is implemented by references that can report when their
	// value changed. Versions only ever increase.
	Versioned interface {
		Version() uint64
	}

	// Adapter decides whether a value is a reactive reference and unwraps it.
	Adapter interface {
		IsRef(v any) bool
		Unwrap(v any) any
	}
)

// unwrapper is the marker shared by every reference type in this package.
type unwrapper interface {
	unwrap() any
}

// Signal is a settable source value. It is safe for concurrent use.
type Signal[T any] struct {
	mu      sync.RWMutex
	v       T
	version uint64
}

// NewSignal returns a Signal holding v.
func NewSignal[T any](v T) *Signal[T] {
	return &Signal[T]{v: v, version: 1}
}

// Value returns the current value.
func (s *Signal[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set replaces the value and bumps the version.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	s.version++
	s.mu.Unlock()
}

// Version implements [Versioned].
func (s *Signal[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Signal[T]) unwrap() any { return s.Value() }

// Computed is a value derived from fn. It is recomputed lazily on read when
// any dependency reports a new version; without dependencies it is
// recomputed on every read.
type Computed[T any] struct {
	mu    sync.Mutex
	fn    func() T
	deps  []Versioned
	seen  []uint64
	v     T
	valid bool

	// untracked counts version reads of a Computed without dependencies.
	untracked atomic.Uint64
}

// NewComputed returns a Computed over fn, invalidated by deps.
func NewComputed[T any](fn func() T, deps ...Versioned) *Computed[T] {
	return &Computed[T]{
		fn:   fn,
		deps: deps,
		seen: make([]uint64, len(deps)),
	}
}

// Value returns the cached value, recomputing it first if stale.
func (c *Computed[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && len(c.deps) > 0 && !c.stale() {
		return c.v
	}
	for i, d := range c.deps {
		c.seen[i] = d.Version()
	}
	c.v = c.fn()
	c.valid = true
	return c.v
}

// Version implements [Versioned] as the sum of the dependency versions, so
// a Computed can itself be a dependency. Without dependencies its value can
// change at any time, so every call reports a new version and dependents
// recompute on each read.
func (c *Computed[T]) Version() uint64 {
	if len(c.deps) == 0 {
		return c.untracked.Inc()
	}
	var v uint64
	for _, d := range c.deps {
		v += d.Version()
	}
	return v
}

func (c *Computed[T]) stale() bool {
	for i, d := range c.deps {
		if d.Version() != c.seen[i] {
			return true
		}
	}
	return false
}

func (c *Computed[T]) unwrap() any { return c.Value() }

// IsRef reports whether v is a reference created by this package.
func IsRef(v any) bool {
	_, ok := v.(unwrapper)
	return ok
}

// Unwrap returns the current value of v if it is a reference, otherwise v.
func Unwrap(v any) any {
	if u, ok := v.(unwrapper); ok {
		return u.unwrap()
	}
	return v
}

// Default recognises the references of this package.
var Default Adapter = defaultAdapter{}

// Identity treats nothing as a reference.
var Identity Adapter = identityAdapter{}

type defaultAdapter struct{}

func (defaultAdapter) IsRef(v any) bool { return IsRef(v) }
func (defaultAdapter) Unwrap(v any) any { return Unwrap(v) }

type identityAdapter struct{}

func (identityAdapter) IsRef(any) bool { return false }
func (identityAdapter) Unwrap(v any) any { return v }

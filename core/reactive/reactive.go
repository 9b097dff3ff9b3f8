// Package reactive provides settable cells and derived values with
// explicit dependency declaration. Writes bump a version counter and
// reads recompute a derived value at most once per change of any of its
// inputs, so every read observes a state fully consistent with the
// latest writes. Propagation is synchronous; there is no scheduler.
package reactive

import "sync"

// Source is anything a Derived value may depend on: a Cell or another
// Derived.
type Source interface {
	// Version increases monotonically whenever the value changes.
	// For a Derived it first brings the cached value up to date.
	Version() uint64
}

// Cell holds a settable value of type T.
type Cell[T any] struct {
	mu  sync.Mutex
	val T
	ver uint64
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{val: initial, ver: 1}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

// Set replaces the whole value atomically: dependents observe either
// the previous value or the new one, never anything in between, and a
// single Set causes at most one recomputation of each dependent.
func (c *Cell[T]) Set(val T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = val
	c.ver++
}

// Update applies fn to the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = fn(c.val)
	c.ver++
}

func (c *Cell[T]) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ver
}

// Derived is a value computed from one or more Sources. The compute
// function must be pure: it reads its declared inputs and returns the
// derived value, with no side effects.
type Derived[T any] struct {
	mu   sync.Mutex
	fn   func() T
	deps []Source
	seen []uint64
	val  T
	ver  uint64
}

// Derive declares a computed value. fn should read exactly the sources
// listed in deps; an undeclared input will not trigger recomputation.
func Derive[T any](fn func() T, deps ...Source) *Derived[T] {
	return &Derived[T]{fn: fn, deps: deps, seen: make([]uint64, len(deps))}
}

func (d *Derived[T]) Get() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refresh()
	return d.val
}

func (d *Derived[T]) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refresh()
	return d.ver
}

// refresh recomputes iff any input changed since the last computation.
// Callers must hold d.mu.
func (d *Derived[T]) refresh() {
	stale := d.ver == 0
	for i, dep := range d.deps {
		if v := dep.Version(); v != d.seen[i] {
			d.seen[i] = v
			stale = true
		}
	}
	if stale {
		d.val = d.fn()
		d.ver++
	}
}

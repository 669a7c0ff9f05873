package prop

import "github.com/propkit/prop/internal/reentrant"

// Option configures a Cell at construction. The four axes of a cell —
// getter shape, setter presence, synchronization — are fixed by the options
// passed to [New] (or [NewView]) and, except for one-shot deferred
// attachment, do not change afterwards.
type Option[T any] func(*Cell[T])

// WithGetter configures a value-returning getter: Get invokes it and
// returns its result. Inside the getter, reading the same cell yields the
// raw stored value.
func WithGetter[T any](getter func() T) Option[T] {
	return func(c *Cell[T]) {
		if getter == nil {
			panic("prop: nil getter")
		}
		if c.getter != nil || c.refGetter != nil {
			panic("prop: conflicting getter options")
		}
		c.getter = getter
	}
}

// WithRefGetter configures a reference-returning getter: Ref invokes it and
// returns its pointer, and Get dereferences that pointer. Inside the
// getter, Ref on the same cell yields a pointer to raw storage.
func WithRefGetter[T any](getter func() *T) Option[T] {
	return func(c *Cell[T]) {
		if getter == nil {
			panic("prop: nil getter")
		}
		if c.getter != nil || c.refGetter != nil {
			panic("prop: conflicting getter options")
		}
		c.refGetter = getter
	}
}

// WithSetter configures a setter: Set invokes it with the incoming value
// instead of storing, and the setter commits by calling Set again.
func WithSetter[T any](setter func(T)) Option[T] {
	return func(c *Cell[T]) {
		if setter == nil {
			panic("prop: nil setter")
		}
		if c.setter != nil {
			panic("prop: duplicate setter option")
		}
		c.setter = setter
	}
}

// Synchronized serializes all access to the cell with a per-cell reentrant
// lock, held for the full duration of every operation. Because the lock is
// reentrant, callbacks that call back into the same cell on the same
// goroutine do not deadlock.
//
// Without this option a cell provides no cross-goroutine guarantees at
// all; concurrent use is a data race the caller must prevent.
func Synchronized[T any]() Option[T] {
	return func(c *Cell[T]) {
		c.lock = &reentrant.Mutex{}
	}
}

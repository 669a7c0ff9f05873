package prop

import (
	"errors"
	"sync"
)

var (
	ErrGetterAttached = errors.New("prop: getter already attached")
	ErrSetterAttached = errors.New("prop: setter already attached")
)

// noCopy makes `go vet -copylocks` flag value copies of a Cell.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// nopLocker is the lock strategy of unsynchronized cells.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// Cell holds one value of type T and mediates every read and write through
// optional interception callbacks. A callback that reads or writes its own
// cell observes raw storage instead of re-entering itself; see the package
// documentation for the reentrancy model.
//
// Create cells with [New]. A Cell must not be copied: callbacks typically
// close over the owning object, and a shallow copy would keep them bound to
// the old owner. Owners implement copying themselves, rebuilding each cell
// from GetRaw with freshly bound callbacks.
type Cell[T any] struct {
	noCopy noCopy

	lock      sync.Locker
	value     T
	getter    func() T
	refGetter func() *T
	setter    func(T)

	// Reentrancy flags, one per direction. True only for the dynamic
	// extent of a call into the matching callback.
	getterActive bool
	setterActive bool
}

// New creates a cell storing initial. The initial value always lands in raw
// storage; a configured getter is consulted only on subsequent reads.
//
// Invalid option combinations (two getters, duplicate setters, a nil
// callback) panic: they are construction-time contract violations, not
// runtime conditions.
func New[T any](initial T, opts ...Option[T]) *Cell[T] {
	c := &Cell[T]{
		value: initial,
		lock:  nopLocker{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the externally visible value.
//
// With a getter configured, Get invokes it and returns its result; the
// getter may call Get (or Ref) on the same cell to observe the raw stored
// value without recursing. Without a getter, Get returns raw storage.
func (c *Cell[T]) Get() T {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.read()
}

// Set stores a new value.
//
// With a setter configured, Set hands newValue to it instead of storing;
// the setter commits whatever it decides to keep by calling Set again,
// which falls through to raw storage. Without a setter, Set stores
// directly.
func (c *Cell[T]) Set(newValue T) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.write(newValue)
}

// GetRaw returns the stored value, bypassing any getter. It still honors
// the cell's lock in synchronized mode.
//
// GetRaw is the read path for owner-side copy logic: a value-returning
// getter's output is generally not reversible back into a correct raw
// value, so clones must start from raw storage.
func (c *Cell[T]) GetRaw() T {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.value
}

// Ref returns a pointer to the value. With a reference-returning getter
// configured, the pointer comes from the getter (which may itself call Ref
// to reach raw storage); otherwise it points at raw storage directly.
//
// Ref panics on a cell configured with a value-returning getter: handing
// out a raw pointer there would silently bypass the interception contract.
// The pointer outlives the lock, so in synchronized mode it must not be
// used concurrently with other accessors.
func (c *Cell[T]) Ref() *T {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.getter != nil {
		panic("prop: Ref is not available on a cell with a value-returning getter; use Get or GetRaw")
	}
	if c.refGetter != nil && !c.getterActive {
		c.getterActive = true
		defer func() { c.getterActive = false }()
		return c.refGetter()
	}
	return &c.value
}

// Update applies op to the externally visible value and writes the result
// back, performing exactly one intercepted read and one intercepted write
// under a single lock hold. It returns the value it handed to the write
// path (a setter may still transform it before committing).
func (c *Cell[T]) Update(op func(T) T) T {
	c.lock.Lock()
	defer c.lock.Unlock()

	v := op(c.read())
	c.write(v)
	return v
}

// AttachGetter attaches a value-returning getter to a cell constructed
// without one. Attachment is a one-shot transition: if any getter is
// already present the call fails with ErrGetterAttached and the existing
// getter stays in place.
func (c *Cell[T]) AttachGetter(getter func() T) error {
	if getter == nil {
		panic("prop: nil getter")
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.getter != nil || c.refGetter != nil {
		return ErrGetterAttached
	}
	c.getter = getter
	logger.Debug("prop: value getter attached")
	return nil
}

// AttachRefGetter attaches a reference-returning getter to a cell
// constructed without one. Same one-shot contract as AttachGetter.
func (c *Cell[T]) AttachRefGetter(getter func() *T) error {
	if getter == nil {
		panic("prop: nil getter")
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.getter != nil || c.refGetter != nil {
		return ErrGetterAttached
	}
	c.refGetter = getter
	logger.Debug("prop: ref getter attached")
	return nil
}

// AttachSetter attaches a setter to a cell constructed without one. If a
// setter is already present the call fails with ErrSetterAttached.
func (c *Cell[T]) AttachSetter(setter func(T)) error {
	if setter == nil {
		panic("prop: nil setter")
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.setter != nil {
		return ErrSetterAttached
	}
	c.setter = setter
	logger.Debug("prop: setter attached")
	return nil
}

// View returns a read-only handle sharing this cell's storage and
// callbacks. Writes keep going through the cell; the view only narrows the
// surface handed to other code.
func (c *Cell[T]) View() *View[T] {
	return &View[T]{cell: c}
}

// read implements the anti-recursion read contract. Callers hold the lock.
func (c *Cell[T]) read() T {
	if !c.getterActive {
		if c.getter != nil {
			c.getterActive = true
			defer func() { c.getterActive = false }()
			return c.getter()
		}
		if c.refGetter != nil {
			c.getterActive = true
			defer func() { c.getterActive = false }()
			return *c.refGetter()
		}
	}
	return c.value
}

// write implements the anti-recursion write contract. Callers hold the
// lock.
func (c *Cell[T]) write(newValue T) {
	if c.setter != nil && !c.setterActive {
		c.setterActive = true
		defer func() { c.setterActive = false }()
		c.setter(newValue)
		return
	}
	c.value = newValue
}

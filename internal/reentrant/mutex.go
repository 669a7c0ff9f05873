// Package reentrant implements a mutual-exclusion lock that the holding
// goroutine may acquire again without deadlocking. It exists for serialized
// accessor cells, whose interception callbacks legitimately call back into
// the locked cell on the same goroutine.
package reentrant

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

var _ sync.Locker = (*Mutex)(nil)

// Mutex is a reentrant mutual-exclusion lock. The zero value is unlocked.
//
// A goroutine that already holds the lock may call Lock again; the lock is
// released when Unlock has been called once per Lock. Unlike sync.Mutex,
// Lock and Unlock must be paired on the same goroutine.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	mu    sync.Mutex
	owner atomic.Uint64 // goroutine id of the holder, 0 when free
	depth int           // nesting depth, guarded by mu ownership
}

// Lock acquires the mutex, blocking until it is free unless the calling
// goroutine already holds it, in which case it only increases the nesting
// depth.
func (m *Mutex) Lock() {
	id := goid()
	if m.owner.Load() == id {
		m.depth++
		return
	}

	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

// Unlock releases one level of nesting; the mutex becomes free when the
// depth reaches zero. It panics when called by a goroutine that does not
// hold the lock.
func (m *Mutex) Unlock() {
	if m.owner.Load() != goid() {
		panic("reentrant: Unlock of a mutex held by another goroutine (or not held at all)")
	}

	m.depth--
	if m.depth > 0 {
		return
	}

	m.owner.Store(0)
	m.mu.Unlock()
}

// goid extracts the current goroutine id from the runtime stack header.
// The runtime does not expose goroutine ids; parsing the stack header is
// the usual workaround.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// "goroutine 123 [running]:\n"
	var id uint64
	_, _ = fmt.Sscanf(string(buf[:n]), "goroutine %d ", &id)
	return id
}

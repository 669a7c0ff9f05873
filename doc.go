// Package prop provides a generic accessor cell: a wrapper around a single
// value that lets code read and write it through a uniform interface, while
// the wrapper's owner may intercept every read and every write with custom
// callbacks.
//
// The core idea is:
//   - Declare a [Cell] holding an initial value, optionally configured with
//     a getter ([WithGetter] or [WithRefGetter]), a setter ([WithSetter]),
//     and serialized cross-goroutine access ([Synchronized]).
//   - Read through Cell.Get, write through Cell.Set. When callbacks are
//     configured they run in place of the raw access.
//   - Inside a callback, reading or writing the same cell falls through to
//     raw storage instead of re-entering the callback. A setter commits its
//     (possibly transformed) value by calling Set again; a getter may read
//     "the value before my transformation" by calling Get again.
//
// Reentrancy model:
//   - Each cell keeps one active flag per direction. The flag is set for
//     the dynamic extent of the callback and cleared on every exit path,
//     including a panicking callback, so a failed callback never wedges the
//     cell.
//   - In [Synchronized] mode every operation holds a per-cell reentrant
//     lock for its full duration. Callbacks that call back into the same
//     cell re-enter the lock on the same goroutine and do not deadlock.
//
// Cells are not copyable. Callbacks usually close over the owning object,
// so a shallow copy would leave them bound to the wrong owner; an owner
// that wants copy semantics must rebuild its cells with freshly bound
// callbacks, reading the values to carry over with Cell.GetRaw. See
// examples/person for the canonical pattern.
package prop

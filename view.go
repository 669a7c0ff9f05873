package prop

// Reader is the read-only surface shared by [Cell] and [View]. Comparison
// helpers accept any Reader.
type Reader[T any] interface {
	Get() T
	GetRaw() T
}

var (
	_ Reader[int] = (*Cell[int])(nil)
	_ Reader[int] = (*View[int])(nil)
)

// View is a read-only handle on a cell: it exposes no write operation, so
// writing through a View is a compile error rather than a runtime check.
//
// A View is either a window onto a cell the owner keeps private
// (Cell.View), or a standalone immutable cell built with [NewView].
type View[T any] struct {
	cell *Cell[T]
}

// NewView creates a standalone read-only cell. Only read-axis options make
// sense here: passing WithSetter panics, since no write operation could
// ever reach the setter.
func NewView[T any](initial T, opts ...Option[T]) *View[T] {
	c := New(initial, opts...)
	if c.setter != nil {
		panic("prop: a read-only view cannot carry a setter")
	}
	return &View[T]{cell: c}
}

// Get returns the externally visible value, through the getter if one is
// configured.
func (v *View[T]) Get() T {
	return v.cell.Get()
}

// GetRaw returns the stored value, bypassing any getter.
func (v *View[T]) GetRaw() T {
	return v.cell.GetRaw()
}

package prop

import "cmp"

// Go has no operator overloading, so the compound-assignment and comparison
// sugar of property types in other languages becomes plain generic
// functions here. Every mutating helper goes through Cell.Update: one
// intercepted read, one intercepted write, a single lock hold.

// Integer enumerates the built-in integer types and their derivatives.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number additionally admits the floating-point types.
type Number interface {
	Integer | ~float32 | ~float64
}

// Add adds delta to the cell's value and returns the result it wrote.
func Add[T Number](c *Cell[T], delta T) T {
	return c.Update(func(v T) T { return v + delta })
}

// Sub subtracts delta from the cell's value.
func Sub[T Number](c *Cell[T], delta T) T {
	return c.Update(func(v T) T { return v - delta })
}

// Mul multiplies the cell's value by factor.
func Mul[T Number](c *Cell[T], factor T) T {
	return c.Update(func(v T) T { return v * factor })
}

// Div divides the cell's value by divisor.
func Div[T Number](c *Cell[T], divisor T) T {
	return c.Update(func(v T) T { return v / divisor })
}

// Mod replaces the cell's value with its remainder modulo divisor.
func Mod[T Integer](c *Cell[T], divisor T) T {
	return c.Update(func(v T) T { return v % divisor })
}

// And applies a bitwise AND with mask.
func And[T Integer](c *Cell[T], mask T) T {
	return c.Update(func(v T) T { return v & mask })
}

// Or applies a bitwise OR with mask.
func Or[T Integer](c *Cell[T], mask T) T {
	return c.Update(func(v T) T { return v | mask })
}

// Xor applies a bitwise XOR with mask.
func Xor[T Integer](c *Cell[T], mask T) T {
	return c.Update(func(v T) T { return v ^ mask })
}

// Shl shifts the cell's value left by n bits.
func Shl[T Integer](c *Cell[T], n uint) T {
	return c.Update(func(v T) T { return v << n })
}

// Shr shifts the cell's value right by n bits.
func Shr[T Integer](c *Cell[T], n uint) T {
	return c.Update(func(v T) T { return v >> n })
}

// Inc increments the cell's value by one.
func Inc[T Number](c *Cell[T]) T {
	return Add(c, 1)
}

// Dec decrements the cell's value by one.
func Dec[T Number](c *Cell[T]) T {
	return Sub(c, 1)
}

// Equal reports whether the externally visible value equals v. Like all
// comparisons it routes through Get, so a getter's transformation is what
// gets compared.
func Equal[T comparable](r Reader[T], v T) bool {
	return r.Get() == v
}

// NotEqual reports whether the externally visible value differs from v.
func NotEqual[T comparable](r Reader[T], v T) bool {
	return r.Get() != v
}

// Less reports whether the externally visible value is ordered before v.
func Less[T cmp.Ordered](r Reader[T], v T) bool {
	return r.Get() < v
}

// LessOrEqual reports whether the externally visible value is ordered
// before or equal to v.
func LessOrEqual[T cmp.Ordered](r Reader[T], v T) bool {
	return r.Get() <= v
}

// Greater reports whether the externally visible value is ordered after v.
func Greater[T cmp.Ordered](r Reader[T], v T) bool {
	return r.Get() > v
}

// GreaterOrEqual reports whether the externally visible value is ordered
// after or equal to v.
func GreaterOrEqual[T cmp.Ordered](r Reader[T], v T) bool {
	return r.Get() >= v
}

package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticHelpers(t *testing.T) {
	c := New(10)

	require.Equal(t, 15, Add(c, 5))
	require.Equal(t, 12, Sub(c, 3))
	require.Equal(t, 24, Mul(c, 2))
	require.Equal(t, 8, Div(c, 3))
	require.Equal(t, 2, Mod(c, 3))
	require.Equal(t, 2, c.Get())
}

func TestBitwiseHelpers(t *testing.T) {
	c := New(uint8(0b1010))

	require.Equal(t, uint8(0b1000), And(c, 0b1100))
	require.Equal(t, uint8(0b1001), Or(c, 0b0001))
	require.Equal(t, uint8(0b0110), Xor(c, 0b1111))
	require.Equal(t, uint8(0b1100), Shl(c, 1))
	require.Equal(t, uint8(0b0011), Shr(c, 2))
}

func TestIncDec(t *testing.T) {
	c := New(0)

	require.Equal(t, 1, Inc(c))
	require.Equal(t, 2, Inc(c))
	require.Equal(t, 1, Dec(c))
	require.Equal(t, 1, c.GetRaw())
}

func TestFloatHelpers(t *testing.T) {
	c := New(1.5)

	require.InDelta(t, 4.5, Mul(c, 3), 1e-9)
	require.InDelta(t, 2.25, Div(c, 2), 1e-9)
}

func TestCompoundOpsRespectSetter(t *testing.T) {
	var c *Cell[int]
	c = New(100, WithSetter(func(v int) {
		c.Set(min(v, 150))
	}))

	// The helper's result is what it wrote; the setter may clamp further.
	require.Equal(t, 200, Add(c, 100))
	require.Equal(t, 150, c.GetRaw())
}

func TestComparisonsRouteThroughGetter(t *testing.T) {
	var c *Cell[int]
	c = New(21, WithGetter(func() int {
		return c.Get() * 2
	}))

	assert.True(t, Equal[int](c, 42))
	assert.True(t, NotEqual[int](c, 21))
	assert.True(t, Less[int](c, 100))
	assert.True(t, LessOrEqual[int](c, 42))
	assert.True(t, Greater[int](c, 41))
	assert.True(t, GreaterOrEqual[int](c, 42))
	assert.False(t, Greater[int](c, 42))
}

func TestComparisonsAcceptViews(t *testing.T) {
	v := NewView("beta")

	assert.True(t, Equal[string](v, "beta"))
	assert.True(t, Less[string](v, "gamma"))
	assert.True(t, Greater[string](v, "alpha"))
}

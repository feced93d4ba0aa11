package bitgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	assert.True(t, New().IsEmpty())
	assert.False(t, New().Set(0).IsEmpty())
	assert.False(t, New().Not().IsEmpty())
}

func TestSetGet(t *testing.T) {
	for _, i := range []int{0, 1, 31, 32, 33, 100, 1000, 1 << 20} {
		b := New()

		b.Set(i)
		assert.True(t, b.Test(i), "bit %d after Set", i)
		assert.Equal(t, uint32(1), b.Get(i))

		b.Unset(i)
		assert.False(t, b.Test(i), "bit %d after Unset", i)
	}
}

func TestGetBeyondStorage(t *testing.T) {
	b := New().Set(3)

	assert.Equal(t, uint32(0), b.Get(1000))
	assert.Equal(t, uint32(1), b.Not().Get(1000))

	// Reads never grow storage.
	assert.Equal(t, 3, b.MSB())
}

func TestNegativeIndexes(t *testing.T) {
	b := New().Set(-1).Flip(-3).SetTo(-5, true)

	assert.True(t, b.IsEmpty())
	assert.Equal(t, uint32(0), b.Get(-1))
}

func TestSetTo(t *testing.T) {
	b := New().SetTo(4, true)
	assert.True(t, b.Test(4))

	b.SetTo(4, false)
	assert.False(t, b.Test(4))
}

func TestSetRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected string
	}{
		{"SingleWord", 2, 5, "111100"},
		{"FullWord", 0, 31, "11111111111111111111111111111111"},
		{"CrossWord", 30, 33, "1111000000000000000000000000000000"},
		{"SingleBit", 7, 7, "10000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().SetRange(tt.from, tt.to, true)
			assert.Equal(t, tt.expected, b.String())
			assert.Equal(t, tt.to-tt.from+1, b.Cardinality())
		})
	}
}

func TestSetRangeNoop(t *testing.T) {
	assert.True(t, New().SetRange(5, 2, true).IsEmpty())
	assert.True(t, New().SetRange(-1, 4, true).IsEmpty())
}

func TestClearRange(t *testing.T) {
	b := New().SetRange(0, 63, true).ClearRange(10, 53)

	assert.Equal(t, 20, b.Cardinality())
	assert.True(t, b.Test(9))
	assert.False(t, b.Test(10))
	assert.False(t, b.Test(53))
	assert.True(t, b.Test(54))
}

func TestFlip(t *testing.T) {
	b := New().Flip(3)
	assert.True(t, b.Test(3))

	b.Flip(3)
	assert.False(t, b.Test(3))
}

func TestFlipRange(t *testing.T) {
	b, err := FromString("0b101")
	require.NoError(t, err)

	b.FlipRange(0, 2)
	assert.Equal(t, "10", b.String())

	// Invalid ranges touch nothing.
	b.FlipRange(4, 1)
	b.FlipRange(-2, 5)
	assert.Equal(t, "10", b.String())
}

func TestFlipAll(t *testing.T) {
	b := FromUint32(5).FlipAll()

	assert.False(t, b.Test(0))
	assert.True(t, b.Test(1))
	assert.True(t, b.Test(100), "implicit tail is all ones")
	assert.Equal(t, Inf, b.Cardinality())

	b.FlipAll()
	assert.True(t, b.Equal(FromUint32(5)))
}

func TestClearAll(t *testing.T) {
	b := New().SetRange(0, 100, true).Not()
	require.Equal(t, Inf, b.Cardinality())

	b.ClearAll()
	assert.True(t, b.IsEmpty())
	assert.False(t, b.Test(1000))
}

func TestEqual(t *testing.T) {
	a := New().Set(1)
	b := New().Set(1).Set(100).Unset(100) // same bits, longer storage

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(New()))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(a.Not()), "indefinite vs finite differ")
	assert.True(t, a.Not().Equal(a.Not()))
}

func TestClone(t *testing.T) {
	a := New().Set(3).Set(40)
	c := a.Clone()
	require.True(t, a.Equal(c))

	c.Set(7)
	assert.False(t, a.Test(7), "clone must not alias storage")
}

func TestChaining(t *testing.T) {
	b := New().Set(0).Set(2).Flip(4).SetRange(8, 11, true).Unset(9)
	assert.Equal(t, []int{0, 2, 4, 8, 10, 11}, b.ToArray())
}

func TestRandom(t *testing.T) {
	a := Random(1000, 42)
	b := Random(1000, 42)
	assert.True(t, a.Equal(b), "same seed, same set")

	c := Random(1000, 7)
	assert.False(t, a.Equal(c))

	assert.Less(t, a.MSB(), 1000)
	assert.True(t, Random(0, 42).IsEmpty())
}

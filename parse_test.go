package bitgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"BinaryPrefixed", "0b1010", "1010"},
		{"BinaryBare", "1010", "1010"},
		{"BinaryLeadingZeros", "0b0001010", "1010"},
		{"HexSmall", "0xff", "11111111"},
		{"HexMultiWord", "0x1ffffffff", "111111111111111111111111111111111"},
		{"Zero", "0b0", "0"},
		{"Empty", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestFromStringMultiWordHex(t *testing.T) {
	b, err := FromString("0x1ffffffff")
	require.NoError(t, err)

	assert.Equal(t, 32, b.MSB())
	assert.Equal(t, 33, b.Cardinality())
}

func TestFromStringSyntaxErrors(t *testing.T) {
	for _, input := range []string{"0b102", "0xfg", "abc", "0b 1", "0x12345678Z"} {
		_, err := FromString(input)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", input)
	}
}

func TestFromIndexes(t *testing.T) {
	b, err := FromIndexes([]int{0, 2, 4})
	require.NoError(t, err)

	assert.Equal(t, "10101", b.String())
	assert.Equal(t, []int{0, 2, 4}, b.ToArray())
}

func TestFromIndexesDeduplicates(t *testing.T) {
	b, err := FromIndexes([]int{3, 1, 3, 3, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, b.ToArray())
	assert.Equal(t, 2, b.Cardinality())
}

func TestFromIndexesIndefinite(t *testing.T) {
	b, err := FromIndexes([]int{Inf})
	require.NoError(t, err)

	assert.Equal(t, Inf, b.Cardinality())
	assert.Equal(t, uint32(1), b.Get(1000))
	assert.Equal(t, []int{Inf}, b.ToArray())

	// Finite entries keep their exact positions next to the tail.
	b, err = FromIndexes([]int{5, Inf})
	require.NoError(t, err)
	assert.True(t, b.Test(5))
	assert.False(t, b.Test(4))
	assert.True(t, b.Test(1<<40))
}

func TestFromIndexesNegative(t *testing.T) {
	_, err := FromIndexes([]int{1, -4, 2})
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestFromBytes(t *testing.T) {
	assert.True(t, FromBytes(nil).IsEmpty())
	assert.Equal(t, []int{0, 15}, FromBytes([]byte{0x01, 0x80}).ToArray())
	assert.Equal(t, 8, FromBytes([]byte{0xff}).Cardinality())
	assert.Equal(t, []int{32}, FromBytes([]byte{0, 0, 0, 0, 1}).ToArray())
}

func TestFromUint32(t *testing.T) {
	assert.Equal(t, "101", FromUint32(5).String())
	assert.Equal(t, 31, FromUint32(1<<31).MSB())
	assert.True(t, FromUint32(0).IsEmpty())
}

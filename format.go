package bitgo

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/hupe1980/bitgo/internal/word"
)

// indefiniteMarker prefixes string renderings of sets whose high bits are
// implicitly all ones.
const indefiniteMarker = "...1111"

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ToArray returns the indexes of all set bits in ascending order. For an
// indefinite set the stored words are listed and Inf is appended to stand in
// for the unbounded tail.
func (b *BitSet) ToArray() []int {
	out := make([]int, 0, word.PopCount(b.words)+1)
	for i, w := range b.words {
		for w != 0 {
			out = append(out, i*wordBits+bits.TrailingZeros32(w))
			w &= w - 1
		}
	}
	if b.indefinite {
		out = append(out, Inf)
	}
	return out
}

// ToString renders the set as a digit string in the given base, most
// significant digit first. Power-of-two bases (2, 4, 8, 16, 32) read digits
// straight off the bit vector. Any other base in [2,36] goes through repeated
// long division, which has no terminating form for an indefinite set and
// fails with ErrIndefinite.
func (b *BitSet) ToString(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("%w: %d", ErrBase, base)
	}
	if base&(base-1) == 0 {
		return b.formatPow2(bits.TrailingZeros(uint(base))), nil
	}
	if b.indefinite {
		return "", fmt.Errorf("%w: base-%d rendering needs a finite magnitude", ErrIndefinite, base)
	}
	return b.formatDivision(uint64(base)), nil
}

// String renders the set in base 2.
func (b *BitSet) String() string {
	s, _ := b.ToString(2)
	return s
}

// formatPow2 renders digits of k bits each, taken from the global bit vector
// so digit boundaries stay correct even when k does not divide the word
// width (bases 8 and 32). Finite sets are trimmed of leading zeros;
// indefinite sets render all stored words behind the truncation marker.
func (b *BitSet) formatPow2(k int) string {
	ndigits := (len(b.words)*wordBits + k - 1) / k
	digits := make([]byte, ndigits)
	for d := range ndigits {
		var v uint32
		for j := k - 1; j >= 0; j-- {
			v = v<<1 | b.Get(d*k+j)
		}
		digits[ndigits-1-d] = digitAlphabet[v]
	}
	if b.indefinite {
		return indefiniteMarker + string(digits)
	}
	s := strings.TrimLeft(string(digits), "0")
	if s == "" {
		return "0"
	}
	return s
}

// formatDivision converts by repeated division of a copy of the word vector,
// producing the least significant digit first.
func (b *BitSet) formatDivision(base uint64) string {
	mag := make([]uint32, len(b.words))
	copy(mag, b.words)

	var out []byte
	for {
		nonzero := false
		var rem uint64
		for i := len(mag) - 1; i >= 0; i-- {
			cur := rem<<wordBits | uint64(mag[i])
			mag[i] = uint32(cur / base)
			rem = cur % base
			if mag[i] != 0 {
				nonzero = true
			}
		}
		out = append(out, digitAlphabet[rem])
		if !nonzero {
			break
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

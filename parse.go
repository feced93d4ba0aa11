package bitgo

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	binDigitsPerWord = wordBits     // 32
	hexDigitsPerWord = wordBits / 4 // 8
)

// FromString parses a numeral string. A "0b" prefix selects base 2 and "0x"
// selects base 16; unprefixed input is parsed as base 2. Digits are consumed
// in fixed-width chunks from the least significant end, one storage word per
// chunk. Any unparseable chunk fails with ErrSyntax before a set is built.
func FromString(s string) (*BitSet, error) {
	base, digits := 2, s
	switch {
	case strings.HasPrefix(s, "0b"):
		digits = s[2:]
	case strings.HasPrefix(s, "0x"):
		base, digits = 16, s[2:]
	}

	chunk := binDigitsPerWord
	if base == 16 {
		chunk = hexDigitsPerWord
	}

	b := New()
	for end, idx := len(digits), 0; end > 0; idx++ {
		start := max(end-chunk, 0)
		w, err := strconv.ParseUint(digits[start:end], base, wordBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a base-%d numeral", ErrSyntax, digits[start:end], base)
		}
		if w != 0 {
			b.scale(idx * wordBits)
			b.words[idx] = uint32(w)
		}
		end = start
	}
	return b, nil
}

// FromIndexes builds a set from a list of bit indexes. An Inf entry marks
// the set indefinite instead of setting a bit. A negative entry fails with
// ErrSyntax before any bit is applied.
func FromIndexes(idxs []int) (*BitSet, error) {
	for _, i := range idxs {
		if i < 0 {
			return nil, fmt.Errorf("%w: negative bit index %d", ErrSyntax, i)
		}
	}
	b := New()
	indefinite := false
	for _, i := range idxs {
		if i == Inf {
			indefinite = true
			continue
		}
		b.Set(i)
	}
	// Applied after the finite entries so scaling stays zero filled.
	b.indefinite = indefinite
	return b, nil
}

// FromBytes unpacks buf into consecutive bit positions, least significant
// bit of each byte first: bit j of buf[k] lands at position 8k+j.
func FromBytes(buf []byte) *BitSet {
	if len(buf) == 0 {
		return New()
	}
	words := make([]uint32, (len(buf)+3)/4)
	for k, by := range buf {
		words[k/4] |= uint32(by) << (uint(k) % 4 * 8)
	}
	return &BitSet{words: words}
}

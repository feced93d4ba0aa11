package bitgo

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/bitgo/internal/word"
)

// Cardinality returns the number of set bits, or Inf for an indefinite set.
func (b *BitSet) Cardinality() int {
	if b.indefinite {
		return Inf
	}
	return word.PopCount(b.words)
}

// MSB returns the index of the highest set bit. An indefinite set has no
// finite highest bit and neither does the empty set; both report Inf.
func (b *BitSet) MSB() int {
	if b.indefinite {
		return Inf
	}
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i*wordBits + wordMask - bits.LeadingZeros32(w)
		}
	}
	return Inf
}

// LSB returns the index of the lowest set bit among the stored words. When
// every stored word is zero the result falls through to the extension bit:
// 0 for a finite set, 1 for an indefinite one. That degenerate value is the
// defined contract, not a position.
func (b *BitSet) LSB() int {
	for i, w := range b.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros32(w)
		}
	}
	return int(b.ext() & 1)
}

// NTZ returns the number of trailing zero bits, or Inf when no stored bit is
// set.
func (b *BitSet) NTZ() int {
	for i, w := range b.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros32(w)
		}
	}
	return Inf
}

// Slice extracts the inclusive bit range [from, to] into a new zero-based
// finite BitSet. Bits past storage are read through the extension word, so
// slicing an indefinite set inside its tail yields ones.
func (b *BitSet) Slice(from, to int) (*BitSet, error) {
	if from < 0 || from > to {
		return nil, fmt.Errorf("%w: slice [%d,%d]", ErrInvalidRange, from, to)
	}
	n := to - from + 1
	out := &BitSet{words: b.sliceWords(from, (n+wordMask)/wordBits)}
	if rem := uint(n) & wordMask; rem != 0 {
		out.words[len(out.words)-1] &= allOnes >> (wordBits - rem)
	}
	return out, nil
}

// SliceFrom extracts [from, ...) into a new zero-based BitSet. The
// indefinite flag carries over, so the infinite tail of an indefinite set
// survives the shift.
func (b *BitSet) SliceFrom(from int) (*BitSet, error) {
	if from < 0 {
		return nil, fmt.Errorf("%w: slice from %d", ErrInvalidRange, from)
	}
	out := &BitSet{indefinite: b.indefinite}
	if n := len(b.words)*wordBits - from; n > 0 {
		out.words = b.sliceWords(from, (n+wordMask)/wordBits)
	}
	return out, nil
}

// sliceWords reads n words starting at bit offset from, stitching adjacent
// source words together when the offset is not word aligned.
func (b *BitSet) sliceWords(from, n int) []uint32 {
	out := make([]uint32, n)
	off := uint(from) & wordMask
	base := from / wordBits
	for j := range out {
		w := b.word(base+j) >> off
		if off != 0 {
			w |= b.word(base+j+1) << (wordBits - off)
		}
		out[j] = w
	}
	return out
}

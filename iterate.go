package bitgo

import (
	"iter"
	"math/bits"
)

// Bits returns the bit values as a lazy sequence, one 0 or 1 per position
// starting at index 0. A finite set ends after its highest non-zero word; an
// indefinite set never ends and every position past the stored words yields
// 1, so the caller is expected to break. Each call produces a fresh,
// independent pass over the set.
func (b *BitSet) Bits() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		stop := len(b.words)
		if !b.indefinite {
			for stop > 0 && b.words[stop-1] == 0 {
				stop--
			}
		}
		for i := range stop * wordBits {
			if !yield(b.Get(i)) {
				return
			}
		}
		for b.indefinite {
			if !yield(1) {
				return
			}
		}
	}
}

// Indexes returns the positions of set bits in ascending order. For an
// indefinite set the sequence continues through the implicit tail and never
// ends.
func (b *BitSet) Indexes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range b.words {
			for w != 0 {
				if !yield(i*wordBits + bits.TrailingZeros32(w)) {
					return
				}
				w &= w - 1
			}
		}
		if b.indefinite {
			for i := len(b.words) * wordBits; ; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}
}

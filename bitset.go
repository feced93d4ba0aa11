package bitgo

import (
	"math"

	"github.com/hupe1980/bitgo/internal/word"
	"github.com/hupe1980/bitgo/util"
)

const (
	// wordBits is the number of bit positions per storage word.
	wordBits = 32

	// wordMask selects the in-word offset of a bit index.
	wordMask = wordBits - 1

	// allOnes is the extension word of an indefinite set.
	allOnes = ^uint32(0)
)

// Inf marks an unbounded result. Cardinality, MSB and NTZ return it when no
// finite answer exists, ToArray appends it for indefinite sets, and
// FromIndexes accepts it as the request to mark a set indefinite.
const Inf = math.MaxInt

// BitSet is a dynamically growable sequence of bits indexed from zero.
//
// Word i stores bits [32i, 32i+32), least significant word first. Bits beyond
// the stored words read as the extension word: all zeros for a finite set,
// all ones for an indefinite one. An indefinite set is what complementing a
// finite set produces; it behaves as a set with infinitely many high bits set
// while storing only a finite prefix.
type BitSet struct {
	words      []uint32
	indefinite bool
}

// New creates an empty finite BitSet.
func New() *BitSet {
	return &BitSet{}
}

// FromUint32 creates a BitSet holding the 32 bits of v.
func FromUint32(v uint32) *BitSet {
	return &BitSet{words: []uint32{v}}
}

// Random creates a finite set of n random bits drawn from a generator seeded
// with seed. The same seed always yields the same set.
func Random(n int, seed int64) *BitSet {
	if n <= 0 {
		return New()
	}
	words := util.NewRNG(seed).RandomWords((n + wordMask) / wordBits)
	if rem := uint(n) & wordMask; rem != 0 {
		words[len(words)-1] &= allOnes >> (wordBits - rem)
	}
	return &BitSet{words: words}
}

// Clone returns a deep copy.
func (b *BitSet) Clone() *BitSet {
	c := &BitSet{indefinite: b.indefinite}
	if len(b.words) > 0 {
		c.words = make([]uint32, len(b.words))
		copy(c.words, b.words)
	}
	return c
}

// ext returns the extension word implied for every position beyond storage.
func (b *BitSet) ext() uint32 {
	if b.indefinite {
		return allOnes
	}
	return 0
}

// word returns storage word i, falling back to the extension word.
func (b *BitSet) word(i int) uint32 {
	if i < len(b.words) {
		return b.words[i]
	}
	return b.ext()
}

// scale grows storage with extension-word copies until bit i is addressable.
// Writes call it before touching a word; reads never trigger growth.
func (b *BitSet) scale(i int) {
	need := i/wordBits + 1
	if need <= len(b.words) {
		return
	}
	old := len(b.words)
	if need <= cap(b.words) {
		b.words = b.words[:need]
	} else {
		grown := make([]uint32, need)
		copy(grown, b.words)
		b.words = grown
	}
	if fill := b.ext(); fill != 0 {
		for j := old; j < need; j++ {
			b.words[j] = fill
		}
	}
}

// Get returns bit i as 0 or 1. Reads beyond storage yield the extension bit;
// negative indexes yield 0.
func (b *BitSet) Get(i int) uint32 {
	if i < 0 {
		return 0
	}
	return b.word(i/wordBits) >> (uint(i) & wordMask) & 1
}

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) bool {
	return b.Get(i) == 1
}

// Set sets bit i, growing storage as needed.
func (b *BitSet) Set(i int) *BitSet {
	return b.SetTo(i, true)
}

// Unset clears bit i.
func (b *BitSet) Unset(i int) *BitSet {
	return b.SetTo(i, false)
}

// SetTo sets bit i to the given value. Negative indexes are a no-op.
func (b *BitSet) SetTo(i int, bit bool) *BitSet {
	if i < 0 {
		return b
	}
	b.scale(i)
	mask := uint32(1) << (uint(i) & wordMask)
	if bit {
		b.words[i/wordBits] |= mask
	} else {
		b.words[i/wordBits] &^= mask
	}
	return b
}

// Flip toggles bit i, growing storage as needed. Negative indexes are a
// no-op.
func (b *BitSet) Flip(i int) *BitSet {
	if i < 0 {
		return b
	}
	b.scale(i)
	b.words[i/wordBits] ^= 1 << (uint(i) & wordMask)
	return b
}

// forRange applies fn to every storage word overlapping the inclusive range
// [from, to], passing the mask of in-range bits. Storage is scaled to cover
// the range first. Callers validate the bounds.
func (b *BitSet) forRange(from, to int, fn func(w *uint32, mask uint32)) {
	b.scale(to)
	startWord, endWord := from/wordBits, to/wordBits
	startBit, endBit := uint(from)&wordMask, uint(to)&wordMask
	if startWord == endWord {
		fn(&b.words[startWord], (allOnes>>(wordMask-endBit+startBit))<<startBit)
		return
	}
	fn(&b.words[startWord], allOnes<<startBit)
	for w := startWord + 1; w < endWord; w++ {
		fn(&b.words[w], allOnes)
	}
	fn(&b.words[endWord], allOnes>>(wordMask-endBit))
}

// SetRange sets every bit in the inclusive range [from, to] to the given
// value. from > to or a negative from touches nothing.
func (b *BitSet) SetRange(from, to int, bit bool) *BitSet {
	if from < 0 || from > to {
		return b
	}
	if bit {
		b.forRange(from, to, func(w *uint32, mask uint32) { *w |= mask })
	} else {
		b.forRange(from, to, func(w *uint32, mask uint32) { *w &^= mask })
	}
	return b
}

// ClearRange clears every bit in the inclusive range [from, to], with the
// same no-op rule as SetRange.
func (b *BitSet) ClearRange(from, to int) *BitSet {
	return b.SetRange(from, to, false)
}

// FlipRange toggles every bit in the inclusive range [from, to]. from > to
// or a negative from touches nothing.
func (b *BitSet) FlipRange(from, to int) *BitSet {
	if from < 0 || from > to {
		return b
	}
	b.forRange(from, to, func(w *uint32, mask uint32) { *w ^= mask })
	return b
}

// FlipAll complements the set in place: every stored word is inverted and
// the implicit tail toggles between all zeros and all ones.
func (b *BitSet) FlipAll() *BitSet {
	word.Not(b.words)
	b.indefinite = !b.indefinite
	return b
}

// ClearAll zeroes all stored words and marks the set finite.
func (b *BitSet) ClearAll() *BitSet {
	clear(b.words)
	b.indefinite = false
	return b
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	if b.indefinite {
		return false
	}
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both sets contain exactly the same bits, including
// the implicit tail beyond either set's storage.
func (b *BitSet) Equal(other *BitSet) bool {
	if other == nil {
		return false
	}
	if b.indefinite != other.indefinite {
		return false
	}
	for i := range max(len(b.words), len(other.words)) {
		if b.word(i) != other.word(i) {
			return false
		}
	}
	return true
}

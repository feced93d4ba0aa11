package bitgo

import "github.com/hupe1980/bitgo/internal/word"

// alignedClone copies b with storage grown to cover other's words, padding
// with b's extension word. Every combinator starts from one so results never
// alias operand storage.
func (b *BitSet) alignedClone(other *BitSet) *BitSet {
	n := max(len(b.words), len(other.words))
	out := &BitSet{indefinite: b.indefinite}
	if n > 0 {
		out.words = make([]uint32, n)
		copy(out.words, b.words)
		if fill := b.ext(); fill != 0 {
			for i := len(b.words); i < n; i++ {
				out.words[i] = fill
			}
		}
	}
	return out
}

// And returns the intersection of b and other as a new BitSet.
func (b *BitSet) And(other *BitSet) *BitSet {
	out := b.alignedClone(other)
	word.And(out.words, other.words, other.ext())
	out.indefinite = b.indefinite && other.indefinite
	return out
}

// Or returns the union of b and other as a new BitSet.
func (b *BitSet) Or(other *BitSet) *BitSet {
	out := b.alignedClone(other)
	word.Or(out.words, other.words, other.ext())
	out.indefinite = b.indefinite || other.indefinite
	return out
}

// Xor returns the symmetric difference of b and other as a new BitSet.
func (b *BitSet) Xor(other *BitSet) *BitSet {
	out := b.alignedClone(other)
	word.Xor(out.words, other.words, other.ext())
	out.indefinite = b.indefinite != other.indefinite
	return out
}

// AndNot returns the bits of b that are not in other, equivalent to
// b.And(other.Not()) without the intermediate complement.
func (b *BitSet) AndNot(other *BitSet) *BitSet {
	out := b.alignedClone(other)
	word.AndNot(out.words, other.words, other.ext())
	out.indefinite = b.indefinite && !other.indefinite
	return out
}

// Not returns the complement as a new BitSet. Complementing a finite set
// yields an indefinite one and vice versa.
func (b *BitSet) Not() *BitSet {
	return b.Clone().FlipAll()
}

package bitgo

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// ToRoaring copies the set bits into a Roaring bitmap. Only finite sets can
// be materialized.
func (b *BitSet) ToRoaring() (*roaring.Bitmap, error) {
	if b.indefinite {
		return nil, fmt.Errorf("%w: cannot materialize into a roaring bitmap", ErrIndefinite)
	}
	rb := roaring.New()
	for i := range b.Indexes() {
		rb.Add(uint32(i))
	}
	return rb, nil
}

// FromRoaring builds a BitSet holding the same members as rb.
func FromRoaring(rb *roaring.Bitmap) *BitSet {
	b := New()
	it := rb.Iterator()
	for it.HasNext() {
		b.Set(int(it.Next()))
	}
	return b
}

// ToDense copies the set bits into a bits-and-blooms dense bitset. Only
// finite sets can be materialized.
func (b *BitSet) ToDense() (*bitset.BitSet, error) {
	if b.indefinite {
		return nil, fmt.Errorf("%w: cannot materialize into a dense bitset", ErrIndefinite)
	}
	out := bitset.New(uint(len(b.words) * wordBits))
	for i := range b.Indexes() {
		out.Set(uint(i))
	}
	return out, nil
}

// FromDense builds a BitSet holding the same members as d.
func FromDense(d *bitset.BitSet) *BitSet {
	b := New()
	for i, ok := d.NextSet(0); ok; i, ok = d.NextSet(i + 1) {
		b.Set(int(i))
	}
	return b
}

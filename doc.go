// Package bitgo implements an arbitrary-precision, dynamically growable
// bitset: an ordered sequence of boolean flags indexed by non-negative
// integers, with set algebra, bit and range mutation, cardinality and
// bit-position queries, multi-base string conversion and lazy iteration.
//
// # Quick Start
//
//	a, _ := bitgo.FromString("0b1010")
//	b, _ := bitgo.FromString("0b1100")
//	fmt.Println(a.And(b)) // 1000
//
// Storage grows on demand when a write targets a position beyond the current
// words; reads past storage never grow anything. Complementing a set does not
// materialize infinite storage either: the result is an "indefinite" set
// whose unrepresented high bits are all implicitly 1.
//
//	all := bitgo.New().Not()
//	all.Test(1 << 40)  // true
//	all.Cardinality()  // bitgo.Inf
//
// # Mutators and Combinators
//
// Mutators (Set, Flip, SetRange, ...) work in place and return the receiver
// for chaining. Algebra combinators (And, Or, Xor, AndNot, Not, Slice) always
// allocate a fresh result and never alias operand storage:
//
//	b := bitgo.New().Set(3).SetRange(8, 15, true)
//	c := b.AndNot(mask) // b is unchanged
//
// # Interop
//
// Finite sets convert to and from Roaring bitmaps and bits-and-blooms dense
// bitsets (ToRoaring, FromRoaring, ToDense, FromDense) for use alongside code
// that already speaks those types.
//
// A BitSet is a plain in-memory value with no internal synchronization; it is
// not safe for concurrent use.
package bitgo

// Package word implements the bulk word operations behind the bitset
// algebra. Kernels are portable Go, unrolled four wide so the compiler has a
// straightforward vectorization target.
//
// Binary kernels take an extension word for the source: positions beyond
// len(src) behave as if src continued with ext forever, which is how the
// bitset encodes its implicit tail. len(dst) must be >= len(src).
package word

import "math/bits"

// And performs dst[i] &= src[i], continuing with ext past src.
func And(dst, src []uint32, ext uint32) {
	n := len(src)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &= src[i]
	}
	for ; i < len(dst); i++ {
		dst[i] &= ext
	}
}

// Or performs dst[i] |= src[i], continuing with ext past src.
func Or(dst, src []uint32, ext uint32) {
	n := len(src)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] |= src[i]
	}
	for ; i < len(dst); i++ {
		dst[i] |= ext
	}
}

// Xor performs dst[i] ^= src[i], continuing with ext past src.
func Xor(dst, src []uint32, ext uint32) {
	n := len(src)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= ext
	}
}

// AndNot performs dst[i] &^= src[i], continuing with ext past src.
func AndNot(dst, src []uint32, ext uint32) {
	n := len(src)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < n; i++ {
		dst[i] &^= src[i]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= ext
	}
}

// Not inverts every word of dst in place.
func Not(dst []uint32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^dst[i]
		dst[i+1] = ^dst[i+1]
		dst[i+2] = ^dst[i+2]
		dst[i+3] = ^dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
}

// PopCount counts all set bits across words.
func PopCount(words []uint32) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount32(words[i])
		count += bits.OnesCount32(words[i+1])
		count += bits.OnesCount32(words[i+2])
		count += bits.OnesCount32(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount32(words[i])
	}
	return count
}

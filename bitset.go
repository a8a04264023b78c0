// Byte-packed bit vector backing the filter.
//
// Bit i lives at bits[i/8] & (1 << (i%8)) — LSB-first within each byte.
// The packed form is also the serialized image: exactly ceil(n/8) bytes,
// final byte zero-padded when n is not a multiple of 8. The bit order is
// fixed; changing it would break round-trip compatibility of every
// persisted image.
package floret

import "math/bits"

type bitset struct {
	bits []byte
	n    int // length in bits
}

// newBitset returns a zeroed bit vector of n bits. n must be positive;
// the caller validates.
func newBitset(n int) *bitset {
	return &bitset{bits: make([]byte, (n+7)/8), n: n}
}

func (b *bitset) set(i int) {
	b.bits[i/8] |= 1 << (i % 8)
}

func (b *bitset) get(i int) bool {
	return b.bits[i/8]&(1<<(i%8)) != 0
}

// count returns the number of set bits.
func (b *bitset) count() int {
	c := 0
	for _, x := range b.bits {
		c += bits.OnesCount8(x)
	}
	return c
}

// image returns a copy of the packed bytes.
func (b *bitset) image() []byte {
	out := make([]byte, len(b.bits))
	copy(out, b.bits)
	return out
}

// load replaces the vector wholesale with the given packed image. The
// image must be exactly ceil(n/8) bytes; anything else is ErrImageSize.
// Padding bits beyond n in the final byte are masked off so that count
// never sees stray bits from a foreign writer.
func (b *bitset) load(img []byte) error {
	if len(img) != len(b.bits) {
		return ErrImageSize
	}
	copy(b.bits, img)
	if rem := b.n % 8; rem != 0 {
		b.bits[len(b.bits)-1] &= byte(1<<rem) - 1
	}
	return nil
}

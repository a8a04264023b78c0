// Bit vector tests.
//
// The bitset is the filter's only state; everything above it assumes
// LSB-first packing and exact ceil(n/8) sizing. These tests pin the
// packing convention byte-for-byte so that a future refactor cannot
// silently flip the bit order and break every persisted image.
package floret

import (
	"errors"
	"testing"
)

// TestBitsetSetGet verifies basic set/get round trips across byte
// boundaries.
func TestBitsetSetGet(t *testing.T) {
	b := newBitset(20)
	for _, i := range []int{0, 7, 8, 13, 19} {
		if b.get(i) {
			t.Errorf("bit %d set in fresh bitset", i)
		}
		b.set(i)
		if !b.get(i) {
			t.Errorf("bit %d not set after set", i)
		}
	}
	if b.get(1) || b.get(9) {
		t.Error("neighbouring bits disturbed")
	}
}

// TestBitsetPacking pins the LSB-first convention: bit 0 is the lowest
// bit of byte 0, bit 9 the second-lowest of byte 1. This is the
// serialized image layout — the exact bytes matter, not just get/set
// consistency.
func TestBitsetPacking(t *testing.T) {
	b := newBitset(16)
	b.set(0)
	b.set(9)
	if b.bits[0] != 0x01 {
		t.Errorf("byte 0 = %#02x, want 0x01", b.bits[0])
	}
	if b.bits[1] != 0x02 {
		t.Errorf("byte 1 = %#02x, want 0x02", b.bits[1])
	}
}

// TestBitsetSizing verifies ceil(n/8) allocation for sizes around the
// byte boundary.
func TestBitsetSizing(t *testing.T) {
	for _, tt := range []struct{ n, bytes int }{
		{1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3},
	} {
		if got := len(newBitset(tt.n).bits); got != tt.bytes {
			t.Errorf("newBitset(%d): %d bytes, want %d", tt.n, got, tt.bytes)
		}
	}
}

// TestBitsetCount verifies popcount across multiple bytes.
func TestBitsetCount(t *testing.T) {
	b := newBitset(24)
	if b.count() != 0 {
		t.Error("fresh bitset has nonzero count")
	}
	for _, i := range []int{0, 1, 8, 15, 23} {
		b.set(i)
	}
	if got := b.count(); got != 5 {
		t.Errorf("count = %d, want 5", got)
	}
}

// TestBitsetImageIsCopy verifies that image returns an independent
// copy: callers hand the image to writers and must not be able to
// corrupt the live vector through it.
func TestBitsetImageIsCopy(t *testing.T) {
	b := newBitset(8)
	b.set(0)
	img := b.image()
	img[0] = 0xFF
	if b.count() != 1 {
		t.Error("mutating the image mutated the bitset")
	}
}

// TestBitsetLoad verifies wholesale replacement, the exact-length
// check, and the padding mask on the final byte.
func TestBitsetLoad(t *testing.T) {
	b := newBitset(10)
	if err := b.load([]byte{0x03}); !errors.Is(err, ErrImageSize) {
		t.Errorf("short load = %v, want ErrImageSize", err)
	}
	if err := b.load([]byte{0x03, 0x01, 0x00}); !errors.Is(err, ErrImageSize) {
		t.Errorf("long load = %v, want ErrImageSize", err)
	}

	if err := b.load([]byte{0x03, 0xFF}); err != nil {
		t.Fatalf("load: %v", err)
	}
	// Bits 0, 1, 8, 9 valid; bits 10..15 are padding and must be masked.
	if got := b.count(); got != 4 {
		t.Errorf("count after load = %d, want 4", got)
	}
	if !b.get(0) || !b.get(1) || !b.get(8) || !b.get(9) {
		t.Error("valid bits lost in load")
	}
}

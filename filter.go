// Core probabilistic membership filter.
//
// Filter is a bloom filter over strings with one non-standard extension:
// Confidence, a graded membership score. Probe positions come from
// enhanced double hashing — two hash evaluations per item generate k
// pseudo-independent positions as (h1 + i*h2) mod size, avoiding k
// separate hash computations.
//
// Bits only transition 0→1. There is no delete and no resize, so an
// inserted item can never report a false negative, and the
// false-positive rate only grows over the filter's lifetime. Callers own
// that tradeoff through their choice of size and k.
package floret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Filter is a fixed-size probabilistic set of strings. It is not safe
// for concurrent mutation: build it single-threaded, then share it
// read-only (Contains and Confidence never write).
type Filter struct {
	bits *bitset
	size int
	k    int
	h1   Hasher
	h2   Hasher
}

// Option configures filter construction.
type Option func(*filterConfig)

type filterConfig struct {
	k           int
	kSet        bool
	expected    int
	expectedSet bool
}

// WithK fixes the probe count explicitly.
func WithK(k int) Option {
	return func(c *filterConfig) { c.k, c.kSet = k, true }
}

// WithExpectedItems derives the probe count from an expected item count
// using the standard optimum k = (size/n)·ln 2. Ignored when WithK is
// also given.
func WithExpectedItems(n int) Option {
	return func(c *filterConfig) { c.expected, c.expectedSet = n, true }
}

// New creates an empty filter of size bits using the two given hash
// functions. The probe count comes from WithK if given, else from
// WithExpectedItems, else from the floor(log2(size)) fallback. Derived
// counts are clamped to at least 1.
//
// h1 and h2 must be distinct, well-mixed functions; see Hasher for the
// contract.
func New(size int, h1, h2 Hasher, opts ...Option) (*Filter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrFilterSize, size)
	}
	if h1 == nil || h2 == nil {
		return nil, ErrNoHasher
	}

	var c filterConfig
	for _, opt := range opts {
		opt(&c)
	}

	var k int
	switch {
	case c.kSet:
		if c.k <= 0 {
			return nil, fmt.Errorf("%w: got k=%d", ErrProbeCount, c.k)
		}
		k = c.k
	case c.expectedSet:
		if c.expected <= 0 {
			return nil, fmt.Errorf("%w: expected items %d", ErrProbeCount, c.expected)
		}
		k = optimalK(size, c.expected)
	default:
		k = fallbackK(size)
	}

	return &Filter{
		bits: newBitset(size),
		size: size,
		k:    k,
		h1:   h1,
		h2:   h2,
	}, nil
}

// Add inserts an item, setting the bit at every probe position.
// Idempotent: adding the same item twice leaves the bit vector
// unchanged after the first call.
func (f *Filter) Add(item string) {
	h1 := f.h1.Hash(item)
	h2 := f.h2.Hash(item)
	for i := uint64(0); i < uint64(f.k); i++ {
		f.bits.set(int((h1 + i*h2) % uint64(f.size)))
	}
}

// AddAll inserts each item in order. The resulting bit state is
// independent of order — insertions commute.
func (f *Filter) AddAll(items ...string) {
	for _, item := range items {
		f.Add(item)
	}
}

// AddLines inserts one item per line from r, trimming surrounding
// whitespace and skipping blank lines.
func (f *Filter) AddLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			f.Add(line)
		}
	}
	return scanner.Err()
}

// Contains reports whether the item might be in the set. True means the
// item was inserted or is a false positive; false means it was
// definitely never inserted. Evaluation short-circuits on the first
// unset probe bit.
func (f *Filter) Contains(item string) bool {
	h1 := f.h1.Hash(item)
	h2 := f.h2.Hash(item)
	for i := uint64(0); i < uint64(f.k); i++ {
		if !f.bits.get(int((h1 + i*h2) % uint64(f.size))) {
			return false
		}
	}
	return true
}

// Confidence returns the fraction of the item's k probe bits that are
// set, in [0, 1]. This is a heuristic match-strength signal, not a
// calibrated probability: 1.0 is exactly equivalent to Contains
// returning true, 0.0 means no probe bit matched, and values between
// grade how close the item is to a full match. Once an item is added
// its confidence is permanently 1.0.
func (f *Filter) Confidence(item string) float64 {
	h1 := f.h1.Hash(item)
	h2 := f.h2.Hash(item)
	c := 0
	for i := uint64(0); i < uint64(f.k); i++ {
		if f.bits.get(int((h1 + i*h2) % uint64(f.size))) {
			c++
		}
	}
	return float64(c) / float64(f.k)
}

// Size returns the bit-vector length in bits.
func (f *Filter) Size() int { return f.size }

// K returns the probe count.
func (f *Filter) K() int { return f.k }

// SetBits returns the number of bits currently set. Non-decreasing
// across any sequence of insertions.
func (f *Filter) SetBits() int { return f.bits.count() }

// FillRatio returns the proportion of bits set, in [0, 1].
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.count()) / float64(f.size)
}

// ImageSize returns the length in bytes of the filter's packed image:
// ceil(size/8).
func (f *Filter) ImageSize() int { return (f.size + 7) / 8 }

// Dump writes the packed bit image to w: exactly ceil(size/8) bytes,
// bit i at byte i/8, bit position i%8 (LSB-first), final byte
// zero-padded. The image carries no header; the reader must construct
// its filter with matching size, k, and hash functions.
func (f *Filter) Dump(w io.Writer) error {
	_, err := w.Write(f.bits.bits)
	return err
}

// Ingest replaces the bit vector wholesale with an image read from r.
// The image must supply exactly ceil(size/8) bytes: a short read or any
// trailing data is ErrImageSize — the filter never truncates or reads
// past its own length. On error the existing bit vector is left
// untouched.
func (f *Filter) Ingest(r io.Reader) error {
	img := make([]byte, f.ImageSize())
	if _, err := io.ReadFull(r, img); err != nil {
		return fmt.Errorf("%w: %v", ErrImageSize, err)
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return fmt.Errorf("%w: image longer than %d bytes", ErrImageSize, f.ImageSize())
	}
	return f.bits.load(img)
}

// MarshalBinary implements encoding.BinaryMarshaler using the same flat
// image format as Dump.
func (f *Filter) MarshalBinary() ([]byte, error) {
	return f.bits.image(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The data must
// be exactly ceil(size/8) bytes; anything else is ErrImageSize.
func (f *Filter) UnmarshalBinary(data []byte) error {
	return f.Ingest(bytes.NewReader(data))
}

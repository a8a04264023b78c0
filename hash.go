// Hash function variants for probe derivation.
//
// A Filter takes two independent Hashers at construction. The package
// ships three algorithm families: xxHash3 (fastest, default for
// lexicons), FNV-1a (no external dependencies), and Blake2b (best
// distribution). The 128-bit evaluations are split into two independent
// 64-bit hashes so a single algorithm family can supply both halves of
// the double-hashing pair.
package floret

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hasher maps a string to a 64-bit value. Implementations must be
// deterministic and should be well mixed. The two Hashers given to a
// Filter must be distinct as functions: if they collide in a way that
// zeroes the second hash, every probe for that item degenerates to the
// same bit. That contract belongs to the caller; the filter does not
// defend against it.
type Hasher interface {
	Hash(s string) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(s string) uint64

// Hash calls f(s).
func (f HasherFunc) Hash(s string) uint64 { return f(s) }

// Supplied hash variants. XXH3Low and XXH3High come from a single
// 128-bit xxHash3 evaluation and are independent of each other and of
// XXH3, making any two of them a valid double-hashing pair.
var (
	XXH3     Hasher = HasherFunc(xxh3.HashString)
	XXH3Low  Hasher = HasherFunc(func(s string) uint64 { return xxh3.HashString128(s).Lo })
	XXH3High Hasher = HasherFunc(func(s string) uint64 { return xxh3.HashString128(s).Hi })

	FNV32a  Hasher = HasherFunc(fnvHash32)
	FNV64a  Hasher = HasherFunc(fnvHash64)
	FNV128a Hasher = HasherFunc(fnvHash128)

	Blake2b64  Hasher = HasherFunc(blakeHash64)
	Blake2b128 Hasher = HasherFunc(blakeHash128)
)

func fnvHash32(s string) uint64 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return uint64(h.Sum32())
}

func fnvHash64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// fnvHash128 folds the 128-bit FNV-1a digest to its low 64 bits. The
// wider internal state gives different mixing than FNV64a, so the two
// are usable as an independent pair.
func fnvHash128(s string) uint64 {
	h := fnv.New128a()
	h.Write([]byte(s))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[8:])
}

func blakeHash64(s string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(s))
	return binary.BigEndian.Uint64(h.Sum(nil))
}

// blakeHash128 takes the high half of a 16-byte Blake2b digest,
// independent of blakeHash64 (different digest lengths change the
// Blake2b parameter block, so the outputs are unrelated).
func blakeHash128(s string) uint64 {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(s))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}

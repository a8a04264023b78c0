// Compressed on-disk snapshots of filter images.
//
// The flat image written by Dump carries no metadata, which is fine for
// in-process round trips but fragile on disk: nothing stops a caller
// from ingesting a 2^20-bit image into a 2^22-bit filter and getting an
// opaque length error. A snapshot prefixes the image with a fixed
// 24-byte header recording the filter's geometry, and zstd-compresses
// the payload — word-list filters are sparse enough that compression
// routinely cuts a 512 KiB image by an order of magnitude.
//
// Header layout (big-endian):
//
//	bytes 0-3   magic "FLRT"
//	byte  4     format version (1)
//	bytes 5-7   reserved, zero
//	bytes 8-15  size in bits (uint64)
//	bytes 16-23 probe count k (uint64)
package floret

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

const (
	snapshotMagic   = "FLRT"
	snapshotVersion = 1
	snapshotHeader  = 24
)

// Shared encoder/decoder — both are documented as safe for concurrent
// use, and construction is expensive (internal state tables), so they
// are allocated once. SpeedFastest is deliberate: snapshot writing sits
// on the corpus-build path where latency matters more than squeezing
// the last few percent out of an already very compressible image.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// WriteSnapshot writes a self-describing compressed snapshot of the
// filter to w.
func (f *Filter) WriteSnapshot(w io.Writer) error {
	var hdr [snapshotHeader]byte
	copy(hdr[0:4], snapshotMagic)
	hdr[4] = snapshotVersion
	binary.BigEndian.PutUint64(hdr[8:16], uint64(f.size))
	binary.BigEndian.PutUint64(hdr[16:24], uint64(f.k))

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(zstdEncoder.EncodeAll(f.bits.bits, nil))
	return err
}

// ReadSnapshot replaces the filter's bit vector from a snapshot read
// from r. The snapshot's recorded size and probe count must match the
// receiving filter exactly — a mismatch is ErrSnapshotHeader, since
// images are only meaningful to a filter with identical geometry and
// hash functions.
func (f *Filter) ReadSnapshot(r io.Reader) error {
	var hdr [snapshotHeader]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotHeader, err)
	}
	if string(hdr[0:4]) != snapshotMagic {
		return fmt.Errorf("%w: bad magic %q", ErrSnapshotHeader, hdr[0:4])
	}
	if hdr[4] != snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrSnapshotHeader, hdr[4])
	}
	size := binary.BigEndian.Uint64(hdr[8:16])
	k := binary.BigEndian.Uint64(hdr[16:24])
	if size != uint64(f.size) || k != uint64(f.k) {
		return fmt.Errorf("%w: snapshot is %d bits k=%d, filter is %d bits k=%d",
			ErrSnapshotHeader, size, k, f.size, f.k)
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotHeader, err)
	}
	img, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("%w: zstd: %v", ErrSnapshotHeader, err)
	}
	return f.Ingest(bytes.NewReader(img))
}

// SaveSnapshot writes a snapshot to the named file, creating or
// truncating it.
func (f *Filter) SaveSnapshot(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteSnapshot(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadSnapshot replaces the filter's bit vector from the named file.
func (f *Filter) LoadSnapshot(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.ReadSnapshot(file)
}

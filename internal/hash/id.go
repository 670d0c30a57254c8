package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates a fingerprint over a sequence of values.
//
// The zero value is not usable; create one with NewDigest.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteUint64 feeds v into the digest in little-endian order.
func (d *Digest) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	_, _ = d.d.Write(d.buf[:])
}

// WriteBytes feeds a length-prefixed byte slice into the digest so that
// adjacent slices cannot collide by shifting bytes between them.
func (d *Digest) WriteBytes(b []byte) {
	d.WriteUint64(uint64(len(b)))
	_, _ = d.d.Write(b)
}

// Sum64 returns the current fingerprint.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

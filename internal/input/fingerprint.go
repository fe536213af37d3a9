package input

import (
	"encoding/hex"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Digest passes reads through while hashing every byte returned.
type Digest struct {
	r io.Reader
	h hash.Hash
}

// NewDigest wraps r.
func NewDigest(r io.Reader) *Digest {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only reachable with an oversized key
		panic(err)
	}
	return &Digest{r: io.TeeReader(r, h), h: h}
}

func (d *Digest) Read(p []byte) (int, error) { return d.r.Read(p) }

// Fingerprint returns the fingerprint of the bytes read so far.
func (d *Digest) Fingerprint() string {
	return short(d.h.Sum(nil))
}

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return short(sum[:])
}

func short(sum []byte) string { return hex.EncodeToString(sum[:10]) }

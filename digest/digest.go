// Package digest hashes encodings with BLAKE3 as they are written.
//
// A Hasher is a destination: running an Encodable against it yields the
// digest of the value's encoding without ever materializing the bytes.
package digest

import (
	"encoding/hex"
	"io"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/Altair-Bueno/encode"
)

// Size is the length of a Sum in bytes.
const Size = 32

// Sum is a BLAKE3-256 digest.
type Sum [Size]byte

// String returns the lowercase hex form of s.
func (s Sum) String() string { return hex.EncodeToString(s[:]) }

// Encode writes the raw digest bytes.
func (s Sum) Encode(dst encode.ByteDestination) error { return dst.AppendBytes(s[:]) }

// Hasher is a ByteDestination that feeds everything it receives into a
// BLAKE3 hash. Appends never fail.
type Hasher struct {
	h *blake3.Hasher
}

var _ encode.ByteDestination = (*Hasher)(nil)

// New returns an unkeyed Hasher.
func New() *Hasher {
	return &Hasher{h: blake3.New()}
}

// NewKeyed returns a Hasher in BLAKE3 keyed mode. key must be 32 bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	return &Hasher{h: h}, nil
}

func (d *Hasher) AppendBytes(p []byte) error {
	_, err := d.h.Write(p)
	return err
}

func (d *Hasher) AppendByte(c byte) error {
	_, err := d.h.Write([]byte{c})
	return err
}

func (d *Hasher) AppendString(s string) error {
	_, err := io.WriteString(d.h, s)
	return err
}

// Sum returns the digest of everything appended so far.
func (d *Hasher) Sum() Sum {
	var s Sum
	d.h.Sum(s[:0])
	return s
}

// Reset discards everything appended, keeping the key.
func (d *Hasher) Reset() { d.h.Reset() }

var hasherPool = sync.Pool{
	New: func() any { return New() },
}

// Of returns the digest of v's encoding.
func Of(v encode.Encodable[encode.ByteDestination]) (Sum, error) {
	d := hasherPool.Get().(*Hasher)
	defer hasherPool.Put(d)
	d.Reset()

	if err := v.Encode(d); err != nil {
		return Sum{}, err
	}
	return d.Sum(), nil
}

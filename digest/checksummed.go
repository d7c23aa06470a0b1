package digest

import "github.com/Altair-Bueno/encode"

// Checksummed encodes Inner followed by the BLAKE3 digest of Inner's
// encoding. The digest is computed in the same pass that writes Inner.
type Checksummed struct {
	Inner encode.Encodable[encode.ByteDestination]
	// Key switches to keyed hashing when set. It must be 32 bytes.
	Key []byte
}

func (c Checksummed) Encode(dst encode.ByteDestination) error {
	var d *Hasher
	if c.Key != nil {
		var err error
		if d, err = NewKeyed(c.Key); err != nil {
			return err
		}
	} else {
		d = hasherPool.Get().(*Hasher)
		defer hasherPool.Put(d)
		d.Reset()
	}

	if err := c.Inner.Encode(NewTee(dst, d)); err != nil {
		return err
	}
	return d.Sum().Encode(dst)
}

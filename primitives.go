package encode

import (
	"fmt"
	"strings"
)

// U8 encodes a single byte.
type U8 uint8

func (v U8) Encode(dst ByteDestination) error { return dst.AppendByte(byte(v)) }

// I8 encodes a signed byte as its two's complement bit pattern.
type I8 int8

func (v I8) Encode(dst ByteDestination) error { return dst.AppendByte(byte(v)) }

// Bool encodes true as 1 and false as 0.
type Bool bool

func (v Bool) Encode(dst ByteDestination) error {
	if v {
		return dst.AppendByte(1)
	}
	return dst.AppendByte(0)
}

// Bytes encodes its raw contents. Fixed-size arrays encode by slicing:
// Bytes(arr[:]).
type Bytes []byte

func (v Bytes) Encode(dst ByteDestination) error { return dst.AppendBytes(v) }

// CStr encodes a null-terminated string: its bytes followed by a 0 byte.
// A string that already contains a NUL byte is rejected with ErrInteriorNul
// before anything is written.
type CStr string

func (v CStr) Encode(dst ByteDestination) error {
	if i := strings.IndexByte(string(v), 0); i >= 0 {
		return fmt.Errorf("%w at offset %d", ErrInteriorNul, i)
	}
	if err := dst.AppendString(string(v)); err != nil {
		return err
	}
	return dst.AppendByte(0)
}

// Zeros encodes n zero bytes, often for padding. Large runs are written in
// blocks from a static zero buffer instead of allocating.
type Zeros int

func (n Zeros) Encode(dst ByteDestination) error {
	for left := int(n); left > 0; {
		chunk := min(left, BUFFER_SIZE)
		if err := dst.AppendBytes(empty[:chunk]); err != nil {
			return err
		}
		left -= chunk
	}
	return nil
}

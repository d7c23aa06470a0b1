package encode

import (
	"errors"
	"fmt"
	"io"
)

// Marshal returns the encoding of v in a newly allocated slice of exactly
// the right size. The size is computed first, so the encode never grows a
// buffer. ErrTruncatedData reports an encodable whose output differs from
// its computed size, which means it is not deterministic.
func Marshal(v Encodable[ByteDestination]) ([]byte, error) {
	expectedSize, err := SizeOf(v)
	if err != nil {
		return nil, err
	}
	w := NewFixedBuffer(make([]byte, expectedSize))
	if err := v.Encode(w); err != nil {
		if errors.Is(err, ErrInsufficientSpace) {
			return nil, fmt.Errorf("%w: expected %d bytes, but more were written", ErrTruncatedData, expectedSize)
		}
		return nil, err
	}
	if w.Len() != expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, but wrote %d", ErrTruncatedData, expectedSize, w.Len())
	}
	return w.Bytes(), nil
}

// Append encodes v at the end of b and returns the extended slice. On
// failure the original b is returned along with the error.
func Append(b []byte, v Encodable[ByteDestination]) ([]byte, error) {
	buf := Buffer{B: b}
	if err := v.Encode(&buf); err != nil {
		return b, err
	}
	return buf.B, nil
}

// MarshalTo encodes v into p without allocating and returns the number of
// bytes written. If p is too small it fails with ErrInsufficientSpace;
// the bytes accepted before the failure are left in p.
func MarshalTo(v Encodable[ByteDestination], p []byte) (int, error) {
	w := FixedBuffer{B: p}
	err := v.Encode(&w)
	return w.N, err
}

// WriteTo encodes v to w through a buffered Writer and flushes it.
// It returns the number of bytes accepted by w.
func WriteTo(v Encodable[ByteDestination], w io.Writer) (int64, error) {
	bw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	encodeErr := v.Encode(bw)
	n, err := bw.Result()
	if encodeErr != nil {
		return n, encodeErr
	}
	return n, err
}

// MarshalText returns the text encoding of v.
func MarshalText(v Encodable[StringDestination]) (string, error) {
	var t TextBuffer
	if err := v.Encode(&t); err != nil {
		return "", err
	}
	return t.String(), nil
}

// BinaryMarshaler exposes an Encodable through the standard library
// encoding interfaces, for APIs that expect them.
type BinaryMarshaler struct {
	V Encodable[ByteDestination]
}

var (
	_ Marshaler                  = (*BinaryMarshaler)(nil)
	_ Sizer                      = (*BinaryMarshaler)(nil)
	_ Encodable[ByteDestination] = (*BinaryMarshaler)(nil)
)

// Binary wraps v in a BinaryMarshaler.
func Binary(v Encodable[ByteDestination]) *BinaryMarshaler {
	return &BinaryMarshaler{V: v}
}

// Size returns the encoded size of the value, or -1 if it cannot be encoded.
func (b *BinaryMarshaler) Size() int {
	n, err := SizeOf(b.V)
	if err != nil {
		return -1
	}
	return n
}

func (b *BinaryMarshaler) Encode(dst ByteDestination) error { return b.V.Encode(dst) }

// MarshalBinary implements `encoding.BinaryMarshaler`.
// Note: This method allocates a new byte slice. For performance-critical paths,
// use `MarshalTo` or `WriteTo` instead.
func (b *BinaryMarshaler) MarshalBinary() ([]byte, error) { return Marshal(b.V) }

// WriteTo implements `io.WriterTo`.
func (b *BinaryMarshaler) WriteTo(w io.Writer) (int64, error) { return WriteTo(b.V, w) }

// MarshalTo encodes into the provided slice `p` without allocating.
func (b *BinaryMarshaler) MarshalTo(p []byte) (int, error) { return MarshalTo(b.V, p) }

// TextMarshaler exposes a text Encodable as an `encoding.TextMarshaler`.
type TextMarshaler struct {
	V Encodable[StringDestination]
}

// Text wraps v in a TextMarshaler.
func Text(v Encodable[StringDestination]) *TextMarshaler {
	return &TextMarshaler{V: v}
}

func (t *TextMarshaler) MarshalText() ([]byte, error) {
	s, err := MarshalText(t.V)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

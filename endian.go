package encode

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Sized is the set of integer types with a platform-independent width.
// int, uint and uintptr are excluded.
type Sized interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// LE encodes an integer in little-endian byte order, using exactly as many
// bytes as its type occupies in memory.
//
//	encode.LE[uint16]{1} // 0x01 0x00
type LE[T Sized] struct{ V T }

func (v LE[T]) Encode(dst ByteDestination) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v.V))
	return dst.AppendBytes(buf[:unsafe.Sizeof(v.V)])
}

// BE encodes an integer in big-endian byte order, using exactly as many
// bytes as its type occupies in memory.
//
//	encode.BE[uint16]{1} // 0x00 0x01
type BE[T Sized] struct{ V T }

func (v BE[T]) Encode(dst ByteDestination) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v.V))
	return dst.AppendBytes(buf[8-unsafe.Sizeof(v.V):])
}

// LEFloat encodes an IEEE-754 float in little-endian byte order.
type LEFloat[T constraints.Float] struct{ V T }

func (v LEFloat[T]) Encode(dst ByteDestination) error {
	var buf [8]byte
	if unsafe.Sizeof(v.V) == 4 {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v.V)))
		return dst.AppendBytes(buf[:4])
	}
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v.V)))
	return dst.AppendBytes(buf[:])
}

// BEFloat encodes an IEEE-754 float in big-endian byte order.
type BEFloat[T constraints.Float] struct{ V T }

func (v BEFloat[T]) Encode(dst ByteDestination) error {
	var buf [8]byte
	if unsafe.Sizeof(v.V) == 4 {
		binary.BigEndian.PutUint32(buf[:], math.Float32bits(float32(v.V)))
		return dst.AppendBytes(buf[:4])
	}
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(float64(v.V)))
	return dst.AppendBytes(buf[:])
}

// NonZero holds an integer that is known not to be zero.
type NonZero[T Sized] struct{ v T }

// NewNonZero returns ErrZero if v is zero.
func NewNonZero[T Sized](v T) (NonZero[T], error) {
	if v == 0 {
		return NonZero[T]{}, ErrZero
	}
	return NonZero[T]{v}, nil
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T { return n.v }

// LE returns n as a little-endian encodable.
func (n NonZero[T]) LE() LE[T] { return LE[T]{n.v} }

// BE returns n as a big-endian encodable.
func (n NonZero[T]) BE() BE[T] { return BE[T]{n.v} }

// narrow converts n to T, failing if the value does not survive the trip.
func narrow[T constraints.Integer](n int) (T, error) {
	t := T(n)
	if int(t) != n || (n < 0) != (t < 0) {
		return t, fmt.Errorf("%w: %d into %T", ErrNarrowing, n, t)
	}
	return t, nil
}

// TryLE narrows n into T and returns it as a little-endian encodable.
// It has the shape expected by LengthPrefix:
//
//	encode.NewLengthPrefix(inner, encode.TryLE[uint8])
func TryLE[T Sized](n int) (LE[T], error) {
	t, err := narrow[T](n)
	return LE[T]{t}, err
}

// TryBE narrows n into T and returns it as a big-endian encodable.
func TryBE[T Sized](n int) (BE[T], error) {
	t, err := narrow[T](n)
	return BE[T]{t}, err
}

// Uvarint encodes an unsigned integer in the variable-length LEB128 form
// used by encoding/binary, protobuf and WebAssembly.
type Uvarint uint64

func (v Uvarint) Encode(dst ByteDestination) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(v))
	return dst.AppendBytes(buf[:n])
}

// TryUvarint rejects negative lengths.
func TryUvarint(n int) (Uvarint, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d into %T", ErrNarrowing, n, Uvarint(0))
	}
	return Uvarint(n), nil
}

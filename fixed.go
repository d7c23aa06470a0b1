package encode

import (
	"encoding/binary"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. xsync.Map makes it concurrent-safe.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed encodes any struct `Payload` composed of fixed-size fields with
// encoding/binary, eliminating boilerplate for simple records.
//
// Constraint: Payload MUST NOT contain variable-size fields like slices,
// maps, or strings. Encode reports encoding/binary's error for such types.
//
// Unlike the rest of the package Fixed relies on reflection; the combinators
// are the reflection-free way to describe the same layout.
type Fixed[Payload any] struct {
	Payload Payload
	// Order is the byte order of every field. nil means the package Order.
	Order binary.ByteOrder
}

var (
	_ Encodable[ByteDestination] = Fixed[struct{}]{}
	_ Sizer                      = Fixed[struct{}]{}
)

// NewFixed returns a Fixed over v in the package Order.
func NewFixed[Payload any](v Payload) Fixed[Payload] {
	return Fixed[Payload]{Payload: v}
}

// WithByteOrder returns a copy of c that encodes in order.
func (c Fixed[Payload]) WithByteOrder(order binary.ByteOrder) Fixed[Payload] {
	c.Order = order
	return c
}

// Size returns the encoded size of the payload in bytes, or -1 if Payload
// is not fixed-size. The result is cached per type, except for slices
// whose size depends on their length.
func (c Fixed[Payload]) Size() int {
	payloadType := reflect.TypeFor[Payload]()
	if payloadType.Kind() == reflect.Slice {
		return binary.Size(&c.Payload)
	}

	if size, ok := sizeCache.Load(payloadType); ok {
		return size
	}

	size := binary.Size(&c.Payload)
	sizeCache.Store(payloadType, size)
	return size
}

// Encode writes the payload with a single AppendBytes call.
func (c Fixed[Payload]) Encode(dst ByteDestination) error {
	order := c.Order
	if order == nil {
		order = Order
	}
	return binary.Write(IOWriter(dst), order, &c.Payload)
}

package encode

// Encodable is a value that knows how to write its own representation into a
// destination of capability D.
//
// D is normally one of the capability interfaces, ByteDestination or
// StringDestination, so that the same value can be run against any concrete
// sink of that capability, including the size Counter.
//
// Implementations must be pure: no side effects besides writes to dst, and
// the same value must always produce the same bytes. SizeOf relies on this
// to compute sizes by running the real encode path. A panic inside Encode
// is a bug, not an error path.
type Encodable[D Destination] interface {
	// Encode writes the value into dst, stopping at the first failure.
	Encode(dst D) error
}

// EncodeFunc adapts an ordinary function into an Encodable.
type EncodeFunc[D Destination] func(dst D) error

// Encode calls f(dst).
func (f EncodeFunc[D]) Encode(dst D) error { return f(dst) }

// Atomic encodes v into a temporary buffer and appends the result to dst
// in a single call only if the whole encode succeeded. If v fails, dst is
// left untouched.
func Atomic(v Encodable[ByteDestination], dst ByteDestination) error {
	return Stage(v, dst.AppendBytes)
}

// Widen returns v as a byte-level Encodable. Every byte destination is also
// a text destination, so a text value can always be written to one.
func Widen(v Encodable[StringDestination]) Encodable[ByteDestination] {
	return EncodeFunc[ByteDestination](func(dst ByteDestination) error {
		return v.Encode(dst)
	})
}

package encode

import "unsafe"

// Destination is the base capability every sink satisfies. It has no
// operations of its own: failures of the derived capabilities are reported
// as error values, and a destination that can never fail always returns nil.
//
// Structural combinators such as Cond, Iter or FromError only require this
// capability because they never touch the destination themselves.
type Destination interface{}

// StringDestination is a sink that accepts UTF-8 text.
type StringDestination interface {
	Destination
	// AppendString appends s. Implementations must not retain s.
	AppendString(s string) error
}

// ByteDestination is a sink that accepts arbitrary bytes. Every
// ByteDestination is also a StringDestination.
type ByteDestination interface {
	StringDestination
	// AppendBytes appends p. Either all of p is accepted or an error is
	// returned. Implementations must not retain p.
	AppendBytes(p []byte) error
	// AppendByte appends a single byte.
	AppendByte(c byte) error
}

// ByteAppender is the raw byte capability without the string operation.
// WithStrings turns it into a full ByteDestination.
type ByteAppender interface {
	AppendBytes(p []byte) error
	AppendByte(c byte) error
}

// WithStrings returns a ByteDestination that writes strings as their UTF-8
// bytes into a. The string's backing memory is handed to a without a copy,
// which is safe because destinations must not retain or modify their input.
func WithStrings(a ByteAppender) ByteDestination {
	return stringsFromBytes{a}
}

type stringsFromBytes struct{ ByteAppender }

func (d stringsFromBytes) AppendString(s string) error {
	if s == "" {
		return d.AppendBytes(nil)
	}
	return d.AppendBytes(unsafe.Slice(unsafe.StringData(s), len(s)))
}

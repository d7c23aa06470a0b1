package encode

import (
	"fmt"
	"unicode/utf8"
)

// Str encodes a string as-is. It only needs the string capability, so it
// can be used with text and byte destinations alike:
//
//	encode.Str[encode.ByteDestination]("hello")
//	encode.Str[encode.StringDestination]("hello")
type Str[D StringDestination] string

func (s Str[D]) Encode(dst D) error { return dst.AppendString(string(s)) }

// Rune encodes a character as its UTF-8 form. Invalid code points encode as
// the replacement character U+FFFD.
type Rune[D StringDestination] rune

func (r Rune[D]) Encode(dst D) error {
	if r >= 0 && r < utf8.RuneSelf {
		return dst.AppendString(ascii[r : r+1])
	}
	return dst.AppendString(string(rune(r)))
}

// ascii holds every single-byte rune so that the common case needs no conversion.
const ascii = "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" +
	"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f" +
	" !\"#$%&'()*+,-./0123456789:;<=>?" +
	"@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_" +
	"`abcdefghijklmnopqrstuvwxyz{|}~\x7f"

// Formatted renders Format and Args with fmt straight into the destination,
// without building an intermediate string. The destination's error is
// returned unchanged.
//
// Args must format deterministically: the same Formatted value has to
// render the same text every time.
type Formatted[D StringDestination] struct {
	Format string
	Args   []any
}

// Format returns a Formatted for the given format and arguments.
func Format[D StringDestination](format string, args ...any) Formatted[D] {
	return Formatted[D]{Format: format, Args: args}
}

func (f Formatted[D]) Encode(dst D) error {
	_, err := fmt.Fprintf(stringWriterAdapter{dst}, f.Format, f.Args...)
	return err
}

// Empty encodes nothing and never fails.
type Empty[D Destination] struct{}

func (Empty[D]) Encode(D) error { return nil }

package encode

import "strings"

// Buffer is a growable byte destination. Appends never fail.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	B []byte
}

var _ ByteDestination = (*Buffer)(nil)

// NewBuffer creates a Buffer that appends to p[:0], reusing its capacity.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{B: p[:0]}
}

func (b *Buffer) AppendBytes(p []byte) error {
	b.B = append(b.B, p...)
	return nil
}

func (b *Buffer) AppendByte(c byte) error {
	b.B = append(b.B, c)
	return nil
}

func (b *Buffer) AppendString(s string) error {
	b.B = append(b.B, s...)
	return nil
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

// Grow ensures room for another n bytes without reallocating.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) < n {
		grown := make([]byte, len(b.B), len(b.B)+n)
		copy(grown, b.B)
		b.B = grown
	}
}

// Bytes returns the written data. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.B) }

// Reset empties the buffer and keeps its capacity.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// TextBuffer is a growable text destination backed by strings.Builder.
// It only offers the string capability. Appends never fail.
type TextBuffer struct {
	sb strings.Builder
}

var _ StringDestination = (*TextBuffer)(nil)

func (t *TextBuffer) AppendString(s string) error {
	t.sb.WriteString(s)
	return nil
}

// String returns the accumulated text.
func (t *TextBuffer) String() string { return t.sb.String() }

// Len returns the number of bytes written.
func (t *TextBuffer) Len() int { return t.sb.Len() }

// Reset empties the buffer.
func (t *TextBuffer) Reset() { t.sb.Reset() }

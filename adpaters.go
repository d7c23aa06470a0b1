package encode

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"
)

type (
	bytesBufferWriterAdapter struct{ *bytes.Buffer }
	bufferWriterAdapter      struct{ *Buffer }
	ioWriterAdapter          struct{ dst ByteDestination }
	stringWriterAdapter      struct{ dst StringDestination }
)

func (w *bytesBufferWriterAdapter) Flush() error { return nil }
func (w *bytesBufferWriterAdapter) Size() int    { return w.Available() }
func (w *bufferWriterAdapter) Flush() error      { return nil }
func (w *bufferWriterAdapter) Size() int         { return cap(w.B) - len(w.B) }

func (w *bufferWriterAdapter) WriteByte(c byte) error {
	return w.AppendByte(c)
}

func (w *bufferWriterAdapter) WriteString(s string) (int, error) {
	return len(s), w.AppendString(s)
}

// IOWriter returns an io.Writer view of dst. Each Write is forwarded as one
// AppendBytes call, so a rejected write reports zero bytes written.
func IOWriter(dst ByteDestination) io.Writer {
	return ioWriterAdapter{dst}
}

func (w ioWriterAdapter) Write(p []byte) (int, error) {
	if err := w.dst.AppendBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w ioWriterAdapter) WriteByte(c byte) error { return w.dst.AppendByte(c) }

func (w ioWriterAdapter) WriteString(s string) (int, error) {
	if err := w.dst.AppendString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// Write forwards p to a text destination. The bytes are handed over as a
// string without copying; destinations must not retain it.
func (w stringWriterAdapter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := w.dst.AppendString(unsafe.String(&p[0], len(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w stringWriterAdapter) WriteString(s string) (int, error) {
	if err := w.dst.AppendString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// FormatState adapts the fmt.State handed to a Format method into a
// StringDestination. Errors from the formatter are surfaced unchanged.
type FormatState struct {
	fmt.State
}

var _ StringDestination = FormatState{}

func (f FormatState) AppendString(s string) error {
	_, err := io.WriteString(f.State, s)
	return err
}

// Formatter makes a text Encodable usable with the fmt verbs %s and %v.
//
//	fmt.Printf("%s\n", encode.Formatter[json.Value]{V: doc})
type Formatter[E Encodable[StringDestination]] struct {
	V E
}

// Format implements fmt.Formatter. An encode failure is rendered the way
// fmt renders bad values.
func (f Formatter[E]) Format(state fmt.State, verb rune) {
	if err := f.V.Encode(FormatState{state}); err != nil {
		fmt.Fprintf(state, "%%!%c(encode error: %v)", verb, err)
	}
}

package encode

import (
	"bufio"
	"bytes"
	"io"
)

type flushWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	Size() int
	Flush() error
}

// Writer is a ByteDestination backed by an io.Writer such as a file or a
// network connection. It wraps bufio.Writer for efficiency and tracks the
// first error that occurs. After an error, all subsequent appends become
// no-ops that return that same error.
//
// A Writer must not be shared by concurrent encode calls.
type Writer struct {
	w     flushWriter
	count int64 // total bytes accepted
	err   error // first error encountered. Subsequent appends become no-ops.
	depth int
}

var _ ByteDestination = (*Writer)(nil)

// NewWriterSize creates a new Writer with a specified buffer size.
// It returns an error to prevent double-buffering, a common source of bugs.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	// Reuse the parent's buffer by writing through the parent itself, so
	// that its count and first error cover the nested writes too.
	case *Writer:
		if bw.w.Size() >= size {
			return &Writer{w: bw, depth: bw.depth + 1}, nil
		}

	// prevent unpredictable double-buffering.
	case *bufio.Writer:
		if bw.Size() >= size {
			return &Writer{w: bw, depth: 1}, nil
		}
		return nil, ErrAlreadyBuffered

	// underlying is a buf so we don't need buffering
	case *Buffer:
		return &Writer{w: &bufferWriterAdapter{bw}}, nil
	case *bytes.Buffer:
		return &Writer{w: &bytesBufferWriterAdapter{bw}}, nil
	}

	// default use bufio
	return &Writer{w: bufio.NewWriterSize(w, size)}, nil
}

// NewWriter creates a new Writer with a default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

func (w *Writer) AppendBytes(p []byte) error {
	if len(p) == 0 || w.err != nil {
		return w.err
	}
	n, err := w.w.Write(p)
	w.account(n, len(p), err)
	return w.err
}

func (w *Writer) AppendString(s string) error {
	if s == "" || w.err != nil {
		return w.err
	}
	n, err := w.w.WriteString(s)
	w.account(n, len(s), err)
	return w.err
}

func (w *Writer) AppendByte(c byte) error {
	if w.err != nil {
		return w.err
	}
	err := w.w.WriteByte(c)
	if err == nil {
		w.count++
	} else {
		w.err = err
	}
	return err
}

// Write implements io.Writer with the same first-error semantics.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.account(n, len(p), err)
	return max(n, 0), w.err
}

// WriteByte implements io.ByteWriter.
func (w *Writer) WriteByte(c byte) error { return w.AppendByte(c) }

// WriteString implements io.StringWriter with the same first-error semantics.
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.WriteString(s)
	w.account(n, len(s), err)
	return max(n, 0), w.err
}

func (w *Writer) account(n, want int, err error) {
	switch {
	case n < 0 || n > want:
		w.setError(ErrInvalidWrite)
		return
	case err == nil && n < want:
		err = io.ErrShortWrite
	}
	w.count += int64(n)
	w.setError(err)
}

func (w *Writer) Size() int    { return w.w.Size() }
func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes the buffer and returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	// To prevent nested writers from flushing the buffer prematurely.
	// Only the outermost writer should be responsible for the final flush.
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

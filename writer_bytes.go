package encode

// FixedBuffer is a destination that writes into a pre-allocated byte slice.
// It never grows the slice. An append that does not fit entirely is rejected
// with ErrInsufficientSpace and writes nothing, so a failed encode leaves
// every byte accepted so far in place and nothing else.
type FixedBuffer struct {
	B []byte // destination slice
	N int    // current write position
}

var _ ByteDestination = (*FixedBuffer)(nil)

// NewFixedBuffer creates a FixedBuffer over the full capacity of p.
func NewFixedBuffer(p []byte) *FixedBuffer {
	return &FixedBuffer{B: p[:cap(p)]}
}

func (w *FixedBuffer) AppendBytes(p []byte) error {
	if len(p) > len(w.B)-w.N {
		return ErrInsufficientSpace
	}
	w.N += copy(w.B[w.N:], p)
	return nil
}

func (w *FixedBuffer) AppendString(s string) error {
	if len(s) > len(w.B)-w.N {
		return ErrInsufficientSpace
	}
	w.N += copy(w.B[w.N:], s)
	return nil
}

func (w *FixedBuffer) AppendByte(c byte) error {
	if w.N >= len(w.B) {
		return ErrInsufficientSpace
	}
	w.B[w.N] = c
	w.N++
	return nil
}

// Write implements io.Writer with the same all-or-nothing rule: a write
// that does not fit reports zero bytes and ErrInsufficientSpace.
func (w *FixedBuffer) Write(p []byte) (int, error) {
	if err := w.AppendBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reset allows the underlying byte slice to be reused.
func (w *FixedBuffer) Reset() { w.N = 0 }

// Len returns the number of bytes written.
func (w *FixedBuffer) Len() int { return w.N }

// Size returns the capacity of the underlying byte slice.
func (w *FixedBuffer) Size() int { return len(w.B) }

// Available returns the number of bytes available for writing.
func (w *FixedBuffer) Available() int { return len(w.B) - w.N }

// Bytes returns a slice view of the written data.
func (w *FixedBuffer) Bytes() []byte { return w.B[:w.N] }

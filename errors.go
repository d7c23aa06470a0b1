package encode

import "errors"

var (
	// ErrInsufficientSpace indicates that a fixed-capacity destination has no
	// room left for the bytes being appended. Nothing is written when it is returned.
	ErrInsufficientSpace = errors.New("encode: the provided buffer has no space left for encoding")

	// ErrNarrowing indicates that a length or number does not fit the
	// fixed-width integer chosen to represent it. It is always wrapped with
	// the offending value and the target width.
	ErrNarrowing = errors.New("encode: value does not fit the target integer width")

	// ErrZero indicates that a zero was given where a non-zero integer is required.
	ErrZero = errors.New("encode: zero value for a non-zero integer")

	// ErrInteriorNul indicates that a null-terminated string already contains
	// a NUL byte, which would make the terminator ambiguous.
	ErrInteriorNul = errors.New("encode: null-terminated string contains an interior NUL byte")

	// ErrAlignment indicates an alignment that is not zero or a power of two.
	ErrAlignment = errors.New("encode: alignment is not a power of two")

	// ErrTruncatedData indicates that an encode wrote fewer or more bytes than
	// the size computed for it beforehand.
	ErrTruncatedData = errors.New("encode: encoded size differs from computed size")

	// ErrNilIO indicates that NewWriter was called with a nil io.Writer.
	ErrNilIO = errors.New("encode: NewWriter called with a nil io.Writer")

	// ErrAlreadyBuffered indicates that NewWriter was called with an already-buffered
	// writer whose buffer is smaller than requested, which would lead to double buffering.
	ErrAlreadyBuffered = errors.New("encode: writer is already buffered")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid count from Write.
	ErrInvalidWrite = errors.New("encode: writer returned invalid count from Write")
)

package encode

// Counter is a destination that stores nothing and only counts how many
// bytes would have been written. It never fails.
//
// Running an Encodable against a Counter is how sizes are computed: there is
// no separate sizing algorithm, the real encode path is executed against a
// different sink.
type Counter struct {
	n int
}

var _ ByteDestination = (*Counter)(nil)

func (c *Counter) AppendBytes(p []byte) error  { c.n += len(p); return nil }
func (c *Counter) AppendByte(byte) error       { c.n++; return nil }
func (c *Counter) AppendString(s string) error { c.n += len(s); return nil }
func (c *Counter) Write(p []byte) (int, error) { c.n += len(p); return len(p), nil }
func (c *Counter) Len() int                    { return c.n }
func (c *Counter) Reset()                      { c.n = 0 }

// SizeOf returns the exact number of bytes v writes into a byte destination.
// The only possible errors are the ones v itself decides to return.
func SizeOf(v Encodable[ByteDestination]) (int, error) {
	var c Counter
	if err := v.Encode(&c); err != nil {
		return 0, err
	}
	return c.n, nil
}

// TextSizeOf returns the exact number of bytes v writes into a text destination.
func TextSizeOf(v Encodable[StringDestination]) (int, error) {
	var c Counter
	if err := v.Encode(&c); err != nil {
		return 0, err
	}
	return c.n, nil
}

// Discard is a destination that accepts and drops everything.
// It is useful to run pure encoding logic without observing the output.
var Discard ByteDestination = discard{}

type discard struct{}

func (discard) AppendBytes([]byte) error  { return nil }
func (discard) AppendByte(byte) error     { return nil }
func (discard) AppendString(string) error { return nil }

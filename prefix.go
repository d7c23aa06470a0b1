package encode

// LengthPrefix encodes Inner preceded by its size in bytes, the classic
// length-value layout (TLV when Inner starts with a tag of its own).
//
// The size is computed by running Inner against a Counter, narrowed into
// the length type L by Length, and encoded before Inner. Length decides
// both the width and the byte order of the prefix: TryLE, TryBE and
// TryUvarint all fit. Formats whose length counts the prefix itself do
// that adjustment inside Length.
//
// When Convert is set every failure, whether from sizing, narrowing or
// writing, is passed through it so the caller sees one error kind.
type LengthPrefix[L Encodable[ByteDestination]] struct {
	Inner   Encodable[ByteDestination]
	Length  func(n int) (L, error)
	Convert func(error) error
}

// NewLengthPrefix returns a LengthPrefix with no error conversion.
//
//	encode.NewLengthPrefix(encode.Str[encode.ByteDestination]("hello"), encode.TryLE[uint8])
func NewLengthPrefix[L Encodable[ByteDestination]](inner Encodable[ByteDestination], length func(n int) (L, error)) LengthPrefix[L] {
	return LengthPrefix[L]{Inner: inner, Length: length}
}

func (p LengthPrefix[L]) Encode(dst ByteDestination) error {
	size, err := SizeOf(p.Inner)
	if err != nil {
		return p.fail(err)
	}
	l, err := p.Length(size)
	if err != nil {
		return p.fail(err)
	}
	if err := l.Encode(dst); err != nil {
		return p.fail(err)
	}
	if err := p.Inner.Encode(dst); err != nil {
		return p.fail(err)
	}
	return nil
}

func (p LengthPrefix[L]) fail(err error) error {
	if p.Convert == nil {
		return err
	}
	return p.Convert(err)
}

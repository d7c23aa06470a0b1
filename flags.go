package encode

// Flags packs eight booleans into one byte. The first flag is the most
// significant bit.
type Flags [8]bool

// FlagsFromByte unpacks b, most significant bit first.
func FlagsFromByte(b byte) Flags {
	var f Flags
	for i := range f {
		f[i] = b&(0x80>>i) != 0
	}
	return f
}

// Byte returns the packed form of f.
func (f Flags) Byte() byte {
	var b byte
	for i, set := range f {
		if set {
			b |= 0x80 >> i
		}
	}
	return b
}

func (f Flags) Encode(dst ByteDestination) error { return dst.AppendByte(f.Byte()) }

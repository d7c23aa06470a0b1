package encode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestEndianness(t *testing.T) {
	tests := []struct {
		name string
		v    Encodable[ByteDestination]
		want []byte
	}{
		{"LE16", LE[uint16]{1}, []byte{1, 0}},
		{"BE16", BE[uint16]{1}, []byte{0, 1}},
		{"LE8", LE[uint8]{0xab}, []byte{0xab}},
		{"LENegative32", LE[int32]{-2}, []byte{0xfe, 0xff, 0xff, 0xff}},
		{"BENegative16", BE[int16]{-2}, []byte{0xff, 0xfe}},
		{"BE64", BE[uint64]{0x0102030405060708}, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"LE64", LE[uint64]{0x0102030405060708}, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
		{"LEFloat64", LEFloat[float64]{5.05}, []byte{0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0x14, 0x40}},
		{"BEFloat64", BEFloat[float64]{5.05}, []byte{0x40, 0x14, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33}},
		{"LEFloat32", LEFloat[float32]{1}, []byte{0, 0, 0x80, 0x3f}},
		{"BEFloat32", BEFloat[float32]{1}, []byte{0x3f, 0x80, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeBytes(t, tt.v))
		})
	}
}

func TestSizedWidths(t *testing.T) {
	tests := []struct {
		v    Encodable[ByteDestination]
		want int
	}{
		{LE[int8]{-1}, 1},
		{BE[uint16]{1}, 2},
		{LE[int32]{1}, 4},
		{BE[uint64]{1}, 8},
	}
	for _, tt := range tests {
		n, err := SizeOf(tt.v)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n)
	}

	type port uint16
	assert.Equal(t, []byte{0x1f, 0x90}, encodeBytes(t, BE[port]{8080}))
}

func TestNonZero(t *testing.T) {
	_, err := NewNonZero[uint16](0)
	assert.ErrorIs(t, err, ErrZero)

	n, err := NewNonZero[uint16](0x0102)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), n.Get())
	assert.Equal(t, []byte{1, 2}, encodeBytes(t, n.BE()))
	assert.Equal(t, []byte{2, 1}, encodeBytes(t, n.LE()))
}

func TestNarrowing(t *testing.T) {
	t.Run("Fits", func(t *testing.T) {
		v, err := TryLE[uint8](255)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff}, encodeBytes(t, v))

		s, err := TryLE[int8](-128)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x80}, encodeBytes(t, s))

		b, err := TryBE[int64](math.MaxInt64)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, encodeBytes(t, b))
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := TryLE[uint8](256)
		assert.ErrorIs(t, err, ErrNarrowing)
		_, err = TryLE[int8](128)
		assert.ErrorIs(t, err, ErrNarrowing)
		_, err = TryBE[uint16](70000)
		assert.ErrorIs(t, err, ErrNarrowing)
	})

	t.Run("NegativeIntoUnsigned", func(t *testing.T) {
		_, err := TryLE[uint8](-1)
		assert.ErrorIs(t, err, ErrNarrowing)
		_, err = TryLE[uint64](-1)
		require.ErrorIs(t, err, ErrNarrowing)
		assert.Contains(t, err.Error(), "uint64")
	})
}

func TestUvarint(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 35, math.MaxUint64} {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			assert.Equal(t, binary.AppendUvarint(nil, v), encodeBytes(t, Uvarint(v)))
		})
	}

	_, err := TryUvarint(-1)
	assert.ErrorIs(t, err, ErrNarrowing)
}

func TestCond(t *testing.T) {
	nonEmpty := func(s CStr) bool { return s != "" }

	assert.Equal(t, []byte("hello\x00"), encodeBytes(t, NewCond[ByteDestination](CStr("hello"), nonEmpty)))
	assert.Empty(t, encodeBytes(t, NewCond[ByteDestination](CStr(""), nonEmpty)))

	t.Run("PredicateDependsOnValue", func(t *testing.T) {
		even := func(v LE[uint16]) bool { return v.V%2 == 0 }
		var conds []Cond[ByteDestination, LE[uint16]]
		for i := range uint16(5) {
			conds = append(conds, NewCond[ByteDestination](LE[uint16]{i}, even))
		}
		v := IterSlice[ByteDestination](conds)
		assert.Equal(t, []byte{0, 0, 2, 0, 4, 0}, encodeBytes(t, v))

		n, err := SizeOf(v)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	})
}

func TestLengthPrefix(t *testing.T) {
	t.Run("U8Prefix", func(t *testing.T) {
		v := NewLengthPrefix(Str[ByteDestination]("hello"), TryLE[uint8])
		assert.Equal(t, []byte("\x05hello"), encodeBytes(t, v))
	})

	t.Run("BE16Prefix", func(t *testing.T) {
		v := NewLengthPrefix(Bytes{9, 9, 9}, TryBE[uint16])
		assert.Equal(t, []byte{0, 3, 9, 9, 9}, encodeBytes(t, v))
	})

	t.Run("UvarintPrefix", func(t *testing.T) {
		got := encodeBytes(t, NewLengthPrefix(Zeros(300), TryUvarint))
		assert.Equal(t, []byte{0xac, 0x02}, got[:2])
		assert.Len(t, got, 302)
	})

	t.Run("Empty", func(t *testing.T) {
		v := NewLengthPrefix(Empty[ByteDestination]{}, TryLE[uint32])
		assert.Equal(t, []byte{0, 0, 0, 0}, encodeBytes(t, v))
	})

	t.Run("Nested", func(t *testing.T) {
		inner := NewLengthPrefix(Str[ByteDestination]("ab"), TryLE[uint8])
		outer := NewLengthPrefix(Seq[ByteDestination](inner, U8(0)), TryLE[uint8])
		assert.Equal(t, []byte{4, 2, 'a', 'b', 0}, encodeBytes(t, outer))
	})

	t.Run("SelfInclusiveLength", func(t *testing.T) {
		v := NewLengthPrefix(Str[ByteDestination]("abc"), func(n int) (LE[int32], error) {
			return TryLE[int32](n + 4)
		})
		assert.Equal(t, []byte{7, 0, 0, 0, 'a', 'b', 'c'}, encodeBytes(t, v))
	})

	t.Run("NarrowingFailureWritesNothing", func(t *testing.T) {
		var b Buffer
		err := NewLengthPrefix(Zeros(256), TryLE[uint8]).Encode(&b)
		assert.ErrorIs(t, err, ErrNarrowing)
		assert.Empty(t, b.B)
	})

	t.Run("InnerFailureDuringSizing", func(t *testing.T) {
		var b Buffer
		err := NewLengthPrefix(CStr("a\x00"), TryLE[uint8]).Encode(&b)
		assert.ErrorIs(t, err, ErrInteriorNul)
		assert.Empty(t, b.B)
	})

	t.Run("Convert", func(t *testing.T) {
		v := NewLengthPrefix(Str[ByteDestination]("hello"), TryLE[uint8])
		v.Convert = func(err error) error { return fmt.Errorf("field: %w", err) }

		err := v.Encode(NewFixedBuffer(make([]byte, 3)))
		require.ErrorIs(t, err, ErrInsufficientSpace)
		assert.Contains(t, err.Error(), "field: ")
	})
}

func TestIter(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 3}, encodeBytes(t, IterSlice[ByteDestination]([]U8{1, 2, 3})))
	assert.Empty(t, encodeBytes(t, IterSlice[ByteDestination]([]U8{})))
	assert.Empty(t, encodeBytes(t, Iter[ByteDestination, U8]{}))

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		items := []Result[ByteDestination, U8]{
			Ok[ByteDestination](U8(1)),
			Fail[ByteDestination, U8](errBoom),
			Ok[ByteDestination](U8(3)),
		}
		var b Buffer
		err := IterSlice[ByteDestination](items).Encode(&b)
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, []byte{1}, b.B)
	})

	t.Run("Seq", func(t *testing.T) {
		words := NewIter[StringDestination](slices.Values([]Str[StringDestination]{"a", "b"}))
		assert.Equal(t, "ab", encodeText(t, words))
	})
}

func TestSeparated(t *testing.T) {
	comma := Str[StringDestination](", ")
	join := func(words ...Str[StringDestination]) string {
		return encodeText(t, SeparatedSlice[StringDestination](words, comma))
	}

	assert.Equal(t, "hello, world, another", join("hello", "world", "another"))
	assert.Equal(t, "one", join("one"))
	assert.Equal(t, "", join())

	t.Run("Bytes", func(t *testing.T) {
		v := NewSeparated[ByteDestination](slices.Values([]U8{1, 2, 3}), U8(0))
		assert.Equal(t, []byte{1, 0, 2, 0, 3}, encodeBytes(t, v))
	})

	t.Run("SeparatorFailureStops", func(t *testing.T) {
		v := SeparatedSlice[ByteDestination]([]U8{1, 2}, Fail[ByteDestination, U8](errBoom))
		var b Buffer
		assert.ErrorIs(t, v.Encode(&b), errBoom)
		assert.Equal(t, []byte{1}, b.B)
	})
}

type tagError struct{ cause error }

func (e *tagError) Error() string { return "tagged: " + e.cause.Error() }
func (e *tagError) Unwrap() error { return e.cause }

func TestFromError(t *testing.T) {
	wrap := func(err error) *tagError { return &tagError{cause: err} }

	t.Run("Success", func(t *testing.T) {
		var b Buffer
		err := NewFromError[ByteDestination](U8(1), wrap).Encode(&b)
		assert.Nil(t, err, "success must not return a typed nil")
		assert.Equal(t, []byte{1}, b.B)
	})

	t.Run("ConvertsDestinationError", func(t *testing.T) {
		err := NewFromError[ByteDestination](U8(1), wrap).Encode(NewFixedBuffer(nil))
		var te *tagError
		require.ErrorAs(t, err, &te)
		assert.ErrorIs(t, err, ErrInsufficientSpace)
	})

	t.Run("ConvertsValueError", func(t *testing.T) {
		inner := Seq[ByteDestination](CStr("ok"), CStr("bad\x00"))
		err := NewFromError[ByteDestination](inner, wrap).Encode(Discard)
		var te *tagError
		require.ErrorAs(t, err, &te)
		assert.ErrorIs(t, te.cause, ErrInteriorNul)
	})
}

func TestOptionAndResult(t *testing.T) {
	assert.Equal(t, []byte{1}, encodeBytes(t, Some[ByteDestination](U8(1))))
	assert.Empty(t, encodeBytes(t, None[ByteDestination, U8]()))
	assert.Equal(t, []byte{2}, encodeBytes(t, Ok[ByteDestination](U8(2))))

	var b Buffer
	err := Fail[ByteDestination, U8](errBoom).Encode(&b)
	assert.Same(t, errBoom, err, "stored failures are returned unchanged")
	assert.Empty(t, b.B)
}

func TestTuples(t *testing.T) {
	assert.Equal(t, []byte("hello\x00"), encodeBytes(t, NewTuple2[ByteDestination](Str[ByteDestination]("hello"), U8(0))))

	t8 := NewTuple8[ByteDestination](U8(1), U8(2), U8(3), U8(4), U8(5), U8(6), U8(7), U8(8))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, encodeBytes(t, t8))

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		var b Buffer
		err := NewTuple3[ByteDestination](U8(1), CStr("a\x00"), U8(3)).Encode(&b)
		assert.ErrorIs(t, err, ErrInteriorNul)
		assert.Equal(t, []byte{1}, b.B)
	})

	t.Run("Text", func(t *testing.T) {
		v := NewTuple3[StringDestination](Str[StringDestination]("x="), Format[StringDestination]("%d", 5), Rune[StringDestination](';'))
		assert.Equal(t, "x=5;", encodeText(t, v))
	})

	t.Run("Seq", func(t *testing.T) {
		assert.Empty(t, encodeBytes(t, Seq[ByteDestination]()))
		assert.Equal(t, []byte("hello\x00"), encodeBytes(t, Seq[ByteDestination](Str[ByteDestination]("hello"), U8(0))))
	})
}

func TestFlags(t *testing.T) {
	f := Flags{true, false, false, false, false, false, false, true}
	assert.Equal(t, []byte{0x81}, encodeBytes(t, f))
	assert.Equal(t, []byte{0x40}, encodeBytes(t, Flags{false, true}))

	for b := 0; b < 256; b++ {
		require.Equal(t, byte(b), FlagsFromByte(byte(b)).Byte())
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		name  string
		inner Encodable[ByteDestination]
		align int
		want  []byte
	}{
		{"Pads", Bytes{1, 2, 3}, 4, []byte{1, 2, 3, 0}},
		{"AlreadyAligned", Bytes{1, 2, 3, 4, 5, 6, 7, 8}, 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"Disabled", Bytes{1}, 0, []byte{1}},
		{"EmptyInner", Empty[ByteDestination]{}, 8, nil},
		{"Eight", Str[ByteDestination]("abc"), 8, []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeBytes(t, Aligned{Inner: tt.inner, Align: tt.align}))
		})
	}
}

func TestAlignedRejectsBadAlignment(t *testing.T) {
	for _, align := range []int{3, 6, 12, -4} {
		b := Buffer{}
		err := Aligned{Inner: Bytes{1, 2, 3}, Align: align}.Encode(&b)
		assert.ErrorIs(t, err, ErrAlignment, "align %d", align)
		assert.Zero(t, b.Len(), "align %d", align)
	}

	_, err := SizeOf(List[Bytes]{Items: []Bytes{{1}, {2}}, Alignment: 6})
	assert.ErrorIs(t, err, ErrAlignment)
}

func TestList(t *testing.T) {
	items := []Bytes{{1}, {2, 3}, {4}}

	assert.Equal(t, []byte{1, 2, 3, 4}, encodeBytes(t, NewList(items)))
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 3, 0, 0, 4}, encodeBytes(t, NewList4(items)))
	assert.Equal(t, 3, NewList8(items).Len())

	n, err := SizeOf(NewList8(items))
	require.NoError(t, err)
	assert.Equal(t, 8+8+1, n)
}

package encode

import (
	"bytes"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_MatchesEncodingBinary(t *testing.T) {
	payload := mockPayload{ID: 0x01020304, Data: [4]byte{5, 6, 7, 8}}

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			var want bytes.Buffer
			require.NoError(t, binary.Write(&want, order, &payload))

			got := encodeBytes(t, NewFixed(payload).WithByteOrder(order))
			assert.Equal(t, want.Bytes(), got)
		})
	}

	t.Run("DefaultOrder", func(t *testing.T) {
		got := encodeBytes(t, NewFixed(payload))
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, got)
	})
}

func TestFixed_SizeCache(t *testing.T) {
	c := NewFixed(mockPayload{ID: 1})
	expectedSize := 8 // uint32(4) + [4]byte(4)

	// The first call populates the cache.
	assert.Equal(t, expectedSize, c.Size())
	// The second call hits the cache.
	assert.Equal(t, expectedSize, c.Size())

	n, err := SizeOf(c)
	require.NoError(t, err)
	assert.Equal(t, expectedSize, n)

	// Verify the cache is shared globally.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c2 := NewFixed(mockPayload{ID: 2})
			assert.Equal(t, expectedSize, c2.Size())
		}()
	}
	wg.Wait()
}

func TestFixed_SliceSizeFollowsLength(t *testing.T) {
	assert.Equal(t, 4, NewFixed([]uint16{1, 2}).Size())

	longer := NewFixed([]uint16{1, 2, 3})
	assert.Equal(t, 6, longer.Size())
	n, err := SizeOf(longer)
	require.NoError(t, err)
	assert.Equal(t, longer.Size(), n)
	assert.Equal(t, []byte{0, 1, 0, 2, 0, 3}, encodeBytes(t, longer))
}

func TestFixed_Errors(t *testing.T) {
	t.Run("ShortBuffer", func(t *testing.T) {
		c := NewFixed(mockPayload{})
		buf := NewFixedBuffer(make([]byte, c.Size()-1))
		assert.ErrorIs(t, c.Encode(buf), ErrInsufficientSpace)
		assert.Zero(t, buf.Len())
	})

	t.Run("VariableSizePayload", func(t *testing.T) {
		c := NewFixed(struct{ Name string }{"x"})
		assert.Equal(t, -1, c.Size())
		assert.Error(t, c.Encode(Discard))
	})
}

package encode

import "sync"

// bufPool reuses scratch buffers for encodes that must be staged before
// they are committed, such as Atomic. This reduces GC pressure by avoiding
// frequent allocations.
var bufPool = sync.Pool{
	New: func() any {
		// A 4KB default is chosen to avoid re-allocations for common payload sizes.
		return &Buffer{B: make([]byte, 0, 4096)}
	},
}

// maxPooled keeps one oversized payload from pinning memory in the pool.
const maxPooled = 1 << 20

func getBuffer() *Buffer {
	b := bufPool.Get().(*Buffer)
	b.Reset()
	return b
}

func putBuffer(b *Buffer) {
	if cap(b.B) > maxPooled {
		return
	}
	bufPool.Put(b)
}

// Stage encodes v into a pooled scratch buffer and passes the bytes to
// commit. The slice is only valid during the call to commit.
func Stage(v Encodable[ByteDestination], commit func(p []byte) error) error {
	b := getBuffer()
	defer putBuffer(b)

	if err := v.Encode(b); err != nil {
		return err
	}
	return commit(b.B)
}

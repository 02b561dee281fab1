package sink

import (
	"github.com/arloliu/varbit/internal/pool"
)

// Buffer is a pooled in-memory byte sink that collects a packed stream.
//
// The backing storage comes from an internal buffer pool; call Release when
// done to return it. A released Buffer is unusable and any further use
// panics.
type Buffer struct {
	bb *pool.ByteBuffer
}

// NewBuffer obtains a Buffer backed by pooled storage.
func NewBuffer() *Buffer {
	return &Buffer{bb: pool.GetStreamBuffer()}
}

// Write appends data to the buffer, growing it as needed.
func (b *Buffer) Write(data []byte) (int, error) {
	if b.bb == nil {
		panic("buffer already released - cannot write after Release()")
	}

	return b.bb.Write(data)
}

// WriteByte appends a single byte to the buffer, growing it as needed.
func (b *Buffer) WriteByte(c byte) error {
	if b.bb == nil {
		panic("buffer already released - cannot write after Release()")
	}

	return b.bb.WriteByte(c)
}

// Bytes returns the collected stream bytes.
//
// The returned slice references the pooled storage and is valid until the
// next Write, Reset, or Release. The caller must not modify it.
func (b *Buffer) Bytes() []byte {
	if b.bb == nil {
		panic("buffer already released - cannot access bytes after Release()")
	}

	return b.bb.Bytes()
}

// Len returns the number of collected bytes.
func (b *Buffer) Len() int {
	if b.bb == nil {
		return 0
	}

	return b.bb.Len()
}

// Reset discards the collected bytes but keeps the storage for reuse.
func (b *Buffer) Reset() {
	if b.bb == nil {
		return
	}

	b.bb.Reset()
}

// Release returns the backing storage to the pool, making the Buffer
// unusable. Retrieve the collected bytes with Bytes() before releasing.
// Releasing twice is a no-op.
func (b *Buffer) Release() {
	if b.bb == nil {
		return
	}

	pool.PutStreamBuffer(b.bb)
	b.bb = nil
}

package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte{0x1, 0x2, 0x3})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.NoError(t, bb.WriteByte(0x4))

	require.Equal(t, 4, bb.Len())
	require.Equal(t, []byte{0x1, 0x2, 0x3, 0x4}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte{0x1, 0x2})

	capBefore := bb.Cap()
	bb.Reset()

	require.Zero(t, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_GrowsBeyondDefault(t *testing.T) {
	bb := NewByteBuffer(4)

	payload := bytes.Repeat([]byte{0xAB}, 64)
	_, err := bb.Write(payload)
	require.NoError(t, err)

	require.Equal(t, payload, bb.Bytes())
	require.GreaterOrEqual(t, bb.Cap(), 64)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte{0xDE, 0xAD})

	var dst bytes.Buffer
	n, err := bb.WriteTo(&dst)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, []byte{0xDE, 0xAD}, dst.Bytes())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	_, _ = bb.Write([]byte{0x1, 0x2, 0x3})
	p.Put(bb)

	// Buffers come back from the pool reset.
	bb = p.Get()
	require.Zero(t, bb.Len())

	p.Put(nil) // Must not panic.
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	_, _ = bb.Write(bytes.Repeat([]byte{0x0}, 64))
	require.Greater(t, bb.Cap(), 32)

	// Put must not retain it; nothing to assert beyond not panicking,
	// since sync.Pool gives no visibility, but the threshold branch runs.
	p.Put(bb)
}

func TestGetStreamBuffer(t *testing.T) {
	bb := GetStreamBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), StreamBufferDefaultSize)

	PutStreamBuffer(bb)
}

package varbit

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/varbit/bitstream"
	"github.com/arloliu/varbit/compress"
	"github.com/arloliu/varbit/format"
)

// controlStream packs the given writes with a bare Packer for comparison
// against the StreamWriter pipeline.
func controlStream(t *testing.T, values []uint64, bits int) ([]byte, int) {
	t.Helper()

	var buf bytes.Buffer
	p := bitstream.NewPacker()
	for _, v := range values {
		require.NoError(t, p.Write64(&buf, v, bits))
	}
	padding, err := p.Flush(&buf)
	require.NoError(t, err)

	return buf.Bytes(), padding
}

func sevenBitSeries(count int) []uint64 {
	values := make([]uint64, count)
	for i := range values {
		values[i] = uint64(i) & 0x7F
	}

	return values
}

func TestNewStreamWriter_Defaults(t *testing.T) {
	values := sevenBitSeries(143)
	want, wantPad := controlStream(t, values, 7)

	var dst bytes.Buffer
	sw, err := NewStreamWriter(&dst)
	require.NoError(t, err)

	for _, v := range values {
		require.NoError(t, sw.WriteBits(v, 7))
	}
	require.NoError(t, sw.Close())

	require.Equal(t, want, dst.Bytes())
	require.Equal(t, wantPad, sw.Padding())
	require.Equal(t, 7, sw.Padding())
	require.Equal(t, int64(126), sw.PackedBytes())

	_, enabled := sw.Checksum()
	require.False(t, enabled)
	require.Nil(t, sw.AppendChecksum(nil))
}

func TestNewStreamWriter_NilDestination(t *testing.T) {
	_, err := NewStreamWriter(nil)
	require.Error(t, err)
}

func TestNewStreamWriter_InvalidOptions(t *testing.T) {
	var dst bytes.Buffer

	_, err := NewStreamWriter(&dst, WithBufferSize(0))
	require.Error(t, err)

	_, err = NewStreamWriter(&dst, WithCompression(format.CompressionType(0xEE)))
	require.Error(t, err)
}

func TestStreamWriter_WithChecksum(t *testing.T) {
	values := sevenBitSeries(64)
	want, _ := controlStream(t, values, 7)

	var dst bytes.Buffer
	sw, err := NewStreamWriter(&dst, WithChecksum())
	require.NoError(t, err)

	for _, v := range values {
		require.NoError(t, sw.WriteBits(v, 7))
	}
	require.NoError(t, sw.Close())

	require.Equal(t, want, dst.Bytes())

	digest, enabled := sw.Checksum()
	require.True(t, enabled)
	require.Equal(t, xxhash.Sum64(want), digest)

	footer := sw.AppendChecksum(nil)
	require.Len(t, footer, 8)
}

func TestStreamWriter_ChecksumByteOrder(t *testing.T) {
	pack := func(opts ...StreamOption) []byte {
		var dst bytes.Buffer
		sw, err := NewStreamWriter(&dst, append(opts, WithChecksum())...)
		require.NoError(t, err)
		require.NoError(t, sw.WriteBits(0x2A, 7))
		require.NoError(t, sw.Close())

		return sw.AppendChecksum(nil)
	}

	le := pack(WithLittleEndian())
	be := pack(WithBigEndian())

	require.Len(t, le, 8)
	for i := 0; i < 8; i++ {
		require.Equal(t, le[i], be[7-i])
	}
}

func TestStreamWriter_WithCompression(t *testing.T) {
	values := sevenBitSeries(512)
	want, wantPad := controlStream(t, values, 7)

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			var dst bytes.Buffer
			sw, err := NewStreamWriter(&dst,
				WithCompression(compression),
				WithChecksum(),
			)
			require.NoError(t, err)

			for _, v := range values {
				require.NoError(t, sw.WriteBits(v, 7))
			}
			require.NoError(t, sw.Close())

			// The destination holds the compressed payload; decompressing
			// restores the exact packed stream.
			codec, err := compress.GetCodec(compression)
			require.NoError(t, err)
			restored, err := codec.Decompress(dst.Bytes())
			require.NoError(t, err)
			require.Equal(t, want, restored)

			require.Equal(t, wantPad, sw.Padding())
			require.Equal(t, int64(len(want)), sw.PackedBytes())

			// The checksum covers the packed bytes, not the compressed ones.
			digest, enabled := sw.Checksum()
			require.True(t, enabled)
			require.Equal(t, xxhash.Sum64(want), digest)
		})
	}
}

func TestStreamWriter_WithBufferSize(t *testing.T) {
	values := sevenBitSeries(300)
	want, _ := controlStream(t, values, 7)

	var dst bytes.Buffer
	sw, err := NewStreamWriter(&dst, WithBufferSize(32))
	require.NoError(t, err)

	for _, v := range values {
		require.NoError(t, sw.WriteBits(v, 7))
	}
	require.NoError(t, sw.Close())

	require.Equal(t, want, dst.Bytes())
}

func TestStreamWriter_WriteAfterClose(t *testing.T) {
	var dst bytes.Buffer
	sw, err := NewStreamWriter(&dst)
	require.NoError(t, err)

	require.NoError(t, sw.WriteBits(0x1, 1))
	require.NoError(t, sw.Close())

	require.ErrorIs(t, sw.WriteBits(0x1, 1), ErrClosed)
}

func TestStreamWriter_CloseIdempotent(t *testing.T) {
	var dst bytes.Buffer
	sw, err := NewStreamWriter(&dst)
	require.NoError(t, err)

	require.NoError(t, sw.WriteBits(0x5, 3))
	require.NoError(t, sw.Close())
	require.Equal(t, 5, sw.Padding())
	require.Equal(t, 1, dst.Len())

	require.NoError(t, sw.Close())
	require.Equal(t, 5, sw.Padding())
	require.Equal(t, 1, dst.Len())
}

func TestStreamWriter_InvalidBitCount(t *testing.T) {
	var dst bytes.Buffer
	sw, err := NewStreamWriter(&dst)
	require.NoError(t, err)

	require.ErrorIs(t, sw.WriteBits(0, 65), bitstream.ErrInvalidBitCount)
}

func TestPackValues(t *testing.T) {
	values := sevenBitSeries(143)
	want, wantPad := controlStream(t, values, 7)

	var dst bytes.Buffer
	padding, err := PackValues(&dst, values, 7)
	require.NoError(t, err)

	require.Equal(t, wantPad, padding)
	require.Equal(t, want, dst.Bytes())
	require.Len(t, dst.Bytes(), 126)
}

func TestPackValues_InvalidWidth(t *testing.T) {
	var dst bytes.Buffer
	_, err := PackValues(&dst, []uint64{1}, 65)
	require.ErrorIs(t, err, bitstream.ErrInvalidBitCount)
}

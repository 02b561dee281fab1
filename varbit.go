// Package varbit packs values of arbitrary bit-width into contiguous byte
// streams, without requiring each value to be byte-aligned.
//
// Values are written LSB-first, both within each value and within each
// output byte, which makes writes of different widths composable: a 6-bit
// write followed by a 3-bit write produces the same stream as a single
// 9-bit write of the concatenated low bits. A finished stream is N fully
// packed bytes plus at most one zero-padded trailing byte; the padding
// count is reported to the caller and never encoded into the stream.
//
// # Basic Usage
//
// Packing a few unconventionally sized values into a bytes.Buffer:
//
//	var buf bytes.Buffer
//	packer := bitstream.NewPacker()
//
//	_ = packer.Write8(&buf, 0x3F, 6)
//	_ = packer.Write16(&buf, 0x1AFF, 13)
//	_ = packer.Write8(&buf, 0x7, 3)
//
//	padding, _ := packer.Flush(&buf)
//	// buf contains [0xFF, 0xBF, 0x3E], padding == 2
//
// Streaming 7-bit values into a file with buffering, a checksum, and
// compression:
//
//	file, _ := os.Create("values.packed")
//	sw, _ := varbit.NewStreamWriter(file,
//	    varbit.WithChecksum(),
//	    varbit.WithCompression(format.CompressionS2),
//	)
//	for v := range 143 {
//	    _ = sw.WriteBits(uint64(v), 7)
//	}
//	_ = sw.Close()
//	padding := sw.Padding()
//	digest, _ := sw.Checksum()
//
// # Package Structure
//
// This package provides the StreamWriter convenience wrapper around the
// lower-level pieces. For fine-grained control use the subpackages
// directly: bitstream (core packing), sink (byte sinks), compress (payload
// codecs).
package varbit

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/varbit/bitstream"
	"github.com/arloliu/varbit/compress"
	"github.com/arloliu/varbit/endian"
	"github.com/arloliu/varbit/format"
	"github.com/arloliu/varbit/internal/options"
	"github.com/arloliu/varbit/sink"
)

// ErrClosed reports a write against a StreamWriter that was already closed.
var ErrClosed = errors.New("stream writer already closed")

// StreamOption is a functional option for configuring a StreamWriter.
type StreamOption = options.Option[*StreamWriter]

// StreamWriter binds a destination writer at construction and packs
// variable bit-width values into it through an internal buffer.
//
// This is the "owns the sink" counterpart to bitstream.Packer's per-call
// sink design; both produce the identical wire format. On top of the core
// packing, a StreamWriter can checksum the packed stream (xxHash64) and
// compress the finished payload before it reaches the destination.
//
// Close finalizes the stream explicitly; an abandoned StreamWriter loses
// its pending bits by design.
type StreamWriter struct {
	dst     io.Writer
	bw      *bitstream.Writer
	target  io.Writer
	stage   *sink.Buffer
	chk     *sink.Checksum
	counter *sink.Counting
	codec   compress.Codec
	engine  endian.EndianEngine

	compression format.CompressionType
	bufSize     int
	checksum    bool
	padding     int
	closed      bool
}

// NewStreamWriter creates a StreamWriter that packs into dst.
//
// Without options the packed bytes flow straight to dst through the default
// internal buffer, uncompressed and without a checksum.
//
// When compression is enabled the packed stream is staged in a pooled
// buffer and compressed as one payload during Close; the checksum, when
// enabled, always covers the packed (pre-compression) bytes.
func NewStreamWriter(dst io.Writer, opts ...StreamOption) (*StreamWriter, error) {
	if dst == nil {
		return nil, errors.New("nil destination writer")
	}

	sw := &StreamWriter{
		dst:         dst,
		compression: format.CompressionNone,
		bufSize:     bitstream.DefaultWriterSize,
		engine:      endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(sw, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(sw.compression)
	if err != nil {
		return nil, err
	}
	sw.codec = codec

	var target io.Writer = dst
	if sw.compression != format.CompressionNone {
		sw.stage = sink.NewBuffer()
		target = sw.stage
	}
	if sw.checksum {
		sw.chk = sink.NewChecksum(target, sw.engine)
		target = sw.chk
	}
	sw.counter = sink.NewCounting(target)
	sw.target = sw.counter
	sw.bw = bitstream.NewWriterSize(sw.bufSize)

	return sw, nil
}

// WithBufferSize sets the internal packing buffer capacity in bytes.
func WithBufferSize(size int) StreamOption {
	return options.New(func(sw *StreamWriter) error {
		if size <= 0 {
			return fmt.Errorf("invalid buffer size: %d", size)
		}
		sw.bufSize = size

		return nil
	})
}

// WithChecksum enables xxHash64 accounting of the packed stream. The digest
// is available through Checksum and AppendChecksum after writes complete.
func WithChecksum() StreamOption {
	return options.NoError(func(sw *StreamWriter) {
		sw.checksum = true
	})
}

// WithCompression compresses the finished packed payload with the given
// codec before writing it to the destination.
func WithCompression(compression format.CompressionType) StreamOption {
	return options.New(func(sw *StreamWriter) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			sw.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid stream compression: %v", compression)
		}
	})
}

// WithLittleEndian serializes the checksum digest little-endian (the
// default).
func WithLittleEndian() StreamOption {
	return options.NoError(func(sw *StreamWriter) {
		sw.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian serializes the checksum digest big-endian.
// It rarely needs to be used unless interoperability with big-endian
// consumers is required.
func WithBigEndian() StreamOption {
	return options.NoError(func(sw *StreamWriter) {
		sw.engine = endian.GetBigEndianEngine()
	})
}

// WriteBits appends the low bits of value to the packed stream.
// bits must be in [0, 64].
func (sw *StreamWriter) WriteBits(value uint64, bits int) error {
	if sw.closed {
		return ErrClosed
	}

	return sw.bw.Write(sw.target, value, bits)
}

// Close finalizes the stream: it drains the packing buffer (recording the
// padding count), and, when compression is enabled, compresses the staged
// payload and writes it to the destination.
//
// Close does not close the destination writer; its lifecycle belongs to the
// caller. Closing twice is a no-op. Close is the only finalization point -
// there is no implicit flush.
func (sw *StreamWriter) Close() error {
	if sw.closed {
		return nil
	}

	padding, err := sw.bw.FlushAll(sw.target)
	if err != nil {
		return err
	}
	sw.padding = padding

	if sw.stage != nil {
		compressed, err := sw.codec.Compress(sw.stage.Bytes())
		if err != nil {
			return fmt.Errorf("compress packed stream: %w", err)
		}
		if len(compressed) > 0 {
			if _, err := sw.dst.Write(compressed); err != nil {
				return fmt.Errorf("write compressed stream: %w", err)
			}
		}
		sw.stage.Release()
		sw.stage = nil
	}

	sw.closed = true

	return nil
}

// Padding returns the number of zero bits that completed the trailing byte.
// It is only meaningful after a successful Close.
func (sw *StreamWriter) Padding() int {
	return sw.padding
}

// PackedBytes returns the number of packed bytes emitted so far, before any
// compression.
func (sw *StreamWriter) PackedBytes() int64 {
	return sw.counter.Count()
}

// Checksum returns the xxHash64 digest of the packed stream and whether
// checksum accounting was enabled.
func (sw *StreamWriter) Checksum() (uint64, bool) {
	if sw.chk == nil {
		return 0, false
	}

	return sw.chk.Sum64(), true
}

// AppendChecksum appends the 8-byte digest to dst using the configured byte
// order. When checksum accounting is disabled, dst is returned unchanged.
func (sw *StreamWriter) AppendChecksum(dst []byte) []byte {
	if sw.chk == nil {
		return dst
	}

	return sw.chk.AppendSum(dst)
}

// PackValues packs every value at the given bit width into dst and
// finalizes the stream, returning the padding of the trailing byte.
//
// It is a convenience for the common fixed-width case; mixed widths need a
// bitstream.Writer or StreamWriter.
func PackValues(dst io.Writer, values []uint64, bits int) (padding int, err error) {
	bw := bitstream.NewWriter()
	for _, v := range values {
		if err := bw.Write(dst, v, bits); err != nil {
			return 0, err
		}
	}

	return bw.FlushAll(dst)
}

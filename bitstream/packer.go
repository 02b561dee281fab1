package bitstream

import (
	"fmt"
	"io"
)

// Packer packs variable bit-width values into a byte stream one byte at a
// time.
//
// It holds a single accumulator byte plus a count of how many of its
// low-order bit positions are occupied. Each write folds the requested low
// bits of a value into the accumulator and pushes the byte to the sink as
// soon as all 8 positions fill. Bits at positions at or above the fill count
// are always zero.
//
// The sink is supplied per call rather than bound at construction, so one
// Packer can serve multiple destinations over its lifetime. For a bound
// variant with compression and checksum support, see the varbit root
// package's StreamWriter.
//
// The zero value is ready to use.
type Packer struct {
	acc    byte
	filled int
}

// NewPacker creates a Packer with an empty accumulator.
func NewPacker() *Packer {
	return &Packer{}
}

// Filled returns the number of bits currently pending in the accumulator,
// in the range [0, 8).
func (p *Packer) Filled() int {
	return p.filled
}

// Write8 appends the low count bits of value to the stream.
// count must be in [0, 8].
func (p *Packer) Write8(sink io.ByteWriter, value uint8, count int) error {
	return p.write(sink, uint64(value), count, 8)
}

// Write16 appends the low count bits of value to the stream.
// count must be in [0, 16].
func (p *Packer) Write16(sink io.ByteWriter, value uint16, count int) error {
	return p.write(sink, uint64(value), count, 16)
}

// Write32 appends the low count bits of value to the stream.
// count must be in [0, 32].
func (p *Packer) Write32(sink io.ByteWriter, value uint32, count int) error {
	return p.write(sink, uint64(value), count, 32)
}

// Write64 appends the low count bits of value to the stream.
// count must be in [0, 64].
func (p *Packer) Write64(sink io.ByteWriter, value uint64, count int) error {
	return p.write(sink, value, count, 64)
}

// write folds the low count bits of value into the accumulator, LSB first,
// emitting completed bytes to the sink as they fill.
//
// A count outside [0, width] fails with ErrInvalidBitCount before any state
// changes. Bits of value at or above count are ignored. A zero count is a
// no-op and never touches the sink.
//
// If the sink rejects a byte, the error is returned immediately wrapped in
// ErrSink. Bytes pushed earlier in the same call stay pushed and the
// accumulator is left empty at a byte boundary, so the Packer remains usable
// for a fresh stream. The failed call's value may have been partially
// consumed; callers must treat the current stream as corrupted rather than
// retry the same call.
func (p *Packer) write(sink io.ByteWriter, value uint64, count int, width int) error {
	if count < 0 || count > width {
		return fmt.Errorf("%w: count %d not in [0, %d]", ErrInvalidBitCount, count, width)
	}

	for count > 0 {
		n := 8 - p.filled
		if count < n {
			n = count
		}

		chunk := byte(value & (1<<n - 1))
		p.acc |= chunk << p.filled
		p.filled += n
		value >>= uint(n)
		count -= n

		if p.filled == 8 {
			full := p.acc
			p.acc = 0
			p.filled = 0
			if err := sink.WriteByte(full); err != nil {
				return fmt.Errorf("%w: %w", ErrSink, err)
			}
		}
	}

	return nil
}

// Flush drains the accumulator, emitting any partially filled byte to the
// sink with its unused high bits left zero, and returns the number of
// padding bits that were added.
//
// If the accumulator is empty (the stream is byte-aligned), nothing is
// pushed and the padding is 0; calling Flush twice in a row is therefore a
// no-op the second time. After a successful Flush the Packer is reset and
// can start an independent byte-aligned stream.
//
// If the sink rejects the byte, the accumulator is left intact so the flush
// can be retried, and the returned padding is not meaningful.
func (p *Packer) Flush(sink io.ByteWriter) (padding int, err error) {
	if p.filled == 0 {
		return 0, nil
	}

	if err := sink.WriteByte(p.acc); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSink, err)
	}

	padding = 8 - p.filled
	p.acc = 0
	p.filled = 0

	return padding, nil
}

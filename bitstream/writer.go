package bitstream

import (
	"fmt"
	"io"
)

const (
	// DefaultWriterSize is the internal buffer capacity used by NewWriter.
	DefaultWriterSize = 8192

	// minWriterSize is the smallest usable buffer: a 64-bit insert on top of
	// 7 pending bits spans 9 bytes, so anything below 16 is rejected.
	minWriterSize = 16
)

// Writer packs variable bit-width values through a fixed-size internal
// buffer, flushing completed bytes to an io.Writer in batches.
//
// It produces the identical LSB-first wire format as Packer but amortizes
// sink calls, which matters when the destination is a file or socket. The
// buffer is flushed only when an insert would not fit; callers finish a
// stream with FlushAll to emit the trailing partial byte and learn the
// padding count.
//
// Writes are internally buffered, so wrapping the destination in another
// buffering layer such as bufio.Writer is redundant (though harmless).
//
// Writer does not flush when abandoned; see the package documentation.
type Writer struct {
	buf  []byte
	bits int
}

// NewWriter creates a Writer with the default internal buffer capacity.
func NewWriter() *Writer {
	return NewWriterSize(DefaultWriterSize)
}

// NewWriterSize creates a Writer with a specific internal buffer capacity
// in bytes. Capacities below the safe minimum are raised to it.
func NewWriterSize(capacity int) *Writer {
	if capacity < minWriterSize {
		capacity = minWriterSize
	}

	return &Writer{buf: make([]byte, capacity)}
}

// Bits returns the number of bits currently buffered, including the bits of
// any partial trailing byte.
func (w *Writer) Bits() int {
	return w.bits
}

// completeBytes returns the number of fully packed buffered bytes.
func (w *Writer) completeBytes() int {
	return w.bits / 8
}

// allBytes returns the number of buffered bytes including a partial one.
func (w *Writer) allBytes() int {
	return (w.bits + 7) / 8
}

// partialBits returns how many bits of the trailing partial byte are set,
// in [0, 8).
func (w *Writer) partialBits() int {
	return w.bits % 8
}

// padding returns how many zero bits would complete the trailing byte.
func (w *Writer) padding() int {
	return (8 - w.partialBits()) % 8
}

func (w *Writer) partialByte() byte {
	if w.partialBits() > 0 {
		return w.buf[w.allBytes()-1]
	}

	return 0
}

// eraseCompleteBytes zeroes the flushed complete bytes and moves the
// partial byte, if any, to the buffer start.
func (w *Writer) eraseCompleteBytes() {
	count := w.allBytes()
	partial := w.partialByte()
	clear(w.buf[:count])
	w.buf[0] = partial
	w.bits = w.partialBits()
}

// eraseAllBytes zeroes every buffered byte, including the partial one.
func (w *Writer) eraseAllBytes() {
	clear(w.buf[:w.allBytes()])
	w.bits = 0
}

// compact recovers from a partially successful flush: the first written
// bytes of the occupied region [0, total) reached the destination, so the
// unflushed remainder moves to the buffer start and the bit count drops by
// the bits that were flushed.
func (w *Writer) compact(written, total int) {
	if written == 0 {
		return
	}

	copy(w.buf, w.buf[written:total])
	clear(w.buf[total-written : total])
	w.bits -= 8 * written
}

// canInsert reports whether bits more bits fit in the buffer.
func (w *Writer) canInsert(bits int) bool {
	return w.bits+bits <= len(w.buf)*8
}

// insert folds the low bits of value into the buffer, LSB first, starting
// at the current bit position. The caller guarantees the bits fit.
func (w *Writer) insert(value uint64, bits int) {
	if bits < 64 {
		value &= 1<<uint(bits) - 1
	}

	idx := w.completeBytes()
	offset := w.partialBits()

	w.buf[idx] |= byte(value << uint(offset))
	value >>= uint(8 - offset)
	for value != 0 {
		idx++
		w.buf[idx] = byte(value)
		value >>= 8
	}

	w.bits += bits
}

// Write appends the low bits of value to the stream, flushing completed
// buffered bytes to dst first if the insert would not fit.
//
// bits must be in [0, 64]; larger or negative counts fail with
// ErrInvalidBitCount before any state changes. Bits of value at or above
// the count are ignored.
//
// A flush triggered mid-write may fail with ErrSink wrapping the underlying
// cause; see Flush for the recovery contract.
func (w *Writer) Write(dst io.Writer, value uint64, bits int) error {
	if bits < 0 || bits > 64 {
		return fmt.Errorf("%w: count %d not in [0, 64]", ErrInvalidBitCount, bits)
	}

	if bits == 0 {
		return nil
	}

	if !w.canInsert(bits) {
		if err := w.Flush(dst); err != nil {
			return err
		}
	}

	w.insert(value, bits)

	return nil
}

// Flush writes all fully packed buffered bytes to dst, keeping the partial
// trailing byte (if any) buffered for further writes.
//
// On failure the error is returned wrapped in ErrSink. Bytes that reached
// dst stay written and the unflushed remainder is compacted to the buffer
// start, so the Writer stays consistent and the flush may be retried.
func (w *Writer) Flush(dst io.Writer) error {
	complete := w.completeBytes()
	if complete == 0 {
		return nil
	}

	written, err := writeFull(dst, w.buf[:complete])
	if err != nil {
		w.compact(written, w.allBytes())
		return fmt.Errorf("%w: %w", ErrSink, err)
	}

	w.eraseCompleteBytes()

	return nil
}

// FlushAll drains the entire buffer to dst, including the zero-padded
// trailing partial byte, and returns the number of padding bits that were
// added to complete it.
//
// An empty buffer writes nothing and reports padding 0, so calling FlushAll
// twice in a row is a no-op the second time. After a successful FlushAll
// the Writer can start an independent byte-aligned stream.
//
// On failure the recovery contract matches Flush; the returned padding is
// only meaningful when err is nil. A destination may accept every byte and
// still report an error; the stream is complete in that case, so the buffer
// is drained and a retried FlushAll is a no-op.
func (w *Writer) FlushAll(dst io.Writer) (padding int, err error) {
	total := w.allBytes()
	if total == 0 {
		return 0, nil
	}

	padding = w.padding()

	written, werr := writeFull(dst, w.buf[:total])
	if werr != nil {
		if written == total {
			// Everything reached the destination; only the error remains.
			// Compacting here would count the partial byte as 8 full bits.
			w.eraseAllBytes()
		} else {
			w.compact(written, total)
		}

		return 0, fmt.Errorf("%w: %w", ErrSink, werr)
	}

	w.eraseAllBytes()

	return padding, nil
}

// writeFull writes buf to dst until done, reporting how many bytes made it.
// A Write that makes no progress without an error maps to io.ErrShortWrite.
func writeFull(dst io.Writer, buf []byte) (int, error) {
	written := 0
	for written < len(buf) {
		n, err := dst.Write(buf[written:])
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}

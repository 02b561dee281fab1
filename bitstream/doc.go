// Package bitstream packs values of arbitrary bit-width into a contiguous
// byte stream without requiring byte alignment between values.
//
// Two writer types produce the identical wire format:
//
//   - Packer holds a single in-progress byte and pushes every completed byte
//     to a caller-supplied io.ByteWriter immediately. It is the minimal,
//     unbuffered building block.
//   - Writer accumulates bits in a fixed-size internal buffer and flushes
//     completed bytes to an io.Writer in batches. Use it when the destination
//     benefits from fewer, larger writes (files, sockets).
//
// # Wire format
//
// Bits are laid out LSB-first in both directions: the least-significant bit
// of each value is written first, and each output byte fills from its
// least-significant bit upward. This makes requests composable regardless of
// their widths: writing 6 bits then 3 bits yields the same stream as one
// 9-bit write of the concatenated low bits. Reversing the order (MSB-first)
// would be a different, incompatible format.
//
// A finalized stream consists of N fully packed bytes, optionally followed
// by one zero-high-bit-padded trailing byte. The padding count reported by
// Flush/FlushAll is not encoded into the stream; consumers must receive it
// through a side channel.
//
// # Lifecycle
//
// Neither type flushes automatically when abandoned: bits still held in the
// accumulator or buffer are silently lost unless Flush/FlushAll is called.
// This is a deliberate contract, not an oversight; an implicit flush would
// write zero-bits the caller never asked to persist and change the padding
// observable by the consumer.
//
// Both types are plain mutable values with no internal locking and assume a
// single logical writer.
package bitstream

// Package sink provides byte sink implementations for packed bit streams.
//
// The packing layer only requires the stdlib contracts: bitstream.Packer
// pushes single bytes through io.ByteWriter and bitstream.Writer flushes
// slices through io.Writer. Every sink in this package satisfies both, so
// the two writer types are interchangeable over any of them:
//
//   - Buffer: pooled in-memory growable destination.
//   - Checksum: pass-through that feeds every accepted byte to an xxHash64
//     digest, giving the stream an out-of-band integrity tag to travel with
//     the padding count.
//   - Counting: pass-through that counts accepted bytes.
//
// Pass-through sinks forward to their inner writer first and only account
// for bytes the inner writer accepted, so a sink failure never desynchronizes
// the digest or the count from what actually reached the destination.
//
// Sinks hold no locks; like the writers that feed them, they assume a
// single logical writer.
package sink

// Package compress provides block compression codecs for finished packed
// payloads.
//
// Packed bit streams carry values at arbitrary sub-byte widths, so they are
// already dense compared to naturally aligned encodings. Compression still
// pays off when the packed values themselves repeat (counters, dictionary
// indexes, run-length symbols), which is common for the workloads that reach
// for sub-byte packing in the first place.
//
// The codecs operate on complete payloads rather than streaming frames: the
// packed stream is finalized first (so the padding count is known), then the
// whole payload is compressed in one call. This matches how varbit's
// StreamWriter stages and ships a compressed stream.
//
// # Choosing a codec
//
//   - CompressionNone: pass-through, zero overhead. Use when payloads are
//     tiny or already high-entropy.
//   - CompressionS2: fastest, moderate ratio. Good default for hot paths.
//   - CompressionLZ4: fast, interoperable block format.
//   - CompressionZstd: best ratio, slower. Good for archival payloads. The
//     default implementation is pure Go (klauspost/compress/zstd); build
//     with the "gozstd" tag to switch to the cgo libzstd bindings.
//
// All codecs are safe for concurrent use.
package compress

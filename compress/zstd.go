package compress

// ZstdCompressor provides Zstandard compression for packed payloads.
//
// Zstd trades speed for the best compression ratio of the built-in codecs,
// making it the right choice when packed streams are written once and kept:
//   - Cold storage and archival of packed payloads
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
//
// Two implementations exist behind build tags: the default pure Go encoder
// from klauspost/compress (zstd_pure.go) and the cgo libzstd bindings from
// valyala/gozstd (zstd_cgo.go, build tag "gozstd"). Both produce standard
// Zstandard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

package compress

// ZstdCompressor compresses with Zstandard.
//
// The default build uses the pure Go klauspost/compress/zstd implementation.
// Building with the gozstd tag and cgo enabled switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

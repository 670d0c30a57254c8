// Package compress exposes the run-length codec behind a generic
// Compressor/Decompressor interface, next to general purpose codecs used as
// comparison points.
//
// # Codecs
//
//   - RLE (format.CompressionRLE): package codec, 8-bit run counts
//   - None (format.CompressionNone): pass-through baseline
//   - LZ4 (format.CompressionLZ4): github.com/pierrec/lz4/v4 block format
//   - S2 (format.CompressionS2): github.com/klauspost/compress/s2
//   - Zstd (format.CompressionZstd): github.com/klauspost/compress/zstd, or
//     github.com/valyala/gozstd when built with -tags gozstd and cgo
//
// # Comparing
//
// Measure runs a verified round trip and reports sizes and timings:
//
//	stats, err := compress.Measure(format.CompressionRLE, data)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %.1f%% saved\n", stats.Algorithm, stats.SpaceSavings())
//
// RLE only pays off on data with long runs; on text or random bytes its
// output is up to twice the input size.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress

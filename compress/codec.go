package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/rlestep/format"
)

// Compressor compresses a complete buffer.
//
// The returned slice is newly allocated and owned by the caller; the input is
// not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations return an error when data is malformed or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one measured round trip.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 for an
// empty original. Values above 1.0 mean the output grew, which is common for
// RLE on data without runs.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. Negative values
// mean the output is larger than the input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec, decompresses it again and reports sizes
// and timings. It fails if the round trip does not reproduce data.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s decompression failed: %w", compressionType, err)
	}
	decompressTime := time.Since(start)

	if !bytes.Equal(data, restored) {
		return CompressionStats{}, fmt.Errorf("%s round trip mismatch: got %d bytes, want %d", compressionType, len(restored), len(data))
	}

	return CompressionStats{
		Algorithm:           compressionType,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(compressed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}, nil
}

// MeasureAll runs Measure for every type in format.CompressionTypes.
func MeasureAll(data []byte) ([]CompressionStats, error) {
	stats := make([]CompressionStats, 0, len(format.CompressionTypes))
	for _, ct := range format.CompressionTypes {
		s, err := Measure(ct, data)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, nil
}

// CreateCodec creates a Codec for the specified compression type.
//
// target describes what the codec is for and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionRLE:
		return NewRLECompressor(), nil
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionRLE:  NewRLECompressor(),
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

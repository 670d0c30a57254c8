package compress

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
)

// s2MaxDecompressedSize caps the length an S2 header may declare.
const s2MaxDecompressedSize = lz4MaxDecompressedSize

// ErrS2TooLarge is returned when an S2 block declares a decoded length above
// s2MaxDecompressedSize.
var ErrS2TooLarge = errors.New("s2: declared length exceeds limit")

// S2Compressor compresses with S2, a Snappy-compatible block format, using
// the "better" encoder level.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, fmt.Errorf("s2 compress: %w", s2.ErrTooLarge)
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

// Decompress decodes one S2 block. Empty input yields nil. The declared
// length is checked against s2MaxDecompressedSize before allocating.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompress: %w", err)
	}
	if n > s2MaxDecompressedSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrS2TooLarge, n, s2MaxDecompressedSize)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompress: %w", err)
	}

	return out, nil
}

package compress

import "github.com/arloliu/rlestep/codec"

// RLECompressor adapts package codec to the Codec interface.
type RLECompressor struct{}

var _ Codec = (*RLECompressor)(nil)

// NewRLECompressor creates a new run-length compressor.
func NewRLECompressor() RLECompressor {
	return RLECompressor{}
}

// Compress run-length encodes data. It never fails.
func (c RLECompressor) Compress(data []byte) ([]byte, error) {
	return codec.Encode(data), nil
}

// Decompress expands run-length encoded data, returning a *codec.DecodeError
// for malformed input.
func (c RLECompressor) Decompress(data []byte) ([]byte, error) {
	return codec.Decode(data)
}

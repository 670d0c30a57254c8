// Package codec implements byte-oriented run-length encoding with an 8-bit
// run counter.
//
// # Format
//
// An encoded buffer is a sequence of (count, value) pairs:
//
//	+-------+-------+-------+-------+-----
//	| count | value | count | value | ...
//	+-------+-------+-------+-------+-----
//
// Each count is in the range 1-255. Runs longer than 255 bytes are split into
// several pairs, each starting a fresh count. Separate runs of the same value
// are never merged:
//
//	Encode([]byte{1, 1, 1, 2, 2, 1, 1}) // [3 1 2 2 2 1]
//
// # Malformed Input
//
// Decode rejects buffers that break the pair layout instead of guessing:
//   - odd length: *DecodeError wrapping ErrOddLength
//   - zero count: *DecodeError wrapping ErrZeroCount
//
// Use errors.Is for the cause and errors.As to get the byte offset.
//
// # Text Helpers
//
// StringToBytes and BytesToString transcode UTF-8. BytesToString fails with
// *EncodingError instead of substituting U+FFFD, so corrupted output is never
// shown as if it were valid text.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package codec

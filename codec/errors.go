package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrOddLength is reported when an encoded buffer ends with a count byte
	// that has no value byte.
	ErrOddLength = errors.New("odd-length encoded buffer")
	// ErrZeroCount is reported when a pair carries a zero run length.
	ErrZeroCount = errors.New("zero run length")
	// ErrInvalidUTF8 is reported when bytes cannot be decoded as UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
)

// DecodeError describes an encoded buffer that violates the pair layout.
type DecodeError struct {
	// Offset is the index of the offending byte in the encoded buffer.
	Offset int
	// Len is the length of the encoded buffer.
	Len int
	// Err is the underlying cause, ErrOddLength or ErrZeroCount.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rle decode: %v at offset %d (len %d)", e.Err, e.Offset, e.Len)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodingError describes a byte sequence that is not valid UTF-8.
type EncodingError struct {
	// Offset is the index of the first byte that starts an invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("utf-8 decode: %v at offset %d", ErrInvalidUTF8, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidUTF8
}

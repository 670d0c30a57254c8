package codec

import (
	"github.com/arloliu/rlestep/internal/pool"
)

// MaxRunLength is the largest count a single pair can carry.
const MaxRunLength = 255

// Encode run-length encodes data into (count, value) pairs.
//
// The returned slice is newly allocated and owned by the caller. Encoding an
// empty buffer returns an empty, non-nil slice.
func Encode(data []byte) []byte {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	for i := 0; i < len(data); {
		n := RunLength(data, i)
		buf.AppendPair(byte(n), data[i])
		i += n
	}

	return buf.Clone()
}

// EncodeString run-length encodes the UTF-8 bytes of s.
func EncodeString(s string) []byte {
	return Encode(StringToBytes(s))
}

// RunLength returns the length of the run starting at data[i], capped at
// MaxRunLength. It returns 0 when i is out of range.
func RunLength(data []byte, i int) int {
	if i < 0 || i >= len(data) {
		return 0
	}

	n := 1
	for i+n < len(data) && data[i] == data[i+n] && n < MaxRunLength {
		n++
	}

	return n
}

// Decode expands (count, value) pairs back into the raw buffer.
//
// Returns a *DecodeError if data has odd length or contains a zero count.
// Decoding an empty buffer returns an empty, non-nil slice.
func Decode(data []byte) ([]byte, error) {
	size, err := DecodedLen(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, size)
	for i := 0; i < len(data); i += 2 {
		count, value := data[i], data[i+1]
		for range int(count) {
			out = append(out, value)
		}
	}

	return out, nil
}

// DecodeString expands data and converts the result to a string.
func DecodeString(data []byte) (string, error) {
	raw, err := Decode(data)
	if err != nil {
		return "", err
	}

	return BytesToString(raw)
}

// Validate checks that data satisfies the pair layout without expanding it.
func Validate(data []byte) error {
	_, err := DecodedLen(data)
	return err
}

// DecodedLen returns the length Decode would produce for data.
func DecodedLen(data []byte) (int, error) {
	// scan pairs first so a zero count before a dangling byte is reported
	// at its own offset
	total := 0
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 {
			return 0, &DecodeError{Offset: i, Len: len(data), Err: ErrZeroCount}
		}
		total += int(data[i])
	}

	if len(data)%2 != 0 {
		return 0, &DecodeError{Offset: len(data) - 1, Len: len(data), Err: ErrOddLength}
	}

	return total, nil
}

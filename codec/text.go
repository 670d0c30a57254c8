package codec

import "unicode/utf8"

// StringToBytes returns the UTF-8 encoding of s.
func StringToBytes(s string) []byte {
	return []byte(s)
}

// BytesToString decodes b as UTF-8.
//
// Returns an *EncodingError pointing at the first invalid sequence instead of
// substituting replacement characters.
func BytesToString(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &EncodingError{Offset: i}
		}
		i += size
	}

	// unreachable: utf8.Valid reported an invalid sequence
	return "", &EncodingError{Offset: len(b)}
}

package codec

import "iter"

// Pair is a single (count, value) unit of an encoded buffer.
type Pair struct {
	Count byte
	Value byte
}

// Pairs iterates the complete pairs of an encoded buffer, yielding the byte
// offset of each pair. A dangling trailing byte is not yielded; call Validate
// first when the buffer is untrusted.
func Pairs(data []byte) iter.Seq2[int, Pair] {
	return func(yield func(int, Pair) bool) {
		for i := 0; i+1 < len(data); i += 2 {
			if !yield(i, Pair{Count: data[i], Value: data[i+1]}) {
				return
			}
		}
	}
}

// RunCount returns the number of pairs Encode would emit for data.
func RunCount(data []byte) int {
	n := 0
	for i := 0; i < len(data); i += RunLength(data, i) {
		n++
	}

	return n
}

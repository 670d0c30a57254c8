package trace

import "strings"

// Listing pairs a source listing with the lines each Op highlights.
// Line numbers are 1-based.
type Listing struct {
	Source string
	lines  map[Op][]int
}

// NewListing creates a listing from source text and an op to line mapping.
func NewListing(source string, lines map[Op][]int) Listing {
	m := make(map[Op][]int, len(lines))
	for op, ls := range lines {
		m[op] = append([]int(nil), ls...)
	}

	return Listing{Source: source, lines: m}
}

// Lines returns the lines highlighted for op, or nil when op is unmapped.
func (l Listing) Lines(op Op) []int {
	ls := l.lines[op]
	if ls == nil {
		return nil
	}

	return append([]int(nil), ls...)
}

// SourceLines splits Source into lines.
func (l Listing) SourceLines() []string {
	return strings.Split(strings.TrimRight(l.Source, "\n"), "\n")
}

// EncodeListing mirrors codec.Encode.
var EncodeListing = NewListing(`func encode(data []byte) []byte {
	result := []byte{}
	i := 0
	for i < len(data) {
		count := 1
		for i+count < len(data) && data[i] == data[i+count] && count < 255 {
			count++
		}
		result = append(result, byte(count), data[i])
		i += count
	}
	return result
}
`, map[Op][]int{
	OpLoadData:       {1},
	OpInitResult:     {2},
	OpInitIndex:      {3},
	OpLoopStart:      {4},
	OpInitCount:      {5},
	OpCompareRun:     {6},
	OpIncrementCount: {7},
	OpEmitPair:       {9},
	OpAdvanceIndex:   {10},
	OpReturn:         {12},
})

// DecodeListing mirrors codec.Decode.
var DecodeListing = NewListing(`func decode(input []byte) []byte {
	result := []byte{}
	for i := 0; i < len(input); i += 2 {
		count := input[i]
		value := input[i+1]
		for j := 0; j < int(count); j++ {
			result = append(result, value)
		}
	}
	return result
}
`, map[Op][]int{
	OpInitResult:  {2},
	OpLoopStart:   {3},
	OpReadCount:   {4},
	OpReadValue:   {5},
	OpInnerLoop:   {6},
	OpAppendValue: {7},
	OpReturn:      {10},
})

// ListingFor returns the default listing for a trace kind.
func ListingFor(k Kind) Listing {
	if k == KindDecode {
		return DecodeListing
	}

	return EncodeListing
}

// Package rlestep provides a run-length-encoding codec and a step tracer that
// replays the codec's execution for step-by-step visualization.
//
// # Core Operations
//
//	encoded := rlestep.Encode([]byte("aaabb"))        // [3 97 2 98]
//	raw, err := rlestep.Decode(encoded)               // [97 97 97 98 98]
//	encSteps, err := rlestep.TraceEncode(raw)         // replayable steps
//	decSteps, err := rlestep.TraceDecode(encoded)
//
// The final step of a trace always records the same result as the matching
// codec call. Decode and TraceDecode reject odd-length input and zero counts
// with *codec.DecodeError.
//
// # Rendering a Trace
//
// Steps carry an operation tag rather than line numbers. Look up the lines to
// highlight in a listing:
//
//	for _, step := range encSteps.Steps {
//	    lines := trace.EncodeListing.Lines(step.Op)
//	    render(lines, step.State, step.Description)
//	}
//
// # Package Structure
//
// This package wraps codec and trace for the common cases. Use those packages
// directly for string helpers, pair iteration, tracer options and listings.
package rlestep

import (
	"github.com/arloliu/rlestep/codec"
	"github.com/arloliu/rlestep/trace"
)

// Encode run-length encodes data. See codec.Encode.
func Encode(data []byte) []byte {
	return codec.Encode(data)
}

// Decode expands run-length encoded data. See codec.Decode.
func Decode(data []byte) ([]byte, error) {
	return codec.Decode(data)
}

// TraceEncode records the steps of encoding data. See trace.Encode.
func TraceEncode(data []byte, opts ...trace.Option) (trace.Sequence, error) {
	return trace.Encode(data, opts...)
}

// TraceDecode records the steps of decoding data. See trace.Decode.
func TraceDecode(data []byte, opts ...trace.Option) (trace.Sequence, error) {
	return trace.Decode(data, opts...)
}

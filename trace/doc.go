// Package trace re-executes the run-length codec while recording every
// intermediate state, producing a replayable step sequence for
// step-by-step visualization.
//
// # Steps
//
// Each Step carries:
//   - Op: a symbolic operation tag such as OpCompareRun or OpEmitPair
//   - State: an EncodeState or DecodeState snapshot, depending on the trace kind
//   - Description: a short human-readable sentence
//
// Snapshots are taken at the moment the operation completes, so an
// OpEmitPair step already shows the appended pair while its index still
// points at the start of the run. Each step owns its result buffer. The input
// is copied once per trace and that copy is shared, read-only, by all steps.
//
// Steps do not carry source line numbers. A presentation layer maps Op to
// lines of whatever listing it displays; EncodeListing and DecodeListing are
// ready-made listings for the algorithm as implemented in package codec.
//
// # Parity
//
// The final step of every sequence is OpReturn, and its state's result equals
// the output of codec.Encode or codec.Decode for the same input. Decode
// applies codec.Validate before tracing and fails with the same
// *codec.DecodeError.
//
// # Sizing
//
// Decode traces emit two steps per output byte. Callers tracing untrusted
// input should bound it, or use WithMaxSteps.
package trace

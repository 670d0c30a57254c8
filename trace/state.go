package trace

import (
	"encoding/json"
	"strconv"
)

// State is a snapshot of algorithm variables. It is implemented by
// EncodeState and DecodeState only; the concrete type always matches the
// Kind of the sequence it belongs to. Both serialize with a "kind" field
// naming the variant.
//
// The input buffer (EncodeState.Data, DecodeState.Input) is one private copy
// shared by every step of a trace and must not be modified. Result is copied
// per step.
type State interface {
	Kind() Kind
	// Index returns the outer loop index i.
	Index() int
	// Output returns the result buffer as it exists at this step.
	Output() []byte

	clone() State
}

// EncodeState is the snapshot recorded by Encode.
//
// Count is zero outside a run, i.e. before OpInitCount and from
// OpAdvanceIndex on.
type EncodeState struct {
	I      int   `json:"i" yaml:"i"`
	Count  int   `json:"count,omitempty" yaml:"count,omitempty"`
	Data   Bytes `json:"data" yaml:"data,flow"`
	Result Bytes `json:"result" yaml:"result,flow"`
}

func (s EncodeState) Kind() Kind     { return KindEncode }
func (s EncodeState) Index() int     { return s.I }
func (s EncodeState) Output() []byte { return s.Result }

func (s EncodeState) clone() State {
	s.Result = cloneBytes(s.Result)

	return s
}

type encodeFields EncodeState

// MarshalJSON encodes s as an object tagged with "kind": "encode".
func (s EncodeState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		encodeFields
	}{s.Kind(), encodeFields(s)})
}

// MarshalYAML encodes s as a mapping tagged with kind: encode.
func (s EncodeState) MarshalYAML() (any, error) {
	return struct {
		Kind   Kind         `yaml:"kind"`
		Fields encodeFields `yaml:",inline"`
	}{s.Kind(), encodeFields(s)}, nil
}

// DecodeState is the snapshot recorded by Decode.
//
// Which scratch fields are meaningful depends on the step's Op: Count is set
// from OpReadCount, Value from OpReadValue, and J inside the repetition loop.
// HasValue and HasJ distinguish a legitimate zero from an unset field.
type DecodeState struct {
	I        int   `json:"i" yaml:"i"`
	Count    int   `json:"count,omitempty" yaml:"count,omitempty"`
	Value    byte  `json:"value" yaml:"value"`
	HasValue bool  `json:"hasValue" yaml:"has_value"`
	J        int   `json:"j" yaml:"j"`
	HasJ     bool  `json:"hasJ" yaml:"has_j"`
	Input    Bytes `json:"input" yaml:"input,flow"`
	Result   Bytes `json:"result" yaml:"result,flow"`
}

func (s DecodeState) Kind() Kind     { return KindDecode }
func (s DecodeState) Index() int     { return s.I }
func (s DecodeState) Output() []byte { return s.Result }

func (s DecodeState) clone() State {
	s.Result = cloneBytes(s.Result)

	return s
}

type decodeFields DecodeState

// MarshalJSON encodes s as an object tagged with "kind": "decode".
func (s DecodeState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		decodeFields
	}{s.Kind(), decodeFields(s)})
}

// MarshalYAML encodes s as a mapping tagged with kind: decode.
func (s DecodeState) MarshalYAML() (any, error) {
	return struct {
		Kind   Kind         `yaml:"kind"`
		Fields decodeFields `yaml:",inline"`
	}{s.Kind(), decodeFields(s)}, nil
}

// Bytes is a byte buffer that serializes as a list of numbers rather than
// base64, so exported traces stay readable.
type Bytes []byte

// MarshalJSON encodes b as a JSON array of integers.
func (b Bytes) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 2+len(b)*4)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}

	return append(out, ']'), nil
}

// MarshalYAML encodes b as a YAML sequence of integers.
func (b Bytes) MarshalYAML() (any, error) {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}

	return out, nil
}

// cloneBytes copies b into a new non-nil slice.
func cloneBytes(b []byte) Bytes {
	out := make(Bytes, len(b))
	copy(out, b)

	return out
}

// withPair returns a copy of result with count and value appended.
func withPair(result []byte, count int, value byte) Bytes {
	out := make(Bytes, len(result), len(result)+2)
	copy(out, result)

	return append(out, byte(count), value)
}

package trace

import "fmt"

// Op identifies the operation a Step records.
type Op uint8

const (
	OpLoadData       Op = iota + 1 // input copied into the working buffer
	OpInitResult                   // result buffer created
	OpInitIndex                    // scan index set to zero
	OpLoopStart                    // outer loop iteration begins
	OpInitCount                    // run length reset to one
	OpCompareRun                   // repeat check succeeded
	OpIncrementCount               // run length incremented
	OpEmitPair                     // (count, value) appended to the result
	OpAdvanceIndex                 // scan index moved past the run
	OpReadCount                    // count byte read from the pair
	OpReadValue                    // value byte read from the pair
	OpInnerLoop                    // repetition loop iteration begins
	OpAppendValue                  // value appended to the result
	OpReturn                       // result returned
)

var opNames = map[Op]string{
	OpLoadData:       "LoadData",
	OpInitResult:     "InitResult",
	OpInitIndex:      "InitIndex",
	OpLoopStart:      "LoopStart",
	OpInitCount:      "InitCount",
	OpCompareRun:     "CompareRun",
	OpIncrementCount: "IncrementCount",
	OpEmitPair:       "EmitPair",
	OpAdvanceIndex:   "AdvanceIndex",
	OpReadCount:      "ReadCount",
	OpReadValue:      "ReadValue",
	OpInnerLoop:      "InnerLoop",
	OpAppendValue:    "AppendValue",
	OpReturn:         "Return",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}

	return fmt.Sprintf("Op(%d)", uint8(o))
}

// MarshalText encodes the op by name.
func (o Op) MarshalText() ([]byte, error) {
	if _, ok := opNames[o]; !ok {
		return nil, fmt.Errorf("unknown op: %d", uint8(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText decodes an op name produced by MarshalText.
func (o *Op) UnmarshalText(text []byte) error {
	for op, name := range opNames {
		if name == string(text) {
			*o = op
			return nil
		}
	}

	return fmt.Errorf("unknown op: %q", text)
}

// IsInit reports whether the op initializes algorithm state.
func (o Op) IsInit() bool {
	return o == OpLoadData || o == OpInitResult || o == OpInitIndex
}

// Kind identifies which algorithm a trace records.
type Kind uint8

const (
	KindEncode Kind = iota + 1
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindEncode:
		return "encode"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

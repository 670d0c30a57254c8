package trace

import (
	"fmt"

	"github.com/arloliu/rlestep/codec"
)

// Decode traces codec.Decode over data.
//
// Malformed input is rejected before any step is recorded, with the same
// *codec.DecodeError that codec.Decode returns.
func Decode(data []byte, opts ...Option) (Sequence, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Sequence{}, err
	}

	size, err := codec.DecodedLen(data)
	if err != nil {
		return Sequence{}, err
	}

	// 1 setup step, 3 per pair, 2 per output byte, 1 return
	rec := newRecorder(cfg, 2+3*(len(data)/2)+2*size)
	if err := traceDecode(rec, cloneBytes(data)); err != nil {
		return Sequence{}, err
	}

	return Sequence{Kind: KindDecode, Steps: rec.steps}, nil
}

func traceDecode(rec *recorder, input []byte) error {
	result := []byte{}

	if err := rec.record(OpInitResult, DecodeState{Input: input, Result: result}, text("Initialize the result buffer")); err != nil {
		return err
	}

	i := 0
	for ; i < len(input); i += 2 {
		if err := rec.record(OpLoopStart, DecodeState{I: i, Input: input, Result: result}, func() string {
			return fmt.Sprintf("Start of loop: i = %d", i)
		}); err != nil {
			return err
		}

		count := int(input[i])
		if err := rec.record(OpReadCount, DecodeState{I: i, Count: count, Input: input, Result: result}, func() string {
			return fmt.Sprintf("Read count: %d", count)
		}); err != nil {
			return err
		}

		value := input[i+1]
		st := DecodeState{I: i, Count: count, Value: value, HasValue: true, Input: input, Result: result}
		if err := rec.record(OpReadValue, st, func() string {
			return fmt.Sprintf("Read value: %d", value)
		}); err != nil {
			return err
		}

		for j := 0; j < count; j++ {
			st.J, st.HasJ = j, true
			st.Result = result
			if err := rec.record(OpInnerLoop, st, func() string {
				return fmt.Sprintf("Start of inner loop: j = %d", j)
			}); err != nil {
				return err
			}

			result = append(result, value)
			st.Result = result
			if err := rec.record(OpAppendValue, st, func() string {
				return fmt.Sprintf("Append value: %d", value)
			}); err != nil {
				return err
			}
		}
	}

	return rec.record(OpReturn, DecodeState{I: i, Input: input, Result: result}, text("Return the result"))
}

package trace

import (
	"fmt"

	"github.com/arloliu/rlestep/codec"
)

// Encode traces codec.Encode over data.
//
// Returns ErrStepLimit (wrapped) if WithMaxSteps is exceeded, or an error for
// an invalid option.
func Encode(data []byte, opts ...Option) (Sequence, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Sequence{}, err
	}

	// 3 setup steps, 4 per run, 2 per repeated byte, 1 return
	runs := codec.RunCount(data)
	rec := newRecorder(cfg, 4+4*runs+2*(len(data)-runs))

	// steps share one private copy of the input
	if err := traceEncode(rec, cloneBytes(data)); err != nil {
		return Sequence{}, err
	}

	return Sequence{Kind: KindEncode, Steps: rec.steps}, nil
}

func traceEncode(rec *recorder, data []byte) error {
	result := []byte{}
	i := 0

	st := func(count int, result []byte) EncodeState {
		return EncodeState{I: i, Count: count, Data: data, Result: result}
	}

	if err := rec.record(OpLoadData, st(0, result), text("Initialize data from the input")); err != nil {
		return err
	}
	if err := rec.record(OpInitResult, st(0, result), text("Initialize the result buffer")); err != nil {
		return err
	}
	if err := rec.record(OpInitIndex, st(0, result), text("Set i = 0")); err != nil {
		return err
	}

	for i < len(data) {
		if err := rec.record(OpLoopStart, st(0, result), func() string {
			return fmt.Sprintf("Start of loop: i = %d", i)
		}); err != nil {
			return err
		}

		count := 1
		if err := rec.record(OpInitCount, st(count, result), text("Set count = 1")); err != nil {
			return err
		}

		for i+count < len(data) && data[i] == data[i+count] && count < codec.MaxRunLength {
			if err := rec.record(OpCompareRun, st(count, result), func() string {
				return fmt.Sprintf("Check repeat: data[%d] == data[%d], count = %d", i, i+count, count)
			}); err != nil {
				return err
			}
			count++
			if err := rec.record(OpIncrementCount, st(count, result), func() string {
				return fmt.Sprintf("Increment count: count = %d", count)
			}); err != nil {
				return err
			}
		}

		// the snapshot shows the pair before the index moves
		if err := rec.record(OpEmitPair, st(count, withPair(result, count, data[i])), func() string {
			return fmt.Sprintf("Append (count, value): (%d, %d)", count, data[i])
		}); err != nil {
			return err
		}
		result = append(result, byte(count), data[i])

		next := i + count
		if err := rec.record(OpAdvanceIndex, EncodeState{I: next, Data: data, Result: result}, func() string {
			return fmt.Sprintf("Advance i by count: i = %d", next)
		}); err != nil {
			return err
		}
		i = next
	}

	return rec.record(OpReturn, st(0, result), text("Return the result"))
}

package trace

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/arloliu/rlestep/codec"
	"github.com/stretchr/testify/require"
)

func decodeState(t *testing.T, step Step) DecodeState {
	t.Helper()
	st, ok := step.State.(DecodeState)
	require.True(t, ok, "expected DecodeState, got %T", step.State)

	return st
}

func TestDecode_OpSequence(t *testing.T) {
	seq, err := Decode([]byte{3, 97, 2, 98})
	require.NoError(t, err)
	require.Equal(t, KindDecode, seq.Kind)

	want := []Op{
		OpInitResult,
		OpLoopStart, OpReadCount, OpReadValue,
		OpInnerLoop, OpAppendValue, OpInnerLoop, OpAppendValue, OpInnerLoop, OpAppendValue,
		OpLoopStart, OpReadCount, OpReadValue,
		OpInnerLoop, OpAppendValue, OpInnerLoop, OpAppendValue,
		OpReturn,
	}
	require.Equal(t, want, seq.Ops())
}

func TestDecode_Snapshots(t *testing.T) {
	seq, err := Decode([]byte{3, 97, 2, 98})
	require.NoError(t, err)

	first, _ := seq.First()
	require.True(t, strings.HasPrefix(first.Description, "Initialize"))
	require.Empty(t, decodeState(t, first).Result)
	require.Equal(t, []byte{3, 97, 2, 98}, []byte(decodeState(t, first).Input))

	t.Run("read steps fill scratch fields in order", func(t *testing.T) {
		rc := decodeState(t, seq.Steps[2])
		require.Equal(t, 3, rc.Count)
		require.False(t, rc.HasValue)

		rv := decodeState(t, seq.Steps[3])
		require.Equal(t, byte(97), rv.Value)
		require.True(t, rv.HasValue)
		require.False(t, rv.HasJ)
	})

	t.Run("append snapshot includes the value", func(t *testing.T) {
		inner := decodeState(t, seq.Steps[4])
		appended := decodeState(t, seq.Steps[5])
		require.True(t, inner.HasJ)
		require.Equal(t, 0, inner.J)
		require.Empty(t, inner.Result)
		require.Equal(t, []byte{97}, []byte(appended.Result))

		require.Equal(t, 2, decodeState(t, seq.Steps[8]).J)
	})

	t.Run("second pair starts at i = 2", func(t *testing.T) {
		require.Equal(t, 2, decodeState(t, seq.Steps[10]).I)
		require.Equal(t, "Start of loop: i = 2", seq.Steps[10].Description)
	})

	last, _ := seq.Last()
	require.Equal(t, "Return the result", last.Description)
	require.Equal(t, 4, decodeState(t, last).I)
	require.Equal(t, []byte("aaabb"), seq.Result())
}

func TestDecode_SharesInputCopy(t *testing.T) {
	input := []byte{3, 'x', 2, 'y'}
	seq, err := Decode(input)
	require.NoError(t, err)

	input[0] = 9
	first := decodeState(t, seq.Steps[0]).Input
	require.Equal(t, []byte{3, 'x', 2, 'y'}, []byte(first))
	for _, step := range seq.Steps {
		in := decodeState(t, step).Input
		require.Same(t, &first[0], &in[0], step.Op.String())
	}
}

func TestDecode_ZeroValue(t *testing.T) {
	seq, err := Decode([]byte{2, 0})
	require.NoError(t, err)

	rv := decodeState(t, seq.Steps[3])
	require.True(t, rv.HasValue)
	require.Equal(t, byte(0), rv.Value)
	require.Equal(t, []byte{0, 0}, seq.Result())
}

func TestDecode_Empty(t *testing.T) {
	seq, err := Decode(nil)
	require.NoError(t, err)
	require.Equal(t, []Op{OpInitResult, OpReturn}, seq.Ops())
	require.NotNil(t, seq.Result())
	require.Empty(t, seq.Result())
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		cause error
	}{
		{"odd length", []byte{3}, codec.ErrOddLength},
		{"dangling count", []byte{3, 97, 2}, codec.ErrOddLength},
		{"zero count", []byte{0, 97}, codec.ErrZeroCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Decode(tt.input)
			require.ErrorIs(t, err, tt.cause)
			require.Zero(t, seq.Len())

			// must fail exactly like the codec
			_, codecErr := codec.Decode(tt.input)
			require.Equal(t, codecErr, err)

			var decErr *codec.DecodeError
			require.True(t, errors.As(err, &decErr))
		})
	}
}

func TestDecode_Parity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 100 {
		data := make([]byte, rng.Intn(300))
		for i := range data {
			data[i] = byte(rng.Intn(3))
		}
		encoded := codec.Encode(data)

		seq, err := Decode(encoded)
		require.NoError(t, err)

		want, err := codec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, want, seq.Result())
		require.Equal(t, data, seq.Result())
		require.Equal(t, len(data), seq.Count(OpAppendValue))
		require.Equal(t, seq.Len(), cap(seq.Steps), "size hint should be exact")
	}
}

func TestDecode_MaxSteps(t *testing.T) {
	_, err := Decode([]byte{255, 1}, WithMaxSteps(100))
	require.ErrorIs(t, err, ErrStepLimit)

	seq, err := Decode([]byte{255, 1}, WithMaxSteps(0))
	require.NoError(t, err)
	require.Equal(t, 1+3+2*255+1, seq.Len())
}

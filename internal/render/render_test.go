package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/rlestep/compress"
	"github.com/arloliu/rlestep/format"
	"github.com/arloliu/rlestep/trace"
)

func TestWriteSequence_Structured(t *testing.T) {
	seq, err := trace.Encode([]byte("aab"))
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSequence(&buf, seq, "json"))

		var out map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.Equal(t, "encode", out["kind"])
		require.Len(t, out["steps"], seq.Len())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSequence(&buf, seq, "yaml"))

		var out struct {
			Kind  string           `yaml:"kind"`
			Steps []map[string]any `yaml:"steps"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
		require.Equal(t, "encode", out.Kind)
		require.Len(t, out.Steps, seq.Len())
		require.Equal(t, "Return", out.Steps[len(out.Steps)-1]["op"])
	})

	t.Run("unknown", func(t *testing.T) {
		require.Error(t, WriteSequence(&bytes.Buffer{}, seq, "xml"))
	})
}

func TestWriteSequence_Text(t *testing.T) {
	seq, err := trace.Decode([]byte{2, 120})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSequence(&buf, seq, "text"))
	out := buf.String()

	require.Contains(t, out, "Step 1/9  InitResult")
	require.Contains(t, out, "Step 9/9  Return")
	require.Contains(t, out, "> ")
	require.Contains(t, out, "value := input[i+1]")
	require.Contains(t, out, "Append value: 120")
	require.Equal(t, seq.Len(), strings.Count(out, "Step "))
}

func TestStepRenderer_HighlightsMappedLine(t *testing.T) {
	seq, err := trace.Encode([]byte("a"))
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewStepRenderer(&buf, trace.EncodeListing)
	c := seq.Cursor()
	for {
		step, _ := c.Current()
		if step.Op == trace.OpEmitPair {
			break
		}
		require.True(t, c.Next())
	}
	require.NoError(t, r.RenderStep(c, seq.Len()))

	var highlighted []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "> ") {
			highlighted = append(highlighted, line)
		}
	}
	require.Len(t, highlighted, 1)
	require.Contains(t, highlighted[0], "append(result, byte(count), data[i])")
}

func TestFormatState(t *testing.T) {
	require.Equal(t, "i=0 count=2 data=[1 1] result=[]",
		FormatState(trace.EncodeState{I: 0, Count: 2, Data: trace.Bytes{1, 1}, Result: trace.Bytes{}}))
	require.Equal(t, "i=2 count=3 value=0 j=1 input=[1 5 3 0] result=[5 0]",
		FormatState(trace.DecodeState{I: 2, Count: 3, Value: 0, HasValue: true, J: 1, HasJ: true,
			Input: trace.Bytes{1, 5, 3, 0}, Result: trace.Bytes{5, 0}}))
	require.Equal(t, "i=0 input=[] result=[]",
		FormatState(trace.DecodeState{Input: trace.Bytes{}, Result: trace.Bytes{}}))
}

func TestWriteStats(t *testing.T) {
	stats := []compress.CompressionStats{
		{Algorithm: format.CompressionRLE, OriginalSize: 300, CompressedSize: 4},
		{Algorithm: format.CompressionNone, OriginalSize: 300, CompressedSize: 300},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, stats))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "ALGORITHM"))
	require.True(t, strings.HasPrefix(lines[1], "RLE"))
	require.Contains(t, lines[1], "98.7%")
	require.Contains(t, lines[2], "0.0%")
}

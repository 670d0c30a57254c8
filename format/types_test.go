package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "RLE", CompressionRLE.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
	}{
		{"rle", CompressionRLE},
		{"RLE", CompressionRLE},
		{"none", CompressionNone},
		{"lz4", CompressionLZ4},
		{"S2", CompressionS2},
		{"zstd", CompressionZstd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompressionType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCompressionType("gzip")
	require.Error(t, err)
	require.Contains(t, err.Error(), "gzip")
}

package format

import (
	"fmt"
	"strings"
)

// CompressionType identifies a payload codec. The numeric values match the
// registry keys used by package compress.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionRLE  CompressionType = 0x5 // CompressionRLE represents 8-bit count run-length encoding.
)

// CompressionTypes lists every known compression type in display order.
var CompressionTypes = []CompressionType{
	CompressionRLE,
	CompressionNone,
	CompressionLZ4,
	CompressionS2,
	CompressionZstd,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionRLE:
		return "RLE"
	default:
		return "Unknown"
	}
}

// ParseCompressionType resolves a case-insensitive compression name.
func ParseCompressionType(name string) (CompressionType, error) {
	for _, c := range CompressionTypes {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type: %q", name)
}

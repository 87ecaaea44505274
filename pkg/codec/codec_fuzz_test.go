//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"

	"github.com/ssargent/tdswire/pkg/tds"
)

// FuzzDecodeGUID_Involution checks that decoding twice restores the input
func FuzzDecodeGUID_Involution(f *testing.F) {
	f.Add(sequence(16))
	f.Add(make([]byte, 16))
	f.Add(bytes.Repeat([]byte{0xFF}, 16))
	f.Add([]byte{0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		once := DecodeGUID(data)
		if len(data) != GUIDSize {
			if len(once) != 0 {
				t.Fatalf("expected empty result for %d bytes, got %x", len(data), once)
			}
			return
		}
		if twice := DecodeGUID(once); !bytes.Equal(twice, data) {
			t.Fatalf("decode(decode(%x)) = %x", data, twice)
		}
	})
}

// FuzzDecodeDateTimeOffset checks that arbitrary input never panics and only
// fails with protocol errors
func FuzzDecodeDateTimeOffset(f *testing.F) {
	f.Add([]byte{}, uint8(7))
	f.Add(dtoBytes(ticks123456, 5, day20240315, 120), uint8(7))
	f.Add(dtoBytes(4529678, 3, day20240315, -60), uint8(2))
	f.Add(dtoBytes(45296123, 4, day19691231, 0), uint8(4))
	f.Add([]byte{0x01, 0x02, 0x03}, uint8(9))

	f.Fuzz(func(t *testing.T, data []byte, scale uint8) {
		if len(data) > 64 {
			t.Skip("Input too large for fuzz test")
		}

		got, err := DecodeDateTimeOffset(data, scale)
		if err != nil {
			if !tds.IsProtocolError(err) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if got.Unix() < 0 {
			t.Fatalf("instant before epoch was not clamped: %s", got)
		}
		if got.Nanosecond() != 0 {
			t.Fatalf("sub-second precision leaked: %s", got)
		}
	})
}

// FuzzDecodeBinary_PassThrough checks the binary codec returns its input
func FuzzDecodeBinary_PassThrough(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x01, 0x02})

	f.Fuzz(func(t *testing.T, data []byte) {
		if !bytes.Equal(DecodeBinary(data), data) {
			t.Fatalf("binary pass-through changed %x", data)
		}
	})
}

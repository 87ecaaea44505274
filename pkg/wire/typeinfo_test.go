package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/tdswire/pkg/tds"
)

func TestReadTypeInfo(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want tds.TypeInfo
	}{
		{"guid", []byte{0x24, 16}, tds.TypeInfo{Type: tds.Guid, Size: 16}},
		{"varbinary", []byte{0xA5, 0x40, 0x1F}, tds.TypeInfo{Type: tds.BigVarBinary, Size: 8000}},
		{"binary", []byte{0xAD, 0x10, 0x00}, tds.TypeInfo{Type: tds.BigBinary, Size: 16}},
		{"datetimeoffset", []byte{0x2B, 7}, tds.TypeInfo{Type: tds.DateTimeOffsetN, Scale: 7}},
		{"datetime2", []byte{0x2A, 3}, tds.TypeInfo{Type: tds.DateTime2N, Scale: 3}},
		{"time", []byte{0x29, 0}, tds.TypeInfo{Type: tds.TimeN}},
		{"date", []byte{0x28}, tds.TypeInfo{Type: tds.DateN, Size: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.data)
			ti, err := ReadTypeInfo(c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ti)
			assert.Equal(t, 0, c.Remaining())
		})
	}
}

func TestReadTypeInfo_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		data    []byte
		message string
	}{
		{"empty", nil, "unexpected end of value"},
		{"guid without size", []byte{0x24}, "unexpected end of value"},
		{"varbinary short size", []byte{0xA5, 0x01}, "unexpected end of value"},
		{"scale too large", []byte{0x2B, 8}, "invalid scale 8"},
		{"unsupported tag", []byte{0x38}, "unsupported type 0x38"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadTypeInfo(NewCursor(tc.data))
			require.Error(t, err)
			assert.True(t, tds.IsProtocolError(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/tdswire/pkg/tds"
)

func TestEncode(t *testing.T) {
	canonical := []byte{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}
	wire := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	testCases := []struct {
		name     string
		kind     Kind
		payload  []byte
		want     []byte
		wantNull IsNull
	}{
		{"guid", KindGUID, canonical, wire, NotNull},
		{"guid nil", KindGUID, nil, []byte{0xFF}, Null},
		{"binary", KindBinary, []byte{0xCA, 0xFE}, []byte{0xFF, 0xCA, 0xFE}, NotNull},
		{"binary empty", KindBinary, []byte{}, []byte{0xFF}, NotNull},
		{"binary nil", KindBinary, nil, []byte{0xFF}, Null},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dst := []byte{0xFF}
			if tc.kind == KindGUID && tc.wantNull == NotNull {
				dst = nil
			}
			out, isNull, err := Encode(dst, tc.kind, tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
			assert.Equal(t, tc.wantNull, isNull)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, _, err := Encode(nil, KindGUID, []byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, tds.IsProtocolError(err))

	dst := []byte{0xAA}
	out, isNull, err := Encode(dst, KindDateTimeOffset, []byte{0})
	require.Error(t, err)
	assert.True(t, tds.IsProtocolError(err))
	assert.Equal(t, Null, isNull)
	assert.Equal(t, dst, out)
}

func TestEncodeDecodeGUID(t *testing.T) {
	canonical := []byte{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}

	wire, isNull, err := Encode(nil, KindGUID, canonical)
	require.NoError(t, err)
	require.Equal(t, NotNull, isNull)

	assert.Equal(t, canonical, DecodeGUID(wire))
}

package tds

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	testCases := []struct {
		name string
		want DataType
	}{
		{"guid", Guid},
		{"UniqueIdentifier", Guid},
		{"uuid", Guid},
		{"binary", BigBinary},
		{"varbinary", BigVarBinary},
		{" datetimeoffset ", DateTimeOffsetN},
		{"dto", DateTimeOffsetN},
		{"time", TimeN},
		{"datetime2", DateTime2N},
		{"date", DateN},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDataType(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseDataType("decimal")
	assert.Error(t, err)
}

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "uniqueidentifier", Guid.String())
	assert.Equal(t, "datetimeoffset", DateTimeOffsetN.String())
	assert.Equal(t, "type(0x38)", DataType(0x38).String())
}

func TestTypeInfo_String(t *testing.T) {
	assert.Equal(t, "uniqueidentifier(16)", NewTypeInfo(Guid, 16).String())
	assert.Equal(t, "datetimeoffset(7)", TypeInfo{Type: DateTimeOffsetN, Scale: 7}.String())
	assert.Equal(t, "date", TypeInfo{Type: DateN, Size: 3}.String())
}

func TestProtocolError(t *testing.T) {
	err := NewProtocolError("timen: invalid length %d %d", 7, 3)
	assert.Equal(t, "protocol: timen: invalid length 7 3", err.Error())
	assert.True(t, errors.Is(err, ErrProtocol))
	assert.True(t, IsProtocolError(errors.Wrap(err, "decode")))
	assert.False(t, IsProtocolError(fmt.Errorf("plain")))
}

func TestExtractionError(t *testing.T) {
	inner := errors.New("value not materialized")
	err := &ExtractionError{Err: inner}
	assert.True(t, errors.Is(err, inner))
	assert.False(t, IsProtocolError(err))
	assert.Contains(t, err.Error(), "value not materialized")
}

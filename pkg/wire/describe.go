package wire

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/tdswire/pkg/tds"
)

// Describe builds a descriptor for a named column type. A zero size takes the
// natural size of fixed-width types.
func Describe(name string, size uint32, scale, precision uint8) (tds.TypeInfo, error) {
	ty, err := tds.ParseDataType(name)
	if err != nil {
		return tds.TypeInfo{}, err
	}

	ti := tds.TypeInfo{Type: ty, Size: size, Precision: precision}
	switch ty {
	case tds.Guid:
		if size == 0 {
			ti.Size = 16
		}
	case tds.DateN:
		ti.Size = 3
	case tds.TimeN, tds.DateTime2N, tds.DateTimeOffsetN:
		if scale > tds.MaxScale {
			return tds.TypeInfo{}, tds.NewProtocolError("%s: invalid scale %d", ty, scale)
		}
		ti.Scale = scale
	}
	return ti, nil
}

// ParseHex decodes a hex dump. Whitespace and a leading 0x are ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "parse hex")
	}
	return b, nil
}

// ParseTypeInfo reads a TYPE_INFO block from a hex dump. Trailing bytes are
// an error.
func ParseTypeInfo(s string) (tds.TypeInfo, error) {
	b, err := ParseHex(s)
	if err != nil {
		return tds.TypeInfo{}, err
	}
	c := NewCursor(b)
	ti, err := ReadTypeInfo(c)
	if err != nil {
		return tds.TypeInfo{}, err
	}
	if c.Remaining() != 0 {
		return tds.TypeInfo{}, tds.NewProtocolError("type info: %d trailing bytes", c.Remaining())
	}
	return ti, nil
}

package wire

import (
	"github.com/cockroachdb/errors"
	"github.com/ssargent/tdswire/pkg/tds"
)

// ReadTypeInfo reads a TYPE_INFO block for the column types this module knows
// how to describe.
//
//	Guid                      [0x24][size:1]
//	BigBinary, BigVarBinary   [tag][size:2 LE]
//	TimeN, DateTime2N,
//	DateTimeOffsetN           [tag][scale:1]
//	DateN                     [0x28]
func ReadTypeInfo(c *Cursor) (tds.TypeInfo, error) {
	var ti tds.TypeInfo

	tag, err := c.ReadU8()
	if err != nil {
		return ti, errors.Wrap(err, "type info: tag")
	}
	ti.Type = tds.DataType(tag)

	switch ti.Type {
	case tds.Guid:
		size, err := c.ReadU8()
		if err != nil {
			return ti, errors.Wrap(err, "type info: guid size")
		}
		ti.Size = uint32(size)

	case tds.BigBinary, tds.BigVarBinary:
		size, err := c.ReadU16()
		if err != nil {
			return ti, errors.Wrapf(err, "type info: %s size", ti.Type)
		}
		ti.Size = uint32(size)

	case tds.TimeN, tds.DateTime2N, tds.DateTimeOffsetN:
		scale, err := c.ReadU8()
		if err != nil {
			return ti, errors.Wrapf(err, "type info: %s scale", ti.Type)
		}
		if scale > tds.MaxScale {
			return ti, tds.NewProtocolError("type info: %s: invalid scale %d", ti.Type, scale)
		}
		ti.Scale = scale

	case tds.DateN:
		ti.Size = 3

	default:
		return ti, tds.NewProtocolError("type info: unsupported type 0x%02X", tag)
	}

	return ti, nil
}

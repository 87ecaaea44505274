// Package tds describes the column metadata of the tabular data stream
// protocol that the codec package consumes.
package tds

import (
	"fmt"
	"strings"
)

// DataType is the one-byte type tag carried in a column's TYPE_INFO.
type DataType uint8

// Type tags. Only Guid, BigBinary, BigVarBinary and DateTimeOffsetN have
// codecs; the rest exist so descriptors for other columns can be carried and
// rejected.
const (
	Guid            DataType = 0x24
	IntN            DataType = 0x26
	DateN           DataType = 0x28
	TimeN           DataType = 0x29
	DateTime2N      DataType = 0x2A
	DateTimeOffsetN DataType = 0x2B
	BigVarBinary    DataType = 0xA5
	BigVarChar      DataType = 0xA7
	BigBinary       DataType = 0xAD
)

// MaxScale is the largest fractional-second scale a temporal column can declare.
const MaxScale = 7

func (t DataType) String() string {
	switch t {
	case Guid:
		return "uniqueidentifier"
	case IntN:
		return "intn"
	case DateN:
		return "date"
	case TimeN:
		return "time"
	case DateTime2N:
		return "datetime2"
	case DateTimeOffsetN:
		return "datetimeoffset"
	case BigVarBinary:
		return "varbinary"
	case BigVarChar:
		return "varchar"
	case BigBinary:
		return "binary"
	default:
		return fmt.Sprintf("type(0x%02X)", uint8(t))
	}
}

// ParseDataType maps a user supplied type name to its tag.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "guid", "uuid", "uniqueidentifier":
		return Guid, nil
	case "binary":
		return BigBinary, nil
	case "varbinary", "bytes":
		return BigVarBinary, nil
	case "datetimeoffset", "dto":
		return DateTimeOffsetN, nil
	case "time":
		return TimeN, nil
	case "datetime2":
		return DateTime2N, nil
	case "date":
		return DateN, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", name)
	}
}

// Collation is the 5-byte collation block attached to character columns.
type Collation struct {
	LCID  uint32
	Flags uint8
}

// TypeInfo is the per-column wire type descriptor. It is supplied by the
// schema layer and describes what bytes to expect, not their content.
type TypeInfo struct {
	Type      DataType
	Size      uint32
	Scale     uint8
	Precision uint8
	Collation *Collation
}

// NewTypeInfo returns a descriptor with the given tag and size.
func NewTypeInfo(ty DataType, size uint32) TypeInfo {
	return TypeInfo{Type: ty, Size: size}
}

func (ti TypeInfo) String() string {
	switch ti.Type {
	case DateTimeOffsetN, DateTime2N, TimeN:
		return fmt.Sprintf("%s(%d)", ti.Type, ti.Scale)
	case DateN:
		return ti.Type.String()
	default:
		return fmt.Sprintf("%s(%d)", ti.Type, ti.Size)
	}
}

package codec

import (
	"github.com/ssargent/tdswire/pkg/tds"
)

// Kind is the closed set of host types this package can produce.
type Kind int

const (
	KindUnknown Kind = iota
	KindGUID
	KindBinary
	KindDateTimeOffset
)

// Kinds lists every supported kind in selection order.
var Kinds = []Kind{KindGUID, KindBinary, KindDateTimeOffset}

func (k Kind) String() string {
	switch k {
	case KindGUID:
		return "guid"
	case KindBinary:
		return "binary"
	case KindDateTimeOffset:
		return "datetimeoffset"
	default:
		return "unknown"
	}
}

// IsNull tells the caller whether an encode produced a value.
type IsNull int

const (
	NotNull IsNull = iota
	Null
)

func (n IsNull) String() string {
	if n == Null {
		return "null"
	}
	return "not null"
}

// GUIDCompatible reports whether ti describes a 16-byte uniqueidentifier.
func GUIDCompatible(ti tds.TypeInfo) bool {
	return ti.Type == tds.Guid && ti.Size == GUIDSize
}

// BinaryCompatible reports whether ti describes a binary or varbinary column of
// any size.
func BinaryCompatible(ti tds.TypeInfo) bool {
	return ti.Type == tds.BigBinary || ti.Type == tds.BigVarBinary
}

// DateTimeOffsetCompatible reports whether ti describes a datetimeoffset
// column. Scale decides the layout at decode time, not compatibility.
func DateTimeOffsetCompatible(ti tds.TypeInfo) bool {
	return ti.Type == tds.DateTimeOffsetN
}

// Compatible reports whether values described by ti can be decoded as k.
func (k Kind) Compatible(ti tds.TypeInfo) bool {
	switch k {
	case KindGUID:
		return GUIDCompatible(ti)
	case KindBinary:
		return BinaryCompatible(ti)
	case KindDateTimeOffset:
		return DateTimeOffsetCompatible(ti)
	default:
		return false
	}
}

// TypeInfo returns the descriptor used when a value of kind k is written
// without explicit metadata.
func (k Kind) TypeInfo() tds.TypeInfo {
	switch k {
	case KindGUID:
		return tds.NewTypeInfo(tds.Guid, GUIDSize)
	case KindBinary:
		return tds.NewTypeInfo(tds.BigVarBinary, 0)
	case KindDateTimeOffset:
		return tds.NewTypeInfo(tds.DateTimeOffsetN, 0)
	default:
		return tds.TypeInfo{}
	}
}

// Produces returns the descriptor an encoded payload reports: the default
// descriptor with its size set to the payload length.
func Produces(k Kind, payload []byte) tds.TypeInfo {
	ti := k.TypeInfo()
	switch k {
	case KindGUID, KindBinary:
		ti.Size = uint32(len(payload))
	}
	return ti
}

// Select picks the codec for a column.
func Select(ti tds.TypeInfo) (Kind, error) {
	for _, k := range Kinds {
		if k.Compatible(ti) {
			return k, nil
		}
	}
	return KindUnknown, tds.NewProtocolError("no codec for type %s", ti)
}

// ParseKind maps a kind name, or any data type name ParseDataType accepts, to
// a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	ty, err := tds.ParseDataType(name)
	if err != nil {
		return KindUnknown, err
	}
	switch ty {
	case tds.Guid:
		return KindGUID, nil
	case tds.BigBinary, tds.BigVarBinary:
		return KindBinary, nil
	case tds.DateTimeOffsetN:
		return KindDateTimeOffset, nil
	default:
		return KindUnknown, tds.NewProtocolError("no codec for type %s", ty)
	}
}

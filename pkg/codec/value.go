package codec

import (
	"encoding/hex"
	"time"

	"github.com/ssargent/tdswire/pkg/tds"
)

// ValueRef is one column value as handed over by the row layer. Bytes may
// alias a buffer the caller owns; it returns nil for an absent value.
type ValueRef interface {
	TypeInfo() tds.TypeInfo
	Bytes() ([]byte, error)
}

// RawValue is a ValueRef over an already materialized slice.
type RawValue struct {
	Info tds.TypeInfo
	Data []byte
}

// NewRawValue pairs a descriptor with the value bytes.
func NewRawValue(ti tds.TypeInfo, data []byte) RawValue {
	return RawValue{Info: ti, Data: data}
}

func (v RawValue) TypeInfo() tds.TypeInfo {
	return v.Info
}

func (v RawValue) Bytes() ([]byte, error) {
	return v.Data, nil
}

// Value is a decoded host value. Bytes is set for KindGUID and KindBinary,
// Time for KindDateTimeOffset.
type Value struct {
	Kind  Kind
	Bytes []byte
	Time  time.Time
}

// String renders the value for display: canonical UUID text, lowercase hex or
// RFC 3339.
func (v Value) String() string {
	switch v.Kind {
	case KindGUID:
		u, err := GUIDToUUID(v.Bytes)
		if err != nil {
			return ""
		}
		return u.String()
	case KindBinary:
		return hex.EncodeToString(v.Bytes)
	case KindDateTimeOffset:
		return v.Time.Format(time.RFC3339)
	default:
		return ""
	}
}

package codec

import (
	"github.com/google/uuid"
	"github.com/ssargent/tdswire/pkg/tds"
)

// GUIDSize is the only length a uniqueidentifier value may have.
const GUIDSize = 16

// guidPermutation maps canonical byte i to wire byte guidPermutation[i]. The
// first three groups travel little-endian, the last two as-is. Applying it
// twice is the identity.
var guidPermutation = [GUIDSize]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

func permuteGUID(dst, src []byte) {
	for i, p := range guidPermutation {
		dst[i] = src[p]
	}
}

// DecodeGUID converts a 16-byte wire identifier into canonical byte order.
// Any other length yields an empty slice.
func DecodeGUID(b []byte) []byte {
	if len(b) != GUIDSize {
		return []byte{}
	}
	out := make([]byte, GUIDSize)
	permuteGUID(out, b)
	return out
}

// EncodeGUID appends the wire form of a canonical 16-byte identifier to dst.
// A nil guid appends nothing and reports Null.
func EncodeGUID(dst, guid []byte) ([]byte, IsNull, error) {
	if guid == nil {
		return dst, Null, nil
	}
	if len(guid) != GUIDSize {
		return dst, Null, tds.NewProtocolError("guid: invalid length %d", len(guid))
	}
	var buf [GUIDSize]byte
	permuteGUID(buf[:], guid)
	return append(dst, buf[:]...), NotNull, nil
}

// EncodeUUID appends the wire form of u to dst.
func EncodeUUID(dst []byte, u uuid.UUID) []byte {
	var buf [GUIDSize]byte
	permuteGUID(buf[:], u[:])
	return append(dst, buf[:]...)
}

// GUIDToUUID interprets decoded canonical bytes as a UUID.
func GUIDToUUID(b []byte) (uuid.UUID, error) {
	return uuid.FromBytes(b)
}

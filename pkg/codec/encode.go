package codec

import "github.com/ssargent/tdswire/pkg/tds"

// Encode appends the wire form of payload as kind k to dst. A nil payload
// reports Null. Only uniqueidentifier and binary values can be encoded.
func Encode(dst []byte, k Kind, payload []byte) ([]byte, IsNull, error) {
	switch k {
	case KindGUID:
		return EncodeGUID(dst, payload)
	case KindBinary:
		out, isNull := EncodeBinary(dst, payload)
		return out, isNull, nil
	default:
		return dst, Null, tds.NewProtocolError("no encoder for %s", k)
	}
}

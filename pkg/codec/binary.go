package codec

// DecodeBinary returns an owned copy of a binary or varbinary value. An absent
// value decodes to an empty slice.
func DecodeBinary(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// EncodeBinary appends b to dst unmodified. A nil b appends nothing and
// reports Null.
func EncodeBinary(dst, b []byte) ([]byte, IsNull) {
	if b == nil {
		return dst, Null
	}
	return append(dst, b...), NotNull
}

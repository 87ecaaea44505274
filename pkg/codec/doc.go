// Package codec decodes column values of the tabular data stream protocol into
// host values.
//
// The package covers three column families: uniqueidentifier, binary and
// varbinary, and datetimeoffset. Each decoder takes the raw bytes of one
// column value, as already cut out of the row by the transport layer, and
// either returns a fully decoded value or an error. There is no partial
// decode.
//
// # Wire Formats
//
// uniqueidentifier values are 16 bytes. The first three groups travel
// little-endian, so the wire order differs from canonical order by a fixed
// permutation:
//
//	canonical[i] = wire[P[i]]   P = 3 2 1 0  5 4  7 6  8 9 10 11 12 13 14 15
//
// The permutation is its own inverse, so the same transform encodes.
//
// binary and varbinary values are raw bytes with no header; the length comes
// from the surrounding framing.
//
// datetimeoffset values are laid out as:
//
//	[Time(3|4|5)][Date(3)][Offset(2)]
//
// Fields:
//   - Time: increments of 10^-scale seconds since midnight (little-endian).
//     Scale 0-2 takes 3 bytes, 3-4 takes 4 bytes, 5-7 takes 5 bytes.
//   - Date: days since 0001-01-01 (little-endian, 24 bits)
//   - Offset: signed minutes east of UTC (little-endian)
//
// The decoded instant is the date plus time of day, minus the offset,
// truncated to whole seconds. Instants before 1970-01-01 UTC collapse to the
// Unix epoch.
//
// # Usage
//
// Decoding a single value directly:
//
//	t, err := codec.DecodeDateTimeOffset(raw, codec.FixedTemporalScale)
//	if err != nil {
//	    return err
//	}
//
// Dispatching on the column descriptor:
//
//	decoder := codec.NewDecoder(codec.DecoderConfig{})
//	v, err := decoder.Decode(codec.NewRawValue(typeInfo, raw))
//	if err != nil {
//	    return err
//	}
//
// # Defaults
//
// Some inputs decode to a defined default instead of failing:
//   - an empty datetimeoffset value decodes to the Unix epoch
//   - a uniqueidentifier value that is not 16 bytes decodes to an empty slice
//   - an absent binary value decodes to an empty slice
//
// # Error Handling
//
// Malformed values fail with a *tds.ProtocolError: a scale outside 0-7, a
// time field width that does not match the scale, or a value that ends early.
// A failure of the value accessor itself is returned as a *tds.ExtractionError
// wrapping the original error.
//
// # Temporal Scale
//
// By default datetimeoffset values are decoded with scale 7 regardless of the
// scale the column declares, which means only 10-byte values decode. Set
// DecoderConfig.TemporalScale to ScaleDeclared to use the column's scale.
//
// # Thread Safety
//
// All functions are pure and a Decoder holds no mutable state; both are safe
// for concurrent use. Input slices are borrowed and must not be mutated during
// a call. Results never alias the input.
package codec

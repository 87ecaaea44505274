package codec_test

import (
	"fmt"
	"log"

	"github.com/ssargent/tdswire/pkg/codec"
	"github.com/ssargent/tdswire/pkg/tds"
)

// ExampleDecodeGUID demonstrates the byte reordering of identifiers
func ExampleDecodeGUID() {
	wire := []byte{
		0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}

	canonical := codec.DecodeGUID(wire)
	u, err := codec.GUIDToUUID(canonical)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Canonical: %x\n", canonical)
	fmt.Printf("UUID: %s\n", u)

	// Output:
	// Canonical: 00112233445566778899aabbccddeeff
	// UUID: 00112233-4455-6677-8899-aabbccddeeff
}

// ExampleDecodeDateTimeOffset demonstrates decoding a scale 7 value
func ExampleDecodeDateTimeOffset() {
	// 2024-03-15 12:34:56 +02:00
	wire := []byte{
		0x00, 0x18, 0x85, 0x76, 0x69, // time, 452960000000 ticks
		0x8f, 0x46, 0x0b, // date, 738959 days
		0x78, 0x00, // offset, +120 minutes
	}

	t, err := codec.DecodeDateTimeOffset(wire, codec.FixedTemporalScale)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(t.Format("2006-01-02 15:04:05 MST"))

	// Output:
	// 2024-03-15 10:34:56 UTC
}

// ExampleDecoder_Decode demonstrates dispatch on the column descriptor
func ExampleDecoder_Decode() {
	decoder := codec.NewDecoder(codec.DecoderConfig{})

	columns := []codec.RawValue{
		codec.NewRawValue(tds.NewTypeInfo(tds.BigVarBinary, 8000), []byte("tds")),
		codec.NewRawValue(tds.NewTypeInfo(tds.Guid, 16), []byte{0x01, 0x02}),
		codec.NewRawValue(tds.TypeInfo{Type: tds.DateTimeOffsetN, Scale: 7}, nil),
	}

	for _, col := range columns {
		v, err := decoder.Decode(col)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %q\n", v.Kind, v.String())
	}

	// Output:
	// binary: "746473"
	// guid: ""
	// datetimeoffset: "1970-01-01T00:00:00Z"
}

// ExampleEncodeBinary demonstrates the null signal on encode
func ExampleEncodeBinary() {
	buf, isNull := codec.EncodeBinary(nil, []byte{0xca, 0xfe})
	fmt.Printf("%x %s\n", buf, isNull)

	buf, isNull = codec.EncodeBinary(nil, nil)
	fmt.Printf("%d %s\n", len(buf), isNull)

	// Output:
	// cafe not null
	// 0 null
}

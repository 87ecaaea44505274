package storage

import (
	"encoding/binary"
	"hash/crc32"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/tdswire/pkg/tds"
)

// Sample is one captured column value with the descriptor it arrived under.
type Sample struct {
	ID       ksuid.KSUID
	TypeInfo tds.TypeInfo
	Value    []byte
	Note     string
	Created  time.Time
}

// ErrCorrupt is returned for a stored record that fails its checksum or is
// cut short.
var ErrCorrupt = errors.New("corrupt sample record")

// headerSize is CRC32(4) + Created(8) + Tag(1) + Size(4) + Scale(1) +
// Precision(1) + ValueSize(4) + NoteSize(2).
const headerSize = 25

// encodeRecord serializes a sample.
// Format: [CRC32(4)][Created(8)][Tag(1)][Size(4)][Scale(1)][Precision(1)][ValueSize(4)][NoteSize(2)][Value][Note]
func encodeRecord(s Sample) ([]byte, error) {
	if uint64(len(s.Value)) > math.MaxUint32 {
		return nil, errors.Newf("value too large: %d bytes", len(s.Value))
	}
	if len(s.Note) > math.MaxUint16 {
		return nil, errors.Newf("note too large: %d bytes", len(s.Note))
	}

	buf := make([]byte, headerSize+len(s.Value)+len(s.Note))
	binary.LittleEndian.PutUint64(buf[4:], uint64(s.Created.UnixNano()))
	buf[12] = uint8(s.TypeInfo.Type)
	binary.LittleEndian.PutUint32(buf[13:], s.TypeInfo.Size)
	buf[17] = s.TypeInfo.Scale
	buf[18] = s.TypeInfo.Precision
	binary.LittleEndian.PutUint32(buf[19:], uint32(len(s.Value)))
	binary.LittleEndian.PutUint16(buf[23:], uint16(len(s.Note)))
	copy(buf[headerSize:], s.Value)
	copy(buf[headerSize+len(s.Value):], s.Note)

	binary.LittleEndian.PutUint32(buf[0:], crc32.ChecksumIEEE(buf[4:]))
	return buf, nil
}

// decodeRecord deserializes a stored sample. The result does not alias data.
func decodeRecord(id ksuid.KSUID, data []byte) (Sample, error) {
	if len(data) < headerSize {
		return Sample{}, errors.Wrapf(ErrCorrupt, "record too short for header: %d bytes", len(data))
	}

	crc := binary.LittleEndian.Uint32(data[0:4])
	if got := crc32.ChecksumIEEE(data[4:]); got != crc {
		return Sample{}, errors.Wrapf(ErrCorrupt, "crc32 mismatch: %d != %d", crc, got)
	}

	valueSize := int(binary.LittleEndian.Uint32(data[19:23]))
	noteSize := int(binary.LittleEndian.Uint16(data[23:25]))
	if len(data) != headerSize+valueSize+noteSize {
		return Sample{}, errors.Wrapf(ErrCorrupt, "record size %d does not match header (%d value, %d note)",
			len(data), valueSize, noteSize)
	}

	value := data[headerSize : headerSize+valueSize]
	note := data[headerSize+valueSize:]

	return Sample{
		ID: id,
		TypeInfo: tds.TypeInfo{
			Type:      tds.DataType(data[12]),
			Size:      binary.LittleEndian.Uint32(data[13:17]),
			Scale:     data[17],
			Precision: data[18],
		},
		Value:   append([]byte{}, value...),
		Note:    string(note),
		Created: time.Unix(0, int64(binary.LittleEndian.Uint64(data[4:12]))).UTC(),
	}, nil
}

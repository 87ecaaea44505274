package codec

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/tdswire/pkg/wire"
)

// FixedTemporalScale is the scale DecodeDateTimeOffset is called with unless
// the decoder is configured to honour the column's declared scale.
const FixedTemporalScale = 7

// UnixEpoch is returned for an empty DATETIMEOFFSET value and for any instant
// before 1970-01-01 UTC.
var UnixEpoch = time.Unix(0, 0).UTC()

// DecodeDateTimeOffset decodes a DATETIMEOFFSET value:
//
//	[time: 3|4|5 bytes][date: 3 bytes LE day-count][offset: 2 bytes LE signed minutes]
//
// The time field width is len(b)-5 and must agree with scale. The result is
// truncated to whole seconds and clamped to the Unix epoch.
func DecodeDateTimeOffset(b []byte, scale uint8) (time.Time, error) {
	if len(b) == 0 {
		return UnixEpoch, nil
	}

	c := wire.NewCursor(b)
	rlen := len(b) - dateFieldSize - offsetFieldSize

	dt, err := DecodeDateTime2(c, int(scale), rlen)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "datetimeoffset")
	}
	offset, err := c.ReadI16()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "datetimeoffset: offset")
	}

	utc := dt.Naive().Add(-time.Duration(offset) * time.Minute)
	return time.Unix(clampTimestamp(utc.Unix()), 0).UTC(), nil
}

func clampTimestamp(ts int64) int64 {
	if ts < 0 {
		return 0
	}
	return ts
}

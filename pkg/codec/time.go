package codec

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/tdswire/pkg/tds"
	"github.com/ssargent/tdswire/pkg/wire"
)

const (
	// dateFieldSize is the width of the day-count that follows the time field.
	dateFieldSize = 3
	// offsetFieldSize is the width of the signed UTC offset in minutes.
	offsetFieldSize = 2

	nanosPerDay = int64(24 * time.Hour)
)

// dateEpoch is day zero of the Date field: 0001-01-01, proleptic Gregorian.
var dateEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// Time is a time of day expressed as increments of 10^-scale seconds since
// midnight.
type Time struct {
	increments uint64
	scale      uint8
}

// NewTime builds a Time from its increments and scale.
func NewTime(increments uint64, scale uint8) Time {
	return Time{increments: increments, scale: scale}
}

// Increments returns the number of 10^-n second increments since midnight,
// where n is Scale.
func (t Time) Increments() uint64 {
	return t.increments
}

// Scale returns the accuracy of the increments.
func (t Time) Scale() uint8 {
	return t.scale
}

// Len returns the width of the field on the wire.
func (t Time) Len() (uint8, error) {
	switch {
	case t.scale <= 2:
		return 3, nil
	case t.scale <= 4:
		return 4, nil
	case t.scale <= tds.MaxScale:
		return 5, nil
	default:
		return 0, tds.NewProtocolError("timen: invalid scale %d", t.scale)
	}
}

// Nanoseconds converts the increments to nanoseconds. The scale must be valid.
func (t Time) Nanoseconds() int64 {
	return int64(t.increments) * pow10(9-int(t.scale))
}

// DecodeTime reads a time field whose width is implied jointly by the declared
// scale n and the field length rlen. Valid pairs are (0..2, 3), (3..4, 4) and
// (5..7, 5). The returned Time carries n as its scale.
func DecodeTime(c *wire.Cursor, n int, rlen int) (Time, error) {
	var val uint64

	switch {
	case n >= 0 && n <= 2 && rlen == 3:
		hi, err := c.ReadU16()
		if err != nil {
			return Time{}, err
		}
		lo, err := c.ReadU8()
		if err != nil {
			return Time{}, err
		}
		val = uint64(hi) | uint64(lo)<<16

	case n >= 3 && n <= 4 && rlen == 4:
		v, err := c.ReadU32()
		if err != nil {
			return Time{}, err
		}
		val = uint64(v)

	case n >= 5 && n <= tds.MaxScale && rlen == 5:
		hi, err := c.ReadU32()
		if err != nil {
			return Time{}, err
		}
		lo, err := c.ReadU8()
		if err != nil {
			return Time{}, err
		}
		val = uint64(hi) | uint64(lo)<<32

	default:
		return Time{}, tds.NewProtocolError("timen: invalid scale/length combination %d %d", n, rlen)
	}

	return Time{increments: val, scale: uint8(n)}, nil
}

// Date is a day-count since 0001-01-01. Only 24 bits are meaningful.
type Date struct {
	days uint32
}

// NewDate wraps a day-count.
//
// Panics if days does not fit in 3 bytes.
func NewDate(days uint32) Date {
	if days>>24 != 0 {
		panic("date: day-count exceeds 24 bits")
	}
	return Date{days: days}
}

// Days returns the number of days since 1 January of year 1.
func (d Date) Days() uint32 {
	return d.days
}

// Time returns midnight UTC of the calendar day.
func (d Date) Time() time.Time {
	return dateEpoch.AddDate(0, 0, int(d.days))
}

// DecodeDate reads a 3-byte little-endian day-count.
func DecodeDate(c *wire.Cursor) (Date, error) {
	b, err := c.ReadBytes(dateFieldSize)
	if err != nil {
		return Date{}, err
	}
	return NewDate(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16), nil
}

// DateTime2 is a Date paired with a Time, without any offset.
type DateTime2 struct {
	date Date
	time Time
}

// NewDateTime2 builds a DateTime2 from its components.
func NewDateTime2(date Date, t Time) DateTime2 {
	return DateTime2{date: date, time: t}
}

func (dt DateTime2) Date() Date {
	return dt.date
}

func (dt DateTime2) Time() Time {
	return dt.time
}

// Naive returns the wall-clock instant the fields describe, expressed in UTC.
// Time-of-day wraps at midnight.
func (dt DateTime2) Naive() time.Time {
	ns := dt.time.Nanoseconds() % nanosPerDay
	return dt.date.Time().Add(time.Duration(ns))
}

// DecodeDateTime2 reads a time field of rlen bytes followed by a date field.
func DecodeDateTime2(c *wire.Cursor, n int, rlen int) (DateTime2, error) {
	t, err := DecodeTime(c, n, rlen)
	if err != nil {
		return DateTime2{}, errors.Wrap(err, "datetime2: time")
	}
	d, err := DecodeDate(c)
	if err != nil {
		return DateTime2{}, errors.Wrap(err, "datetime2: date")
	}
	return NewDateTime2(d, t), nil
}

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

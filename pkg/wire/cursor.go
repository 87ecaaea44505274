// Package wire provides the little-endian byte cursor the column codecs read
// from, plus a TYPE_INFO reader for the column types they support.
package wire

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/tdswire/pkg/tds"
)

// Cursor reads sequentially from a borrowed byte slice. It never copies; slices
// returned by ReadBytes alias the underlying buffer.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data. The caller keeps ownership of the slice and must not
// mutate it while the cursor is in use.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total length of the wrapped slice.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// ReadBytes consumes n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, errors.Wrapf(tds.ErrUnexpectedEnd, "need %d bytes at pos %d, have %d", n, c.pos, c.Remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Skip advances past n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.ReadBytes(n)
	return err
}

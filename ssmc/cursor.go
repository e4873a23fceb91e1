package ssmc

import (
	"encoding/binary"
	"io"
)

// cursor sequentially decodes little-endian fields from a section buffer
// with bounds checking. Decoding past the end returns
// io.ErrUnexpectedEOF; callers wrap it into ErrFormat with context.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || len(c.buf)-c.off < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) u64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// rest returns the number of undecoded bytes.
func (c *cursor) rest() int {
	return len(c.buf) - c.off
}

package ssmc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Magic is the fixed byte sequence opening every SSMC container.
var Magic = [4]byte{'S', 'S', 'M', 'C'}

// HeaderSize is the fixed size of the container header in bytes.
const HeaderSize = 72

// Section locates one region of the container file.
type Section struct {
	// Offset is the region's byte offset from the start of the file.
	Offset uint64

	// Length is the region's byte length.
	Length uint64
}

// Header is the fixed-size preamble of an SSMC container.
//
// Layout (little-endian):
//
//	magic      [4]byte "SSMC"
//	hashWidth  uint32  1 = 64-bit hashes, 2 = 128-bit hashes
//	manifest   offset uint64, length uint64
//	chunkIndex offset uint64, length uint64
//	dictionary offset uint64, length uint64
//	data       offset uint64, length uint64
//
// Sections may appear anywhere in the file and in any order; only the
// offsets matter.
type Header struct {
	HashWidth  uint32
	Manifest   Section
	ChunkIndex Section
	Dictionary Section
	Data       Section
}

// readHeader reads and validates the container header. fileSize bounds the
// section table: any section reaching past the end of the file marks the
// container malformed.
func readHeader(src io.ReaderAt, fileSize int64) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := readFullAt(src, buf, 0); err != nil {
		return nil, fmt.Errorf("%w: truncated header: %v", ErrFormat, err)
	}
	if !bytes.Equal(buf[:4], Magic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, buf[:4])
	}

	hdr := &Header{
		HashWidth: binary.LittleEndian.Uint32(buf[4:8]),
	}
	for i, sec := range []*Section{&hdr.Manifest, &hdr.ChunkIndex, &hdr.Dictionary, &hdr.Data} {
		off := 8 + i*16
		sec.Offset = binary.LittleEndian.Uint64(buf[off : off+8])
		sec.Length = binary.LittleEndian.Uint64(buf[off+8 : off+16])
	}

	names := [...]string{"manifest", "chunk index", "dictionary", "data"}
	for i, sec := range []Section{hdr.Manifest, hdr.ChunkIndex, hdr.Dictionary, hdr.Data} {
		end := sec.Offset + sec.Length
		if end < sec.Offset || end > uint64(fileSize) {
			return nil, fmt.Errorf("%w: %s section [%d,%d) outside file of %d bytes",
				ErrFormat, names[i], sec.Offset, end, fileSize)
		}
	}
	return hdr, nil
}

// readSection reads one section into a fresh buffer.
func readSection(src io.ReaderAt, sec Section, name string) ([]byte, error) {
	if sec.Length == 0 {
		return nil, nil
	}
	buf := make([]byte, sec.Length)
	if _, err := readFullAt(src, buf, int64(sec.Offset)); err != nil {
		return nil, fmt.Errorf("read %s section: %w", name, err)
	}
	return buf, nil
}

// readFullAt fills buf from src at off, normalizing the io.ReaderAt
// contract's optional EOF on a complete read.
func readFullAt(src io.ReaderAt, buf []byte, off int64) (int, error) {
	n, err := src.ReadAt(buf, off)
	if n == len(buf) {
		return n, nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

package ssmc

import "fmt"

// ChunkLocation is where a chunk's compressed bytes live, relative to the
// start of the data section.
type ChunkLocation struct {
	// Offset is the chunk's byte offset within the data section.
	Offset uint64

	// Length is the compressed length in bytes.
	Length uint32
}

// ChunkIndex resolves a content hash to the chunk's location in the data
// section.
type ChunkIndex[H ChunkHash] interface {
	Lookup(h H) (ChunkLocation, bool)
}

// ChunkIndexCodec deserializes a container's chunk-index section into a
// queryable ChunkIndex.
type ChunkIndexCodec[H ChunkHash] interface {
	Prepare(data []byte) (ChunkIndex[H], error)
}

// binaryChunkIndexCodec decodes the SSMC chunk-index section:
//
//	entryCount uint32
//	repeat entryCount: hash [8|16]byte, offset uint64, length uint32
type binaryChunkIndexCodec[H ChunkHash] struct{}

func (binaryChunkIndexCodec[H]) Prepare(data []byte) (ChunkIndex[H], error) {
	c := &cursor{buf: data}
	count, err := c.u32()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated chunk index", ErrFormat)
	}

	hlen := hashLen[H]()
	if int64(count) > int64(c.rest()/(hlen+12)) {
		return nil, fmt.Errorf("%w: chunk index declares %d entries in %d bytes", ErrFormat, count, len(data))
	}
	idx := make(mapChunkIndex[H], count)
	for i := uint32(0); i < count; i++ {
		hb, err := c.take(hlen)
		if err != nil {
			return nil, fmt.Errorf("%w: truncated chunk index entry %d", ErrFormat, i)
		}
		offset, err := c.u64()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated chunk index entry %d", ErrFormat, i)
		}
		length, err := c.u32()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated chunk index entry %d", ErrFormat, i)
		}
		idx[hashFrom[H](hb)] = ChunkLocation{Offset: offset, Length: length}
	}

	if c.rest() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after chunk index", ErrFormat, c.rest())
	}
	return idx, nil
}

// mapChunkIndex is the default in-memory ChunkIndex.
type mapChunkIndex[H ChunkHash] map[H]ChunkLocation

func (m mapChunkIndex[H]) Lookup(h H) (ChunkLocation, bool) {
	loc, ok := m[h]
	return loc, ok
}

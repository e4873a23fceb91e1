package ssmc

import "fmt"

// ChunkRef is one chunk within a file's reconstruction recipe. Its identity
// is the content hash; Size is the chunk's decompressed length.
type ChunkRef[H ChunkHash] struct {
	Hash H
	Size uint32
}

// FileManifest is one archived file's reconstruction recipe: the chunk list
// order defines byte order in the reconstructed file.
type FileManifest[H ChunkHash] struct {
	Name   string
	Chunks []ChunkRef[H]
}

// ManifestCodec deserializes a container's manifest section.
//
// The default codec reads the SSMC binary manifest layout; tests substitute
// doubles through format options.
type ManifestCodec[H ChunkHash] interface {
	Parse(data []byte) ([]FileManifest[H], error)
}

// binaryManifestCodec decodes the SSMC manifest section:
//
//	fileCount uint32
//	repeat fileCount:
//	  nameLen uint16, name [nameLen]byte
//	  chunkCount uint32
//	  repeat chunkCount: hash [8|16]byte, size uint32
type binaryManifestCodec[H ChunkHash] struct{}

func (binaryManifestCodec[H]) Parse(data []byte) ([]FileManifest[H], error) {
	c := &cursor{buf: data}
	count, err := c.u32()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated manifest", ErrFormat)
	}
	// Each file entry occupies at least 6 bytes; a count the section
	// cannot hold is corruption, not a reason to preallocate.
	if int64(count) > int64(c.rest()/6) {
		return nil, fmt.Errorf("%w: manifest declares %d files in %d bytes", ErrFormat, count, len(data))
	}

	hlen := hashLen[H]()
	files := make([]FileManifest[H], 0, count)
	for i := uint32(0); i < count; i++ {
		nameLen, err := c.u16()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated manifest entry %d", ErrFormat, i)
		}
		name, err := c.take(int(nameLen))
		if err != nil {
			return nil, fmt.Errorf("%w: truncated manifest entry %d", ErrFormat, i)
		}
		chunkCount, err := c.u32()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated manifest entry %d", ErrFormat, i)
		}
		if int64(chunkCount) > int64(c.rest()/(hlen+4)) {
			return nil, fmt.Errorf("%w: manifest entry %d declares %d chunks in %d remaining bytes",
				ErrFormat, i, chunkCount, c.rest())
		}

		chunks := make([]ChunkRef[H], 0, chunkCount)
		for j := uint32(0); j < chunkCount; j++ {
			hb, err := c.take(hlen)
			if err != nil {
				return nil, fmt.Errorf("%w: truncated chunk list in manifest entry %d", ErrFormat, i)
			}
			size, err := c.u32()
			if err != nil {
				return nil, fmt.Errorf("%w: truncated chunk list in manifest entry %d", ErrFormat, i)
			}
			chunks = append(chunks, ChunkRef[H]{Hash: hashFrom[H](hb), Size: size})
		}
		files = append(files, FileManifest[H]{Name: string(name), Chunks: chunks})
	}

	if c.rest() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after manifest", ErrFormat, c.rest())
	}
	return files, nil
}

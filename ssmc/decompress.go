package ssmc

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// DictionaryID is the raw-content dictionary ID shared by SSMC writers and
// readers. Chunk frames reference it when the container carries a
// dictionary.
const DictionaryID uint32 = 1

// DefaultMaxDecoderMemory caps per-decoder memory (64MB). Chunks are small;
// a frame demanding more is corrupt or hostile.
const DefaultMaxDecoderMemory = 64 << 20

// ChunkDecoder expands compressed chunks against the dictionary it was
// opened with. Decoders are scoped to a single extraction call and are not
// safe for concurrent use.
type ChunkDecoder interface {
	// Decompress expands compressed to exactly size bytes.
	Decompress(compressed []byte, size uint32) ([]byte, error)

	// Close releases decoder resources.
	Close() error
}

// ChunkCodec produces decoders bound to a container's shared dictionary.
//
// The default codec decodes zstd frames; tests substitute doubles through
// format options.
type ChunkCodec interface {
	OpenDict(dict []byte) (ChunkDecoder, error)
}

// zstdCodec is the default ChunkCodec.
type zstdCodec struct {
	maxMemory uint64
}

func (c zstdCodec) OpenDict(dict []byte) (ChunkDecoder, error) {
	opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if c.maxMemory != 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(c.maxMemory))
	}
	if len(dict) > 0 {
		opts = append(opts, zstd.WithDecoderDictRaw(DictionaryID, dict))
	}
	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	return &zstdDecoder{dec: dec}, nil
}

type zstdDecoder struct {
	dec *zstd.Decoder
}

func (d *zstdDecoder) Decompress(compressed []byte, size uint32) ([]byte, error) {
	out, err := d.dec.DecodeAll(compressed, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if uint64(len(out)) != uint64(size) {
		return nil, fmt.Errorf("%w: chunk decompressed to %d bytes, want %d", ErrDecompression, len(out), size)
	}
	return out, nil
}

func (d *zstdDecoder) Close() error {
	d.dec.Close()
	return nil
}

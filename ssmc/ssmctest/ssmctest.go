// Package ssmctest builds SSMC containers for tests.
//
// Containers are described declaratively as files made of raw chunk
// payloads. The builder computes real content hashes, deduplicates
// identical chunks, compresses payloads against the container dictionary,
// and lays the sections out with a valid header.
package ssmctest

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/Zade222/arc/ssmc"
)

// File is one archived file, as an ordered list of decompressed chunk
// payloads.
type File struct {
	Name   string
	Chunks [][]byte
}

// Container describes an SSMC container to build.
type Container struct {
	// HashWidth is ssmc.HashWidth64 or ssmc.HashWidth128.
	// Zero defaults to HashWidth64.
	HashWidth uint32

	// Dictionary is the shared decompression dictionary. May be empty.
	Dictionary []byte

	// Files in manifest order.
	Files []File

	// Raw stores chunk payloads uncompressed. Pair with RawCodec on the
	// reader side.
	Raw bool

	// OmitFromIndex lists chunk payloads whose hashes are left out of the
	// chunk index, simulating a corrupt container.
	OmitFromIndex [][]byte
}

// Build produces the container bytes. Sections are deliberately laid out in
// non-canonical order (data, dictionary, chunk index, manifest) since only
// the header's offsets define the layout.
func Build(t testing.TB, c Container) []byte {
	t.Helper()

	width := c.HashWidth
	if width == 0 {
		width = ssmc.HashWidth64
	}
	if width != ssmc.HashWidth64 && width != ssmc.HashWidth128 {
		t.Fatalf("ssmctest: unsupported hash width %d", width)
	}

	compress := func(chunk []byte) []byte {
		out := make([]byte, len(chunk))
		copy(out, chunk)
		return out
	}
	if !c.Raw {
		opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
		if len(c.Dictionary) > 0 {
			opts = append(opts, zstd.WithEncoderDictRaw(ssmc.DictionaryID, c.Dictionary))
		}
		enc, err := zstd.NewWriter(nil, opts...)
		if err != nil {
			t.Fatalf("ssmctest: create encoder: %v", err)
		}
		defer enc.Close()
		compress = func(chunk []byte) []byte {
			return enc.EncodeAll(chunk, nil)
		}
	}

	omitted := make(map[string]bool, len(c.OmitFromIndex))
	for _, chunk := range c.OmitFromIndex {
		omitted[string(chunkHash(width, chunk))] = true
	}

	// Data section with chunk dedup by content hash.
	var data []byte
	type indexEntry struct {
		hash   []byte
		offset uint64
		length uint32
	}
	var entries []indexEntry
	located := make(map[string]bool)
	for _, f := range c.Files {
		for _, chunk := range f.Chunks {
			hash := chunkHash(width, chunk)
			if located[string(hash)] {
				continue
			}
			located[string(hash)] = true
			compressed := compress(chunk)
			if !omitted[string(hash)] {
				entries = append(entries, indexEntry{
					hash:   hash,
					offset: uint64(len(data)),
					length: uint32(len(compressed)),
				})
			}
			data = append(data, compressed...)
		}
	}

	// Chunk-index section.
	chunkIndex := binary.LittleEndian.AppendUint32(nil, uint32(len(entries)))
	for _, e := range entries {
		chunkIndex = append(chunkIndex, e.hash...)
		chunkIndex = binary.LittleEndian.AppendUint64(chunkIndex, e.offset)
		chunkIndex = binary.LittleEndian.AppendUint32(chunkIndex, e.length)
	}

	// Manifest section.
	manifest := binary.LittleEndian.AppendUint32(nil, uint32(len(c.Files)))
	for _, f := range c.Files {
		manifest = binary.LittleEndian.AppendUint16(manifest, uint16(len(f.Name)))
		manifest = append(manifest, f.Name...)
		manifest = binary.LittleEndian.AppendUint32(manifest, uint32(len(f.Chunks)))
		for _, chunk := range f.Chunks {
			manifest = append(manifest, chunkHash(width, chunk)...)
			manifest = binary.LittleEndian.AppendUint32(manifest, uint32(len(chunk)))
		}
	}

	// Header + sections.
	out := make([]byte, 0, ssmc.HeaderSize+len(data)+len(c.Dictionary)+len(chunkIndex)+len(manifest))
	out = append(out, ssmc.Magic[:]...)
	out = binary.LittleEndian.AppendUint32(out, width)

	offset := uint64(ssmc.HeaderSize)
	dataOff := offset
	offset += uint64(len(data))
	dictOff := offset
	offset += uint64(len(c.Dictionary))
	indexOff := offset
	offset += uint64(len(chunkIndex))
	manifestOff := offset

	for _, sec := range [][2]uint64{
		{manifestOff, uint64(len(manifest))},
		{indexOff, uint64(len(chunkIndex))},
		{dictOff, uint64(len(c.Dictionary))},
		{dataOff, uint64(len(data))},
	} {
		out = binary.LittleEndian.AppendUint64(out, sec[0])
		out = binary.LittleEndian.AppendUint64(out, sec[1])
	}

	out = append(out, data...)
	out = append(out, c.Dictionary...)
	out = append(out, chunkIndex...)
	out = append(out, manifest...)
	return out
}

// chunkHash computes the content hash for a chunk payload at the given
// width: xxhash64 for 64-bit containers, blake3 truncated to 16 bytes for
// 128-bit containers.
func chunkHash(width uint32, chunk []byte) []byte {
	if width == ssmc.HashWidth64 {
		return binary.LittleEndian.AppendUint64(nil, xxhash.Sum64(chunk))
	}
	sum := blake3.Sum256(chunk)
	return sum[:16]
}

// RawCodec is a ssmc.ChunkCodec double for containers built with Raw: it
// treats stored bytes as already decompressed.
type RawCodec struct{}

// OpenDict implements ssmc.ChunkCodec. The dictionary is ignored.
func (RawCodec) OpenDict(_ []byte) (ssmc.ChunkDecoder, error) {
	return rawDecoder{}, nil
}

type rawDecoder struct{}

func (rawDecoder) Decompress(compressed []byte, size uint32) ([]byte, error) {
	if uint32(len(compressed)) != size {
		return nil, fmt.Errorf("%w: raw chunk is %d bytes, want %d", ssmc.ErrDecompression, len(compressed), size)
	}
	out := make([]byte, len(compressed))
	copy(out, compressed)
	return out, nil
}

func (rawDecoder) Close() error { return nil }

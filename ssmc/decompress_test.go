package ssmc

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressChunk(t *testing.T, payload, dict []byte) []byte {
	t.Helper()
	opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
	if len(dict) > 0 {
		opts = append(opts, zstd.WithEncoderDictRaw(DictionaryID, dict))
	}
	enc, err := zstd.NewWriter(nil, opts...)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(payload, nil)
}

func TestZstdCodecRoundTripWithDictionary(t *testing.T) {
	t.Parallel()

	dict := bytes.Repeat([]byte("shared prefix material "), 8)
	payload := append(bytes.Repeat([]byte("shared prefix material "), 3), "unique tail"...)
	compressed := compressChunk(t, payload, dict)

	dec, err := zstdCodec{maxMemory: DefaultMaxDecoderMemory}.OpenDict(dict)
	require.NoError(t, err)
	defer dec.Close()

	got, err := dec.Decompress(compressed, uint32(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestZstdCodecRoundTripNoDictionary(t *testing.T) {
	t.Parallel()

	payload := []byte("plain chunk with no shared dictionary")
	compressed := compressChunk(t, payload, nil)

	dec, err := zstdCodec{}.OpenDict(nil)
	require.NoError(t, err)
	defer dec.Close()

	got, err := dec.Decompress(compressed, uint32(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestZstdCodecSizeMismatch(t *testing.T) {
	t.Parallel()

	payload := []byte("four")
	compressed := compressChunk(t, payload, nil)

	dec, err := zstdCodec{}.OpenDict(nil)
	require.NoError(t, err)
	defer dec.Close()

	_, err = dec.Decompress(compressed, uint32(len(payload))+1)
	assert.ErrorIs(t, err, ErrDecompression)
}

func TestZstdCodecGarbageInput(t *testing.T) {
	t.Parallel()

	dec, err := zstdCodec{}.OpenDict(nil)
	require.NoError(t, err)
	defer dec.Close()

	_, err = dec.Decompress([]byte("definitely not a zstd frame"), 16)
	assert.ErrorIs(t, err, ErrDecompression)
}

func TestHashHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, hashLen[Hash64]())
	assert.Equal(t, 16, hashLen[Hash128]())

	b := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, Hash64{1, 2, 3, 4, 5, 6, 7, 8}, hashFrom[Hash64](b))
	assert.Equal(t, Hash128{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, hashFrom[Hash128](b))
}

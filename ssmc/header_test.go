package ssmc

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildHeader assembles raw header bytes for the given width and sections
// (manifest, chunk index, dictionary, data).
func buildHeader(width uint32, sections [4]Section) []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, Magic[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, width)
	for _, s := range sections {
		buf = binary.LittleEndian.AppendUint64(buf, s.Offset)
		buf = binary.LittleEndian.AppendUint64(buf, s.Length)
	}
	return buf
}

func TestReadHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	sections := [4]Section{
		{Offset: 72, Length: 10},
		{Offset: 82, Length: 20},
		{Offset: 102, Length: 5},
		{Offset: 107, Length: 100},
	}
	raw := buildHeader(HashWidth128, sections)
	fileSize := int64(207)

	hdr, err := readHeader(bytes.NewReader(raw), fileSize)
	require.NoError(t, err)
	assert.Equal(t, HashWidth128, hdr.HashWidth)
	assert.Equal(t, sections[0], hdr.Manifest)
	assert.Equal(t, sections[1], hdr.ChunkIndex)
	assert.Equal(t, sections[2], hdr.Dictionary)
	assert.Equal(t, sections[3], hdr.Data)
}

func TestReadHeaderBadMagic(t *testing.T) {
	t.Parallel()

	raw := buildHeader(HashWidth64, [4]Section{})
	raw[0] = 'X'

	_, err := readHeader(bytes.NewReader(raw), int64(len(raw)))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadHeaderShortRead(t *testing.T) {
	t.Parallel()

	raw := buildHeader(HashWidth64, [4]Section{})

	_, err := readHeader(bytes.NewReader(raw[:HeaderSize-1]), HeaderSize-1)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = readHeader(bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadHeaderSectionOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sections [4]Section
	}{
		{"manifest past end", [4]Section{{Offset: 72, Length: 1000}, {}, {}, {}}},
		{"data past end", [4]Section{{}, {}, {}, {Offset: 100, Length: 100}}},
		{"offset overflow", [4]Section{{}, {Offset: ^uint64(0), Length: 2}, {}, {}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := buildHeader(HashWidth64, tt.sections)
			_, err := readHeader(bytes.NewReader(raw), int64(len(raw)))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestReadSectionEmpty(t *testing.T) {
	t.Parallel()

	buf, err := readSection(bytes.NewReader(nil), Section{}, "manifest")
	require.NoError(t, err)
	assert.Nil(t, buf)
}

func TestReadSection(t *testing.T) {
	t.Parallel()

	data := []byte("0123456789")
	buf, err := readSection(bytes.NewReader(data), Section{Offset: 3, Length: 4}, "manifest")
	require.NoError(t, err)
	assert.Equal(t, []byte("3456"), buf)
}

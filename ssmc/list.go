package ssmc

import (
	"fmt"
	"os"

	"github.com/Zade222/arc"
)

// List implements arc.Lister.
//
// Every SSMC entry is a flat file; the returned entries carry
// arc.KindFile and their manifest position as Index, the stable handle
// for index-based extraction.
func (f *Format) List(archivePath string) ([]arc.Entry, error) {
	src, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("ssmc: open archive: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("ssmc: stat archive: %w", err)
	}

	hdr, err := readHeader(src, info.Size())
	if err != nil {
		return nil, err
	}

	manifestBuf, err := readSection(src, hdr.Manifest, "manifest")
	if err != nil {
		return nil, err
	}

	switch hdr.HashWidth {
	case HashWidth64:
		return listEntries(f.manifest64, manifestBuf)
	case HashWidth128:
		return listEntries(f.manifest128, manifestBuf)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedHashWidth, hdr.HashWidth)
	}
}

// listEntries parses the manifest and maps each file to an archive entry.
func listEntries[H ChunkHash](codec ManifestCodec[H], manifestBuf []byte) ([]arc.Entry, error) {
	files, err := codec.Parse(manifestBuf)
	if err != nil {
		return nil, err
	}
	// A well-formed container holds at least one file; an empty manifest
	// is corruption, not an empty archive.
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: empty manifest", ErrFormat)
	}

	entries := make([]arc.Entry, len(files))
	for i, fm := range files {
		entries[i] = arc.Entry{Path: fm.Name, Kind: arc.KindFile, Index: i}
	}
	return entries, nil
}

package ssmc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zade222/arc"
)

// Extract implements arc.Extractor.
//
// A non-negative index within the manifest selects the entry directly;
// otherwise name is matched against manifest filenames with an exhaustive
// linear scan. Filenames are not required to be unique; the first match in
// manifest order wins. If neither selector resolves an entry, Extract
// fails with arc.ErrNotFound.
//
// The output file is destDir/<entry name>, truncating any existing file.
// Extraction is all-or-nothing: any failure removes the partially written
// output before returning, so no truncated file is left behind.
func (f *Format) Extract(archivePath, name string, index int, destDir string) (string, error) {
	src, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("ssmc: open archive: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("ssmc: stat archive: %w", err)
	}

	hdr, err := readHeader(src, info.Size())
	if err != nil {
		return "", err
	}

	manifestBuf, err := readSection(src, hdr.Manifest, "manifest")
	if err != nil {
		return "", err
	}
	indexBuf, err := readSection(src, hdr.ChunkIndex, "chunk index")
	if err != nil {
		return "", err
	}
	dictBuf, err := readSection(src, hdr.Dictionary, "dictionary")
	if err != nil {
		return "", err
	}

	switch hdr.HashWidth {
	case HashWidth64:
		return extractFile(src, hdr, manifestBuf, indexBuf, dictBuf,
			f.manifest64, f.index64, f.codec, name, index, destDir)
	case HashWidth128:
		return extractFile(src, hdr, manifestBuf, indexBuf, dictBuf,
			f.manifest128, f.index128, f.codec, name, index, destDir)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedHashWidth, hdr.HashWidth)
	}
}

// extractFile drives one extraction for either hash width.
func extractFile[H ChunkHash](
	src io.ReaderAt,
	hdr *Header,
	manifestBuf, indexBuf, dictBuf []byte,
	mc ManifestCodec[H],
	ic ChunkIndexCodec[H],
	cc ChunkCodec,
	name string,
	index int,
	destDir string,
) (string, error) {
	files, err := mc.Parse(manifestBuf)
	if err != nil {
		return "", err
	}
	chunkIndex, err := ic.Prepare(indexBuf)
	if err != nil {
		return "", err
	}

	target := resolveTarget(files, name, index)
	if target == nil {
		return "", fmt.Errorf("%w: name=%q index=%d", arc.ErrNotFound, name, index)
	}
	// Manifest entries are flat files. A separator in the name would
	// escape destDir, so treat it as corruption.
	if !validEntryName(target.Name) {
		return "", fmt.Errorf("%w: unsafe entry name %q", ErrFormat, target.Name)
	}

	dec, err := cc.OpenDict(dictBuf)
	if err != nil {
		return "", err
	}
	defer dec.Close()

	outPath := filepath.Join(destDir, target.Name)
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("ssmc: create output file: %w", err)
	}
	success := false
	defer func() {
		if !success {
			out.Close()
			os.Remove(outPath)
		}
	}()

	// Chunks must be written in manifest order; the list order defines
	// byte order in the reconstructed file.
	for i, ref := range target.Chunks {
		loc, ok := chunkIndex.Lookup(ref.Hash)
		if !ok {
			return "", fmt.Errorf("%w: chunk %d of %q", ErrChunkNotFound, i, target.Name)
		}
		end := loc.Offset + uint64(loc.Length)
		if end < loc.Offset || end > hdr.Data.Length {
			return "", fmt.Errorf("%w: chunk %d of %q at [%d,%d) outside data section of %d bytes",
				ErrFormat, i, target.Name, loc.Offset, end, hdr.Data.Length)
		}

		compressed := make([]byte, loc.Length)
		if _, err := readFullAt(src, compressed, int64(hdr.Data.Offset+loc.Offset)); err != nil {
			return "", fmt.Errorf("ssmc: read chunk %d of %q: %w", i, target.Name, err)
		}

		chunk, err := dec.Decompress(compressed, ref.Size)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %q: %w", i, target.Name, err)
		}

		if _, err := out.Write(chunk); err != nil {
			return "", fmt.Errorf("ssmc: write output file: %w", err)
		}
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("ssmc: close output file: %w", err)
	}
	success = true
	return outPath, nil
}

// resolveTarget selects the manifest entry for a name/index pair. A
// non-negative in-range index wins; otherwise the first manifest entry
// matching name exactly. Returns nil when neither selector resolves.
func resolveTarget[H ChunkHash](files []FileManifest[H], name string, index int) *FileManifest[H] {
	if index >= 0 && index < len(files) {
		return &files[index]
	}
	if name != "" {
		for i := range files {
			if files[i].Name == name {
				return &files[i]
			}
		}
	}
	return nil
}

// validEntryName accepts flat, non-empty filenames only.
func validEntryName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

package arc

import (
	"path/filepath"
	"strings"
)

// EntryKind identifies what an archive entry represents.
type EntryKind uint8

const (
	// KindFile is a regular file entry.
	KindFile EntryKind = iota

	// KindDirectory is a directory entry.
	KindDirectory
)

// String returns the human-readable name of the entry kind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Entry is one logical item inside an archive, as reported by a format's
// List operation.
type Entry struct {
	// Path is the entry's path inside the archive, using '/' separators.
	Path string

	// Kind distinguishes files from directories.
	Kind EntryKind

	// Index is the entry's position in the archive's own ordering. It is
	// the stable handle accepted by index-based extraction.
	Index int
}

// ExtensionInfo associates one filename extension with the format that
// claims it.
type ExtensionInfo struct {
	// Extension includes the leading dot, e.g. ".ssmc".
	Extension string

	// Format is the claiming format's Name.
	Format string
}

// Format is one pluggable archive format implementation.
//
// Listing and extraction are optional capabilities: a Format that also
// implements [Lister] can be listed, one that implements [Extractor] can
// extract. The facade discovers capabilities by type assertion and fails
// with [ErrUnsupportedFormat] when the needed one is missing.
type Format interface {
	// Name identifies the format in diagnostics and SupportedFormats.
	Name() string

	// Extensions returns the filename extensions the format claims,
	// each with a leading dot.
	Extensions() []string

	// Supports reports whether the format can read the named file.
	// Most implementations delegate to MatchesExtension.
	Supports(filename string) bool
}

// Lister is implemented by formats that can enumerate archive contents.
type Lister interface {
	// List returns every entry in the archive, in the archive's own order.
	List(archivePath string) ([]Entry, error)
}

// Extractor is implemented by formats that can extract a single file.
type Extractor interface {
	// Extract reconstructs one archive entry into destDir and returns the
	// written file's path. A non-negative index selects the entry
	// directly; otherwise name is matched exactly.
	Extract(archivePath, name string, index int, destDir string) (string, error)
}

// MatchesExtension reports whether filename's extension equals one of
// extensions, ignoring case. Extensions carry a leading dot. Filenames
// without an extension never match, nor do bare dotfiles like ".ssmc".
func MatchesExtension(filename string, extensions []string) bool {
	ext := filepath.Ext(filename)
	if ext == "" || filepath.Base(filename) == ext {
		return false
	}
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

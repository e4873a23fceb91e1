package arc

import (
	"fmt"
	"strings"
)

// MaxListEntries caps the number of names List returns. Archives with more
// qualifying entries are truncated to the first MaxListEntries, silently.
const MaxListEntries = 255

// List returns the names of an archive's root-level files.
//
// The matched format's raw entry list is filtered to display entries: only
// file entries whose path contains no separator qualify. Entries nested in
// subdirectories are excluded from this display list; they remain
// addressable by Extract. At most MaxListEntries names are returned.
func (r *Registry) List(archivePath string) ([]string, error) {
	f, ok := r.Resolve(archivePath)
	if !ok {
		return nil, fmt.Errorf("list %s: %w", archivePath, ErrUnsupportedFormat)
	}
	lister, ok := f.(Lister)
	if !ok {
		r.log().Warn("format does not implement listing", "format", f.Name())
		return nil, fmt.Errorf("list %s: %w", archivePath, ErrUnsupportedFormat)
	}

	entries, err := lister.List(archivePath)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", archivePath, err)
	}

	names := make([]string, 0, min(len(entries), MaxListEntries))
	for _, e := range entries {
		if len(names) >= MaxListEntries {
			r.log().Warn("archive listing truncated", "path", archivePath, "limit", MaxListEntries)
			break
		}
		if e.Kind != KindFile || strings.ContainsRune(e.Path, '/') {
			continue
		}
		names = append(names, e.Path)
	}
	return names, nil
}

// Extract reconstructs one archive entry into destDir and returns the
// written file's path.
//
// Exactly one of name and index is authoritative per call: a non-negative
// index takes precedence, a negative index selects by name. The selector is
// passed through to the matched format unchanged.
func (r *Registry) Extract(archivePath, name string, index int, destDir string) (string, error) {
	f, ok := r.Resolve(archivePath)
	if !ok {
		return "", fmt.Errorf("extract from %s: %w", archivePath, ErrUnsupportedFormat)
	}
	extractor, ok := f.(Extractor)
	if !ok {
		r.log().Warn("format does not implement extraction", "format", f.Name())
		return "", fmt.Errorf("extract from %s: %w", archivePath, ErrUnsupportedFormat)
	}

	out, err := extractor.Extract(archivePath, name, index, destDir)
	if err != nil {
		return "", fmt.Errorf("extract from %s: %w", archivePath, err)
	}
	return out, nil
}

// SupportedFormats returns every (extension, format name) pair declared by
// the registered formats, in registration order. It fails with ErrNoFormats
// when the registry is empty or no format declares an extension.
func (r *Registry) SupportedFormats() ([]ExtensionInfo, error) {
	if len(r.formats) == 0 {
		return nil, ErrNoFormats
	}

	var infos []ExtensionInfo
	for _, f := range r.formats {
		name := f.Name()
		for _, ext := range f.Extensions() {
			infos = append(infos, ExtensionInfo{Extension: ext, Format: name})
		}
	}
	if len(infos) == 0 {
		return nil, ErrNoFormats
	}
	return infos, nil
}

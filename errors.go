package arc

import "errors"

// Sentinel errors returned by the facade.
var (
	// ErrUnsupportedFormat is returned when no registered format matches a
	// filename, or the matched format does not implement the requested
	// operation.
	ErrUnsupportedFormat = errors.New("arc: unsupported archive format")

	// ErrNotFound is returned when neither the name nor the index selects
	// an entry inside an archive.
	ErrNotFound = errors.New("arc: entry not found in archive")

	// ErrNoFormats is returned by SupportedFormats when the registry is
	// empty or no registered format declares any extension.
	ErrNoFormats = errors.New("arc: no archive formats registered")
)

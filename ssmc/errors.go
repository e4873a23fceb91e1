package ssmc

import "errors"

// Sentinel errors for SSMC container failures.
var (
	// ErrFormat is returned when a container is structurally invalid: bad
	// magic, truncated header, out-of-range section, or a malformed
	// manifest or chunk index.
	ErrFormat = errors.New("ssmc: invalid container")

	// ErrUnsupportedHashWidth is returned when the header's hash-width
	// selector is neither 1 (64-bit) nor 2 (128-bit).
	ErrUnsupportedHashWidth = errors.New("ssmc: unsupported hash width")

	// ErrChunkNotFound is returned when a chunk hash referenced by the
	// manifest is absent from the chunk index. This indicates corruption;
	// a well-formed container indexes every referenced chunk.
	ErrChunkNotFound = errors.New("ssmc: chunk not found in index")

	// ErrDecompression is returned when a chunk fails to decompress or
	// decompresses to an unexpected length.
	ErrDecompression = errors.New("ssmc: decompression failed")
)

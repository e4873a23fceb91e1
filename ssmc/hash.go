package ssmc

// Hash64 is a 64-bit chunk content hash.
type Hash64 [8]byte

// Hash128 is a 128-bit chunk content hash.
type Hash128 [16]byte

// ChunkHash constrains the two content-hash widths a container may use.
// The width is a property of the whole container, never of individual
// chunks.
type ChunkHash interface {
	Hash64 | Hash128
}

// Hash-width selector values carried in the container header.
const (
	// HashWidth64 marks a container using 64-bit content hashes.
	HashWidth64 uint32 = 1

	// HashWidth128 marks a container using 128-bit content hashes.
	HashWidth128 uint32 = 2
)

// hashLen returns the byte length of the hash type H.
func hashLen[H ChunkHash]() int {
	var h H
	switch any(h).(type) {
	case Hash64:
		return 8
	default:
		return 16
	}
}

// hashFrom copies len(H) bytes from b into a hash value.
func hashFrom[H ChunkHash](b []byte) H {
	var h H
	switch v := any(&h).(type) {
	case *Hash64:
		copy(v[:], b)
	case *Hash128:
		copy(v[:], b)
	}
	return h
}

// Package ssmc reads SSMC containers: deduplicated, chunk-based archives
// of flat files.
//
// A container stores every file as an ordered list of content-addressed
// chunk references. Chunk payloads are zstd-compressed against a shared
// dictionary and deduplicated across files. Reconstructing a file resolves
// each referenced hash through the container's chunk index, decompresses
// the located bytes, and concatenates the results in manifest order.
//
// A container declares one content-hash width for all its chunks: 64-bit
// or 128-bit. The two variants share a single generic implementation.
//
// [New] returns an [github.com/Zade222/arc.Format] that plugs into the
// facade registry. Each operation is stateless: the container is opened,
// read, and released within a single call.
package ssmc

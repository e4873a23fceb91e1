package ssmc

import (
	"github.com/Zade222/arc"
)

// FormatName identifies the SSMC reader in registry diagnostics.
const FormatName = "ssmc"

var extensions = []string{".ssmc"}

// Interface compliance.
var (
	_ arc.Format    = (*Format)(nil)
	_ arc.Lister    = (*Format)(nil)
	_ arc.Extractor = (*Format)(nil)
)

// Format reads SSMC containers. It is stateless across calls: every List
// and Extract opens the container, works, and releases everything before
// returning. Construct with New and register with an arc.Registry.
type Format struct {
	manifest64  ManifestCodec[Hash64]
	manifest128 ManifestCodec[Hash128]
	index64     ChunkIndexCodec[Hash64]
	index128    ChunkIndexCodec[Hash128]
	codec       ChunkCodec
	maxMemory   uint64
}

// Option configures a Format.
type Option func(*Format)

// WithChunkCodec replaces the zstd chunk codec. Intended for tests and for
// containers produced with a different chunk compressor.
func WithChunkCodec(c ChunkCodec) Option {
	return func(f *Format) {
		f.codec = c
	}
}

// WithMaxDecoderMemory caps the zstd decoder's memory. Set to 0 to disable
// the limit. Ignored when WithChunkCodec is also given.
func WithMaxDecoderMemory(limit uint64) Option {
	return func(f *Format) {
		f.maxMemory = limit
	}
}

// WithManifestCodecs replaces the manifest deserializers for both hash
// widths. Intended for tests.
func WithManifestCodecs(m64 ManifestCodec[Hash64], m128 ManifestCodec[Hash128]) Option {
	return func(f *Format) {
		f.manifest64 = m64
		f.manifest128 = m128
	}
}

// WithChunkIndexCodecs replaces the chunk-index deserializers for both hash
// widths. Intended for tests.
func WithChunkIndexCodecs(i64 ChunkIndexCodec[Hash64], i128 ChunkIndexCodec[Hash128]) Option {
	return func(f *Format) {
		f.index64 = i64
		f.index128 = i128
	}
}

// New creates an SSMC format reader.
func New(opts ...Option) *Format {
	f := &Format{
		manifest64:  binaryManifestCodec[Hash64]{},
		manifest128: binaryManifestCodec[Hash128]{},
		index64:     binaryChunkIndexCodec[Hash64]{},
		index128:    binaryChunkIndexCodec[Hash128]{},
		maxMemory:   DefaultMaxDecoderMemory,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.codec == nil {
		f.codec = zstdCodec{maxMemory: f.maxMemory}
	}
	return f
}

// Name implements arc.Format.
func (f *Format) Name() string {
	return FormatName
}

// Extensions implements arc.Format.
func (f *Format) Extensions() []string {
	out := make([]string, len(extensions))
	copy(out, extensions)
	return out
}

// Supports implements arc.Format.
func (f *Format) Supports(filename string) bool {
	return arc.MatchesExtension(filename, extensions)
}

package arc

import (
	"io"
	"log/slog"
)

// MaxFormats is the registry's fixed capacity.
const MaxFormats = 50

// Registry is an ordered collection of archive formats.
//
// Registration order is precedence order: when two formats claim the same
// extension, the earlier-registered one wins. The zero value is not usable;
// construct with NewRegistry.
//
// A Registry is not safe for concurrent mutation or for lookups concurrent
// with mutation. Populate it once at startup and synchronize externally if
// concurrent access is needed.
type Registry struct {
	formats []Format
	logger  *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report registration rejections and
// other non-fatal conditions. Without it, diagnostics are discarded.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		formats: make([]Format, 0, MaxFormats),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.logger
}

// Register appends a format to the registry.
//
// Registration is idempotent and best-effort: a nil format, a format that
// is already registered, or registration beyond MaxFormats is a silent
// no-op from the caller's perspective. Rejections are configuration-time
// conditions, not data-time failures, so they are reported through the
// registry's logger instead of an error return.
func (r *Registry) Register(f Format) {
	if f == nil {
		r.log().Warn("ignoring nil format registration")
		return
	}
	if len(r.formats) >= MaxFormats {
		r.log().Warn("format registry full", "capacity", MaxFormats, "format", f.Name())
		return
	}
	for _, existing := range r.formats {
		if existing == f {
			r.log().Warn("format already registered", "format", f.Name())
			return
		}
	}
	r.formats = append(r.formats, f)
	r.log().Debug("registered archive format", "format", f.Name(), "extensions", f.Extensions())
}

// Resolve returns the first registered format that supports filename,
// scanning in registration order. ok is false when filename is empty or no
// format matches.
func (r *Registry) Resolve(filename string) (Format, bool) {
	if filename == "" {
		return nil, false
	}
	for _, f := range r.formats {
		if f.Supports(filename) {
			return f, true
		}
	}
	return nil, false
}

// Formats returns a snapshot of the registered formats in registration
// order.
func (r *Registry) Formats() []Format {
	out := make([]Format, len(r.formats))
	copy(out, r.formats)
	return out
}

// Len returns the number of registered formats.
func (r *Registry) Len() int {
	return len(r.formats)
}

// Shutdown clears all registrations. It is idempotent and safe to call
// multiple times.
func (r *Registry) Shutdown() {
	clear(r.formats)
	r.formats = r.formats[:0]
}

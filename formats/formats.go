// Package formats wires the built-in archive formats into a registry.
package formats

import (
	"github.com/Zade222/arc"
	"github.com/Zade222/arc/ssmc"
)

// RegisterAll registers every built-in archive format in canonical
// precedence order. Order matters: when two formats claim the same
// extension, the earlier registration wins.
func RegisterAll(r *arc.Registry) {
	r.Register(ssmc.New())
}

// Package arc provides a pluggable, read-only archive facade.
//
// Archive formats register a [Format] implementation with a [Registry].
// The registry dispatches by filename extension: the first registered
// format whose Supports method accepts the filename handles the file.
// Registration order is therefore precedence order.
//
// The facade answers two questions: what files does this archive contain
// ([Registry.List]), and extract one of them to disk ([Registry.Extract]).
// Listing is a display surface — it shows only root-level files and is
// capped at [MaxListEntries] names. Extraction addresses the archive's
// full entry space by name or by manifest index.
//
// # Quick start
//
//	reg := arc.NewRegistry()
//	reg.Register(ssmc.New())
//	defer reg.Shutdown()
//
//	names, err := reg.List("game.ssmc")
//	if err != nil {
//	    return err
//	}
//	out, err := reg.Extract("game.ssmc", names[0], -1, os.TempDir())
//
// A Registry is not safe for concurrent use. Populate it once at startup,
// then treat it as read-only; callers needing concurrent access must
// synchronize externally. Keeping the lookup path lock-free is deliberate.
//
// The SSMC container format reader lives in the ssmc subpackage.
package arc

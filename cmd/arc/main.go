// Command arc lists and extracts files from supported archive formats.
//
// Usage:
//
//	arc list <archive>
//	arc extract [-name NAME | -index N] [-dest DIR] <archive>
//	arc formats
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Zade222/arc"
	"github.com/Zade222/arc/formats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("arc: ")

	verbose := flag.Bool("v", false, "log registry and format diagnostics to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	var regOpts []arc.RegistryOption
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		regOpts = append(regOpts, arc.WithLogger(slog.New(handler)))
	}
	reg := arc.NewRegistry(regOpts...)
	formats.RegisterAll(reg)
	defer reg.Shutdown()

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "list":
		err = runList(reg, flag.Args()[1:])
	case "extract":
		err = runExtract(reg, flag.Args()[1:])
	case "formats":
		err = runFormats(reg)
	default:
		log.Printf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runList(reg *arc.Registry, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: arc list <archive>")
	}

	names, err := reg.List(fs.Arg(0))
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runExtract(reg *arc.Registry, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	name := fs.String("name", "", "entry name to extract")
	index := fs.Int("index", -1, "manifest index to extract (takes precedence over -name)")
	dest := fs.String("dest", ".", "destination directory")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: arc extract [-name NAME | -index N] [-dest DIR] <archive>")
	}
	if *name == "" && *index < 0 {
		return fmt.Errorf("extract: one of -name or -index is required")
	}

	out, err := reg.Extract(fs.Arg(0), *name, *index, *dest)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runFormats(reg *arc.Registry) error {
	infos, err := reg.SupportedFormats()
	if err != nil {
		return err
	}
	for _, info := range infos {
		fmt.Printf("%s\t%s\n", info.Extension, info.Format)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: arc [-v] <command> [arguments]

Commands:
  list <archive>                                      list root-level files
  extract [-name NAME | -index N] [-dest DIR] <archive>
                                                      extract one file
  formats                                             show supported extensions
`)
	flag.PrintDefaults()
}

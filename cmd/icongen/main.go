// icongen renders the Serial Port Debugger application icon at every
// configured size and writes one PNG per size plus a multi-size ICO.
//
// Usage: go run ./cmd/icongen [-out dir] [-sizes 16,32,48] [-manifest] [-sheet]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/deborahgu/serialicon/internal/constants"
	"github.com/deborahgu/serialicon/internal/export"
	"github.com/deborahgu/serialicon/internal/iconset"
)

type options struct {
	outDir   string
	sizes    string
	manifest bool
	sheet    bool
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	var opts options
	flag.StringVar(&opts.outDir, "out", ".", "output directory")
	flag.StringVar(&opts.sizes, "sizes", "", "comma separated icon sizes (default 16,32,48,64,128,256)")
	flag.BoolVar(&opts.manifest, "manifest", false, "also write "+constants.ManifestFile)
	flag.BoolVar(&opts.sheet, "sheet", false, "also write a preview sheet "+constants.SheetFile)
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(w io.Writer, opts options) error {
	cfg := iconset.DefaultConfig()
	if opts.sizes != "" {
		sizes, err := iconset.ParseSizes(opts.sizes)
		if err != nil {
			return err
		}
		if cfg, err = cfg.WithSizes(sizes); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Generating icons...")
	set, err := iconset.Build(cfg)
	if err != nil {
		return err
	}

	ex := export.NewExporter(opts.outDir)
	ex.Report = func(path string, size int) {
		if size > 0 {
			fmt.Fprintf(w, "  Created %dx%d\n", size, size)
		}
	}

	res, err := ex.Export(set, cfg.Options().Reference, export.Options{
		Manifest: opts.manifest,
		Sheet:    opts.sheet,
	})
	if err != nil {
		return err
	}

	sizes := set.Sizes()
	fmt.Fprintln(w, "\nSuccess! Created:")
	fmt.Fprintf(w, "  - %s\n", res.Container)
	fmt.Fprintf(w, "  - %s to %s\n",
		filepath.Base(ex.PNGPath(sizes[0])), filepath.Base(ex.PNGPath(sizes[len(sizes)-1])))
	if res.Sheet != "" {
		fmt.Fprintf(w, "  - %s\n", res.Sheet)
	}
	if res.Manifest != "" {
		fmt.Fprintf(w, "  - %s\n", res.Manifest)
	}
	return nil
}

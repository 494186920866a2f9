package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/deborahgu/serialicon/internal/constants"
	"github.com/deborahgu/serialicon/internal/icofile"
	"github.com/deborahgu/serialicon/internal/iconset"
	"github.com/deborahgu/serialicon/internal/manifest"
)

// Frame is one encoded PNG of an icon set.
type Frame struct {
	Size int
	Name string
	Data []byte
}

// Bundle is an icon set encoded in memory, ready to be written or served.
type Bundle struct {
	Frames    []Frame
	Container []byte
	Manifest  *manifest.Manifest
}

// Encode turns set into PNG frames, one ICO container and a manifest.
func Encode(set iconset.Set, reference int) (*Bundle, error) {
	if len(set) == 0 {
		return nil, iconset.ErrNoSizes
	}

	b := &Bundle{Manifest: &manifest.Manifest{Reference: reference}}
	for _, ic := range set {
		data, err := EncodePNG(ic.Image)
		if err != nil {
			return nil, fmt.Errorf("encode %dx%d: %w", ic.Size, ic.Size, err)
		}
		name := constants.PNGFile(ic.Size)
		b.Frames = append(b.Frames, Frame{Size: ic.Size, Name: name, Data: data})
		b.Manifest.AddFrame(name, ic.Size, data)
	}

	container, err := EncodeContainer(set)
	if err != nil {
		return nil, err
	}
	b.Container = container
	b.Manifest.SetContainer(constants.ContainerFile, container)
	return b, nil
}

// EncodePNG returns img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeContainer packs every frame that fits an ICO directory, smallest
// first. Frames above icofile.MaxFrameSize are left to the PNG files.
func EncodeContainer(set iconset.Set) ([]byte, error) {
	var images []image.Image
	for _, ic := range set {
		if ic.Size <= icofile.MaxFrameSize {
			images = append(images, ic.Image)
		}
	}
	var buf bytes.Buffer
	if err := icofile.Encode(&buf, images); err != nil {
		return nil, fmt.Errorf("encode container: %w", err)
	}
	return buf.Bytes(), nil
}

// Options selects the optional artifacts.
type Options struct {
	Manifest bool
	Sheet    bool
}

// Result lists the paths written by Export.
type Result struct {
	PNGFiles  []string
	Container string
	Manifest  string
	Sheet     string
}

// Exporter writes icon sets below OutDir.
type Exporter struct {
	OutDir string

	// Report, if set, is called after every file is written.
	Report func(path string, size int)
}

func NewExporter(outDir string) *Exporter {
	if outDir == "" {
		outDir = "."
	}
	return &Exporter{OutDir: outDir}
}

func (e *Exporter) Path(name string) string {
	return filepath.Join(e.OutDir, name)
}

func (e *Exporter) PNGPath(size int) string {
	return e.Path(constants.PNGFile(size))
}

func (e *Exporter) ContainerPath() string {
	return e.Path(constants.ContainerFile)
}

// Export encodes set completely before touching the file system, so an
// encoding failure leaves OutDir unchanged.
func (e *Exporter) Export(set iconset.Set, reference int, opts Options) (*Result, error) {
	b, err := Encode(set, reference)
	if err != nil {
		return nil, err
	}

	var sheet []byte
	if opts.Sheet {
		sheet, err = EncodePNG(Sheet(set))
		if err != nil {
			return nil, fmt.Errorf("encode sheet: %w", err)
		}
	}

	var manifestXML []byte
	if opts.Manifest {
		manifestXML, err = b.Manifest.ToXML()
		if err != nil {
			return nil, fmt.Errorf("encode manifest: %w", err)
		}
	}

	if err := os.MkdirAll(e.OutDir, 0755); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, f := range b.Frames {
		path := e.Path(f.Name)
		if err := e.write(path, f.Size, f.Data); err != nil {
			return res, err
		}
		res.PNGFiles = append(res.PNGFiles, path)
	}

	res.Container = e.ContainerPath()
	if err := e.write(res.Container, 0, b.Container); err != nil {
		return res, err
	}

	if opts.Sheet {
		res.Sheet = e.Path(constants.SheetFile)
		if err := e.write(res.Sheet, 0, sheet); err != nil {
			return res, err
		}
	}
	if opts.Manifest {
		res.Manifest = e.Path(constants.ManifestFile)
		if err := e.write(res.Manifest, 0, manifestXML); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (e *Exporter) write(path string, size int, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if e.Report != nil {
		e.Report(path, size)
	}
	return nil
}

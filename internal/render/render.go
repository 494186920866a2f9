// Package render paints the serial-port connector glyph onto an RGBA canvas.
package render

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/deborahgu/serialicon/internal/geometry"
	"github.com/deborahgu/serialicon/internal/waveform"
)

// Palette holds the colors of every painted layer.
type Palette struct {
	Circle        color.RGBA
	CircleOutline color.RGBA
	Box           color.RGBA
	BoxOutline    color.RGBA
	Pin           color.RGBA
	PinHole       color.RGBA
	Wave          color.RGBA
}

// DefaultPalette returns the application icon colors.
func DefaultPalette() Palette {
	return Palette{
		Circle:        color.RGBA{52, 152, 219, 255},
		CircleOutline: color.RGBA{41, 128, 185, 255},
		Box:           color.RGBA{255, 255, 255, 255},
		BoxOutline:    color.RGBA{44, 62, 80, 255},
		Pin:           color.RGBA{44, 62, 80, 255},
		PinHole:       color.RGBA{149, 165, 166, 255},
		Wave:          color.RGBA{46, 204, 113, 255},
	}
}

// Options configures a render pass.
type Options struct {
	Reference int
	Palette   Palette
}

// DefaultOptions returns the reference size and palette used for the
// shipped icon.
func DefaultOptions() Options {
	return Options{Reference: geometry.DefaultReference, Palette: DefaultPalette()}
}

// Icon renders the glyph at size×size pixels on a transparent background.
// size must be positive.
func Icon(size int, opts Options) *image.RGBA {
	g := geometry.Resolve(size, opts.Reference)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := newCanvas(img)

	c.circleLayer(g, opts.Palette)
	c.boxLayer(g, opts.Palette)
	c.pinRow(g.TopPins, g, opts.Palette)
	c.pinRow(g.BottomPins, g, opts.Palette)
	c.waveLayer(g, opts.Palette)

	return img
}

type canvas struct {
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

func newCanvas(img *image.RGBA) *canvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &canvas{
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

func (c *canvas) fill(clr color.Color, add func(rasterx.Adder)) {
	c.filler.Clear()
	add(c.filler)
	c.filler.SetColor(clr)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *canvas) stroke(clr color.Color, width int, add func(rasterx.Adder)) {
	c.stroker.Clear()
	c.stroker.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.MiterClip)
	add(c.stroker)
	c.stroker.SetColor(clr)
	c.stroker.Draw()
	c.stroker.Clear()
}

// circleLayer paints the background disc. The outline sits inside the
// inscribed bounds so the margin stays clear.
func (c *canvas) circleLayer(g geometry.Geometry, p Palette) {
	cx := float64(g.Size) / 2
	r := float64(g.Size-2*g.CircleMargin) / 2
	if r <= 0 {
		return
	}
	c.fill(p.Circle, func(a rasterx.Adder) {
		rasterx.AddCircle(cx, cx, r, a)
	})
	c.stroke(p.CircleOutline, g.CircleStroke, func(a rasterx.Adder) {
		rasterx.AddCircle(cx, cx, insetRadius(r, g.CircleStroke), a)
	})
}

func (c *canvas) boxLayer(g geometry.Geometry, p Palette) {
	lo := float64(g.BoxMargin)
	hi := float64(g.Size - g.BoxMargin)
	if hi <= lo {
		return
	}
	c.fill(p.Box, func(a rasterx.Adder) {
		addBox(lo, hi, float64(g.BoxRadius), a)
	})

	half := float64(g.BoxStroke) / 2
	c.stroke(p.BoxOutline, g.BoxStroke, func(a rasterx.Adder) {
		addBox(lo+half, hi-half, max(0, float64(g.BoxRadius)-half), a)
	})
}

func (c *canvas) pinRow(pins []geometry.Pin, g geometry.Geometry, p Palette) {
	for _, pin := range pins {
		c.fill(p.Pin, func(a rasterx.Adder) {
			rasterx.AddCircle(pin.X, pin.Y, float64(g.PinOuter), a)
		})
		c.fill(p.PinHole, func(a rasterx.Adder) {
			rasterx.AddCircle(pin.X, pin.Y, float64(g.PinInner), a)
		})
	}
}

func (c *canvas) waveLayer(g geometry.Geometry, p Palette) {
	segs := waveform.Generate(waveform.Params{
		Left:      g.WaveLeft,
		Right:     g.WaveRight,
		Baseline:  g.WaveBaseline,
		Amplitude: g.WaveAmplitude,
		Step:      g.WaveStep,
	})
	if len(segs) == 0 {
		return
	}
	c.stroke(p.Wave, g.WaveStroke, func(a rasterx.Adder) {
		addPolyline(segs, a)
	})
}

// addPolyline traces contiguous segments as one open path so corners join.
func addPolyline(segs []waveform.Segment, a rasterx.Adder) {
	a.Start(toFixed(segs[0].From))
	for _, s := range segs {
		a.Line(toFixed(s.To))
	}
	a.Stop(false)
}

func addBox(lo, hi, radius float64, a rasterx.Adder) {
	if radius <= 0 {
		rasterx.AddRect(lo, lo, hi, hi, 0, a)
		return
	}
	rasterx.AddRoundRect(lo, lo, hi, hi, radius, radius, 0, rasterx.RoundGap, a)
}

func insetRadius(r float64, stroke int) float64 {
	return max(0.5, r-float64(stroke)/2)
}

func toFixed(pt image.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(pt.X), float64(pt.Y))
}

package export

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/deborahgu/serialicon/internal/iconset"
)

// SheetGap is the transparent spacing between frames on a preview sheet.
const SheetGap = 8

// Sheet lays every frame of set left to right, bottom aligned, on one
// transparent strip. An empty set yields an empty image.
func Sheet(set iconset.Set) *image.RGBA {
	width, height := 0, 0
	for i, ic := range set {
		if i > 0 {
			width += SheetGap
		}
		width += ic.Size
		height = max(height, ic.Size)
	}

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, ic := range set {
		r := image.Rect(x, height-ic.Size, x+ic.Size, height)
		draw.Copy(sheet, r.Min, ic.Image, ic.Image.Bounds(), draw.Src, nil)
		x += ic.Size + SheetGap
	}
	return sheet
}

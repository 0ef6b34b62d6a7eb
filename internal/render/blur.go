package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Pixelate returns a censored copy of rect from img: the region is
// downscaled by factor with averaging and scaled back up with nearest
// neighbour, producing the blocky obfuscation patch. The returned image
// has rect's size with a zero origin. An empty intersection with img
// yields nil.
func Pixelate(img *image.RGBA, rect image.Rectangle, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	src := rect.Intersect(img.Bounds())
	if src.Empty() {
		return nil
	}
	smallW := src.Dx() / factor
	smallH := src.Dy() / factor
	if smallW < 1 {
		smallW = 1
	}
	if smallH < 1 {
		smallH = 1
	}
	small := image.NewRGBA(image.Rect(0, 0, smallW, smallH))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, src, draw.Src, nil)
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	dst := src.Sub(rect.Min)
	xdraw.NearestNeighbor.Scale(out, dst, small, small.Bounds(), draw.Src, nil)
	return out
}

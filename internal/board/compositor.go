package board

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// compose flattens the background and the committed drawables into a
// fresh canvas at native resolution. With includeActive the active
// tool's in-progress drawable is painted on top.
func (b *Board) compose(includeActive bool) *render.Canvas {
	bounds := b.background.Bounds()
	c := render.New(bounds.Dx(), bounds.Dy())
	c.DrawImage(b.background)
	for _, d := range b.history.Drawables() {
		if err := d.Draw(c); err != nil {
			log.Printf("draw: %v", err)
		}
	}
	if includeActive {
		if d := b.tools.Active().Drawable(); d != nil {
			if err := d.Draw(c); err != nil {
				log.Printf("draw: %v", err)
			}
		}
	}
	return c
}

// RenderFull renders the frame at native resolution: background,
// committed drawables, the active tool's preview and the crop overlay.
// Text and strokes are always rasterized at scale one; window fitting
// happens afterwards as a plain image scale.
func (b *Board) RenderFull() *image.RGBA {
	c := b.compose(true)
	b.tools.Crop().DrawOverlay(c)
	return c.Image()
}

// RenderCropped flattens the frame for export, including any
// in-progress drawable the user still sees on screen. A crop
// rectangle, when present, bounds the output; only the crop overlay is
// never part of it.
func (b *Board) RenderCropped() *image.RGBA {
	img := b.compose(true).Image()
	pos, size, ok := b.tools.Crop().Rect()
	if !ok {
		return img
	}
	r := image.Rect(
		int(math.Round(pos.X)), int(math.Round(pos.Y)),
		int(math.Round(pos.X+size.X)), int(math.Round(pos.Y+size.Y)))
	return render.CropImage(img, r)
}

// fitScale is the uniform scale that fits an image inside a window.
// Images smaller than the window are not enlarged.
func fitScale(img image.Rectangle, w, h int) float64 {
	if img.Dx() == 0 || img.Dy() == 0 {
		return 1
	}
	s := math.Min(float64(w)/float64(img.Dx()), float64(h)/float64(img.Dy()))
	if s > 1 {
		s = 1
	}
	if s < 0.1 {
		s = 0.1
	}
	return s
}

// RenderWindowed renders the frame scaled to fit a window of the given
// size, centered, multiplied by the zoom tool's magnification. The
// toast line, when visible, is painted along the bottom edge.
func (b *Board) RenderWindowed(w, h int) *image.RGBA {
	full := b.RenderFull()
	c := render.New(w, h)
	c.Clear(color.Black)

	scale := fitScale(full.Bounds(), w, h) * b.tools.Zoom().Factor()
	dw := float64(full.Bounds().Dx()) * scale
	dh := float64(full.Bounds().Dy()) * scale
	c.SetTransform(scale, geometry.Vec((float64(w)-dw)/2, (float64(h)-dh)/2))
	c.DrawImage(full)

	if msg, ok := b.Toast(); ok {
		b.drawToast(c, msg, w, h)
	}
	return c.Image()
}

// drawToast paints the status line on a dimmed bar at the window
// bottom, in device coordinates.
func (b *Board) drawToast(c *render.Canvas, msg string, w, h int) {
	face := render.ToastFace()
	lines := render.LayoutText(face, msg, 0)
	tw, th := render.TextSize(face, msg, 0)
	barH := th + 12
	c.SetTransform(1, geometry.Vec2D{})
	c.FillRect(geometry.Vec(0, float64(h-barH)), geometry.Vec(float64(w), float64(barH)),
		style.Cove.WithAlpha(200))
	c.DrawText(geometry.Vec(float64(w-tw)/2, float64(h-barH+6)), face, lines, style.Color{R: 255, G: 255, B: 255, A: 255})
}

// WindowToImage converts a window-space point back to image
// coordinates for the current window size, using the same fit as
// RenderWindowed.
func (b *Board) WindowToImage(p geometry.Vec2D, w, h int) geometry.Vec2D {
	bounds := b.background.Bounds()
	scale := fitScale(bounds, w, h) * b.tools.Zoom().Factor()
	dw := float64(bounds.Dx()) * scale
	dh := float64(bounds.Dy()) * scale
	return geometry.Vec(
		(p.X-(float64(w)-dw)/2)/scale,
		(p.Y-(float64(h)-dh)/2)/scale)
}

// ZoomFactor is the display magnification.
func (b *Board) ZoomFactor() float64 { return b.tools.Zoom().Factor() }

// Package render is the raster back end for the annotation engine. A
// Canvas wraps an *image.RGBA and applies a uniform scale and offset to
// every coordinate, so drawables render identically at native
// resolution and inside a fitted window.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/style"
)

// Canvas is a drawing target in image coordinates. The transform maps
// image coordinates to device pixels.
type Canvas struct {
	img    *image.RGBA
	scale  float64
	offset geometry.Vec2D
}

// New returns a canvas backed by a fresh RGBA image of the given size
// with the identity transform.
func New(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), scale: 1}
}

// FromImage wraps an existing image with the identity transform.
func FromImage(img *image.RGBA) *Canvas {
	return &Canvas{img: img, scale: 1}
}

// Image exposes the backing pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds is the device-pixel bounds of the backing image.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// SetTransform sets the image-to-device mapping: device = pos*scale + offset.
func (c *Canvas) SetTransform(scale float64, offset geometry.Vec2D) {
	if scale <= 0 {
		scale = 1
	}
	c.scale = scale
	c.offset = offset
}

// Scale reports the current image-to-device scale factor.
func (c *Canvas) Scale() float64 { return c.scale }

func (c *Canvas) devicePt(p geometry.Vec2D) (int, int) {
	return int(math.Round(p.X*c.scale + c.offset.X)),
		int(math.Round(p.Y*c.scale + c.offset.Y))
}

func (c *Canvas) deviceLen(l float64) int {
	d := int(math.Round(l * c.scale))
	if d < 1 && l > 0 {
		d = 1
	}
	return d
}

// Clear fills the whole backing image with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawImage blits src so that its origin lands at image coordinate
// (0,0) under the current transform. A non-unit scale goes through the
// approximate bilinear scaler; the identity transform is a plain blit.
func (c *Canvas) DrawImage(src image.Image) {
	sb := src.Bounds()
	if c.scale == 1 && c.offset == (geometry.Vec2D{}) {
		draw.Draw(c.img, sb.Sub(sb.Min), src, sb.Min, draw.Over)
		return
	}
	x0, y0 := c.devicePt(geometry.Vec2D{})
	x1, y1 := c.devicePt(geometry.Vec(float64(sb.Dx()), float64(sb.Dy())))
	dst := image.Rect(x0, y0, x1, y1)
	xdraw.ApproxBiLinear.Scale(c.img, dst, src, sb, draw.Over, nil)
}

// DrawPatch blits src with its top-left at image coordinate pos,
// scaled by the current transform. Used for memoized pixel patches.
func (c *Canvas) DrawPatch(src image.Image, pos geometry.Vec2D) {
	sb := src.Bounds()
	x0, y0 := c.devicePt(pos)
	x1, y1 := c.devicePt(pos.Add(geometry.Vec(float64(sb.Dx()), float64(sb.Dy()))))
	dst := image.Rect(x0, y0, x1, y1)
	if c.scale == 1 {
		draw.Draw(c.img, dst, src, sb.Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(c.img, dst, src, sb, draw.Over, nil)
}

// blendSpan draws a horizontal run of pixels with source-over blending.
func (c *Canvas) blendSpan(x0, x1, y int, col color.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	r := image.Rect(x0, y, x1+1, y+1).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) setThickPixel(x, y, thick int, col color.Color) {
	r := thick / 2
	for dy := -r; dy <= r; dy++ {
		c.blendSpan(x-r, x+r, y+dy, col)
	}
}

func (c *Canvas) rawLine(x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.setThickPixel(x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeLine draws a thick segment from a to b in image coordinates.
func (c *Canvas) StrokeLine(a, b geometry.Vec2D, width float64, col style.Color) {
	x0, y0 := c.devicePt(a)
	x1, y1 := c.devicePt(b)
	c.rawLine(x0, y0, x1, y1, col.NRGBA(), c.deviceLen(width))
}

// StrokePolyline draws connected segments through pts. A single point
// renders as a dot of the stroke width.
func (c *Canvas) StrokePolyline(pts []geometry.Vec2D, width float64, col style.Color) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		x, y := c.devicePt(pts[0])
		c.setThickPixel(x, y, c.deviceLen(width), col.NRGBA())
		return
	}
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1], pts[i], width, col)
	}
}

// StrokeRect outlines the rectangle with top-left pos and the given size.
func (c *Canvas) StrokeRect(pos, size geometry.Vec2D, width float64, col style.Color) {
	tr := pos.Add(geometry.Vec(size.X, 0))
	br := pos.Add(size)
	bl := pos.Add(geometry.Vec(0, size.Y))
	c.StrokeLine(pos, tr, width, col)
	c.StrokeLine(tr, br, width, col)
	c.StrokeLine(br, bl, width, col)
	c.StrokeLine(bl, pos, width, col)
}

// FillRect fills the rectangle with source-over blending, so
// translucent fills show the layers beneath.
func (c *Canvas) FillRect(pos, size geometry.Vec2D, col style.Color) {
	x0, y0 := c.devicePt(pos)
	x1, y1 := c.devicePt(pos.Add(size))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	r := image.Rect(x0, y0, x1, y1).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
}

// StrokeRoundedRect outlines a rectangle with quarter-circle corners of
// the given radius. A zero radius falls back to StrokeRect.
func (c *Canvas) StrokeRoundedRect(pos, size geometry.Vec2D, radius, width float64, col style.Color) {
	if radius <= 0 {
		c.StrokeRect(pos, size, width, col)
		return
	}
	half := math.Min(math.Abs(size.X), math.Abs(size.Y)) / 2
	if radius > half {
		radius = half
	}
	x0, y0 := pos.X, pos.Y
	x1, y1 := pos.X+size.X, pos.Y+size.Y
	c.StrokeLine(geometry.Vec(x0+radius, y0), geometry.Vec(x1-radius, y0), width, col)
	c.StrokeLine(geometry.Vec(x1, y0+radius), geometry.Vec(x1, y1-radius), width, col)
	c.StrokeLine(geometry.Vec(x1-radius, y1), geometry.Vec(x0+radius, y1), width, col)
	c.StrokeLine(geometry.Vec(x0, y1-radius), geometry.Vec(x0, y0+radius), width, col)
	c.strokeArc(geometry.Vec(x0+radius, y0+radius), radius, math.Pi, 3*math.Pi/2, width, col)
	c.strokeArc(geometry.Vec(x1-radius, y0+radius), radius, 3*math.Pi/2, 2*math.Pi, width, col)
	c.strokeArc(geometry.Vec(x1-radius, y1-radius), radius, 0, math.Pi/2, width, col)
	c.strokeArc(geometry.Vec(x0+radius, y1-radius), radius, math.Pi/2, math.Pi, width, col)
}

// FillRoundedRect fills a rectangle with quarter-circle corners,
// blending translucent colors over the existing content.
func (c *Canvas) FillRoundedRect(pos, size geometry.Vec2D, radius float64, col style.Color) {
	if radius <= 0 {
		c.FillRect(pos, size, col)
		return
	}
	half := math.Min(math.Abs(size.X), math.Abs(size.Y)) / 2
	if radius > half {
		radius = half
	}
	x0, y0 := c.devicePt(pos)
	x1, y1 := c.devicePt(pos.Add(size))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	r := c.deviceLen(radius)
	nc := col.NRGBA()
	for y := y0; y < y1; y++ {
		inset := 0
		if dy := y - y0; dy < r {
			inset = r - int(math.Sqrt(float64(r*r-(r-dy)*(r-dy))))
		} else if dy := y1 - 1 - y; dy < r {
			inset = r - int(math.Sqrt(float64(r*r-(r-dy)*(r-dy))))
		}
		c.blendSpan(x0+inset, x1-1-inset, y, nc)
	}
}

func (c *Canvas) strokeArc(center geometry.Vec2D, radius, from, to, width float64, col style.Color) {
	steps := int(math.Ceil((to - from) * radius * c.scale))
	if steps < 4 {
		steps = 4
	}
	prev := center.Add(geometry.FromAngle(from, radius))
	for i := 1; i <= steps; i++ {
		angle := from + (to-from)*float64(i)/float64(steps)
		next := center.Add(geometry.FromAngle(angle, radius))
		c.StrokeLine(prev, next, width, col)
		prev = next
	}
}

// StrokeEllipse outlines an axis-aligned ellipse as a segment loop, the
// segment count scaling with the radii so large ellipses stay smooth.
func (c *Canvas) StrokeEllipse(center geometry.Vec2D, rx, ry, width float64, col style.Color) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt((rx*rx+ry*ry)*c.scale*c.scale)))
	if steps < 8 {
		steps = 8
	}
	prev := center.Add(geometry.Vec(rx, 0))
	for i := 1; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		next := center.Add(geometry.Vec(math.Cos(angle)*rx, math.Sin(angle)*ry))
		c.StrokeLine(prev, next, width, col)
		prev = next
	}
}

// FillEllipse fills an axis-aligned ellipse with source-over blending.
func (c *Canvas) FillEllipse(center geometry.Vec2D, rx, ry float64, col style.Color) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	cx, cy := c.devicePt(center)
	drx := c.deviceLen(rx)
	dry := c.deviceLen(ry)
	if dry == 0 {
		return
	}
	nc := col.NRGBA()
	for dy := -dry; dy <= dry; dy++ {
		span := int(float64(drx) * math.Sqrt(1.0-float64(dy*dy)/float64(dry*dry)))
		c.blendSpan(cx-span, cx+span, cy+dy, nc)
	}
}

// FillCircle fills a circle of the given radius around center.
func (c *Canvas) FillCircle(center geometry.Vec2D, r float64, col style.Color) {
	c.FillEllipse(center, r, r, col)
}

// DimOutside darkens everything outside rect, used for the crop overlay.
func (c *Canvas) DimOutside(pos, size geometry.Vec2D, col style.Color) {
	x0, y0 := c.devicePt(pos)
	x1, y1 := c.devicePt(pos.Add(size))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	b := c.img.Bounds()
	inner := image.Rect(x0, y0, x1, y1).Intersect(b)
	if inner.Empty() {
		draw.Draw(c.img, b, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
		return
	}
	u := image.NewUniform(col.NRGBA())
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, inner.Min.Y),
		image.Rect(b.Min.X, inner.Max.Y, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, b.Max.X, inner.Max.Y),
	} {
		if !r.Empty() {
			draw.Draw(c.img, r, u, image.Point{}, draw.Over)
		}
	}
}

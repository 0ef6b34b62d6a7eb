package annotate

import (
	"image"
	"math"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Blur censors a rectangle by pixelating whatever lies beneath it. The
// pixelated patch is computed once when the drawable is committed; the
// drawable is immutable afterwards, so undo and redo just reuse the
// patch.
type Blur struct {
	Pos   geometry.Vec2D
	Size  geometry.Vec2D
	Style style.Style
	patch *image.RGBA
}

func (b *Blur) rect() (geometry.Vec2D, image.Rectangle) {
	pos, size := geometry.EnsurePositiveSize(b.Pos, b.Size)
	r := image.Rect(
		int(math.Round(pos.X)), int(math.Round(pos.Y)),
		int(math.Round(pos.X+size.X)), int(math.Round(pos.Y+size.Y)))
	return pos, r
}

func (b *Blur) Draw(c *render.Canvas) error {
	pos, r := b.rect()
	if r.Empty() {
		return nil
	}
	patch := b.patch
	if patch == nil {
		// Still in progress: pixelate the live canvas content so
		// the preview tracks the drag.
		patch = render.Pixelate(c.Image(), r, b.Style.Size.BlurFactor())
	}
	if patch != nil {
		c.DrawPatch(patch, pos)
	}
	return nil
}

// Finalize captures the pixelated patch from a full resolution render
// of everything beneath this drawable.
func (b *Blur) Finalize(c *render.Canvas) {
	_, r := b.rect()
	if r.Empty() {
		return
	}
	b.patch = render.Pixelate(c.Image(), r, b.Style.Size.BlurFactor())
}

// BlurTool drags out censor rectangles.
type BlurTool struct {
	toolBase
	st  style.Style
	cur *Blur
}

func NewBlurTool(st style.Style) *BlurTool { return &BlurTool{st: st} }

func (t *BlurTool) Kind() Kind { return KindBlur }

func (t *BlurTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		t.cur = &Blur{Pos: ev.Pos, Style: t.st}
		return Redrawn
	case UpdateDrag:
		if t.cur == nil {
			return Unmodified
		}
		t.cur.Size = ev.Pos
		return Redrawn
	case EndDrag:
		if t.cur == nil {
			return Unmodified
		}
		if ev.Pos == (geometry.Vec2D{}) {
			t.cur = nil
			return Redrawn
		}
		t.cur.Size = ev.Pos
		done := t.cur
		t.cur = nil
		return Commit(done)
	}
	return Unmodified
}

func (t *BlurTool) HandleKey(ev KeyEvent) Update {
	if ev.Code == key.CodeEscape && t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *BlurTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *BlurTool) HandleDeactivated() Update {
	if t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *BlurTool) Active() bool { return t.cur != nil }

func (t *BlurTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

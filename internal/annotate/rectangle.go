package annotate

import (
	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Rectangle is an outlined or filled box. Pos and Size hold the raw
// anchor and signed drag extent; normalization happens at draw time so
// an in-progress drag stays reversible.
type Rectangle struct {
	Pos       geometry.Vec2D
	Size      geometry.Vec2D
	Roundness float64
	Style     style.Style
}

func (r *Rectangle) Draw(c *render.Canvas) error {
	pos, size := geometry.EnsurePositiveSize(r.Pos, r.Size)
	if r.Style.Fill {
		c.FillRect(pos, size, r.Style.Color)
		return nil
	}
	c.StrokeRoundedRect(pos, size, r.Roundness, r.Style.Size.LineWidth(), r.Style.Color)
	return nil
}

// RectangleTool draws boxes by dragging out the diagonal.
type RectangleTool struct {
	toolBase
	st        style.Style
	roundness float64
	cur       *Rectangle
}

func NewRectangleTool(st style.Style, roundness float64) *RectangleTool {
	return &RectangleTool{st: st, roundness: roundness}
}

func (t *RectangleTool) Kind() Kind { return KindRectangle }

func (t *RectangleTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		t.cur = &Rectangle{Pos: ev.Pos, Roundness: t.roundness, Style: t.st}
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

func (t *RectangleTool) HandleKey(ev KeyEvent) Update {
	if ev.Code == key.CodeEscape && t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *RectangleTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *RectangleTool) HandleDeactivated() Update {
	if t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *RectangleTool) Active() bool { return t.cur != nil }

func (t *RectangleTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

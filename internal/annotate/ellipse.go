package annotate

import (
	"math"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Ellipse is an axis-aligned ellipse annotation. Radii components may
// be negative while a drag is in progress; rendering takes their
// magnitude.
type Ellipse struct {
	Center geometry.Vec2D
	Radii  geometry.Vec2D
	Style  style.Style
}

func (e *Ellipse) Draw(c *render.Canvas) error {
	if e.Style.Fill {
		c.FillEllipse(e.Center, e.Radii.X, e.Radii.Y, e.Style.Color)
		return nil
	}
	c.StrokeEllipse(e.Center, e.Radii.X, e.Radii.Y, e.Style.Size.LineWidth(), e.Style.Color)
	return nil
}

// EllipseTool draws ellipses anchored at the drag start. Modifiers
// reinterpret the drag: Shift forces a circle sized by the dominant
// axis, Ctrl makes the drag span the diameter instead of the radius,
// and together they combine.
type EllipseTool struct {
	toolBase
	st     style.Style
	origin geometry.Vec2D
	cur    *Ellipse
}

func NewEllipseTool(st style.Style) *EllipseTool { return &EllipseTool{st: st} }

func (t *EllipseTool) Kind() Kind { return KindEllipse }

// ellipseShape resolves the modifier matrix for a drag offset.
func ellipseShape(origin, drag geometry.Vec2D, mod key.Modifiers) (center, radii geometry.Vec2D) {
	ctrl := mod&key.ModControl != 0
	shift := mod&key.ModShift != 0
	if shift {
		m := math.Max(math.Abs(drag.X), math.Abs(drag.Y))
		drag = geometry.Vec(math.Copysign(m, drag.X), math.Copysign(m, drag.Y))
	}
	if ctrl {
		return origin.Add(drag.Mul(0.5)), drag.Mul(0.5)
	}
	return origin, drag
}

func (t *EllipseTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		t.origin = ev.Pos
		t.cur = &Ellipse{Center: ev.Pos, Style: t.st}
		return Redrawn
	case UpdateDrag:
		if t.cur == nil {
			return Unmodified
		}
		t.cur.Center, t.cur.Radii = ellipseShape(t.origin, ev.Pos, ev.Mod)
		return Redrawn
	case EndDrag:
		if t.cur == nil {
			return Unmodified
		}
		if ev.Pos == (geometry.Vec2D{}) {
			t.cur = nil
			return Redrawn
		}
		t.cur.Center, t.cur.Radii = ellipseShape(t.origin, ev.Pos, ev.Mod)
		done := t.cur
		t.cur = nil
		return Commit(done)
	}
	return Unmodified
}

func (t *EllipseTool) HandleKey(ev KeyEvent) Update {
	if ev.Code == key.CodeEscape && t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *EllipseTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *EllipseTool) HandleDeactivated() Update {
	if t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *EllipseTool) Active() bool { return t.cur != nil }

func (t *EllipseTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

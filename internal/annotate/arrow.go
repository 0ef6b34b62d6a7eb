package annotate

import (
	"math"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

const (
	arrowWingLength = 30
	arrowWingAngle  = math.Pi / 6
)

// Arrow is a segment with a two-wing head at its end point.
type Arrow struct {
	Start geometry.Vec2D
	End   geometry.Vec2D
	Style style.Style
}

func (a *Arrow) Draw(c *render.Canvas) error {
	width := a.Style.Size.LineWidth()
	c.StrokeLine(a.Start, a.End, width, a.Style.Color)
	back := a.Start.Sub(a.End)
	if back == (geometry.Vec2D{}) {
		return nil
	}
	rev := back.Angle()
	c.StrokeLine(a.End, a.End.Add(geometry.FromAngle(rev+arrowWingAngle, arrowWingLength)), width, a.Style.Color)
	c.StrokeLine(a.End, a.End.Add(geometry.FromAngle(rev-arrowWingAngle, arrowWingLength)), width, a.Style.Color)
	return nil
}

// ArrowTool draws arrows, with the same gesture as LineTool.
type ArrowTool struct {
	toolBase
	st  style.Style
	cur *Arrow
}

func NewArrowTool(st style.Style) *ArrowTool { return &ArrowTool{st: st} }

func (t *ArrowTool) Kind() Kind { return KindArrow }

func (t *ArrowTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		t.cur = &Arrow{Start: ev.Pos, End: ev.Pos, Style: t.st}
		return Redrawn
	case UpdateDrag:
		if t.cur == nil {
			return Unmodified
		}
		t.cur.End = t.cur.Start.Add(dragVector(ev))
		return Redrawn
	case EndDrag:
		if t.cur == nil {
			return Unmodified
		}
		if ev.Pos == (geometry.Vec2D{}) {
			t.cur = nil
			return Redrawn
		}
		t.cur.End = t.cur.Start.Add(dragVector(ev))
		done := t.cur
		t.cur = nil
		return Commit(done)
	}
	return Unmodified
}

func (t *ArrowTool) HandleKey(ev KeyEvent) Update {
	if ev.Code == key.CodeEscape && t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *ArrowTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *ArrowTool) HandleDeactivated() Update {
	if t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *ArrowTool) Active() bool { return t.cur != nil }

func (t *ArrowTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

package annotate

import (
	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Line is a straight segment annotation.
type Line struct {
	Start geometry.Vec2D
	End   geometry.Vec2D
	Style style.Style
}

func (l *Line) Draw(c *render.Canvas) error {
	c.StrokeLine(l.Start, l.End, l.Style.Size.LineWidth(), l.Style.Color)
	return nil
}

// LineTool draws straight segments. Shift snaps the segment to 15
// degree increments.
type LineTool struct {
	toolBase
	st  style.Style
	cur *Line
}

func NewLineTool(st style.Style) *LineTool { return &LineTool{st: st} }

func (t *LineTool) Kind() Kind { return KindLine }

func (t *LineTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		t.cur = &Line{Start: ev.Pos, End: ev.Pos, Style: t.st}
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

func (t *LineTool) HandleKey(ev KeyEvent) Update {
	if ev.Code == key.CodeEscape && t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *LineTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *LineTool) HandleDeactivated() Update {
	if t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *LineTool) Active() bool { return t.cur != nil }

func (t *LineTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

// dragVector applies the Shift angle constraint to a drag offset.
func dragVector(ev MouseEvent) geometry.Vec2D {
	if ev.Mod&key.ModShift != 0 && ev.Pos != (geometry.Vec2D{}) {
		return ev.Pos.Snapped15()
	}
	return ev.Pos
}

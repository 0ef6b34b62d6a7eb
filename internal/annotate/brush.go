package annotate

import (
	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// Brush is a freehand stroke. Points are stored relative to Origin,
// already smoothed.
type Brush struct {
	Origin geometry.Vec2D
	Points []geometry.Vec2D
	Style  style.Style
}

func (b *Brush) Draw(c *render.Canvas) error {
	pts := make([]geometry.Vec2D, len(b.Points))
	for i, p := range b.Points {
		pts[i] = b.Origin.Add(p)
	}
	c.StrokePolyline(pts, b.Style.Size.LineWidth(), b.Style.Color)
	return nil
}

// BrushTool draws smoothed freehand strokes.
type BrushTool struct {
	toolBase
	st       style.Style
	smoother *Smoother
	cur      *Brush
}

// NewBrushTool builds a brush with the given smoothing history size; 0
// records raw points.
func NewBrushTool(st style.Style, historySize int) *BrushTool {
	return &BrushTool{st: st, smoother: NewSmoother(historySize)}
}

func (t *BrushTool) Kind() Kind { return KindBrush }

func (t *BrushTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		t.smoother.Reset()
		t.cur = &Brush{Origin: ev.Pos, Points: []geometry.Vec2D{{}}, Style: t.st}
		return Redrawn
	case UpdateDrag:
		if t.cur == nil {
			return Unmodified
		}
		t.cur.Points = append(t.cur.Points, t.smoother.Smooth(ev.Pos))
		return Redrawn
	case EndDrag:
		if t.cur == nil {
			return Unmodified
		}
		done := t.cur
		t.cur = nil
		if len(done.Points) < 2 {
			return Redrawn
		}
		return Commit(done)
	}
	return Unmodified
}

func (t *BrushTool) HandleKey(ev KeyEvent) Update {
	if ev.Code == key.CodeEscape && t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *BrushTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.cur != nil {
		t.cur.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *BrushTool) HandleDeactivated() Update {
	if t.cur != nil {
		t.cur = nil
		return Redrawn
	}
	return Unmodified
}

func (t *BrushTool) Active() bool { return t.cur != nil }

func (t *BrushTool) Drawable() Drawable {
	if t.cur == nil {
		return nil
	}
	return t.cur
}

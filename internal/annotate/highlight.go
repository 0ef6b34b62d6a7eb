package annotate

import (
	"math"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// HighlightMode selects between the two highlighter behaviors.
type HighlightMode int

const (
	// HighlightBlock drags out a translucent rounded box.
	HighlightBlock HighlightMode = iota
	// HighlightFreehand draws a wide translucent stroke.
	HighlightFreehand
)

// BlockHighlight is a translucent rounded rectangle.
type BlockHighlight struct {
	Pos       geometry.Vec2D
	Size      geometry.Vec2D
	Roundness float64
	Style     style.Style
}

func (b *BlockHighlight) Draw(c *render.Canvas) error {
	pos, size := geometry.EnsurePositiveSize(b.Pos, b.Size)
	c.FillRoundedRect(pos, size, b.Roundness, b.Style.Color.WithAlpha(style.HighlightAlpha))
	return nil
}

// FreehandHighlight is a wide translucent stroke. Points are stored
// relative to Origin.
type FreehandHighlight struct {
	Origin geometry.Vec2D
	Points []geometry.Vec2D
	Style  style.Style
}

func (f *FreehandHighlight) Draw(c *render.Canvas) error {
	pts := make([]geometry.Vec2D, len(f.Points))
	for i, p := range f.Points {
		pts[i] = f.Origin.Add(p)
	}
	c.StrokePolyline(pts, f.Style.Size.HighlightWidth(), f.Style.Color.WithAlpha(style.HighlightAlpha))
	return nil
}

// HighlightTool highlights regions. The configured primary mode starts
// each gesture; holding Ctrl at drag begin uses the other mode for
// that one gesture. In block mode Shift forces a square. In freehand
// mode a held Shift pins the stroke to one 15-degree-snapped segment:
// engaging Shift swallows the point recorded just before it, releasing
// Shift schedules a breakpoint so the next Shift run starts from the
// segment's end, and re-pressing Shift before any motion cancels that
// breakpoint, making release-plus-press a no-op.
type HighlightTool struct {
	toolBase
	st        style.Style
	primary   HighlightMode
	roundness float64

	block *BlockHighlight
	free  *FreehandHighlight

	shiftHeld    bool
	freshRun     bool
	pendingBreak bool
	anchor       geometry.Vec2D
}

func NewHighlightTool(st style.Style, primary HighlightMode, roundness float64) *HighlightTool {
	return &HighlightTool{st: st, primary: primary, roundness: roundness}
}

func (t *HighlightTool) Kind() Kind { return KindHighlight }

func (t *HighlightTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		mode := t.primary
		if ev.Mod&key.ModControl != 0 {
			if mode == HighlightBlock {
				mode = HighlightFreehand
			} else {
				mode = HighlightBlock
			}
		}
		t.shiftHeld = ev.Mod&key.ModShift != 0
		t.freshRun = true
		t.pendingBreak = false
		if mode == HighlightBlock {
			t.block = &BlockHighlight{Pos: ev.Pos, Roundness: t.roundness, Style: t.st}
			t.free = nil
		} else {
			t.free = &FreehandHighlight{Origin: ev.Pos, Points: []geometry.Vec2D{{}}, Style: t.st}
			t.block = nil
		}
		return Redrawn
	case UpdateDrag:
		if t.block != nil {
			t.block.Size = blockSize(ev)
			return Redrawn
		}
		if t.free != nil {
			t.extendFreehand(ev.Pos)
			return Redrawn
		}
	case EndDrag:
		if t.block != nil {
			done := t.block
			t.block = nil
			if ev.Pos == (geometry.Vec2D{}) {
				return Redrawn
			}
			done.Size = blockSize(ev)
			return Commit(done)
		}
		if t.free != nil {
			done := t.free
			t.free = nil
			if len(done.Points) < 2 {
				return Redrawn
			}
			return Commit(done)
		}
	}
	return Unmodified
}

func blockSize(ev MouseEvent) geometry.Vec2D {
	size := ev.Pos
	if ev.Mod&key.ModShift != 0 {
		m := math.Max(math.Abs(size.X), math.Abs(size.Y))
		size = geometry.Vec(math.Copysign(m, size.X), math.Copysign(m, size.Y))
	}
	return size
}

// extendFreehand records a drag offset, honoring the Shift run state.
func (t *HighlightTool) extendFreehand(rel geometry.Vec2D) {
	pts := t.free.Points
	if t.shiftHeld {
		if t.freshRun {
			// The snapped endpoint replaces the free point
			// recorded just before Shift engaged.
			if len(pts) >= 2 {
				pts = pts[:len(pts)-1]
			}
			t.anchor = pts[len(pts)-1]
			t.freshRun = false
			pts = append(pts, t.anchor)
		}
		pts[len(pts)-1] = t.anchor.Add(rel.Sub(t.anchor).Snapped15())
		t.free.Points = pts
		return
	}
	if t.pendingBreak {
		pts = append(pts, pts[len(pts)-1])
		t.pendingBreak = false
	}
	t.free.Points = append(pts, rel)
}

func (t *HighlightTool) HandleKey(ev KeyEvent) Update {
	switch ev.Code {
	case key.CodeEscape:
		if t.block != nil || t.free != nil {
			t.block, t.free = nil, nil
			return Redrawn
		}
	case key.CodeLeftShift, key.CodeRightShift:
		if t.free != nil && !t.shiftHeld {
			t.shiftHeld = true
			if t.pendingBreak {
				// Re-pressing before any motion resumes the
				// previous run unchanged.
				t.pendingBreak = false
			} else {
				t.freshRun = true
			}
		}
	}
	return Unmodified
}

func (t *HighlightTool) HandleKeyRelease(ev KeyEvent) Update {
	if ev.Code == key.CodeLeftShift || ev.Code == key.CodeRightShift {
		if t.free != nil && t.shiftHeld {
			t.shiftHeld = false
			t.pendingBreak = !t.freshRun
		}
	}
	return Unmodified
}

func (t *HighlightTool) HandleStyleChanged(st style.Style) Update {
	t.st = st
	if t.block != nil {
		t.block.Style = st
		return Redrawn
	}
	if t.free != nil {
		t.free.Style = st
		return Redrawn
	}
	return Unmodified
}

func (t *HighlightTool) HandleDeactivated() Update {
	if t.block != nil || t.free != nil {
		t.block, t.free = nil, nil
		return Redrawn
	}
	return Unmodified
}

func (t *HighlightTool) Active() bool { return t.block != nil || t.free != nil }

func (t *HighlightTool) Drawable() Drawable {
	if t.block != nil {
		return t.block
	}
	if t.free != nil {
		return t.free
	}
	return nil
}

package annotate

import (
	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/render"
	"github.com/example/inkshot/internal/style"
)

// CropState is the crop tool's lifecycle.
type CropState int

const (
	// NoCrop means no rectangle exists.
	NoCrop CropState = iota
	// CropActive shows the rectangle with its resize handles.
	CropActive
	// CropInactive keeps the rectangle but hides the handles while
	// another tool is selected.
	CropInactive
)

const (
	cropHandleRadius = 5.0
	cropHandleBorder = 2.0
)

// Squared hit distance for grabbing a handle. The slack beyond the
// visible radius makes small handles grabbable.
const cropHitThreshold2 = (cropHandleRadius+cropHandleBorder)*(cropHandleRadius+cropHandleBorder) + 15*15

type cropAction int

const (
	cropIdle cropAction = iota
	cropNew
	cropDragHandle
	cropMove
)

// CropTool maintains the output crop rectangle. It never commits a
// drawable: the compositor renders the overlay out of band on every
// display frame, and the rectangle only matters again at export time.
type CropTool struct {
	toolBase
	state CropState
	pos   geometry.Vec2D
	size  geometry.Vec2D

	action cropAction
	handle int
	origTL geometry.Vec2D
	origBR geometry.Vec2D
}

func NewCropTool() *CropTool { return &CropTool{} }

func (t *CropTool) Kind() Kind { return KindCrop }

// State reports the tool lifecycle state.
func (t *CropTool) State() CropState { return t.state }

// Rect is the normalized crop rectangle. ok is false when no usable
// rectangle exists.
func (t *CropTool) Rect() (pos, size geometry.Vec2D, ok bool) {
	if t.state == NoCrop || t.size == (geometry.Vec2D{}) {
		return geometry.Vec2D{}, geometry.Vec2D{}, false
	}
	pos, size = geometry.EnsurePositiveSize(t.pos, t.size)
	return pos, size, true
}

// handlePositions lists the 8 handles in hit-test order: corners and
// edge midpoints clockwise from the top-left. First match wins.
func (t *CropTool) handlePositions() [8]geometry.Vec2D {
	pos, size := geometry.EnsurePositiveSize(t.pos, t.size)
	x0, y0 := pos.X, pos.Y
	x1, y1 := pos.X+size.X, pos.Y+size.Y
	cx, cy := (x0+x1)/2, (y0+y1)/2
	return [8]geometry.Vec2D{
		{X: x0, Y: y0}, // top left
		{X: cx, Y: y0}, // top
		{X: x1, Y: y0}, // top right
		{X: x1, Y: cy}, // right
		{X: x1, Y: y1}, // bottom right
		{X: cx, Y: y1}, // bottom
		{X: x0, Y: y1}, // left bottom
		{X: x0, Y: cy}, // left
	}
}

func (t *CropTool) HandleMouse(ev MouseEvent) Update {
	switch ev.Kind {
	case BeginDrag:
		return t.beginDrag(ev.Pos)
	case UpdateDrag:
		if t.action == cropIdle {
			return Unmodified
		}
		t.applyDrag(ev.Pos)
		return Redrawn
	case EndDrag:
		if t.action == cropIdle {
			return Unmodified
		}
		if t.action == cropNew && ev.Pos == (geometry.Vec2D{}) {
			t.state = NoCrop
			t.size = geometry.Vec2D{}
			t.action = cropIdle
			return Redrawn
		}
		t.applyDrag(ev.Pos)
		t.action = cropIdle
		return Redrawn
	}
	return Unmodified
}

func (t *CropTool) beginDrag(pos geometry.Vec2D) Update {
	if t.state == NoCrop {
		t.state = CropActive
		t.pos = pos
		t.size = geometry.Vec2D{}
		t.origTL = pos
		t.action = cropNew
		return Redrawn
	}
	for i, h := range t.handlePositions() {
		if pos.Sub(h).Norm2() <= cropHitThreshold2 {
			t.action = cropDragHandle
			t.handle = i
			np, ns := geometry.EnsurePositiveSize(t.pos, t.size)
			t.origTL = np
			t.origBR = np.Add(ns)
			return Redrawn
		}
	}
	np, ns := geometry.EnsurePositiveSize(t.pos, t.size)
	if pos.X >= np.X && pos.X <= np.X+ns.X && pos.Y >= np.Y && pos.Y <= np.Y+ns.Y {
		t.action = cropMove
		t.origTL = np
		t.origBR = np.Add(ns)
		return Redrawn
	}
	// Outside the rectangle: the gesture is ignored rather than
	// starting a replacement crop.
	t.action = cropIdle
	return Unmodified
}

func (t *CropTool) applyDrag(delta geometry.Vec2D) {
	switch t.action {
	case cropNew:
		t.pos = t.origTL
		t.size = delta
	case cropMove:
		t.pos = t.origTL.Add(delta)
		t.size = t.origBR.Sub(t.origTL)
	case cropDragHandle:
		tl, br := t.origTL, t.origBR
		switch t.handle {
		case 0:
			tl = tl.Add(delta)
		case 1:
			tl.Y += delta.Y
		case 2:
			br.X += delta.X
			tl.Y += delta.Y
		case 3:
			br.X += delta.X
		case 4:
			br = br.Add(delta)
		case 5:
			br.Y += delta.Y
		case 6:
			tl.X += delta.X
			br.Y += delta.Y
		case 7:
			tl.X += delta.X
		}
		t.pos = tl
		t.size = br.Sub(tl)
	}
}

func (t *CropTool) HandleKey(ev KeyEvent) Update {
	if ev.Code != key.CodeEscape {
		return Unmodified
	}
	if t.action != cropIdle {
		// Abort the in-flight drag, restoring the previous
		// rectangle.
		t.pos = t.origTL
		t.size = t.origBR.Sub(t.origTL)
		if t.action == cropNew {
			t.state = NoCrop
			t.size = geometry.Vec2D{}
		}
		t.action = cropIdle
		return Redrawn
	}
	if t.state != NoCrop {
		t.state = NoCrop
		t.size = geometry.Vec2D{}
		return Redrawn
	}
	return Unmodified
}

func (t *CropTool) HandleActivated() Update {
	if t.state == CropInactive {
		t.state = CropActive
		return Redrawn
	}
	return Unmodified
}

func (t *CropTool) HandleDeactivated() Update {
	t.action = cropIdle
	if t.state == CropActive {
		t.state = CropInactive
		return Redrawn
	}
	return Unmodified
}

func (t *CropTool) Active() bool { return t.action != cropIdle }

// DrawOverlay dims everything outside the crop rectangle, outlines it,
// and, when the tool is active, renders the 8 resize handles. Called
// by the compositor for display renders only.
func (t *CropTool) DrawOverlay(c *render.Canvas) {
	pos, size, ok := t.Rect()
	if !ok {
		return
	}
	dim := style.Color{R: 0, G: 0, B: 0, A: 128}
	c.DimOutside(pos, size, dim)
	c.StrokeRect(pos, size, 1, style.Color{R: 255, G: 255, B: 255, A: 220})
	if t.state != CropActive {
		return
	}
	for _, h := range t.handlePositions() {
		c.FillCircle(h, cropHandleRadius+cropHandleBorder, style.Cove)
		c.FillCircle(h, cropHandleRadius, style.Color{R: 255, G: 255, B: 255, A: 255})
	}
}

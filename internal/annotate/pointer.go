package annotate

import "golang.org/x/mobile/event/key"

// PointerTool absorbs input without producing drawables, so stray
// clicks while inspecting the image change nothing.
type PointerTool struct {
	toolBase
}

func NewPointerTool() *PointerTool { return &PointerTool{} }

func (t *PointerTool) Kind() Kind { return KindPointer }

// ZoomTool adjusts the display magnification. Each click adds 0.1 to
// the accumulated factor; Ctrl-click subtracts. The factor never drops
// below the minimum step.
type ZoomTool struct {
	toolBase
	factor float64
}

func NewZoomTool() *ZoomTool { return &ZoomTool{factor: 1} }

func (t *ZoomTool) Kind() Kind { return KindZoom }

// Factor is the accumulated display scale multiplier.
func (t *ZoomTool) Factor() float64 { return t.factor }

func (t *ZoomTool) HandleMouse(ev MouseEvent) Update {
	if ev.Kind != Click {
		return Unmodified
	}
	if ev.Mod&key.ModControl != 0 {
		t.factor -= 0.1
		if t.factor < 0.1 {
			t.factor = 0.1
		}
	} else {
		t.factor += 0.1
	}
	return Redrawn
}

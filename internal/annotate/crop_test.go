package annotate

import (
	"testing"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/geometry"
)

func newCropWithRect(t *testing.T) *CropTool {
	t.Helper()
	tool := NewCropTool()
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(100, 100)})
	tool.HandleMouse(MouseEvent{Kind: UpdateDrag, Pos: geometry.Vec(200, 100)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(200, 100)})
	return tool
}

func TestCropNewRectangle(t *testing.T) {
	tool := newCropWithRect(t)
	pos, size, ok := tool.Rect()
	if !ok {
		t.Fatal("no rectangle after drag")
	}
	if pos != geometry.Vec(100, 100) || size != geometry.Vec(200, 100) {
		t.Errorf("rect %v %v", pos, size)
	}
	if tool.State() != CropActive {
		t.Errorf("state = %v, want CropActive", tool.State())
	}
}

func TestCropNegativeDragNormalizes(t *testing.T) {
	tool := NewCropTool()
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(300, 200)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(-100, -50)})
	pos, size, ok := tool.Rect()
	if !ok {
		t.Fatal("no rectangle")
	}
	if pos != geometry.Vec(200, 150) || size != geometry.Vec(100, 50) {
		t.Errorf("normalized rect %v %v, want (200,150) (100,50)", pos, size)
	}
}

func TestCropZeroDragCancels(t *testing.T) {
	tool := NewCropTool()
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(50, 50)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec2D{}})
	if _, _, ok := tool.Rect(); ok {
		t.Error("zero drag produced a rectangle")
	}
	if tool.State() != NoCrop {
		t.Errorf("state = %v, want NoCrop", tool.State())
	}
}

func TestCropMoveInterior(t *testing.T) {
	tool := newCropWithRect(t)
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(200, 150)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(30, 40)})
	pos, size, _ := tool.Rect()
	if pos != geometry.Vec(130, 140) || size != geometry.Vec(200, 100) {
		t.Errorf("moved rect %v %v, want (130,140) size unchanged", pos, size)
	}
}

func TestCropOutsideIgnored(t *testing.T) {
	tool := newCropWithRect(t)
	up := tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(600, 600)})
	if up.Changed() {
		t.Error("outside drag reported a change")
	}
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(50, 50)})
	pos, size, _ := tool.Rect()
	if pos != geometry.Vec(100, 100) || size != geometry.Vec(200, 100) {
		t.Errorf("outside drag altered the rect: %v %v", pos, size)
	}
}

func TestCropDragCornerHandle(t *testing.T) {
	tool := newCropWithRect(t)
	// Grab the bottom-right corner at (300, 200).
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(300, 200)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(50, 25)})
	pos, size, _ := tool.Rect()
	if pos != geometry.Vec(100, 100) || size != geometry.Vec(250, 125) {
		t.Errorf("corner resize gave %v %v, want anchor fixed, size (250,125)", pos, size)
	}
}

func TestCropDragEdgeHandle(t *testing.T) {
	tool := newCropWithRect(t)
	// The top edge midpoint sits at (200, 100); dragging it only
	// moves the top edge.
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(200, 100)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(999, -20)})
	pos, size, _ := tool.Rect()
	if pos != geometry.Vec(100, 80) || size != geometry.Vec(200, 120) {
		t.Errorf("edge resize gave %v %v, want x untouched", pos, size)
	}
}

func TestCropHandleFlipThroughAnchor(t *testing.T) {
	tool := newCropWithRect(t)
	// Drag the bottom-right corner up-left past the top-left corner.
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(300, 200)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(-250, -150)})
	pos, size, _ := tool.Rect()
	if size.X < 0 || size.Y < 0 {
		t.Fatalf("negative size exposed: %v", size)
	}
	if pos != geometry.Vec(50, 50) || size != geometry.Vec(50, 50) {
		t.Errorf("flipped rect %v %v, want (50,50) (50,50)", pos, size)
	}
}

func TestCropHandleHitOrderFirstWins(t *testing.T) {
	tool := NewCropTool()
	// A tiny rectangle puts every handle within the hit threshold of
	// its center; the top-left handle must win.
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(100, 100)})
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(10, 10)})
	tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(105, 105)})
	if tool.action != cropDragHandle || tool.handle != 0 {
		t.Errorf("action %v handle %d, want the first enumerated handle", tool.action, tool.handle)
	}
	tool.HandleMouse(MouseEvent{Kind: EndDrag, Pos: geometry.Vec(-5, -5)})
}

func TestCropDeactivateHidesHandles(t *testing.T) {
	tool := newCropWithRect(t)
	tool.HandleDeactivated()
	if tool.State() != CropInactive {
		t.Fatalf("state = %v, want CropInactive", tool.State())
	}
	if _, _, ok := tool.Rect(); !ok {
		t.Error("rectangle lost on deactivation")
	}
	tool.HandleActivated()
	if tool.State() != CropActive {
		t.Errorf("state = %v after reactivation", tool.State())
	}
}

func TestCropEscapeClears(t *testing.T) {
	tool := newCropWithRect(t)
	tool.HandleKey(KeyEvent{Code: key.CodeEscape})
	if tool.State() != NoCrop {
		t.Errorf("Escape left state %v", tool.State())
	}
	if _, _, ok := tool.Rect(); ok {
		t.Error("Escape left a rectangle")
	}
}

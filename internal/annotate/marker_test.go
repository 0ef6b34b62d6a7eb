package annotate

import (
	"testing"

	"github.com/example/inkshot/internal/geometry"
	"github.com/example/inkshot/internal/style"
)

func placeMarker(tool *MarkerTool, h *History, x float64) *Marker {
	up := tool.HandleMouse(MouseEvent{Kind: Click, Pos: geometry.Vec(x, 10)})
	m := up.Commit.(*Marker)
	h.Commit(m)
	return m
}

func TestMarkerNumbering(t *testing.T) {
	tool := NewMarkerTool(style.Default())
	var h History
	for i, want := range []int{1, 2, 3} {
		if m := placeMarker(tool, &h, float64(i)); m.Value != want {
			t.Fatalf("marker %d numbered %d", i, m.Value)
		}
	}
	h.Undo()
	h.Undo()
	if tool.Counter() != 2 {
		t.Fatalf("counter after two undos = %d, want 2", tool.Counter())
	}
	if m := placeMarker(tool, &h, 5); m.Value != 2 {
		t.Errorf("new marker after undo numbered %d, want 2", m.Value)
	}
	if h.Redo() {
		t.Error("redo possible after a fresh commit")
	}
}

func TestMarkerRedoAdvancesCounter(t *testing.T) {
	tool := NewMarkerTool(style.Default())
	var h History
	placeMarker(tool, &h, 1)
	placeMarker(tool, &h, 2)
	h.Undo()
	if tool.Counter() != 2 {
		t.Fatalf("counter = %d after undo, want 2", tool.Counter())
	}
	h.Redo()
	if tool.Counter() != 3 {
		t.Errorf("counter = %d after redo, want 3", tool.Counter())
	}
	if m := placeMarker(tool, &h, 3); m.Value != 3 {
		t.Errorf("marker after redo numbered %d, want 3", m.Value)
	}
}

func TestMarkerIgnoresDrags(t *testing.T) {
	tool := NewMarkerTool(style.Default())
	up := tool.HandleMouse(MouseEvent{Kind: BeginDrag, Pos: geometry.Vec(1, 1)})
	if up.Changed() {
		t.Error("marker reacted to a drag")
	}
	if tool.Counter() != 1 {
		t.Error("drag consumed a number")
	}
}

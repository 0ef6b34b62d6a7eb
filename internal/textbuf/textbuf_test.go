package textbuf

import "testing"

func TestInsertAndCursor(t *testing.T) {
	b := New()
	b.Insert("hello")
	b.Insert(" world")
	if got := b.String(); got != "hello world" {
		t.Fatalf("String() = %q", got)
	}
	if b.Cursor() != 11 {
		t.Errorf("cursor = %d, want 11", b.Cursor())
	}
	b.SetCursor(5)
	b.Insert(",")
	if got := b.String(); got != "hello, world" {
		t.Errorf("mid insert = %q", got)
	}
	if b.Cursor() != 6 {
		t.Errorf("cursor after mid insert = %d, want 6", b.Cursor())
	}
}

func TestInsertMultibyte(t *testing.T) {
	b := New()
	b.Insert("日本語")
	if b.Len() != 3 || b.Cursor() != 3 {
		t.Errorf("rune accounting off: len %d cursor %d", b.Len(), b.Cursor())
	}
	b.DeleteBackward()
	if got := b.String(); got != "日本" {
		t.Errorf("DeleteBackward = %q", got)
	}
}

func TestDeletes(t *testing.T) {
	b := New()
	b.Insert("abc def")
	b.SetCursor(3)
	b.DeleteForward()
	if got := b.String(); got != "abcdef" {
		t.Errorf("DeleteForward = %q", got)
	}
	b.DeleteBackward()
	if got := b.String(); got != "abdef" {
		t.Errorf("DeleteBackward = %q", got)
	}
	// Deleting at the edges is a no-op.
	b.SetCursor(0)
	b.DeleteBackward()
	b.SetCursor(b.Len())
	b.DeleteForward()
	if got := b.String(); got != "abdef" {
		t.Errorf("edge deletes changed content: %q", got)
	}
}

func TestWordMotion(t *testing.T) {
	b := New()
	b.Insert("one two  three")
	b.SetCursor(b.Len())
	b.MoveWordLeft()
	if b.Cursor() != 9 {
		t.Errorf("MoveWordLeft = %d, want 9", b.Cursor())
	}
	b.MoveWordLeft()
	if b.Cursor() != 4 {
		t.Errorf("second MoveWordLeft = %d, want 4", b.Cursor())
	}
	b.MoveWordRight()
	if b.Cursor() != 7 {
		t.Errorf("MoveWordRight = %d, want 7", b.Cursor())
	}
}

func TestDeleteWordBackward(t *testing.T) {
	b := New()
	b.Insert("one two three")
	b.SetCursor(b.Len())
	b.DeleteWordBackward()
	if got := b.String(); got != "one two " {
		t.Errorf("DeleteWordBackward = %q", got)
	}
	b.DeleteWordBackward()
	if got := b.String(); got != "one " {
		t.Errorf("second DeleteWordBackward = %q", got)
	}
}

func TestLineMotion(t *testing.T) {
	b := New()
	b.Insert("first\nsecond line")
	b.SetCursor(9)
	b.MoveLineStart()
	if b.Cursor() != 6 {
		t.Errorf("MoveLineStart = %d, want 6", b.Cursor())
	}
	b.MoveLineEnd()
	if b.Cursor() != b.Len() {
		t.Errorf("MoveLineEnd = %d, want %d", b.Cursor(), b.Len())
	}
	b.SetCursor(3)
	b.MoveLineStart()
	if b.Cursor() != 0 {
		t.Errorf("MoveLineStart on first line = %d, want 0", b.Cursor())
	}
	b.MoveLineEnd()
	if b.Cursor() != 5 {
		t.Errorf("MoveLineEnd on first line = %d, want 5", b.Cursor())
	}
}

func TestUndoRedo(t *testing.T) {
	b := New()
	b.Insert("alpha")
	b.Insert(" beta")
	if !b.Undo() {
		t.Fatal("Undo returned false with history")
	}
	if got := b.String(); got != "alpha" {
		t.Fatalf("after undo: %q", got)
	}
	if !b.Redo() {
		t.Fatal("Redo returned false after undo")
	}
	if got := b.String(); got != "alpha beta" {
		t.Fatalf("after redo: %q", got)
	}
	b.Undo()
	b.Insert("!")
	if b.CanRedo() {
		t.Error("redo history should clear after a fresh edit")
	}
	if got := b.String(); got != "alpha!" {
		t.Errorf("after divergent edit: %q", got)
	}
}

func TestUndoEmpty(t *testing.T) {
	b := New()
	if b.Undo() || b.Redo() {
		t.Error("empty buffer reported undo/redo work")
	}
	b.MoveLeft()
	b.MoveRight()
	if b.CanUndo() {
		t.Error("cursor motion created undo entries")
	}
}
